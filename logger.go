// FILE: logger.go
package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rydor/log/formatter"
	"github.com/rydor/log/sanitizer"
)

// Logger is the core struct that encapsulates all logger functionality.
// Producers on any goroutine call Write; a single worker goroutine, alive
// between Start and Shutdown, delivers records in enqueue order.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	formatter     atomic.Pointer[formatter.Formatter]
	state         State
	queue         *recordQueue
	sink          *fileSink

	initMu    sync.Mutex    // serializes lifecycle transitions and reconfiguration
	done      chan struct{} // closed by the worker on exit
	heartbeat *heartbeat
}

// NewLogger creates a new Logger instance with default settings: level Info,
// console output on stdout, no file target and a 5 MiB rotation threshold.
// Records written before Start are buffered.
func NewLogger() *Logger {
	l := &Logger{
		queue: newRecordQueue(),
	}
	l.sink = newFileSink(&l.state, l.internalLog)

	cfg := DefaultConfig()
	l.currentConfig.Store(cfg)
	l.formatter.Store(formatter.New())

	l.state.Level.Store(int32(LevelInfo))
	l.state.MaxFileSize.Store(cfg.MaxFileSize)
	l.state.ConsoleOn.Store(cfg.EnableConsole)
	l.state.ColorEnabled.Store(cfg.ConsoleColor && consoleSupportsANSI())
	l.state.ConsoleWriter.Store(&sink{w: os.Stdout})
	l.state.LoggerStart.Store(time.Time{})

	return l
}

// ApplyConfig applies a validated configuration to the logger.
// A file target that cannot be opened leaves the logger console-only and is reported.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// GetConfig returns a copy of current configuration, including runtime level and size changes
func (l *Logger) GetConfig() *Config {
	cfg := l.getConfig().Clone()
	cfg.Level = strings.ToLower(l.GetLevel().String())
	cfg.MaxFileSize = l.state.MaxFileSize.Load()
	return cfg
}

// SetLevel sets the minimum level of records that are accepted
func (l *Logger) SetLevel(level Level) {
	l.state.Level.Store(int32(level))
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	return Level(l.state.Level.Load())
}

// SetMaxFileSize sets the rotation threshold in bytes; zero or negative disables rotation.
// The new threshold applies to the next line appended to the active file.
func (l *Logger) SetMaxFileSize(bytes int64) {
	l.state.MaxFileSize.Store(bytes)
}

// SetOutput replaces the console destination
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.state.ConsoleWriter.Store(&sink{w: w})
}

// ToFile targets file output at path and opens the first file immediately.
// A directory or extension-less path gets a dated "YYYY-MM-DD_log.txt" file inside it.
// On error the logger continues console-only.
func (l *Logger) ToFile(path string) error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	cfg := l.getConfig().Clone()
	err := l.sink.openInitial(path)
	if err != nil {
		cfg.File = ""
	} else {
		cfg.File = path
	}
	l.currentConfig.Store(cfg)
	return err
}

// Start begins log processing. Safe to call multiple times
func (l *Logger) Start() {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	if !l.queue.transition(statusStopped, statusRunning) {
		return
	}

	l.state.LoggerStart.Store(time.Now())

	done := make(chan struct{})
	l.done = done
	go l.processLogs(done)

	l.startHeartbeat(l.getConfig().HeartbeatIntervalS)
}

// Shutdown stops log processing after every queued record has been delivered.
// It blocks until the worker exits. Records written afterwards are buffered
// until the next Start. Returns immediately if the logger is not running.
func (l *Logger) Shutdown() {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	l.shutdownLocked()
}

// shutdownLocked drains and stops the worker, assuming initMu is held
func (l *Logger) shutdownLocked() {
	if l.queue.currentStatus() != statusRunning {
		return
	}

	l.stopHeartbeat()

	l.queue.transition(statusRunning, statusDraining)
	<-l.done
	l.done = nil
	l.queue.transition(statusDraining, statusStopped)
}

// drainStoppedLocked delivers whatever a stopped logger has buffered, assuming initMu is held
func (l *Logger) drainStoppedLocked() {
	if pending, _ := l.queue.pending(); pending == 0 {
		return
	}
	if !l.queue.transition(statusStopped, statusDraining) {
		return
	}
	l.processLogs(make(chan struct{}))
	l.queue.transition(statusDraining, statusStopped)
}

// Close drains the queue, stops the worker and closes the log file.
// Records buffered by a logger that was never started are delivered on the calling goroutine first.
// A closed logger may be started again for console output or re-targeted with ToFile.
func (l *Logger) Close() error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	l.shutdownLocked()
	l.drainStoppedLocked()

	cfg := l.getConfig().Clone()
	cfg.File = ""
	l.currentConfig.Store(cfg)

	return l.sink.close()
}

// Running reports whether the worker is consuming records
func (l *Logger) Running() bool {
	return l.queue.currentStatus() == statusRunning
}

// Flush waits until every record written before the call has been delivered or timeout elapses
func (l *Logger) Flush(timeout time.Duration) error {
	if !l.Running() {
		return fmtErrorf("logger not started")
	}

	w := l.queue.awaitDelivered()
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-w.done:
	case <-timer.C:
		l.queue.cancelWait(w)
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}

	return l.sink.sync()
}

// Stats returns a snapshot of the logger counters
func (l *Logger) Stats() Stats {
	pending, _ := l.queue.pending()
	path, index := l.sink.snapshot()
	return Stats{
		Processed:        l.state.TotalLogsProcessed.Load(),
		Rotations:        l.state.TotalRotations.Load(),
		DroppedFileLines: l.state.DroppedFileLines.Load(),
		Pending:          pending,
		RotationIndex:    index,
		CurrentFile:      path,
	}
}

// CurrentFile returns the path of the open log file, or "" when console-only
func (l *Logger) CurrentFile() string {
	path, _ := l.sink.snapshot()
	return path
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// getFormatter returns the formatter for the current configuration
func (l *Logger) getFormatter() *formatter.Formatter {
	return l.formatter.Load()
}

// getConsoleWriter returns the current console destination
func (l *Logger) getConsoleWriter() io.Writer {
	return l.state.ConsoleWriter.Load().(*sink).w
}

// applyConfig is the internal implementation for applying configuration, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	oldCfg := l.getConfig()

	level, _ := ParseLevel(cfg.Level)
	l.SetLevel(level)
	l.SetMaxFileSize(cfg.MaxFileSize)

	// Console
	l.state.ConsoleOn.Store(cfg.EnableConsole)
	l.state.ColorEnabled.Store(cfg.ConsoleColor && consoleSupportsANSI())
	if cfg.ConsoleTarget != oldCfg.ConsoleTarget {
		if cfg.ConsoleTarget == "stderr" {
			l.SetOutput(os.Stderr)
		} else {
			l.SetOutput(os.Stdout)
		}
	}

	// Formatting
	policy, _ := sanitizer.ParsePolicy(cfg.SanitizePolicy)
	l.formatter.Store(formatter.New(sanitizer.New().Policy(policy)))

	// File target
	var fileErr error
	if cfg.File != oldCfg.File || (cfg.File != "" && !l.sink.isOpen()) {
		if cfg.File == "" {
			if err := l.sink.close(); err != nil {
				l.internalLog("warning - failed to close log file during disable: %v\n", err)
			}
		} else if err := l.sink.openInitial(cfg.File); err != nil {
			fileErr = fmtErrorf("failed to create log file: %w", err)
			cfg.File = ""
		}
	}

	l.currentConfig.Store(cfg)

	// Heartbeat follows the new interval while running
	if l.queue.currentStatus() == statusRunning && cfg.HeartbeatIntervalS != oldCfg.HeartbeatIntervalS {
		l.stopHeartbeat()
		l.startHeartbeat(cfg.HeartbeatIntervalS)
	}

	return fileErr
}
