// FILE: builder.go
package log

import (
	"strings"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
// The logger is configured but not started.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	// ApplyConfig handles all initialization and validation.
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Level sets the log level.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = strings.ToLower(level.String())
	return b
}

// LevelString sets the log level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	return b.Level(levelVal)
}

// File sets the log file or directory.
func (b *Builder) File(path string) *Builder {
	b.cfg.File = path
	return b
}

// MaxFileSize sets the rotation threshold in bytes.
func (b *Builder) MaxFileSize(bytes int64) *Builder {
	b.cfg.MaxFileSize = bytes
	return b
}

// MaxFileSizeString sets the rotation threshold from a size string such as "5MB".
func (b *Builder) MaxFileSizeString(size string) *Builder {
	if b.err != nil {
		return b
	}
	bytes, err := parseByteSize(size)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.MaxFileSize = bytes
	return b
}

// EnableConsole enables console records.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// ConsoleColor enables ANSI colors on console lines.
func (b *Builder) ConsoleColor(enable bool) *Builder {
	b.cfg.ConsoleColor = enable
	return b
}

// SanitizePolicy selects how categories and messages are cleaned: raw, txt, escape, strip or shell.
func (b *Builder) SanitizePolicy(policy string) *Builder {
	b.cfg.SanitizePolicy = policy
	return b
}

// HeartbeatIntervalS sets the heartbeat interval, 0 disables it.
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	b.cfg.HeartbeatIntervalS = interval
	return b
}

// InternalErrorsToStderr writes logger diagnostics to stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// logger, err := log.NewBuilder().
//
//	File("/var/log/app/app.log").
//	LevelString("debug").
//	MaxFileSizeString("10MB").
//	Build()
//
// if err == nil {
//
//	 logger.Start()
//	 defer logger.Close()
//	 logger.Infof("app", "logger initialized")
//
// }
