// --- File: default.go ---
package log

import (
	"time"
)

// Process-wide logger for code that has no handle of its own.
// It follows the same explicit lifecycle as any Logger: configure, Start, Shutdown.
var defaultLogger = NewLogger()

// Default returns the process-wide logger
func Default() *Logger {
	return defaultLogger
}

// Default package-level functions that delegate to the default logger

// SetLevel sets the minimum level of the default logger
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetMaxFileSize sets the rotation threshold of the default logger
func SetMaxFileSize(bytes int64) {
	defaultLogger.SetMaxFileSize(bytes)
}

// ToFile targets the default logger's file output at path
func ToFile(path string) error {
	return defaultLogger.ToFile(path)
}

// ApplyConfig applies cfg to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// Start begins processing for the default logger
func Start() {
	defaultLogger.Start()
}

// Shutdown drains and stops the default logger
func Shutdown() {
	defaultLogger.Shutdown()
}

// Close drains the default logger and closes its file
func Close() error {
	return defaultLogger.Close()
}

// Flush waits for the default logger to deliver pending records
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}

// Write logs a pre-formatted message through the default logger
func Write(level Level, category, message string) {
	defaultLogger.Write(level, category, message)
}

// Tracef logs a formatted message at trace level
func Tracef(category, format string, args ...any) {
	defaultLogger.Tracef(category, format, args...)
}

// Debugf logs a formatted message at debug level
func Debugf(category, format string, args ...any) {
	defaultLogger.Debugf(category, format, args...)
}

// Infof logs a formatted message at info level
func Infof(category, format string, args ...any) {
	defaultLogger.Infof(category, format, args...)
}

// Warnf logs a formatted message at warning level
func Warnf(category, format string, args ...any) {
	defaultLogger.Warnf(category, format, args...)
}

// Errorf logs a formatted message at error level
func Errorf(category, format string, args ...any) {
	defaultLogger.Errorf(category, format, args...)
}

// Fatalf logs a formatted message at fatal level
func Fatalf(category, format string, args ...any) {
	defaultLogger.Fatalf(category, format, args...)
}
