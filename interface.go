// FILE: interface.go
package log

import (
	"fmt"
)

// Logger instance methods for logging at different levels.
// Messages are formatted at the call site and only when the level passes the filter.

// Write logs a pre-formatted message at the given level under category
func (l *Logger) Write(level Level, category, message string) {
	l.log(level, category, message)
}

// Tracef logs a formatted message at trace level
func (l *Logger) Tracef(category, format string, args ...any) {
	l.logf(LevelTrace, category, format, args...)
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(category, format string, args ...any) {
	l.logf(LevelDebug, category, format, args...)
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(category, format string, args ...any) {
	l.logf(LevelInfo, category, format, args...)
}

// Warnf logs a formatted message at warning level
func (l *Logger) Warnf(category, format string, args ...any) {
	l.logf(LevelWarn, category, format, args...)
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(category, format string, args ...any) {
	l.logf(LevelError, category, format, args...)
}

// Fatalf logs a formatted message at fatal level. It does not exit the process.
func (l *Logger) Fatalf(category, format string, args ...any) {
	l.logf(LevelFatal, category, format, args...)
}

// Dump logs a one-line rendering of v, useful for inspecting structs and maps
func (l *Logger) Dump(level Level, category string, v any) {
	if level < l.GetLevel() {
		return
	}
	l.enqueue(level, category, l.getFormatter().Value(v))
}

// logf expands the format only for records that pass the level filter
func (l *Logger) logf(level Level, category, format string, args ...any) {
	if level < l.GetLevel() {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.enqueue(level, category, msg)
}
