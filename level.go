// FILE: level.go
package log

import (
	"strings"
)

// Level is the severity of a log record. Levels are totally ordered by value
type Level int32

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

var levelColors = [...]string{
	LevelTrace: colorGray,
	LevelDebug: colorCyan,
	LevelInfo:  colorWhite,
	LevelWarn:  colorYellow,
	LevelError: colorRed,
	LevelFatal: colorBrightRed,
}

// String returns the upper-case level label used in rendered lines
func (lv Level) String() string {
	if lv.valid() {
		return levelNames[lv]
	}
	return "UNKNOWN"
}

// Color returns the ANSI escape sequence for console output at this level
func (lv Level) Color() string {
	if lv.valid() {
		return levelColors[lv]
	}
	return ""
}

func (lv Level) valid() bool {
	return lv >= LevelTrace && lv <= LevelFatal
}

// ParseLevel converts a level name to its Level
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, fatal)", levelStr)
	}
}
