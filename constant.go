// FILE: constant.go
package log

import (
	"time"
)

// Log level constants, ordered by severity
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// ANSI escape sequences used for console output
const (
	colorGray      = "\033[90m"
	colorCyan      = "\033[36m"
	colorWhite     = "\033[37m"
	colorYellow    = "\033[33m"
	colorRed       = "\033[31m"
	colorBrightRed = "\033[91m"
)

// Storage
const (
	// Default rotation threshold for a single log file
	DefaultMaxFileSize int64 = 5 * 1024 * 1024
	// Layout of the synthesized file name when a directory is given as target
	datedFileLayout = "2006-01-02"
	datedFileSuffix = "_log.txt"
	// Width of the zero-padded rotation index
	rotationIndexWidth = 3
)

// Timers
const (
	// Quiet period before a changed config file is re-read
	configReloadDebounce = 100 * time.Millisecond
)
