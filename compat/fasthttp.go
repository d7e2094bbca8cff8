package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/rydor/log"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter wraps rydor/log.Logger to implement the fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *log.Logger
	category      string
	defaultLevel  log.Level
	levelDetector func(string) (log.Level, bool) // Detects level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *log.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		category:      "fasthttp",
		defaultLevel:  log.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when no level is detected
func WithDefaultLevel(level log.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) (log.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// WithFastHTTPCategory sets the category of records written by the adapter
func WithFastHTTPCategory(category string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.category = category
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}

	a.logger.Write(level, a.category, msg)
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) (log.Level, bool) {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return log.LevelError, true
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return log.LevelWarn, true
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return log.LevelDebug, true
	}

	return log.LevelInfo, false
}
