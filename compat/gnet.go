package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/rydor/log"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps rydor/log.Logger to implement the gnet logging.Logger interface
type GnetAdapter struct {
	logger       *log.Logger
	category     string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *log.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger:   logger,
		category: "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetCategory sets the category of records written by the adapter
func WithGnetCategory(category string) GnetOption {
	return func(a *GnetAdapter) {
		a.category = category
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debugf(a.category, format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Infof(a.category, format, args...)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warnf(a.category, format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Errorf(a.category, format, args...)
}

// Fatalf logs at fatal level, flushes and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Write(log.LevelFatal, a.category, msg)

	// Ensure log is flushed before exit
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
