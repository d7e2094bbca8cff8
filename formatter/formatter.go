// Package formatter renders log lines. Rendering is pure: a Formatter holds only
// immutable settings and may be shared by any number of producer goroutines.
package formatter

import (
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rydor/log/sanitizer"
)

// Timestamp layouts for the two line shapes
const (
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ColorReset ends an ANSI color sequence
const ColorReset = "\033[0m"

// valueDumper renders arbitrary values on a single line
var valueDumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Formatter renders records as "[time] [LEVEL] [category] message"
type Formatter struct {
	sanitizer *sanitizer.Sanitizer
}

// New creates a formatter with the provided sanitizer.
// A nil or rule-less sanitizer leaves categories and messages untouched.
func New(s ...*sanitizer.Sanitizer) *Formatter {
	var san *sanitizer.Sanitizer
	if len(s) > 0 && s[0] != nil {
		san = s[0]
	} else {
		san = sanitizer.New() // Default passthrough sanitizer
	}
	return &Formatter{sanitizer: san}
}

// Line renders one record. includeDate selects the file layout, otherwise only
// the wall-clock time is shown. The timestamp is rendered in the local zone.
func (f *Formatter) Line(label, category, message string, ts time.Time, includeDate bool) string {
	layout := TimeLayout
	if includeDate {
		layout = DateTimeLayout
	}

	category = f.sanitizer.Sanitize(category)
	message = f.sanitizer.Sanitize(message)

	var sb strings.Builder
	sb.Grow(len(layout) + len(label) + len(category) + len(message) + 10)
	sb.WriteByte('[')
	sb.WriteString(ts.Local().Format(layout))
	sb.WriteString("] [")
	sb.WriteString(label)
	sb.WriteString("] [")
	sb.WriteString(category)
	sb.WriteString("] ")
	sb.WriteString(message)
	return sb.String()
}

// Value renders v on one line for debug dumps
func (f *Formatter) Value(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case error:
		return val.Error()
	}
	return valueDumper.Sprintf("%+v", v)
}

// Colorize wraps the whole line in a color sequence followed by a reset
func Colorize(color, line string) string {
	if color == "" {
		return line
	}
	return color + line + ColorReset
}
