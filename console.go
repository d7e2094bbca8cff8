// FILE: console.go
package log

import (
	"sync"

	"github.com/rydor/log/formatter"
)

// consoleSupportsANSI reports whether the process console renders escape sequences.
// The platform opt-in runs at most once per process.
var consoleSupportsANSI = sync.OnceValue(enableVirtualTerminal)

// colorize wraps a console line in the color of its level
func colorize(level Level, line string) string {
	return formatter.Colorize(level.Color(), line)
}
