// FILE: state.go
package log

import (
	"sync/atomic"
)

// State encapsulates the runtime state of the logger shared with producers
type State struct {
	Level        atomic.Int32 // Current Level threshold
	MaxFileSize  atomic.Int64 // Rotation threshold in bytes, <= 0 disables rotation
	ColorEnabled atomic.Bool  // Wrap console lines in ANSI colors
	ConsoleOn    atomic.Bool  // Produce console records at all

	ConsoleWriter atomic.Value // stores *sink
	LoggerStart   atomic.Value // stores time.Time of the last Start

	TotalLogsProcessed atomic.Uint64 // Counter for records written to their destination
	TotalRotations     atomic.Uint64 // Counter for successful log rotations
	DroppedFileLines   atomic.Uint64 // Counter for file lines that had no usable file
	HeartbeatSequence  atomic.Uint64 // Counter for heartbeat sequence numbers
}
