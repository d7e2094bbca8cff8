// FILE: type.go
package log

import (
	"io"
)

// destination selects where the worker delivers a record
type destination uint8

const (
	destConsole destination = iota
	destFile
)

// logRecord is a rendered line waiting in the queue
type logRecord struct {
	Text string
	Dest destination
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// Stats is a point-in-time snapshot of logger counters
type Stats struct {
	Processed        uint64 // Records delivered by the worker
	Rotations        uint64 // Successful file rotations
	DroppedFileLines uint64 // File lines lost to a missing or failing file
	Pending          int    // Records queued but not yet delivered
	RotationIndex    uint32 // Index of the active file, 0 for the base path
	CurrentFile      string // Path of the open file, empty when console-only
}
