//go:build windows

package log

import (
	"golang.org/x/sys/windows"
)

// enableVirtualTerminal turns on escape-sequence processing for the stdout console
func enableVirtualTerminal() bool {
	h := windows.Stdout
	if h == windows.InvalidHandle {
		return false
	}

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
