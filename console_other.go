//go:build !windows

package log

// enableVirtualTerminal is a no-op where terminals interpret escape sequences natively
func enableVirtualTerminal() bool {
	return true
}
