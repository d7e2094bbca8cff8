// FILE: storage.go
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// fileSink owns the open log file, its rotation index and the byte count of the active file.
// Only the worker appends; mu orders the worker against re-targeting and teardown.
type fileSink struct {
	mu       sync.Mutex
	open     atomic.Bool
	basePath string
	index    uint32
	size     int64
	file     *os.File

	state    *State
	warnFunc func(format string, args ...any)
}

func newFileSink(state *State, warn func(format string, args ...any)) *fileSink {
	return &fileSink{state: state, warnFunc: warn}
}

// isOpen reports whether file records should be produced
func (s *fileSink) isOpen() bool {
	return s.open.Load()
}

// resolveLogPath turns a directory-like target into a dated file inside it
func resolveLogPath(path string, now time.Time) string {
	isDir := strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator))
	if !isDir {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			isDir = true
		}
	}
	if isDir || filepath.Ext(path) == "" {
		return filepath.Join(path, now.Format(datedFileLayout)+datedFileSuffix)
	}
	return filepath.Clean(path)
}

// rotatedLogPath inserts the zero-padded index before the extension of the base path
func rotatedLogPath(basePath string, index uint32) string {
	if index == 0 {
		return basePath
	}
	ext := filepath.Ext(basePath)
	stem := strings.TrimSuffix(basePath, ext)
	return fmt.Sprintf("%s_%0*d%s", stem, rotationIndexWidth, index, ext)
}

// openInitial targets the sink at path and opens the first file eagerly
func (s *fileSink) openInitial(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmtErrorf("log file path cannot be empty")
	}
	resolved := resolveLogPath(path, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	if resolved != s.basePath {
		s.basePath = resolved
		s.index = 0
	}
	return s.openCurrentLocked()
}

// openCurrentLocked closes any open handle and opens the file for the current index
func (s *fileSink) openCurrentLocked() error {
	s.closeFileLocked()

	fullPath := rotatedLogPath(s.basePath, s.index)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmtErrorf("failed to create log directory '%s': %w", filepath.Dir(fullPath), err)
	}

	file, err := os.OpenFile(fullPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open/create log file '%s': %w", fullPath, err)
	}

	s.size = 0
	if fi, errStat := file.Stat(); errStat == nil {
		s.size = fi.Size()
	}
	s.file = file
	s.open.Store(true)
	return nil
}

// appendLine writes one line, accounts for its size and rotates past the threshold.
// Returns false if the line could not be written.
func (s *fileSink) appendLine(text string, maxSize int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		s.state.DroppedFileLines.Add(1)
		return false
	}

	// Unbuffered write on *os.File hands the line to the OS immediately
	n, err := s.file.WriteString(text + "\n")
	s.size += int64(n)
	if err != nil {
		s.warnFunc("failed to write to log file '%s': %v\n", s.file.Name(), err)
		s.state.DroppedFileLines.Add(1)
		return false
	}

	if maxSize > 0 && s.size >= maxSize {
		s.rotateLocked()
	}
	return true
}

// rotateLocked advances to the next indexed file. Failure leaves the sink closed.
func (s *fileSink) rotateLocked() {
	s.index++
	if err := s.openCurrentLocked(); err != nil {
		s.warnFunc("failed to rotate log file: %v\n", err)
		return
	}
	s.state.TotalRotations.Add(1)
}

// closeFileLocked closes the current handle without touching the target
func (s *fileSink) closeFileLocked() error {
	s.open.Store(false)
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// close syncs and closes the active file
func (s *fileSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		s.open.Store(false)
		return nil
	}

	var finalErr error
	name := s.file.Name()
	if err := s.file.Sync(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to sync log file '%s': %w", name, err))
	}
	if err := s.closeFileLocked(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file '%s': %w", name, err))
	}
	return finalErr
}

// sync commits the active file to stable storage
func (s *fileSink) sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file '%s': %w", s.file.Name(), err)
	}
	return nil
}

// snapshot returns the active path and rotation index
func (s *fileSink) snapshot() (string, uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return "", s.index
	}
	return s.file.Name(), s.index
}
