// FILE: record.go
package log

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// queueStatus is the lifecycle state of the worker as seen by the queue
type queueStatus uint8

const (
	statusStopped queueStatus = iota
	statusRunning
	statusDraining
)

// recordQueue is an unbounded FIFO shared by all producers and the single worker.
// The lifecycle status lives under the same lock so a status change cannot slip
// between the worker's emptiness check and its wait.
type recordQueue struct {
	mu        sync.Mutex
	cond      *sync.Cond
	records   []logRecord
	head      int
	status    queueStatus
	enqueued  uint64
	delivered uint64
	waiters   []*flushWaiter
}

// flushWaiter is released once the worker has delivered every record up to target
type flushWaiter struct {
	target uint64
	done   chan struct{}
}

func newRecordQueue() *recordQueue {
	q := &recordQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends all records in one critical section and wakes the worker.
// Returns the sequence number of the last record pushed.
func (q *recordQueue) push(records ...logRecord) uint64 {
	q.mu.Lock()
	q.records = append(q.records, records...)
	q.enqueued += uint64(len(records))
	seq := q.enqueued
	q.mu.Unlock()

	q.cond.Signal()
	return seq
}

// pop blocks until a record is available or the queue has left the running state.
// It keeps returning records while any remain, so a draining queue is emptied
// before pop reports false.
func (q *recordQueue) pop() (logRecord, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.lenLocked() == 0 && q.status == statusRunning {
		q.cond.Wait()
	}
	if q.lenLocked() == 0 {
		return logRecord{}, false
	}

	rec := q.records[q.head]
	q.records[q.head] = logRecord{}
	q.head++
	if q.head == len(q.records) {
		q.records = q.records[:0]
		q.head = 0
	}
	return rec, true
}

// transition moves from one status to another, returning false if the current status differs
func (q *recordQueue) transition(from, to queueStatus) bool {
	q.mu.Lock()
	if q.status != from {
		q.mu.Unlock()
		return false
	}
	q.status = to
	q.mu.Unlock()

	q.cond.Broadcast()
	return true
}

func (q *recordQueue) currentStatus() queueStatus {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.status
}

// pending returns the number of queued records and the last assigned sequence number
func (q *recordQueue) pending() (int, uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lenLocked(), q.enqueued
}

// markDelivered advances the delivered sequence and releases satisfied flush waiters
func (q *recordQueue) markDelivered() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.delivered++
	if len(q.waiters) == 0 {
		return
	}
	remaining := q.waiters[:0]
	for _, w := range q.waiters {
		if w.target <= q.delivered {
			close(w.done)
		} else {
			remaining = append(remaining, w)
		}
	}
	clear(q.waiters[len(remaining):])
	q.waiters = remaining
}

// awaitDelivered registers a waiter for every record enqueued so far.
// The waiter's channel is already closed if nothing is outstanding.
func (q *recordQueue) awaitDelivered() *flushWaiter {
	q.mu.Lock()
	defer q.mu.Unlock()

	w := &flushWaiter{target: q.enqueued, done: make(chan struct{})}
	if q.delivered >= w.target {
		close(w.done)
		return w
	}
	q.waiters = append(q.waiters, w)
	return w
}

// cancelWait drops a waiter that gave up before being released
func (q *recordQueue) cancelWait(w *flushWaiter) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, candidate := range q.waiters {
		if candidate == w {
			q.waiters = append(q.waiters[:i], q.waiters[i+1:]...)
			return
		}
	}
}

func (q *recordQueue) lenLocked() int {
	return len(q.records) - q.head
}

// log handles the core logging logic: filter, render, enqueue
func (l *Logger) log(level Level, category, message string) {
	if level < l.GetLevel() {
		return
	}
	l.enqueue(level, category, message)
}

// enqueue renders the console and file lines for one call and pushes them together
func (l *Logger) enqueue(level Level, category, message string) {
	now := time.Now()
	f := l.getFormatter()

	var records [2]logRecord
	n := 0

	if l.state.ConsoleOn.Load() {
		line := f.Line(level.String(), category, message, now, false)
		if l.state.ColorEnabled.Load() {
			line = colorize(level, line)
		}
		records[n] = logRecord{Text: line, Dest: destConsole}
		n++
	}

	if l.sink.isOpen() {
		records[n] = logRecord{Text: f.Line(level.String(), category, message, now, true), Dest: destFile}
		n++
	}

	if n > 0 {
		l.queue.push(records[:n]...)
	}
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "log: " prefix
	if !strings.HasPrefix(format, "log: ") {
		format = "log: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
