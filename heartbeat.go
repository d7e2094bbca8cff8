// FILE: heartbeat.go
package log

import (
	"fmt"
	"time"
)

// heartbeat controls the periodic statistics goroutine
type heartbeat struct {
	stop chan struct{}
	done chan struct{}
}

// startHeartbeat launches the heartbeat goroutine, assuming initMu is held
func (l *Logger) startHeartbeat(intervalS int64) {
	if intervalS <= 0 || l.heartbeat != nil {
		return
	}

	hb := &heartbeat{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	l.heartbeat = hb
	go l.runHeartbeat(time.Duration(intervalS)*time.Second, hb)
}

// stopHeartbeat stops the heartbeat goroutine and waits for it, assuming initMu is held
func (l *Logger) stopHeartbeat() {
	if l.heartbeat == nil {
		return
	}
	close(l.heartbeat.stop)
	<-l.heartbeat.done
	l.heartbeat = nil
}

func (l *Logger) runHeartbeat(interval time.Duration, hb *heartbeat) {
	defer close(hb.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-hb.stop:
			return
		case <-ticker.C:
			l.logProcHeartbeat()
		}
	}
}

// logProcHeartbeat enqueues a logger statistics record, bypassing the level filter
func (l *Logger) logProcHeartbeat() {
	sequence := l.state.HeartbeatSequence.Add(1)

	var uptimeHours float64
	if startTime, ok := l.state.LoggerStart.Load().(time.Time); ok && !startTime.IsZero() {
		uptimeHours = time.Since(startTime).Hours()
	}

	pending, _ := l.queue.pending()

	msg := fmt.Sprintf("type=proc sequence=%d uptime_hours=%.2f processed_logs=%d rotations=%d dropped_file_lines=%d pending=%d",
		sequence,
		uptimeHours,
		l.state.TotalLogsProcessed.Load(),
		l.state.TotalRotations.Load(),
		l.state.DroppedFileLines.Load(),
		pending,
	)

	l.enqueue(LevelInfo, "heartbeat", msg)
}
