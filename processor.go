// FILE: processor.go
package log

// processLogs is the main log processing loop running in a separate goroutine.
// It exits once the queue has left the running state and holds no records.
func (l *Logger) processLogs(done chan<- struct{}) {
	defer close(done)

	for {
		record, ok := l.queue.pop()
		if !ok {
			return
		}
		l.processLogRecord(record)
		l.queue.markDelivered()
	}
}

// processLogRecord delivers a single record to its destination
func (l *Logger) processLogRecord(record logRecord) {
	switch record.Dest {
	case destConsole:
		w := l.getConsoleWriter()
		if _, err := w.Write([]byte(record.Text + "\n")); err != nil {
			l.internalLog("failed to write to console: %v\n", err)
			return
		}
		l.state.TotalLogsProcessed.Add(1)

	case destFile:
		if l.sink.appendLine(record.Text, l.state.MaxFileSize.Load()) {
			l.state.TotalLogsProcessed.Add(1)
		}
	}
}
