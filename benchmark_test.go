package log

import (
	"io"
	"testing"
)

// BenchmarkWriteConsole benchmarks enqueueing a record to a discarded console
func BenchmarkWriteConsole(b *testing.B) {
	logger := NewLogger()
	logger.SetOutput(io.Discard)
	logger.Start()
	defer logger.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infof("bench", "benchmark message %d", i)
	}
}

// BenchmarkWriteFile benchmarks console plus file records with rotation enabled
func BenchmarkWriteFile(b *testing.B) {
	logger, _, _ := createTestLogger(b)
	logger.SetOutput(io.Discard)
	logger.SetMaxFileSize(1 << 20)
	logger.Start()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Write(LevelInfo, "bench", "benchmark message")
	}
	b.StopTimer()
	logger.Shutdown()
}

// BenchmarkWriteFiltered benchmarks the cost of a call below the level threshold
func BenchmarkWriteFiltered(b *testing.B) {
	logger := NewLogger()
	logger.SetLevel(LevelError)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debugf("bench", "filtered %d", i)
	}
}

// BenchmarkWriteParallel benchmarks contention between producers
func BenchmarkWriteParallel(b *testing.B) {
	logger := NewLogger()
	logger.SetOutput(io.Discard)
	logger.Start()
	defer logger.Shutdown()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Infof("bench", "parallel message")
		}
	})
}
