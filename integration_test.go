// FILE: integration_test.go
package log

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullLifecycle(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewBuilder().
		File(dir).
		LevelString("debug").
		MaxFileSize(512).
		EnableConsole(false).
		Build()
	require.NoError(t, err, "Logger creation with builder should succeed")
	defer logger.Close()

	logger.Start()
	for i := 0; i < 50; i++ {
		logger.Debugf("app", "iteration %d of the lifecycle run", i)
	}
	logger.Tracef("app", "never written")
	require.NoError(t, logger.Flush(time.Second))

	stats := logger.Stats()
	assert.Equal(t, uint64(50), stats.Processed)
	assert.Greater(t, stats.Rotations, uint64(0))
	assert.Equal(t, uint32(stats.Rotations), stats.RotationIndex)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	total := 0
	for _, e := range entries {
		require.True(t, strings.HasSuffix(e.Name(), "_log.txt") || strings.Contains(e.Name(), "_log_"), e.Name())
		total += len(readLines(t, filepath.Join(dir, e.Name())))
	}
	assert.Equal(t, 50, total)

	logger.Shutdown()
	require.NoError(t, logger.Close())
}

func TestHeartbeatRecord(t *testing.T) {
	logger, _, console := createTestLogger(t)
	logger.SetLevel(LevelFatal)
	logger.Start()

	logger.Infof("t", "filtered")
	logger.logProcHeartbeat()
	logger.logProcHeartbeat()
	require.NoError(t, logger.Flush(time.Second))

	lines := stripTimestamps(console.Lines())
	require.Len(t, lines, 2, "heartbeats bypass the level filter")
	assert.True(t, strings.HasPrefix(lines[0], "[INFO] [heartbeat] type=proc sequence=1 uptime_hours="), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[INFO] [heartbeat] type=proc sequence=2 "), lines[1])
	assert.Contains(t, lines[1], "processed_logs=")
	assert.Contains(t, lines[1], "rotations=0")
	assert.Contains(t, lines[1], "dropped_file_lines=0")
}

func TestHeartbeatTicker(t *testing.T) {
	logger, _, console := createTestLogger(t)
	cfg := logger.GetConfig()
	cfg.HeartbeatIntervalS = 1
	require.NoError(t, logger.ApplyConfig(cfg))
	logger.Start()

	assert.Eventually(t, func() bool {
		return strings.Contains(console.String(), "[heartbeat] type=proc sequence=1")
	}, 3*time.Second, 20*time.Millisecond)

	// Disabling while running stops the ticker goroutine
	cfg.HeartbeatIntervalS = 0
	require.NoError(t, logger.ApplyConfig(cfg))
	logger.initMu.Lock()
	assert.Nil(t, logger.heartbeat)
	logger.initMu.Unlock()
}

func TestConfigWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "log.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"info\"\n"), 0644))

	logger := NewLogger()
	logger.SetOutput(nil)

	watcher, err := NewConfigWatcher(logger, cfgPath)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	// Second Start is a no-op
	require.NoError(t, watcher.Start(ctx))

	logPath := filepath.Join(dir, "watched.log")
	updated := "[log]\nlevel = \"error\"\nfile = \"" + filepath.ToSlash(logPath) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(updated), 0644))

	assert.Eventually(t, func() bool {
		return logger.GetLevel() == LevelError && watcher.Reloads() > 0
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, filepath.Clean(logPath), filepath.Clean(logger.CurrentFile()))

	// An invalid file keeps the last good configuration
	errorsBefore := watcher.Errors()
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"loud\"\n"), 0644))
	assert.Eventually(t, func() bool {
		return watcher.Errors() > errorsBefore
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, LevelError, logger.GetLevel())

	require.NoError(t, watcher.Stop())
	require.NoError(t, logger.Close())
}

func TestConfigWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "log.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"info\"\n"), 0644))

	logger := NewLogger()
	watcher, err := NewConfigWatcher(logger, cfgPath)
	require.NoError(t, err)
	require.NoError(t, watcher.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("[log]\nlevel = \"error\"\n"), 0644))
	time.Sleep(3 * configReloadDebounce)

	assert.Zero(t, watcher.Reloads())
	assert.Equal(t, LevelInfo, logger.GetLevel())
	require.NoError(t, watcher.Stop())
}

func TestConfigWatcherContextCancel(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "log.toml")
	watcher, err := NewConfigWatcher(NewLogger(), cfgPath)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, watcher.Start(ctx))
	cancel()

	select {
	case <-watcher.doneCh:
	case <-time.After(time.Second):
		t.Fatal("watcher goroutine did not exit on cancel")
	}
	require.NoError(t, watcher.Stop())
}

func TestNewConfigWatcherRequiresLogger(t *testing.T) {
	_, err := NewConfigWatcher(nil, "log.toml")
	assert.Error(t, err)
}
