// FILE: override_test.go
package log

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverride(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "override.log")
	logger := NewLogger()
	defer logger.Close()

	err := logger.ApplyOverride(
		"level=warning",
		"file="+logPath,
		"max_file_size=64KB",
		"enable_console=false",
		"console_target=stderr",
		"console_color=false",
		"sanitize_policy=Strip",
		"heartbeat_interval_s=0",
		"internal_errors_to_stderr=true",
	)
	require.NoError(t, err)

	cfg := logger.GetConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, LevelWarn, logger.GetLevel())
	assert.Equal(t, logPath, cfg.File)
	assert.Equal(t, int64(64<<10), cfg.MaxFileSize)
	assert.False(t, cfg.EnableConsole)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	assert.False(t, cfg.ConsoleColor)
	assert.Equal(t, "strip", cfg.SanitizePolicy)
	assert.True(t, cfg.InternalErrorsToStderr)
	assert.Equal(t, logPath, logger.CurrentFile())
}

func TestApplyOverrideErrors(t *testing.T) {
	logger := NewLogger()

	t.Run("single error", func(t *testing.T) {
		err := logger.ApplyOverride("level=loud")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid level value 'loud'")
	})

	t.Run("unknown key", func(t *testing.T) {
		err := logger.ApplyOverride("format=json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown configuration key 'format'")
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := logger.ApplyOverride("enable_console=maybe", "max_file_size=huge", "missing")
		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, "multiple configuration errors")
		assert.Contains(t, msg, "1. invalid boolean value for enable_console")
		assert.Contains(t, msg, "2. invalid size value for max_file_size")
		assert.Contains(t, msg, "3. invalid format in override string")
	})

	t.Run("unknown sanitize policy", func(t *testing.T) {
		err := logger.ApplyOverride("sanitize_policy=json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sanitize_policy value 'json'")
	})

	t.Run("validation failure", func(t *testing.T) {
		err := logger.ApplyOverride("console_target=printer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid console_target")
	})

	// Failed overrides leave the configuration untouched
	assert.Equal(t, LevelInfo, logger.GetLevel())
	assert.Equal(t, "stdout", logger.GetConfig().ConsoleTarget)
}
