// FILE: builder_test.go
package log

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured logger", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "built.log")

		logger, err := NewBuilder().
			File(logPath).
			LevelString("debug").
			MaxFileSizeString("10MB").
			EnableConsole(false).
			ConsoleTarget("stderr").
			ConsoleColor(false).
			SanitizePolicy("txt").
			HeartbeatIntervalS(60).
			InternalErrorsToStderr(true).
			Build()
		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, logger)
		defer logger.Close()

		cfg := logger.GetConfig()
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, logPath, cfg.File)
		assert.Equal(t, int64(10<<20), cfg.MaxFileSize)
		assert.False(t, cfg.EnableConsole)
		assert.Equal(t, "stderr", cfg.ConsoleTarget)
		assert.False(t, cfg.ConsoleColor)
		assert.Equal(t, "txt", cfg.SanitizePolicy)
		assert.Equal(t, int64(60), cfg.HeartbeatIntervalS)
		assert.True(t, cfg.InternalErrorsToStderr)

		assert.Equal(t, logPath, logger.CurrentFile())
		assert.False(t, logger.Running(), "Build does not start the logger")
	})

	t.Run("level and size setters", func(t *testing.T) {
		logger, err := NewBuilder().Level(LevelError).MaxFileSize(0).Build()
		require.NoError(t, err)
		assert.Equal(t, LevelError, logger.GetLevel())
		assert.Zero(t, logger.GetConfig().MaxFileSize)
	})

	t.Run("invalid level string", func(t *testing.T) {
		logger, err := NewBuilder().LevelString("loud").File("ignored.log").Build()
		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("invalid size string", func(t *testing.T) {
		_, err := NewBuilder().MaxFileSizeString("lots").Build()
		assert.Error(t, err)
	})

	t.Run("first error wins", func(t *testing.T) {
		_, err := NewBuilder().LevelString("loud").MaxFileSizeString("lots").Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid level string")
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := NewBuilder().ConsoleTarget("printer").Build()
		assert.Error(t, err)
	})
}
