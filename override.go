// FILE: override.go
package log

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rydor/log/sanitizer"
)

// ApplyOverride applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	logger := log.NewLogger()
//	err := logger.ApplyOverride(
//	    "file=./logs/app.log",
//	    "level=debug",
//	    "max_file_size=1MB",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.getConfig().Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("log: multiple configuration errors:")
	for i, err := range errors {
		// Remove "log: " prefix from individual errors to avoid duplication
		errMsg := strings.TrimPrefix(err.Error(), "log: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Basic settings
	case "level":
		levelVal, err := ParseLevel(value)
		if err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.Level = strings.ToLower(levelVal.String())
	case "file":
		cfg.File = value
	case "max_file_size":
		size, err := parseByteSize(value)
		if err != nil {
			return fmtErrorf("invalid size value for max_file_size '%s': %w", value, err)
		}
		cfg.MaxFileSize = size

	// Console output settings
	case "enable_console":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_console '%s': %w", value, err)
		}
		cfg.EnableConsole = boolVal
	case "console_target":
		cfg.ConsoleTarget = value
	case "console_color":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for console_color '%s': %w", value, err)
		}
		cfg.ConsoleColor = boolVal

	// Formatting
	case "sanitize_policy":
		preset, ok := sanitizer.ParsePolicy(value)
		if !ok {
			return fmtErrorf("invalid sanitize_policy value '%s'", value)
		}
		cfg.SanitizePolicy = string(preset)

	// Heartbeat configuration
	case "heartbeat_interval_s":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for heartbeat_interval_s '%s': %w", value, err)
		}
		cfg.HeartbeatIntervalS = intVal

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
