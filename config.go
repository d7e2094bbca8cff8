// FILE: config.go
package log

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"

	"github.com/rydor/log/sanitizer"
)

// Config holds all logger configuration values
type Config struct {
	// Basic settings
	Level       string `toml:"level"`         // trace, debug, info, warn, error, fatal
	File        string `toml:"file"`          // Log file or directory, empty for console-only
	MaxFileSize int64  `toml:"max_file_size"` // Rotation threshold in bytes, 0 disables rotation

	// Console output settings
	EnableConsole bool   `toml:"enable_console"` // Emit console records
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
	ConsoleColor  bool   `toml:"console_color"`  // ANSI colors on console lines

	// Formatting
	SanitizePolicy string `toml:"sanitize_policy"` // raw, txt, escape, strip or shell, applied to categories and messages

	// Heartbeat configuration
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // Interval seconds for heartbeat, 0 disables

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:       "info",
	File:        "",
	MaxFileSize: DefaultMaxFileSize,

	EnableConsole: true,
	ConsoleTarget: "stdout",
	ConsoleColor:  true,

	SanitizePolicy: "raw",

	HeartbeatIntervalS: 0,

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	// Create a copy to prevent modifications to the original
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from the [log] table of a TOML file and returns a validated Config.
// A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	// Apply overrides using reflection
	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	// Create a map of field names to field values for efficient lookup
	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if _, ok := sanitizer.ParsePolicy(c.SanitizePolicy); !ok {
		return fmtErrorf("invalid sanitize_policy: '%s' (use raw, txt, escape, strip, shell)", c.SanitizePolicy)
	}

	if c.MaxFileSize < 0 {
		return fmtErrorf("max_file_size cannot be negative: %d", c.MaxFileSize)
	}

	if c.HeartbeatIntervalS < 0 {
		return fmtErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS)
	}

	if c.File != "" && strings.TrimSpace(c.File) == "" {
		return fmtErrorf("file cannot be blank")
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
