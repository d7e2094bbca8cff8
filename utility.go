// FILE: utility.go
package log

import (
	"fmt"
	"strconv"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "log: ") {
		format = "log: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// byteSizeUnits are binary multipliers keyed by accepted suffix
var byteSizeUnits = []struct {
	suffix string
	mult   int64
}{
	{"GIB", 1 << 30}, {"GB", 1 << 30}, {"G", 1 << 30},
	{"MIB", 1 << 20}, {"MB", 1 << 20}, {"M", 1 << 20},
	{"KIB", 1 << 10}, {"KB", 1 << 10}, {"K", 1 << 10},
	{"B", 1},
}

// parseByteSize parses sizes such as "4096", "512KB" or "5MiB"
func parseByteSize(s string) (int64, error) {
	str := strings.ToUpper(strings.TrimSpace(s))
	if str == "" {
		return 0, fmtErrorf("size cannot be empty")
	}

	mult := int64(1)
	for _, u := range byteSizeUnits {
		if strings.HasSuffix(str, u.suffix) {
			str = strings.TrimSpace(strings.TrimSuffix(str, u.suffix))
			mult = u.mult
			break
		}
	}

	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, fmtErrorf("invalid size '%s': %w", s, err)
	}
	if n < 0 {
		return 0, fmtErrorf("size cannot be negative: '%s'", s)
	}
	return n * mult, nil
}
