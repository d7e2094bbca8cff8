// FILE: utility_test.go
package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"level=debug", "level", "debug", false},
		{" file = ./logs/app.log ", "file", "./logs/app.log", false},
		{"key=a=b", "key", "a=b", false},
		{"key=", "key", "", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"4096", 4096, false},
		{"100B", 100, false},
		{"512KB", 512 << 10, false},
		{"512k", 512 << 10, false},
		{"5MB", 5 << 20, false},
		{"5 MiB", 5 << 20, false},
		{"1G", 1 << 30, false},
		{"2gib", 2 << 30, false},
		{"0", 0, false},
		{"", 0, true},
		{"MB", 0, true},
		{"-1MB", 0, true},
		{"1.5MB", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			size, err := parseByteSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, size)
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	assert.Equal(t, "log: bad 1", fmtErrorf("bad %d", 1).Error())
	assert.Equal(t, "log: already prefixed", fmtErrorf("log: already prefixed").Error())

	base := errors.New("root")
	assert.ErrorIs(t, fmtErrorf("wrap: %w", base), base)
}

func TestCombineErrors(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, e1, combineErrors(e1, nil))
	assert.Equal(t, e2, combineErrors(nil, e2))

	combined := combineErrors(e1, e2)
	assert.Equal(t, "first; second", combined.Error())
	assert.ErrorIs(t, combined, e2)
}
