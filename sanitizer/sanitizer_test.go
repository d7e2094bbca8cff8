// FILE: sanitizer/sanitizer_test.go
package sanitizer

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		build    func() *Sanitizer
		expected string
	}{
		{
			name:     "raw policy passes through",
			input:    "hello\x00world\n",
			build:    func() *Sanitizer { return New().Policy(PolicyRaw) },
			expected: "hello\x00world\n",
		},
		{
			name:     "txt policy hex encodes null byte",
			input:    "test\x00data",
			build:    func() *Sanitizer { return New().Policy(PolicyTxt) },
			expected: "test<00>data",
		},
		{
			name:     "txt policy hex encodes newline",
			input:    "line1\nline2",
			build:    func() *Sanitizer { return New().Policy(PolicyTxt) },
			expected: "line1<0a>line2",
		},
		{
			name:     "txt policy encodes multi-byte control",
			input:    "line1\u0085line2",
			build:    func() *Sanitizer { return New().Policy(PolicyTxt) },
			expected: "line1<c285>line2",
		},
		{
			name:     "txt policy preserves UTF-8",
			input:    "Hello 世界 ✓",
			build:    func() *Sanitizer { return New().Policy(PolicyTxt) },
			expected: "Hello 世界 ✓",
		},
		{
			name:     "escape policy keeps record readable",
			input:    "line1\nline2\t\x01",
			build:    func() *Sanitizer { return New().Policy(PolicyEscape) },
			expected: "line1\\nline2\\t\\u0001",
		},
		{
			name:     "strip policy removes non-printable",
			input:    "a\x00b\nc ✓",
			build:    func() *Sanitizer { return New().Policy(PolicyStrip) },
			expected: "abc ✓",
		},
		{
			name:     "shell policy strips metacharacters and spaces",
			input:    "rm -rf $(pwd); echo",
			build:    func() *Sanitizer { return New().Policy(PolicyShell) },
			expected: "rm-rfpwdecho",
		},
		{
			name:     "strip control rule",
			input:    "clean\x00\x07\ntxt",
			build:    func() *Sanitizer { return New().Rule(FilterControl, TransformStrip) },
			expected: "cleantxt",
		},
		{
			name:     "json escape rule",
			input:    "line1\nline2\ttab\x01",
			build:    func() *Sanitizer { return New().Rule(FilterControl, TransformJSONEscape) },
			expected: "line1\\nline2\\ttab\\u0001",
		},
		{
			name: "first matching rule wins",
			input: "a\tb",
			build: func() *Sanitizer {
				return New().Rule(FilterWhitespace, TransformStrip).Rule(FilterControl, TransformHexEncode)
			},
			expected: "ab",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.build()
			assert.Equal(t, tc.expected, s.Sanitize(tc.input))
		})
	}
}

func TestSanitizerPassthrough(t *testing.T) {
	var nilSanitizer *Sanitizer
	assert.True(t, nilSanitizer.Passthrough())
	assert.Equal(t, "a\x00b", nilSanitizer.Sanitize("a\x00b"))

	assert.True(t, New().Policy(PolicyRaw).Passthrough())
	assert.False(t, New().Policy(PolicyTxt).Passthrough())
}

func TestParsePolicy(t *testing.T) {
	for _, name := range []string{"raw", "txt", "escape", "strip", "shell", " TXT "} {
		preset, ok := ParsePolicy(name)
		assert.True(t, ok, name)
		assert.Equal(t, PolicyPreset(strings.ToLower(strings.TrimSpace(name))), preset)
	}

	_, ok := ParsePolicy("json")
	assert.False(t, ok)
}

func TestSanitizerConcurrentUse(t *testing.T) {
	s := New().Policy(PolicyTxt)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "a<0a>b", s.Sanitize("a\nb"))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkSanitizer(b *testing.B) {
	input := strings.Repeat("normal text\x00\n\t", 100)

	benchmarks := []struct {
		name   string
		preset PolicyPreset
	}{
		{"Raw", PolicyRaw},
		{"Txt", PolicyTxt},
		{"Escape", PolicyEscape},
		{"Shell", PolicyShell},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			s := New().Policy(bm.preset)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Sanitize(input)
			}
		})
	}
}
