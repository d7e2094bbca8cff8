// FILE: sanitizer/sanitizer.go
// Package sanitizer provides a fluent and composable interface for sanitizing
// strings based on configurable rules using bitwise filter flags and transforms.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
	FilterControl                         // Matches control characters (unicode.IsControl)
	FilterWhitespace                      // Matches whitespace characters (unicode.IsSpace)
	FilterShellSpecial                    // Matches common shell metacharacters: '`', '$', ';', '|', '&', '>', '<', '(', ')', '#'
)

// Transform flags for character transformation
const (
	TransformStrip      uint64 = 1 << iota // Removes the character
	TransformHexEncode                     // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformJSONEscape                    // Escapes the character with JSON-style backslashes (e.g., '\n', '\u0000')
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyRaw    PolicyPreset = "raw"    // Raw is a no-op (passthrough)
	PolicyTxt    PolicyPreset = "txt"    // Non-printable runes become "<XX>" hex
	PolicyEscape PolicyPreset = "escape" // Control runes become JSON-style escapes such as "\n"
	PolicyStrip  PolicyPreset = "strip"  // Non-printable runes are removed
	PolicyShell  PolicyPreset = "shell"  // Shell metacharacters and whitespace are removed
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:    {},
	PolicyTxt:    {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyEscape: {{filter: FilterControl, transform: TransformJSONEscape}},
	PolicyStrip:  {{filter: FilterNonPrintable, transform: TransformStrip}},
	PolicyShell:  {{filter: FilterShellSpecial | FilterWhitespace, transform: TransformStrip}},
}

// ParsePolicy returns the preset with the given name
func ParsePolicy(name string) (PolicyPreset, bool) {
	preset := PolicyPreset(strings.ToLower(strings.TrimSpace(name)))
	_, ok := policyRules[preset]
	return preset, ok
}

// filterOrder fixes the evaluation order of individual filter flags
var filterOrder = []uint64{FilterNonPrintable, FilterControl, FilterWhitespace, FilterShellSpecial}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterWhitespace:   unicode.IsSpace,
	FilterShellSpecial: func(r rune) bool {
		switch r {
		case '`', '$', ';', '|', '&', '>', '<', '(', ')', '#':
			return true
		}
		return false
	},
}

// Sanitizer provides chainable text sanitization.
// Rules must be configured before the sanitizer is shared; Sanitize itself
// keeps no state and may be called from many goroutines.
type Sanitizer struct {
	rules []rule
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Passthrough reports whether Sanitize returns its input unchanged
func (s *Sanitizer) Passthrough() bool {
	return s == nil || len(s.rules) == 0
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	if s.Passthrough() {
		return data
	}

	buf := make([]byte, 0, len(data))
	for _, r := range data {
		matched := false
		// Check rules in order (first match wins)
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				buf = applyTransform(buf, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			buf = utf8.AppendRune(buf, r)
		}
	}

	return string(buf)
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for _, flag := range filterOrder {
		if (filterMask&flag) != 0 && filterCheckers[flag](r) {
			return true
		}
	}
	return false
}

// applyTransform applies the specified transform and returns the extended buffer
func applyTransform(buf []byte, r rune, transformMask uint64) []byte {
	switch {
	case (transformMask & TransformStrip) != 0:
		// Do nothing (strip)

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		buf = append(buf, '<')
		buf = append(buf, hex.EncodeToString(runeBytes[:n])...)
		buf = append(buf, '>')

	case (transformMask & TransformJSONEscape) != 0:
		switch r {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		default:
			if r < 0x20 || r == 0x7f {
				buf = append(buf, fmt.Sprintf("\\u%04x", r)...)
			} else {
				buf = utf8.AppendRune(buf, r)
			}
		}
	}
	return buf
}
