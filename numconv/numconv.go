// Package numconv implements the lenient string to number rule used when
// reading numeric fields out of loosely formatted text such as stack traces.
package numconv

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts s to a number, returning def when s is nil, cannot be
// parsed as a numeric literal, or parses to a non-finite value.
//
// Surrounding whitespace is ignored and a blank string is zero. Signed zero is
// preserved, so "-0" yields negative zero rather than def. Trailing garbage
// ("123abc") is rejected as a whole.
func ToNumber(s *string, def float64) float64 {
	if s == nil {
		return def
	}

	return Parse(*s, def)
}

// Parse is ToNumber for a string that is known to be present.
func Parse(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	n, ok := parseLiteral(s)
	if !ok || math.IsInf(n, 0) || math.IsNaN(n) {
		return def
	}

	return n
}

func parseLiteral(s string) (float64, bool) {
	// ParseFloat and ParseUint accept Go digit separators; numeric literals do not.
	if strings.Contains(s, "_") {
		return 0, false
	}

	if isPrefixedInt(s) {
		u, err := strconv.ParseUint(s[2:], prefixBase(s[1]), 64)
		if err != nil {
			return 0, false
		}

		return float64(u), true
	}

	// Word forms are accepted by ParseFloat but are not numeric literals here.
	if lower := strings.ToLower(strings.TrimLeft(s, "+-")); strings.HasPrefix(lower, "inf") || lower == "nan" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Underflow rounds to zero and is still a finite result.
		if errors.Is(err, strconv.ErrRange) && !math.IsInf(f, 0) {
			return f, true
		}

		return 0, false
	}

	return f, true
}

// isPrefixedInt reports whether s is written as 0x, 0o or 0b. Signs are not
// allowed in front of a prefix.
func isPrefixedInt(s string) bool {
	if len(s) < 3 || s[0] != '0' {
		return false
	}

	return prefixBase(s[1]) != 0
}

func prefixBase(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}

	return 0
}
