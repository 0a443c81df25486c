package normalizer

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// currencyGlyphs is the fixed allow-list of recognized currency symbols.
// Glyphs outside this set ("kr", "C$", "A$") are left in place and will
// corrupt the parse to 0; extend the list explicitly rather than attempting
// general symbol detection.
var currencyGlyphs = []string{"$", "€", "£", "¥", "₹", "₩", "￥"}

// ParseAmount converts a raw amount string to a signed float, returning 0 on
// failure. Parentheses mean negative. Commas and whitespace are stripped
// unconditionally, which means comma-as-decimal locales are NOT handled:
// "45,67" parses as 4567, not 45.67. Parsing takes the longest valid numeric
// prefix, so trailing garbage (" USD", a second decimal point) truncates
// rather than invalidates.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	negative := strings.HasPrefix(s, "-")
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	for _, glyph := range currencyGlyphs {
		s = strings.ReplaceAll(s, glyph, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	value, ok := parseFloatPrefix(s)
	if !ok {
		return 0
	}

	if negative {
		return -math.Abs(value)
	}
	return math.Abs(value)
}

// parseFloatPrefix parses the longest prefix of s that forms a valid float:
// an optional sign, digits, and at most one decimal point.
func parseFloatPrefix(s string) (float64, bool) {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < n && s[i] == '.' {
		j := i + 1
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			digits++
		}
		// "12." is a valid prefix; a bare "." is not.
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
