package normalizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain", "45.67", 45.67},
		{"negative", "-45.67", -45.67},
		{"explicit plus", "+45.67", 45.67},
		{"parentheses negative", "(45.67)", -45.67},
		{"parentheses with symbol", "($1,234.56)", -1234.56},
		{"dollar", "$45.67", 45.67},
		{"euro", "€45.67", 45.67},
		{"pound", "£99.00", 99},
		{"thousands separators", "1,234,567.89", 1234567.89},
		{"internal whitespace", "1 234.56", 1234.56},
		{"sign after symbol ignored", "$-45.67", 45.67},
		{"trailing currency code", "45.67 USD", 45.67},
		{"trailing garbage", "12.34.56", 12.34},
		{"integer", "100", 100},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"unknown symbol", "kr45.67", 0},
		{"bare dot", ".", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAmount(tt.in), 1e-9)
		})
	}
}

// Comma is always a thousands separator. European decimal commas are a known
// non-goal: "45,67" reads as 4567, not 45.67.
func TestParseAmount_CommaIsNeverDecimal(t *testing.T) {
	assert.InDelta(t, 4567, ParseAmount("45,67"), 1e-9)
}

// Negativity comes from parentheses or a minus at the very start of the raw
// string; a minus buried after a currency symbol does not count.
func TestParseAmount_SignResolution(t *testing.T) {
	assert.InDelta(t, -45.67, ParseAmount("-$45.67"), 1e-9)
	assert.InDelta(t, -45.67, ParseAmount("( 45.67 )"), 1e-9)
}

// Re-parsing a formatted parse result is a fixed point.
func TestParseAmount_Idempotent(t *testing.T) {
	inputs := []string{"45.67", "($1,234.56)", "-99", "€ 12.30", "0.01"}
	for _, in := range inputs {
		once := ParseAmount(in)
		again := ParseAmount(fmt.Sprintf("%.2f", once))
		assert.InDelta(t, once, again, 1e-9, "input %q", in)
	}
}
