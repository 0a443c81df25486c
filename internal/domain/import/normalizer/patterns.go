// Package normalizer converts raw statement fields into canonical values:
// dates to YYYY-MM-DD, amounts to signed floats, and free-text hints into an
// income/expense direction. Parsing is deliberately lenient; failures degrade
// to zero values instead of errors so that rows survive to human review.
package normalizer

import "regexp"

// Strict field shapes. These drive both the schema inferrer's content-sampling
// pass and the per-row confidence score, so they live in one place.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),          // ISO, optionally with trailing time
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),   // US slash
	regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{2,4}$`),   // dashed numeric
	regexp.MustCompile(`^\d{1,2}-[A-Za-z]{3}-\d{4}$`), // dashed month name (01-Jan-2024)
}

var amountPattern = regexp.MustCompile(`^\(?\s*[-+]?\s*[$€£¥₹₩￥]?\s*\d[\d.,]*\s*\)?$`)

// MatchesDatePattern reports whether the raw value has one of the known
// strict date shapes.
func MatchesDatePattern(s string) bool {
	for _, p := range datePatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// MatchesAmountPattern reports whether the raw value looks like a number,
// allowing a currency glyph, separators, and a parenthesized negative.
func MatchesAmountPattern(s string) bool {
	return amountPattern.MatchString(s)
}
