package normalizer

import (
	"regexp"
	"strings"
)

var (
	digitRun    = regexp.MustCompile(`\d+`)
	punctuation = regexp.MustCompile(`[^\w\s]`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// NormalizeKey reduces a description to its grouping key: lowercased, digits
// and punctuation stripped, whitespace collapsed. "Starbucks #123" and
// "Starbucks #456" both normalize to "starbucks". The key is used solely for
// grouping; the display description stays raw.
func NormalizeKey(description string) string {
	s := strings.ToLower(description)
	s = digitRun.ReplaceAllString(s, "")
	s = punctuation.ReplaceAllString(s, "")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
