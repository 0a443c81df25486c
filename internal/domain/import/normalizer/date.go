package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateStrategy is one named step of the parse chain. A strategy returns ""
// when it does not apply; the first non-empty result wins. The ordering
// encodes real priority rules (ISO before slash formats, unambiguous
// day-first before the generic layout scan), so it must not be reshuffled.
type dateStrategy struct {
	name  string
	apply func(s string) string
}

var dateStrategies = []dateStrategy{
	{"iso", parseISODate},
	{"us-slash", parseUSSlash},
	{"us-slash-short-year", parseUSSlashShortYear},
	{"day-first", parseDayFirst},
	{"layout-scan", parseKnownLayouts},
}

var (
	isoRe        = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	slashLongRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	slashShortRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)
)

// ParseDate converts a raw date string to canonical YYYY-MM-DD. It returns ""
// when no strategy applies; callers must treat "" as unparseable, never as a
// valid date.
//
// The regex-reassembly strategies do not validate the calendar: "02/31/2024"
// comes back as "2024-02-31". Review is where genuinely bad dates get caught;
// rejecting here would silently change which rows survive.
func ParseDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, strategy := range dateStrategies {
		if out := strategy.apply(s); out != "" {
			return out
		}
	}
	return ""
}

// parseISODate accepts YYYY-MM-DD with anything after it (time, zone) dropped.
func parseISODate(s string) string {
	m := isoRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
}

// parseUSSlash handles MM/DD/YYYY where the first group is a plausible month
// and the second a plausible day.
func parseUSSlash(s string) string {
	m := slashLongRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	month, day := atoi(m[1]), atoi(m[2])
	if month > 12 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
}

// parseUSSlashShortYear handles MM/DD/YY; years above 50 land in the 1900s.
func parseUSSlashShortYear(s string) string {
	m := slashShortRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	month, day, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if year > 50 {
		year += 1900
	} else {
		year += 2000
	}
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

// parseDayFirst handles DD/MM/YYYY, attempted only when the first group is an
// unambiguous day (>12) or the swap is at least plausible.
func parseDayFirst(s string) string {
	m := slashLongRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	day, month := atoi(m[1]), atoi(m[2])
	if !(day > 12 || (day <= 31 && month <= 12)) {
		return ""
	}
	return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
}

// genericLayouts are tried in order by the final fallback strategy.
var genericLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02.01.2006",
	"02-01-2006",
	"2-Jan-2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
}

func parseKnownLayouts(s string) string {
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
