package parsing

import (
	"regexp"
	"strings"
)

// dateRule is one entry in the ordered date-range rule table. The first
// rule whose pattern matches wins; rules after it are not consulted.
type dateRule struct {
	name    string
	pattern *regexp.Regexp
}

// dateRules are evaluated in order against the raw date-range segment of a
// role header. Each pattern captures a start and an end group. En dash and
// hyphen separators are both accepted.
var dateRules = []dateRule{
	{"month-year to month-year", regexp.MustCompile(`(?i)(\w+\s+\d{4})\s*[-–]\s*(\w+\s+\d{4})`)},
	{"year to year", regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4})`)},
	{"month-year to present", regexp.MustCompile(`(?i)(\w+\s+\d{4})\s*[-–]\s*(Present|Current)`)},
}

// parseDateRange resolves a raw date-range string into start and end date
// strings using the ordered rule table. No match yields empty strings,
// never an error.
func parseDateRange(dateRange string) (start, end string) {
	if dateRange == "" {
		return "", ""
	}

	for _, rule := range dateRules {
		if m := rule.pattern.FindStringSubmatch(dateRange); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		}
	}

	return "", ""
}

// monthOrdinals resolves month names (full or three-letter) for ordering.
var monthOrdinals = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// endDateOrdinal maps an end-date string onto a sortable integer: open-ended
// roles ("Present"/"Current") sort above everything, dated ends sort by
// year and month, and unresolvable dates sort last.
func endDateOrdinal(end string) int {
	trimmed := strings.TrimSpace(end)
	if trimmed == "" {
		return -1
	}

	lower := strings.ToLower(trimmed)
	if lower == "present" || lower == "current" {
		return 1 << 30
	}

	yearStr := yearPattern.FindString(trimmed)
	if yearStr == "" {
		return -1
	}
	year := 0
	for _, r := range yearStr {
		year = year*10 + int(r-'0')
	}

	month := 12 // a bare year reads as December, the latest point in that year
	for name, ord := range monthOrdinals {
		if strings.HasPrefix(lower, name) {
			month = ord
			break
		}
	}

	return year*100 + month
}
