package rendering

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// periodSeparator splits "start - end" ranges. A bare hyphen is not a separator
// because it also appears inside ISO dates.
var periodSeparator = regexp.MustCompile(`\s+[-–—]\s+|\s*[–—]\s*|\s+(?i:to|até)\s+`)

// bareHyphen splits unspaced ranges such as "2020-2024" once the whole
// fragment has failed to parse as a single date.
var bareHyphen = regexp.MustCompile(`\s*-\s*`)

var yearOnly = regexp.MustCompile(`^\d{4}$`)

// numericLayouts are tried in order by tryParseDate.
var numericLayouts = []string{
	"2006-01",
	"2006/01",
	"01/2006",
	"1/2006",
	"01-2006",
	"2006-01-02",
	"02/01/2006",
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January, "janeiro": time.January,
	"feb": time.February, "february": time.February, "fev": time.February, "fevereiro": time.February,
	"mar": time.March, "march": time.March, "março": time.March, "marco": time.March,
	"apr": time.April, "april": time.April, "abr": time.April, "abril": time.April,
	"may": time.May, "mai": time.May, "maio": time.May,
	"jun": time.June, "june": time.June, "junho": time.June,
	"jul": time.July, "july": time.July, "julho": time.July,
	"aug": time.August, "august": time.August, "ago": time.August, "agosto": time.August,
	"sep": time.September, "sept": time.September, "september": time.September, "set": time.September, "setembro": time.September,
	"oct": time.October, "october": time.October, "out": time.October, "outubro": time.October,
	"nov": time.November, "november": time.November, "novembro": time.November,
	"dec": time.December, "december": time.December, "dez": time.December, "dezembro": time.December,
}

// tryParseDate parses a single date fragment with month precision.
// Year-only fragments and present-like keywords do not parse.
func tryParseDate(fragment string) (time.Time, bool) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return time.Time{}, false
	}

	for _, layout := range numericLayouts {
		if t, err := time.Parse(layout, fragment); err == nil {
			return t, true
		}
	}

	// "Jan 2020", "janeiro de 2020", "Mar/2021", "Sept. 2019"
	fields := strings.FieldsFunc(strings.ToLower(fragment), func(r rune) bool {
		return r == ' ' || r == '/' || r == '.' || r == ','
	})
	if len(fields) == 3 && fields[1] == "de" {
		fields = []string{fields[0], fields[2]}
	}
	if len(fields) != 2 {
		return time.Time{}, false
	}

	month, ok := monthNames[fields[0]]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil || len(fields[1]) != 4 {
		return time.Time{}, false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}

// formatPeriodFragment renders a parseable fragment as MM/YYYY and returns
// anything else unchanged.
func formatPeriodFragment(fragment string) string {
	if t, ok := tryParseDate(fragment); ok {
		return t.Format("01/2006")
	}
	return fragment
}

// splitPeriod breaks a period into its range parts. An unspaced hyphen only
// separates when both sides are a year or a date.
func splitPeriod(period string) []string {
	parts := periodSeparator.Split(period, -1)
	if len(parts) != 1 {
		return parts
	}
	if _, ok := tryParseDate(period); ok {
		return parts
	}
	halves := bareHyphen.Split(period, -1)
	if len(halves) != 2 {
		return parts
	}
	for _, h := range halves {
		if _, ok := tryParseDate(h); !ok && !yearOnly.MatchString(h) {
			return parts
		}
	}
	return halves
}

// FormatPeriod reformats a free-text period for display. A two-part range has
// each part formatted, and its end replaced by present when current is set,
// whether or not the end parsed. A single fragment is formatted on its own and
// gets present appended as the end when current is set. Three or more parts
// are returned as-is. The input string is never modified.
func FormatPeriod(period string, current bool, present string) string {
	trimmed := strings.TrimSpace(period)
	if trimmed == "" {
		return period
	}

	parts := splitPeriod(trimmed)
	switch len(parts) {
	case 1:
		start := formatPeriodFragment(parts[0])
		if current {
			return start + " - " + present
		}
		return start
	case 2:
		end := formatPeriodFragment(parts[1])
		if current {
			end = present
		}
		return formatPeriodFragment(parts[0]) + " - " + end
	default:
		return period
	}
}
