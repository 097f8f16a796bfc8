// Package dates normalizes the heterogeneous date strings that show up in
// email bodies and model output into canonical calendar dates.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISO is the canonical date layout used everywhere downstream. The store
// relies on it being fixed-width and zero-padded so date ranges can be
// compared lexicographically.
const ISO = "2006-01-02"

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var (
	// "Fri, 28 Nov, 2025" or "Fri, 28 Nov 2025"
	weekdayDayMonthYear = regexp.MustCompile(`^(\w+),\s*(\d{1,2})\s+(\w+)[,\s]+(\d{4})`)
	// "28 Nov 2025"
	dayMonthYear = regexp.MustCompile(`^(\d{1,2})\s+(\w+)\s+(\d{4})`)
	// "Nov 28, 2025"
	monthDayYear = regexp.MustCompile(`^(\w+)\s+(\d{1,2})[,\s]+(\d{4})`)
)

// Parse attempts to read text as a calendar date. Strategies are tried in
// order: strict ISO, fuzzy natural-language parsing, then three explicit
// manual patterns. The boolean is false when every strategy fails; Parse
// never panics. Two-digit years are not handled.
func Parse(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(ISO, text); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, true
	}

	if t, err := dateparse.ParseAny(text); err == nil {
		return t, true
	}

	if m := weekdayDayMonthYear.FindStringSubmatch(text); m != nil {
		if t, ok := buildDate(m[4], m[3], m[2]); ok {
			return t, true
		}
	}
	if m := dayMonthYear.FindStringSubmatch(text); m != nil {
		if t, ok := buildDate(m[3], m[2], m[1]); ok {
			return t, true
		}
	}
	if m := monthDayYear.FindStringSubmatch(text); m != nil {
		if t, ok := buildDate(m[3], m[1], m[2]); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// Normalize returns the canonical YYYY-MM-DD form of text, or false when
// it cannot be parsed as a date.
func Normalize(text string) (string, bool) {
	t, ok := Parse(text)
	if !ok {
		return "", false
	}
	return t.Format(ISO), true
}

// buildDate assembles a date from year/month-name/day strings. The month
// name is matched case-insensitively on its first three letters.
func buildDate(year, monthName, day string) (time.Time, bool) {
	name := strings.ToLower(monthName)
	if len(name) < 3 {
		return time.Time{}, false
	}
	month, ok := monthsByPrefix[name[:3]]
	if !ok {
		return time.Time{}, false
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}

	t := time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (Feb 30 -> Mar 2); reject those.
	if t.Day() != d || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}
