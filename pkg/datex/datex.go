// Package datex turns unreliable date strings coming from the drafting backend
// into values that are always safe to display.
//
// Dates extracted from legal documents are often partial ("2018-08"), use 00 as
// a placeholder for an unknown month or day ("2024-00-00") or are free text.
// None of the functions in this package fail: they degrade to ("", false),
// false or a fallback label.
package datex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	MinYear = 1900
	MaxYear = 2100

	ISOLayout     = "2006-01-02"
	DisplayLayout = "Jan 2, 2006"

	DefaultFallback = "Invalid date"
)

var (
	fullDateRe     = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})(?:$|[T ])`)
	yearMonthRe    = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	zeroMonthDayRe = regexp.MustCompile(`^(\d{4})-00-00$`)
	zeroDayRe      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-00$`)
	leadingYearRe  = regexp.MustCompile(`^(\d{4})`)
)

// directLayouts are tried in order when a string is not a (partial) ISO date.
var directLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	"January 2006",
	"Jan 2006",
}

// NormalizeIncompleteDate repairs a partial or placeholder date into YYYY-MM-DD.
//
// Rules, first match wins:
//   - a complete calendar date (YYYY-MM-DD, YYYY/MM/DD or YYYY.MM.DD, optionally
//     followed by a time) is kept
//   - YYYY-MM becomes YYYY-MM-01 (the month may have one digit)
//   - YYYY-00-00 becomes YYYY-01-01
//   - YYYY-MM-00 becomes YYYY-MM-01
//   - anything starting with a plausible year becomes YYYY-01-01
//
// Years outside MinYear..MaxYear never match.
func NormalizeIncompleteDate(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", false
	}

	if m := fullDateRe.FindStringSubmatch(s); m != nil {
		y, mo, d := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if inYearRange(y) && isCalendarDate(y, mo, d) {
			return isoDate(y, mo, d), true
		}
	}

	if m := yearMonthRe.FindStringSubmatch(s); m != nil {
		y, mo := atoi(m[1]), atoi(m[2])
		if inYearRange(y) && isMonth(mo) {
			return isoDate(y, mo, 1), true
		}
	}

	if m := zeroMonthDayRe.FindStringSubmatch(s); m != nil {
		if y := atoi(m[1]); inYearRange(y) {
			return isoDate(y, 1, 1), true
		}
	}

	if m := zeroDayRe.FindStringSubmatch(s); m != nil {
		y, mo := atoi(m[1]), atoi(m[2])
		if inYearRange(y) && isMonth(mo) {
			return isoDate(y, mo, 1), true
		}
	}

	// Catch-all. "2023-13-01" ends up here and becomes 2023-01-01; callers
	// holding garbled extraction output rely on getting at least the year.
	if y, ok := SalvageYear(s); ok {
		return isoDate(y, 1, 1), true
	}

	return "", false
}

// SalvageYear extracts the first four digits of input as a year within
// MinYear..MaxYear. Compact dates such as "20230115" yield 2023.
func SalvageYear(input string) (int, bool) {
	m := leadingYearRe.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return 0, false
	}

	y := atoi(m[1])
	if !inYearRange(y) {
		return 0, false
	}

	return y, true
}

// IsValidDate reports whether input can be turned into a calendar date, either
// through NormalizeIncompleteDate or by parsing it directly.
func IsValidDate(input string) bool {
	s := strings.TrimSpace(input)
	if s == "" {
		return false
	}

	if normalized, ok := NormalizeIncompleteDate(s); ok {
		if _, err := time.Parse(ISOLayout, normalized); err == nil {
			return true
		}
	}

	_, ok := parseDirect(s)
	return ok
}

// GetNormalizedDate returns input as YYYY-MM-DD, used for ordering.
func GetNormalizedDate(input string) (string, bool) {
	if normalized, ok := NormalizeIncompleteDate(input); ok {
		return normalized, true
	}

	t, ok := parseDirect(strings.TrimSpace(input))
	if !ok {
		return "", false
	}

	return t.Format(ISOLayout), true
}

// FormatDateSafely formats input as "Jan 2, 2006" using the English labels.
// An omitted or empty fallback means DefaultFallback.
func FormatDateSafely(input string, fallback ...string) string {
	if len(fallback) == 0 {
		return defaultFormatter.Format(input)
	}

	return defaultFormatter.WithFallback(fallback[0]).Format(input)
}

// Compare orders date strings by their normalized value. Strings without a
// usable date sort after all valid ones and compare equal to each other, so a
// stable sort keeps their relative order.
func Compare(a, b string) int {
	na, okA := GetNormalizedDate(a)
	nb, okB := GetNormalizedDate(b)

	switch {
	case okA && okB:
		return strings.Compare(na, nb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

func parseDirect(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range directLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !inYearRange(t.Year()) {
			return time.Time{}, false
		}
		return t, true
	}

	return time.Time{}, false
}

func isoDate(y, m, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func isCalendarDate(y, m, d int) bool {
	if !isMonth(m) || d < 1 {
		return false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return t.Year() == y && int(t.Month()) == m && t.Day() == d
}

func isMonth(m int) bool {
	return m >= 1 && m <= 12
}

func inYearRange(y int) bool {
	return y >= MinYear && y <= MaxYear
}

// atoi is only called on regexp digit groups.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
