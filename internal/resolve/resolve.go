// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve converts candidate substrings into absolute
// timestamps. Forms that carry an explicit year are parsed directly;
// under-specified phrases are normalized and handed to the external
// natural-language resolver with an ambiguity hint.
package resolve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"

	"github.com/meshintel/datefind/pkg/types"
)

// Explicit-year forms handled locally. Candidates arrive lowercased
// with whitespace collapsed, so these anchor the whole string.
var (
	isoRe          = regexp.MustCompile(`^(\d{4})[-/](\d{2})[-/](\d{2})$`)
	shortNumericRe = regexp.MustCompile(`^(\d{2})[-/](\d{2})[-/](\d{2})$`)
	dayMonthYearRe = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]+),?\s+(\d{4})$`)
	monthDayYearRe = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})$`)
	dayMonthRe     = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]+)$`)
	monthDayRe     = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?$`)
)

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// weekdayFull expands abbreviated weekday tokens before delegation; the
// natural-language resolver works on full names.
var weekdayFull = map[string]string{
	"mon": "monday", "tue": "tuesday", "wed": "wednesday", "thu": "thursday",
	"fri": "friday", "sat": "saturday", "sun": "sunday",
}

// Resolve converts one candidate substring into an absolute timestamp
// relative to ref, in ref's location. Unresolvable candidates return an
// error; the caller drops them without aborting the scan.
func Resolve(candidate string, ref time.Time, pref types.Prefers) (time.Time, error) {
	s := strings.Join(strings.Fields(strings.ToLower(candidate)), " ")
	if s == "" {
		return time.Time{}, fmt.Errorf("empty candidate")
	}

	if m := isoRe.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]), ref.Location())
	}

	if m := shortNumericRe.FindStringSubmatch(s); m != nil {
		// Ambiguous ordering is fixed as month/day/year here; the
		// two-digit year pivots the same way the "06" layout does.
		year := atoi(m[3])
		if year >= 69 {
			year += 1900
		} else {
			year += 2000
		}
		return makeDate(year, time.Month(atoi(m[1])), atoi(m[2]), ref.Location())
	}

	if m := dayMonthYearRe.FindStringSubmatch(s); m != nil {
		month, ok := months[m[2]]
		if !ok {
			return time.Time{}, fmt.Errorf("unknown month %q in %q", m[2], candidate)
		}
		return makeDate(atoi(m[3]), month, atoi(m[1]), ref.Location())
	}

	if m := monthDayYearRe.FindStringSubmatch(s); m != nil {
		month, ok := months[m[1]]
		if !ok {
			return time.Time{}, fmt.Errorf("unknown month %q in %q", m[1], candidate)
		}
		return makeDate(atoi(m[3]), month, atoi(m[2]), ref.Location())
	}

	// Everything else is under-specified (relative words, weekdays,
	// month-day without a year): normalize and delegate.
	phrase := normalizePhrase(s)
	t, err := naturaldate.Parse(phrase, ref, directionOptions(pref)...)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolving %q: %w", candidate, err)
	}
	return t, nil
}

// normalizePhrase rewrites a candidate into the vocabulary the
// natural-language resolver accepts: full weekday and month names,
// "last" for "previous", and ordinal month-day order.
func normalizePhrase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if full, ok := weekdayFull[w]; ok {
			words[i] = full
		}
		if w == "previous" {
			words[i] = "last"
		}
	}
	s = strings.Join(words, " ")

	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		if month, ok := months[m[1]]; ok {
			return monthDayPhrase(month, atoi(m[2]))
		}
	}
	if m := dayMonthRe.FindStringSubmatch(s); m != nil {
		if month, ok := months[m[2]]; ok {
			return monthDayPhrase(month, atoi(m[1]))
		}
	}
	return s
}

// monthDayPhrase renders a month-day pair as e.g. "november 20th".
func monthDayPhrase(month time.Month, day int) string {
	return fmt.Sprintf("%s %d%s", strings.ToLower(month.String()), day, ordinalSuffix(day))
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// directionOptions maps the ambiguity preference onto resolver hints.
// Nearest passes no hint so the resolver's default bias applies.
func directionOptions(pref types.Prefers) []naturaldate.Option {
	switch pref {
	case types.PrefersFuture:
		return []naturaldate.Option{naturaldate.WithDirection(naturaldate.Future)}
	case types.PrefersPast:
		return []naturaldate.Option{naturaldate.WithDirection(naturaldate.Past)}
	}
	return nil
}

// makeDate builds a midnight timestamp and rejects day/month values
// that time.Date would silently normalize (February 30th, month 13).
func makeDate(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("month %d out of range", int(month))
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("no such date: %04d-%02d-%02d", year, int(month), day)
	}
	return t, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
