// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package grammar composes the date-expression pattern and scans text
// for candidate substrings. The grammar is a curated, finite set of
// surface forms; numbers and phrases outside it never match.
package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Sub-pattern building blocks. All matching is case-insensitive; the
// (?i) flag is applied once to the composed pattern.
const (
	relativeDays = `today|tomorrow|yesterday`

	weekdays = `monday|tuesday|wednesday|thursday|friday|saturday|sunday` +
		`|mon|tue|wed|thu|fri|sat|sun`

	monthNames = `january|february|march|april|may|june|july|august` +
		`|september|october|november|december` +
		`|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

	// dayOfMonth is 1-31 with an optional ordinal suffix.
	dayOfMonth = `(?:3[01]|[12][0-9]|0?[1-9])(?:st|nd|rd|th)?`
)

// Compound forms.
const (
	dayMonth = dayOfMonth + `\s+(?:` + monthNames + `)`
	monthDay = `(?:` + monthNames + `)\s+` + dayOfMonth
)

// alternatives lists the built-in surface forms in precedence order.
// Go's regexp prefers earlier alternatives when several could match at
// the same position, so longer or more specific forms come first:
// "Nov 20, 1986" must consume the year instead of stopping at "Nov 20".
var alternatives = []string{
	relativeDays,
	`(?:next|previous|last)\s+(?:` + weekdays + `)`,
	weekdays,
	`(?:` + dayMonth + `|` + monthDay + `),?\s+\d{4}`,
	dayMonth,
	monthDay,
	`\d{4}[-/]\d{2}[-/]\d{2}`,
	`\d{2}[-/]\d{2}[-/]\d{2}`,
}

// Grammar is the compiled date-expression pattern. Build it once per
// parser and reuse it; it holds no per-call state and is safe for
// concurrent scans.
type Grammar struct {
	re *regexp.Regexp
}

// Build compiles the built-in alternatives, plus any extension
// alternatives appended at lowest precedence, into a single pattern.
// The whole alternation is anchored at word boundaries on both sides,
// so a bare "2019" inside "class 2019" never matches: the grammar has
// no standalone-year form.
func Build(extra ...string) (*Grammar, error) {
	alts := make([]string, 0, len(alternatives)+len(extra))
	alts = append(alts, alternatives...)
	alts = append(alts, extra...)

	pattern := `(?i)\b(?:` + strings.Join(alts, `|`) + `)\b`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling date grammar: %w", err)
	}
	return &Grammar{re: re}, nil
}

// Pattern returns the composed pattern source, mainly for diagnostics.
func (g *Grammar) Pattern() string {
	return g.re.String()
}
