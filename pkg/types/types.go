// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and result types shared by the
// datefind engine and its callers.
package types

import (
	"fmt"
	"time"
)

// Returns selects which resolved dates an extraction produces.
type Returns string

const (
	// ReturnsFirst yields the first date in document order.
	ReturnsFirst Returns = "first"

	// ReturnsLast yields the last date in document order.
	ReturnsLast Returns = "last"

	// ReturnsEarliest yields the chronologically earliest date.
	ReturnsEarliest Returns = "earliest"

	// ReturnsLatest yields the chronologically latest date.
	ReturnsLatest Returns = "latest"

	// ReturnsAll yields every resolved date in document order.
	ReturnsAll Returns = "all"

	// ReturnsAllCron yields every resolved date in ascending
	// chronological order.
	ReturnsAllCron Returns = "all_cron"
)

// Valid reports whether r is one of the built-in selection modes.
func (r Returns) Valid() bool {
	switch r {
	case ReturnsFirst, ReturnsLast, ReturnsEarliest, ReturnsLatest, ReturnsAll, ReturnsAllCron:
		return true
	}
	return false
}

// Prefers biases resolution of under-specified phrases (a bare weekday,
// a month-day without a year) relative to the reference clock.
type Prefers string

const (
	// PrefersNearest applies no bias; the resolver's default is used.
	PrefersNearest Prefers = "nearest"

	// PrefersFuture biases toward the nearest date not earlier than now.
	PrefersFuture Prefers = "future"

	// PrefersPast biases toward the nearest date not later than now.
	// Best-effort: resolvers without past support fall back to their
	// default bias rather than failing.
	PrefersPast Prefers = "past"
)

// Valid reports whether p is one of the recognized preferences.
func (p Prefers) Valid() bool {
	switch p {
	case PrefersNearest, PrefersFuture, PrefersPast:
		return true
	}
	return false
}

// TimeZoneFloating marks zone-agnostic interpretation: candidates are
// resolved in whatever location the reference clock already carries.
const TimeZoneFloating = "floating"

// Config controls one extraction. It may exist at two layers, instance
// defaults and per-call overrides; Merge combines them with call-time
// values winning.
type Config struct {
	// Returns is the selection mode applied to the resolved dates.
	Returns Returns `json:"returns" yaml:"returns"`

	// Prefers disambiguates under-specified phrases relative to now.
	Prefers Prefers `json:"prefers" yaml:"prefers"`

	// TimeZone is an IANA zone identifier, or "floating" (the default)
	// for zone-agnostic interpretation.
	TimeZone string `json:"time_zone" yaml:"time_zone"`
}

// DefaultConfig returns the library-wide defaults.
func DefaultConfig() Config {
	return Config{
		Returns:  ReturnsFirst,
		Prefers:  PrefersNearest,
		TimeZone: TimeZoneFloating,
	}
}

// Merge returns base with every non-empty field of override applied on
// top. A nil override leaves base unchanged.
func Merge(base Config, override *Config) Config {
	if override == nil {
		return base
	}
	out := base
	if override.Returns != "" {
		out.Returns = override.Returns
	}
	if override.Prefers != "" {
		out.Prefers = override.Prefers
	}
	if override.TimeZone != "" {
		out.TimeZone = override.TimeZone
	}
	return out
}

// Validate checks the two enumerated fields. It runs before any scanning
// work begins, so an invalid value never reaches the scanner.
func (c Config) Validate() error {
	if !c.Returns.Valid() {
		return &InvalidConfigurationError{Field: "returns", Value: string(c.Returns)}
	}
	if !c.Prefers.Valid() {
		return &InvalidConfigurationError{Field: "prefers", Value: string(c.Prefers)}
	}
	return nil
}

// InvalidConfigurationError reports an unrecognized value for an
// enumerated configuration field.
type InvalidConfigurationError struct {
	// Field is the offending configuration key ("returns" or "prefers").
	Field string

	// Value is the unrecognized value as supplied by the caller.
	Value string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%q is not a recognized value", e.Field, e.Value)
}

// Result is one date expression found in the input text: the matched
// substring, its byte offset, and the resolved timestamp.
type Result struct {
	// Text is the matched substring exactly as it appears in the input.
	Text string `json:"text" yaml:"text"`

	// Start is the byte offset of the match within the input.
	Start int `json:"start" yaml:"start"`

	// Time is the absolute timestamp the substring resolved to.
	Time time.Time `json:"time" yaml:"time"`
}

// Epoch returns the resolved timestamp as Unix seconds.
func (r Result) Epoch() int64 {
	return r.Time.Unix()
}

// Handler produces the output sequence for one selection mode, given
// the resolved dates in document order. Single-value modes return a
// slice of at most one element.
type Handler func(dates []Result) []Result
