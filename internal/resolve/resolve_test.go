// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/datefind/pkg/types"
)

// ref is a Wednesday, fixed so relative phrases resolve deterministically.
var ref = time.Date(2021, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestResolveExplicitForms(t *testing.T) {
	tests := []struct {
		candidate string
		want      time.Time
	}{
		{"1986-11-13", time.Date(1986, time.November, 13, 0, 0, 0, 0, time.UTC)},
		{"2019/07/01", time.Date(2019, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{"Nov 20, 1986", time.Date(1986, time.November, 20, 0, 0, 0, 0, time.UTC)},
		{"Nov 20 1986", time.Date(1986, time.November, 20, 0, 0, 0, 0, time.UTC)},
		{"November 20th, 1986", time.Date(1986, time.November, 20, 0, 0, 0, 0, time.UTC)},
		{"20th November 1986", time.Date(1986, time.November, 20, 0, 0, 0, 0, time.UTC)},
		{"13th December, 1986", time.Date(1986, time.December, 13, 0, 0, 0, 0, time.UTC)},
		// Short numeric dates read as month/day/year; two-digit years
		// pivot like the "06" layout.
		{"05/06/07", time.Date(2007, time.May, 6, 0, 0, 0, 0, time.UTC)},
		{"12-31-99", time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			got, err := Resolve(tt.candidate, ref, types.PrefersNearest)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "Resolve(%q) = %v, want %v", tt.candidate, got, tt.want)
		})
	}
}

func TestResolveInvalidCandidates(t *testing.T) {
	tests := []string{
		"",
		"2019-13-01", // month out of range
		"02/30/20",   // February 30th does not exist
		"13/40/77",   // no month 13
		"31st June 2020",
		"definitely not a date",
	}

	for _, candidate := range tests {
		t.Run(candidate, func(t *testing.T) {
			_, err := Resolve(candidate, ref, types.PrefersNearest)
			assert.Error(t, err)
		})
	}
}

func TestResolveRelativeDayWords(t *testing.T) {
	tests := []struct {
		candidate string
		wantDay   int
	}{
		{"today", 10},
		{"tomorrow", 11},
		{"yesterday", 9},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			got, err := Resolve(tt.candidate, ref, types.PrefersNearest)
			require.NoError(t, err)
			assert.Equal(t, 2021, got.Year())
			assert.Equal(t, time.March, got.Month())
			assert.Equal(t, tt.wantDay, got.Day())
		})
	}
}

func TestResolveWeekdayBias(t *testing.T) {
	t.Run("future prefers the upcoming occurrence", func(t *testing.T) {
		got, err := Resolve("friday", ref, types.PrefersFuture)
		require.NoError(t, err)
		assert.Equal(t, time.Friday, got.Weekday())
		assert.True(t, got.After(ref), "future bias must not resolve before now")
		assert.LessOrEqual(t, got.Sub(ref), 7*24*time.Hour)
	})

	t.Run("past prefers the previous occurrence", func(t *testing.T) {
		got, err := Resolve("friday", ref, types.PrefersPast)
		require.NoError(t, err)
		assert.Equal(t, time.Friday, got.Weekday())
		assert.True(t, got.Before(ref), "past bias must not resolve after now")
		assert.LessOrEqual(t, ref.Sub(got), 7*24*time.Hour)
	})

	t.Run("nearest uses the resolver default without failing", func(t *testing.T) {
		got, err := Resolve("friday", ref, types.PrefersNearest)
		require.NoError(t, err)
		assert.Equal(t, time.Friday, got.Weekday())
	})
}

func TestResolveQualifiedWeekdays(t *testing.T) {
	t.Run("next friday", func(t *testing.T) {
		got, err := Resolve("next Friday", ref, types.PrefersNearest)
		require.NoError(t, err)
		assert.Equal(t, time.Friday, got.Weekday())
		assert.True(t, got.After(ref))
	})

	t.Run("previous is normalized to last", func(t *testing.T) {
		got, err := Resolve("previous Monday", ref, types.PrefersNearest)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, got.Weekday())
		assert.True(t, got.Before(ref))
	})

	t.Run("abbreviated weekday expands", func(t *testing.T) {
		got, err := Resolve("next tue", ref, types.PrefersNearest)
		require.NoError(t, err)
		assert.Equal(t, time.Tuesday, got.Weekday())
		assert.True(t, got.After(ref))
	})
}

func TestResolveMonthDayWithoutYear(t *testing.T) {
	tests := []string{"Nov 20", "20 Nov", "November 20th", "20th November"}

	for _, candidate := range tests {
		t.Run(candidate, func(t *testing.T) {
			got, err := Resolve(candidate, ref, types.PrefersFuture)
			require.NoError(t, err)
			assert.Equal(t, time.November, got.Month())
			assert.Equal(t, 20, got.Day())
			assert.False(t, got.Before(ref), "future bias must not resolve before now")
		})
	}
}

func TestResolveKeepsReferenceLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := Resolve("1986-11-13", ref.In(loc), types.PrefersNearest)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 13, got.Day())
}

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fri", "friday"},
		{"previous mon", "last monday"},
		{"nov 20", "november 20th"},
		{"3 june", "june 3rd"},
		{"22nd january", "january 22nd"},
		{"tomorrow", "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePhrase(tt.in))
		})
	}
}
