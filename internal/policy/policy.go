// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package policy turns the document-order sequence of resolved dates
// into the caller's requested output shape.
package policy

import (
	"sort"

	"github.com/meshintel/datefind/pkg/types"
)

// Handler aliases the caller-facing selection handler type.
type Handler = types.Handler

// builtins covers the six standard selection modes. Registered
// extension handlers cannot shadow these.
var builtins = map[types.Returns]Handler{
	types.ReturnsFirst: func(dates []types.Result) []types.Result {
		if len(dates) == 0 {
			return nil
		}
		return []types.Result{dates[0]}
	},
	types.ReturnsLast: func(dates []types.Result) []types.Result {
		if len(dates) == 0 {
			return nil
		}
		return []types.Result{dates[len(dates)-1]}
	},
	types.ReturnsEarliest: func(dates []types.Result) []types.Result {
		if len(dates) == 0 {
			return nil
		}
		best := dates[0]
		for _, d := range dates[1:] {
			// Strict comparison keeps the first document-order
			// occurrence on ties.
			if d.Time.Before(best.Time) {
				best = d
			}
		}
		return []types.Result{best}
	},
	types.ReturnsLatest: func(dates []types.Result) []types.Result {
		if len(dates) == 0 {
			return nil
		}
		best := dates[0]
		for _, d := range dates[1:] {
			if d.Time.After(best.Time) {
				best = d
			}
		}
		return []types.Result{best}
	},
	types.ReturnsAll: func(dates []types.Result) []types.Result {
		return append([]types.Result(nil), dates...)
	},
	types.ReturnsAllCron: func(dates []types.Result) []types.Result {
		out := append([]types.Result(nil), dates...)
		// Stable: equal timestamps keep their document order.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Time.Before(out[j].Time)
		})
		return out
	},
}

// Select applies the handler for mode to the document-order sequence.
// extra supplies caller-registered handlers for modes beyond the
// built-in six; built-ins take precedence.
func Select(dates []types.Result, mode types.Returns, extra map[types.Returns]Handler) ([]types.Result, error) {
	if h, ok := builtins[mode]; ok {
		return h(dates), nil
	}
	if h, ok := extra[mode]; ok {
		return h(dates), nil
	}
	return nil, &types.InvalidConfigurationError{Field: "returns", Value: string(mode)}
}

// defaultDowngrades maps selection modes onto the mode used when the
// calling context wants exactly one result. Modes absent from the
// table pass through unchanged.
var defaultDowngrades = map[types.Returns]types.Returns{
	types.ReturnsAll:      types.ReturnsFirst,
	types.ReturnsEarliest: types.ReturnsAllCron,
}

// Downgrade resolves the scalar-context mapping for mode. Entries in
// extra extend and override the default table. It must run before
// Select, never after.
func Downgrade(mode types.Returns, extra map[types.Returns]types.Returns) types.Returns {
	if to, ok := extra[mode]; ok {
		return to
	}
	if to, ok := defaultDowngrades[mode]; ok {
		return to
	}
	return mode
}
