// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package datefind extracts date expressions from free text. It scans
// for a curated set of date-like surface forms, resolves each match to
// an absolute timestamp, and selects the output per the configured
// returns mode. It is conservative: numbers and phrases outside the
// grammar never match.
package datefind

import (
	"fmt"
	"sync"
	"time"

	"github.com/meshintel/datefind/internal/grammar"
	"github.com/meshintel/datefind/internal/policy"
	"github.com/meshintel/datefind/internal/resolve"
	"github.com/meshintel/datefind/pkg/types"
)

// timeNow is the reference clock. Tests override it for determinism.
var timeNow = time.Now

// Extensions widens a parser beyond the built-in grammar and selection
// modes without disturbing built-in precedence.
type Extensions struct {
	// Patterns are extra grammar alternatives, appended after the
	// built-in forms at lowest precedence.
	Patterns []string

	// Handlers adds selection modes beyond the built-in six. Built-in
	// modes cannot be overridden.
	Handlers map[types.Returns]types.Handler

	// Downgrades extends the scalar-context downgrade table applied by
	// ExtractOne before selection.
	Downgrades map[types.Returns]types.Returns
}

// Parser scans text for date expressions. The compiled grammar is built
// lazily on first use and then reused unchanged, so a parser is safe
// for concurrent extraction once constructed. Configuration, candidates
// and results are all per-call.
type Parser struct {
	cfg types.Config
	ext Extensions

	once     sync.Once
	grammar  *grammar.Grammar
	buildErr error
}

// New constructs a parser with cfg layered over the library defaults.
// Unrecognized returns/prefers values fail construction; the time zone
// identifier is resolved eagerly so a bad zone also fails here.
func New(cfg types.Config) (*Parser, error) {
	return NewWithExtensions(cfg, Extensions{})
}

// NewWithExtensions is New with extra grammar alternatives, selection
// handlers, and downgrade entries registered.
func NewWithExtensions(cfg types.Config, ext Extensions) (*Parser, error) {
	p := &Parser{
		cfg: types.Merge(types.DefaultConfig(), &cfg),
		ext: ext,
	}
	if err := p.validate(p.cfg); err != nil {
		return nil, err
	}
	if _, err := location(p.cfg.TimeZone); err != nil {
		return nil, err
	}
	return p, nil
}

// validate checks the enumerated fields, accepting extension-registered
// selection modes alongside the built-ins.
func (p *Parser) validate(cfg types.Config) error {
	if !cfg.Returns.Valid() {
		if _, ok := p.ext.Handlers[cfg.Returns]; !ok {
			return &types.InvalidConfigurationError{Field: "returns", Value: string(cfg.Returns)}
		}
	}
	if !cfg.Prefers.Valid() {
		return &types.InvalidConfigurationError{Field: "prefers", Value: string(cfg.Prefers)}
	}
	return nil
}

// ExtractAll scans text and returns the selected dates as a sequence.
// Multi-result modes return the full (document-order or chronological)
// list; single-result modes return a slice of at most one element. A
// nil override uses the parser's configuration as-is.
func (p *Parser) ExtractAll(text string, override *types.Config) ([]types.Result, error) {
	cfg := types.Merge(p.cfg, override)
	if err := p.validate(cfg); err != nil {
		return nil, err
	}
	return p.extract(text, cfg)
}

// ExtractOne scans text and returns exactly one date. Multi-result
// modes are first mapped through the downgrade table; ok is false when
// nothing resolved.
func (p *Parser) ExtractOne(text string, override *types.Config) (types.Result, bool, error) {
	cfg := types.Merge(p.cfg, override)
	if err := p.validate(cfg); err != nil {
		return types.Result{}, false, err
	}

	// Scalar context: remap before the policy engine runs.
	cfg.Returns = policy.Downgrade(cfg.Returns, p.ext.Downgrades)

	out, err := p.extract(text, cfg)
	if err != nil {
		return types.Result{}, false, err
	}
	if len(out) == 0 {
		return types.Result{}, false, nil
	}
	return out[0], true, nil
}

// extract runs the scan-resolve-select pipeline under an already
// validated configuration.
func (p *Parser) extract(text string, cfg types.Config) ([]types.Result, error) {
	loc, err := location(cfg.TimeZone)
	if err != nil {
		return nil, err
	}

	g, err := p.compiled()
	if err != nil {
		return nil, err
	}

	ref := timeNow()
	if loc != nil {
		ref = ref.In(loc)
	}

	var dates []types.Result
	for _, c := range g.Scan(text) {
		t, err := resolve.Resolve(c.Text, ref, cfg.Prefers)
		if err != nil {
			// Unresolvable candidates are dropped, not fatal.
			continue
		}
		dates = append(dates, types.Result{Text: c.Text, Start: c.Start, Time: t})
	}

	return policy.Select(dates, cfg.Returns, p.ext.Handlers)
}

// compiled returns the grammar, building it exactly once per parser.
func (p *Parser) compiled() (*grammar.Grammar, error) {
	p.once.Do(func() {
		p.grammar, p.buildErr = grammar.Build(p.ext.Patterns...)
	})
	return p.grammar, p.buildErr
}

// location resolves a zone identifier. Floating (or empty) means
// zone-agnostic: the reference clock's location is used unchanged.
func location(tz string) (*time.Location, error) {
	if tz == "" || tz == types.TimeZoneFloating {
		return nil, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("resolving time zone %q: %w", tz, err)
	}
	return loc, nil
}

// defaultParser backs the package-level functions with the library
// defaults; its grammar is shared across those calls.
var defaultParser = &Parser{cfg: types.DefaultConfig()}

// ExtractAll extracts with the library defaults merged with override,
// without constructing a parser first.
func ExtractAll(text string, override *types.Config) ([]types.Result, error) {
	return defaultParser.ExtractAll(text, override)
}

// ExtractOne extracts a single date with the library defaults merged
// with override.
func ExtractOne(text string, override *types.Config) (types.Result, bool, error) {
	return defaultParser.ExtractOne(text, override)
}
