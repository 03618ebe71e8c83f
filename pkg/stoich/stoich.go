// Package stoich provides memoized stoichiometry calculations over chemical
// formulas: molar mass, mass/amount conversion, element mass fractions and
// stoichiometric coefficients.
//
// Units follow the toolkit convention: mass in kg, amount in kmol and molar
// mass in kg/kmol.
//
// Querying an element that is valid but absent from a compound yields 0, not
// an error. Errors are reserved for malformed formulas
// (*formula.SyntaxError, *formula.UnknownElementError) and symbols missing
// from the element table (*element.UnknownSymbolError).
package stoich

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/leapstack-labs/metalcalc/pkg/element"
	"github.com/leapstack-labs/metalcalc/pkg/formula"
	"golang.org/x/sync/singleflight"
)

// ErrZeroMolarMass is returned when converting a mass of a compound whose
// molar mass is zero (the empty formula).
var ErrZeroMolarMass = errors.New("compound has zero molar mass")

// Calculator evaluates formulas against an element table and memoizes parse
// results. A Calculator is safe for concurrent use.
type Calculator struct {
	table  *element.Table
	cache  Cache
	group  singleflight.Group
	logger *slog.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithTable sets the element table. The default is element.Default().
func WithTable(t *element.Table) Option {
	return func(c *Calculator) {
		if t != nil {
			c.table = t
		}
	}
}

// WithCache sets the formula cache. The default is an unbounded MapCache.
func WithCache(cache Cache) Option {
	return func(c *Calculator) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		table:  element.Default(),
		cache:  NewMapCache(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCalculator = sync.OnceValue(func() *Calculator { return New() })

// Default returns the process-wide Calculator used by the package-level
// functions.
func Default() *Calculator {
	return defaultCalculator()
}

// Table returns the calculator's element table.
func (c *Calculator) Table() *element.Table {
	return c.table
}

// CacheStats reports formula cache usage.
type CacheStats struct {
	Hits    int64 `json:"hits" yaml:"hits"`
	Misses  int64 `json:"misses" yaml:"misses"`
	Entries int   `json:"entries" yaml:"entries"`
}

// Stats returns cache hit and miss counts.
func (c *Calculator) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.cache.Len(),
	}
}

// Lookup returns the cache entry for formula, parsing it on a miss.
// Concurrent misses for the same formula share one parse.
func (c *Calculator) Lookup(f string) (*Entry, error) {
	key := strings.TrimSpace(f)
	if e, ok := c.cache.Get(key); ok {
		c.hits.Add(1)
		return e, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if e, ok := c.cache.Get(key); ok {
			return e, nil
		}
		c.misses.Add(1)

		compound, err := formula.Parse(key, c.table)
		if err != nil {
			c.logger.Debug("formula rejected", "formula", key, "error", err)
			return nil, err
		}
		counts := formula.Count(compound)
		mm, err := formula.CountsMolarMass(counts, c.table)
		if err != nil {
			return nil, err
		}

		e := &Entry{Compound: compound, Counts: counts, MolarMass: mm}
		c.cache.Add(key, e)
		c.logger.Debug("formula cached", "formula", key, "molar_mass", mm, "entries", c.cache.Len())
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Entry), nil
}

// Preload parses and caches the given formulas. It stops at the first
// malformed formula.
func (c *Calculator) Preload(formulas ...string) error {
	for _, f := range formulas {
		if _, err := c.Lookup(f); err != nil {
			return fmt.Errorf("preload %q: %w", f, err)
		}
	}
	return nil
}

// symbol validates an element symbol against the table.
func (c *Calculator) symbol(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !c.table.Has(s) {
		return "", &element.UnknownSymbolError{Symbol: s}
	}
	return s, nil
}
