package element

import (
	"sort"
	"sync"
)

// Table is an immutable symbol → Element lookup.
// A Table is safe for concurrent use; nothing mutates it after NewTable returns.
type Table struct {
	bySymbol  map[string]Element
	ordered   []Element
	maxSymLen int
}

// NewTable builds a Table from the given elements.
// The input slice is copied. Entries are ordered by atomic number.
func NewTable(elements []Element) (*Table, error) {
	t := &Table{
		bySymbol: make(map[string]Element, len(elements)),
		ordered:  make([]Element, 0, len(elements)),
	}
	for _, e := range elements {
		if !validSymbol(e.Symbol) {
			return nil, &InvalidSymbolError{Symbol: e.Symbol}
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, &DuplicateSymbolError{Symbol: e.Symbol}
		}
		t.bySymbol[e.Symbol] = e
		t.ordered = append(t.ordered, e)
		if len(e.Symbol) > t.maxSymLen {
			t.maxSymLen = len(e.Symbol)
		}
	}
	sort.SliceStable(t.ordered, func(i, j int) bool {
		return t.ordered[i].Number < t.ordered[j].Number
	})
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in periodic table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(periodicTable)
		if err != nil {
			panic("element: invalid built-in table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}

// Lookup returns the element with the given symbol.
func (t *Table) Lookup(symbol string) (Element, error) {
	e, ok := t.bySymbol[symbol]
	if !ok {
		return Element{}, &UnknownSymbolError{Symbol: symbol}
	}
	return e, nil
}

// AtomicMass returns the atomic mass of the element in kg/kmol.
func (t *Table) AtomicMass(symbol string) (float64, error) {
	e, err := t.Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return e.AtomicMass, nil
}

// Has reports whether the table contains the symbol.
func (t *Table) Has(symbol string) bool {
	_, ok := t.bySymbol[symbol]
	return ok
}

// Len returns the number of elements in the table.
func (t *Table) Len() int {
	return len(t.ordered)
}

// Symbols returns all symbols ordered by atomic number.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.ordered))
	for i, e := range t.ordered {
		out[i] = e.Symbol
	}
	return out
}

// All returns a copy of all elements ordered by atomic number.
func (t *Table) All() []Element {
	out := make([]Element, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// LongestSymbol returns the longest symbol in the table that is a prefix of s,
// or "" if no symbol matches.
func (t *Table) LongestSymbol(s string) string {
	n := min(len(s), t.maxSymLen)
	for ; n > 0; n-- {
		if _, ok := t.bySymbol[s[:n]]; ok {
			return s[:n]
		}
	}
	return ""
}
