package formula

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/metalcalc/pkg/element"
)

// Counts maps element symbols to molar coefficients.
type Counts map[string]float64

// Get returns the coefficient of symbol, or 0 if it is absent.
func (c Counts) Get(symbol string) float64 {
	return c[symbol]
}

// Add adds every coefficient of other to c.
func (c Counts) Add(other Counts) {
	for sym, n := range other {
		c[sym] += n
	}
}

// Scale multiplies every coefficient by f.
func (c Counts) Scale(f float64) {
	for sym := range c {
		c[sym] *= f
	}
}

// Clone returns a copy of c.
func (c Counts) Clone() Counts {
	out := make(Counts, len(c))
	for sym, n := range c {
		out[sym] = n
	}
	return out
}

// Symbols returns the symbols of c in alphabetical order.
func (c Counts) Symbols() []string {
	out := make([]string, 0, len(c))
	for sym := range c {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Count returns the element → coefficient mapping of n. Multipliers scale
// every count beneath them and repeated symbols are summed. The hydrate group
// of a Compound is added to the main group.
func Count(n Node) Counts {
	out := make(Counts)
	accumulate(out, n, 1)
	return out
}

func accumulate(out Counts, n Node, factor float64) {
	switch n := n.(type) {
	case *Element:
		out[n.Symbol] += factor
	case *Group:
		f := factor * n.Multiplier
		for _, child := range n.Children {
			accumulate(out, child, f)
		}
	case *Compound:
		if n.Main != nil {
			accumulate(out, n.Main, factor)
		}
		if n.Dotted != nil {
			accumulate(out, n.Dotted, factor)
		}
	case nil:
	default:
		panic(fmt.Sprintf("formula: unhandled node type %T", n))
	}
}

// MolarMass returns the molar mass of n in kg/kmol. Every symbol is looked up
// again in table, so trees built by hand are validated too.
func MolarMass(n Node, table *element.Table) (float64, error) {
	return CountsMolarMass(Count(n), table)
}

// CountsMolarMass returns the molar mass in kg/kmol of an element count
// mapping. Symbols are summed in alphabetical order.
func CountsMolarMass(c Counts, table *element.Table) (float64, error) {
	if table == nil {
		table = element.Default()
	}
	var total float64
	for _, sym := range c.Symbols() {
		m, err := table.AtomicMass(sym)
		if err != nil {
			return 0, err
		}
		total += c[sym] * m
	}
	return total, nil
}
