package stoich

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/metalcalc/pkg/formula"
)

// ParseCompound returns the parsed compound for formula. Results are memoized
// by the trimmed formula string and must not be modified.
func (c *Calculator) ParseCompound(f string) (*formula.Compound, error) {
	e, err := c.Lookup(f)
	if err != nil {
		return nil, err
	}
	return e.Compound, nil
}

// Counts returns a copy of the element → coefficient mapping of formula.
func (c *Calculator) Counts(f string) (formula.Counts, error) {
	e, err := c.Lookup(f)
	if err != nil {
		return nil, err
	}
	return e.Counts.Clone(), nil
}

// MolarMass returns the molar mass of formula in kg/kmol. The empty formula
// has molar mass 0.
func (c *Calculator) MolarMass(f string) (float64, error) {
	e, err := c.Lookup(f)
	if err != nil {
		return 0, err
	}
	return e.MolarMass, nil
}

// Amount returns the amount in kmol of mass kg of compound.
func (c *Calculator) Amount(compound string, mass float64) (float64, error) {
	mm, err := c.MolarMass(compound)
	if err != nil {
		return 0, err
	}
	if mm == 0 {
		return 0, fmt.Errorf("amount of %q: %w", compound, ErrZeroMolarMass)
	}
	return mass / mm, nil
}

// Mass returns the mass in kg of amount kmol of compound.
func (c *Calculator) Mass(compound string, amount float64) (float64, error) {
	mm, err := c.MolarMass(compound)
	if err != nil {
		return 0, err
	}
	return amount * mm, nil
}

// Amounts converts a compound → mass (kg) mapping into compound → amount (kmol).
func (c *Calculator) Amounts(masses map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(masses))
	for compound, m := range masses {
		n, err := c.Amount(compound, m)
		if err != nil {
			return nil, err
		}
		out[compound] = n
	}
	return out, nil
}

// Masses converts a compound → amount (kmol) mapping into compound → mass (kg).
func (c *Calculator) Masses(amounts map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(amounts))
	for compound, n := range amounts {
		m, err := c.Mass(compound, n)
		if err != nil {
			return nil, err
		}
		out[compound] = m
	}
	return out, nil
}

// ConvertCompound converts mass kg of source into the mass of target that
// holds the same mass of element. It returns 0 when target does not contain
// element.
func (c *Calculator) ConvertCompound(mass float64, source, target, element string) (float64, error) {
	targetFraction, err := c.ElementMassFraction(target, element)
	if err != nil {
		return 0, err
	}
	sourceFraction, err := c.ElementMassFraction(source, element)
	if err != nil {
		return 0, err
	}
	if targetFraction == 0 {
		return 0, nil
	}
	return mass * sourceFraction / targetFraction, nil
}

// StoichiometryCoefficient returns the amount of element per unit amount of
// compound. It returns 0 when element is a known symbol absent from compound.
func (c *Calculator) StoichiometryCoefficient(compound, element string) (float64, error) {
	e, err := c.Lookup(compound)
	if err != nil {
		return 0, err
	}
	sym, err := c.symbol(element)
	if err != nil {
		return 0, err
	}
	return e.Counts.Get(sym), nil
}

// StoichiometryCoefficients returns the coefficients of elements in compound,
// in the order given.
func (c *Calculator) StoichiometryCoefficients(compound string, elements []string) ([]float64, error) {
	out := make([]float64, len(elements))
	for i, el := range elements {
		v, err := c.StoichiometryCoefficient(compound, el)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ElementMassFraction returns the mass fraction of element in compound.
func (c *Calculator) ElementMassFraction(compound, element string) (float64, error) {
	coeff, err := c.StoichiometryCoefficient(compound, element)
	if err != nil {
		return 0, err
	}
	if coeff == 0 {
		return 0, nil
	}
	mm, err := c.MolarMass(compound)
	if err != nil {
		return 0, err
	}
	am, err := c.table.AtomicMass(strings.TrimSpace(element))
	if err != nil {
		return 0, err
	}
	return coeff * am / mm, nil
}

// ElementMassFractions returns the mass fractions of elements in compound, in
// the order given.
func (c *Calculator) ElementMassFractions(compound string, elements []string) ([]float64, error) {
	out := make([]float64, len(elements))
	for i, el := range elements {
		v, err := c.ElementMassFraction(compound, el)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ElementSet is a set of element symbols.
type ElementSet map[string]struct{}

// Has reports whether the set contains symbol.
func (s ElementSet) Has(symbol string) bool {
	_, ok := s[symbol]
	return ok
}

// Sorted returns the symbols in alphabetical order.
func (s ElementSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Elements returns the union of elements appearing in compounds.
func (c *Calculator) Elements(compounds []string) (ElementSet, error) {
	set := make(ElementSet)
	for _, compound := range compounds {
		e, err := c.Lookup(compound)
		if err != nil {
			return nil, err
		}
		for sym := range e.Counts {
			set[sym] = struct{}{}
		}
	}
	return set, nil
}
