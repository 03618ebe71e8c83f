package stoich

import "github.com/leapstack-labs/metalcalc/pkg/formula"

// The functions below use the Default calculator.

// ParseCompound parses formula with the Default calculator.
func ParseCompound(f string) (*formula.Compound, error) {
	return Default().ParseCompound(f)
}

// MolarMass returns the molar mass of formula in kg/kmol.
func MolarMass(f string) (float64, error) {
	return Default().MolarMass(f)
}

// Amount returns the amount in kmol of mass kg of compound.
func Amount(compound string, mass float64) (float64, error) {
	return Default().Amount(compound, mass)
}

// Mass returns the mass in kg of amount kmol of compound.
func Mass(compound string, amount float64) (float64, error) {
	return Default().Mass(compound, amount)
}

// ConvertCompound converts mass kg of source into the equivalent mass of
// target, conserving element.
func ConvertCompound(mass float64, source, target, element string) (float64, error) {
	return Default().ConvertCompound(mass, source, target, element)
}

// ElementMassFraction returns the mass fraction of element in compound.
func ElementMassFraction(compound, element string) (float64, error) {
	return Default().ElementMassFraction(compound, element)
}

// ElementMassFractions returns the mass fractions of elements in compound.
func ElementMassFractions(compound string, elements []string) ([]float64, error) {
	return Default().ElementMassFractions(compound, elements)
}

// Elements returns the union of elements appearing in compounds.
func Elements(compounds []string) (ElementSet, error) {
	return Default().Elements(compounds)
}

// StoichiometryCoefficient returns the coefficient of element in compound.
func StoichiometryCoefficient(compound, element string) (float64, error) {
	return Default().StoichiometryCoefficient(compound, element)
}

// StoichiometryCoefficients returns the coefficients of elements in compound.
func StoichiometryCoefficients(compound string, elements []string) ([]float64, error) {
	return Default().StoichiometryCoefficients(compound, elements)
}
