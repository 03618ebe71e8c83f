// Package element provides the immutable periodic table used by the formula
// parser and stoichiometry calculator.
//
// Atomic masses are expressed in kg/kmol (numerically equal to g/mol).
package element

import (
	"fmt"
	"strings"
)

// Class is the chemical classification of an element.
type Class int

// Element classes.
const (
	ClassUnknown Class = iota
	ClassAlkaliMetal
	ClassAlkalineEarthMetal
	ClassTransitionMetal
	ClassPostTransitionMetal
	ClassMetalloid
	ClassNonmetal
	ClassHalogen
	ClassNobleGas
	ClassLanthanide
	ClassActinide
)

// String returns the string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassAlkaliMetal:
		return "alkali metal"
	case ClassAlkalineEarthMetal:
		return "alkaline earth metal"
	case ClassTransitionMetal:
		return "transition metal"
	case ClassPostTransitionMetal:
		return "post-transition metal"
	case ClassMetalloid:
		return "metalloid"
	case ClassNonmetal:
		return "nonmetal"
	case ClassHalogen:
		return "halogen"
	case ClassNobleGas:
		return "noble gas"
	case ClassLanthanide:
		return "lanthanide"
	case ClassActinide:
		return "actinide"
	default:
		return "unknown"
	}
}

// ParseClass converts a string to a Class value.
// Returns ClassUnknown and false if the string names no class.
func ParseClass(s string) (Class, bool) {
	for c := ClassAlkaliMetal; c <= ClassActinide; c++ {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return ClassUnknown, false
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a class name. "unknown" maps to ClassUnknown.
func (c *Class) UnmarshalText(b []byte) error {
	s := string(b)
	if strings.EqualFold(s, ClassUnknown.String()) {
		*c = ClassUnknown
		return nil
	}
	v, ok := ParseClass(s)
	if !ok {
		return fmt.Errorf("unknown element class %q", s)
	}
	*c = v
	return nil
}

// IsMetal reports whether the class is one of the metal classes.
func (c Class) IsMetal() bool {
	switch c {
	case ClassAlkaliMetal, ClassAlkalineEarthMetal, ClassTransitionMetal,
		ClassPostTransitionMetal, ClassLanthanide, ClassActinide:
		return true
	}
	return false
}

// Element describes one chemical element.
type Element struct {
	Symbol     string  `json:"symbol" yaml:"symbol"`
	Name       string  `json:"name" yaml:"name"`
	Number     int     `json:"number" yaml:"number"`
	Period     int     `json:"period" yaml:"period"`
	Group      int     `json:"group" yaml:"group"` // 0 for f-block elements outside groups 1-18
	AtomicMass float64 `json:"atomic_mass" yaml:"atomic_mass"`
	Class      Class   `json:"class" yaml:"class"`
}
