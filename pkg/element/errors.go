package element

import (
	"fmt"
	"strings"
)

// UnknownSymbolError is returned when a symbol is not present in a Table.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown element symbol %q", e.Symbol)
}

// DuplicateSymbolError is returned by NewTable when two entries share a symbol.
type DuplicateSymbolError struct {
	Symbol string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate element symbol %q", e.Symbol)
}

// InvalidSymbolError is returned by NewTable for symbols that the formula
// grammar could never produce.
type InvalidSymbolError struct {
	Symbol string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid element symbol %q: want an uppercase letter followed by lowercase letters", e.Symbol)
}

// validSymbol reports whether s is an uppercase ASCII letter followed by zero
// or more lowercase ASCII letters.
func validSymbol(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	return strings.IndexFunc(s[1:], func(r rune) bool { return r < 'a' || r > 'z' }) < 0
}
