package formula

import (
	"fmt"

	"github.com/leapstack-labs/metalcalc/pkg/element"
	"github.com/leapstack-labs/metalcalc/pkg/token"
)

// SyntaxError represents a malformed formula: a disallowed character, an
// unbalanced parenthesis or bracket, or trailing input.
type SyntaxError struct {
	Formula string
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("formula syntax error in %q at column %d: %s", e.Formula, e.Pos.Column, e.Message)
}

// UnknownElementError represents an element-like token that does not resolve
// in the element table. It unwraps to *element.UnknownSymbolError.
type UnknownElementError struct {
	Formula string
	Pos     token.Position
	Symbol  string
	Hint    string // longest known symbol prefixing Symbol, if any
}

func (e *UnknownElementError) Error() string {
	msg := fmt.Sprintf("unknown element symbol %q in %q at column %d", e.Symbol, e.Formula, e.Pos.Column)
	if e.Hint != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Hint)
	}
	return msg
}

func (e *UnknownElementError) Unwrap() error {
	return &element.UnknownSymbolError{Symbol: e.Symbol}
}

// Common error messages
const (
	errIllegalChar     = "invalid character %q"
	errUnexpected      = "unexpected %s"
	errExpectedElement = "expected an element or '(' but found %s"
	errUnclosedParen   = "unbalanced parentheses: '(' at column %d is never closed"
	errStrayParen      = "unbalanced parentheses: unexpected ')'"
	errEmptyGroup      = "empty group '()'"
	errUnclosedPhase   = "unbalanced brackets: '[' at column %d is never closed"
	errEmptyPhase      = "empty phase tag '[]'"
	errSecondHydrate   = "only one hydrate group is allowed"
	errNestedHydrate   = "hydrate separator is only allowed outside parentheses"
	errInvalidNumber   = "invalid number %q"
)
