// Package token defines the token types produced by the chemical formula lexer.
package token

import (
	"fmt"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // token.TokenType reads better than token.Type at call sites
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	ELEMENT // Fe, O, Co
	NUMBER  // 2, 0.95
	IDENT   // phase tag contents: S1, L, G

	// Delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	DOT      // . or ·
)

// String returns the display name of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:      "EOF",
	ILLEGAL:  "ILLEGAL",
	ELEMENT:  "ELEMENT",
	NUMBER:   "NUMBER",
	IDENT:    "IDENT",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
	DOT:      ".",
}

// IsDelimiter reports whether t is a grouping or separator token.
func IsDelimiter(t TokenType) bool {
	switch t {
	case LPAREN, RPAREN, LBRACKET, RBRACKET, DOT:
		return true
	}
	return false
}

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}

// End returns the position just past the token's literal.
func (t Token) End() Position {
	return Position{
		Line:   t.Pos.Line,
		Column: t.Pos.Column + utf8.RuneCountInString(t.Literal),
		Offset: t.Pos.Offset + len(t.Literal),
	}
}
