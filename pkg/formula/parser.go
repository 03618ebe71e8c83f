// Package formula parses chemical formulas and evaluates their element counts.
//
// # Usage
//
//	c, err := formula.Parse("CaAl2(Si2O7)(OH)2.H2O", element.Default())
//	if err != nil {
//	    // handle error
//	}
//	counts := formula.Count(c) // {Al:2, Ca:1, H:4, O:10, Si:2}
//
// # Grammar
//
//	compound           → group [dotted_group] [phase]
//	group              → (subscripted_group | subscripted_element)+
//	subscripted_group  → "(" group ")" [number]
//	subscripted_element→ element [number]
//	dotted_group       → ("." | "·") [number] group
//	phase              → "[" identifier "]"
//	element            → uppercase lowercase*
//	number             → digits ["." digits]
//
// A hydrate group is added to the main group, not multiplied into it:
// CaSO4.2H2O holds 6 oxygen.
package formula

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/metalcalc/pkg/element"
	"github.com/leapstack-labs/metalcalc/pkg/token"
)

// Parser parses a formula into a Compound.
type Parser struct {
	formula string
	table   *element.Table
	lexer   *Lexer
	token   token.Token // current token
	peek    token.Token // lookahead token
	depth   int         // parenthesis nesting
	err     error
}

// NewParser creates a parser for the given formula. A nil table selects
// element.Default().
func NewParser(formula string, table *element.Table) *Parser {
	if table == nil {
		table = element.Default()
	}
	p := &Parser{
		formula: formula,
		table:   table,
		lexer:   NewLexer(formula),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the formula using the given element table.
func Parse(formula string, table *element.Table) (*Compound, error) {
	return NewParser(formula, table).Parse()
}

// Parse runs the parser. An empty or whitespace-only formula yields an empty
// Compound.
func (p *Parser) Parse() (*Compound, error) {
	c := p.parseCompound()
	if p.err != nil {
		return nil, p.err
	}
	return c, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// failed reports whether an error has been recorded.
func (p *Parser) failed() bool {
	return p.err != nil
}

// syntaxError records a syntax error at pos. Only the first error is kept.
func (p *Parser) syntaxError(pos token.Position, format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Formula: p.formula,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// unexpected records an error describing the current token.
func (p *Parser) unexpected() {
	switch p.token.Type {
	case token.ILLEGAL:
		p.syntaxError(p.token.Pos, errIllegalChar, p.token.Literal)
	case token.RPAREN:
		p.syntaxError(p.token.Pos, errStrayParen)
	case token.DOT:
		if p.depth > 0 {
			p.syntaxError(p.token.Pos, errNestedHydrate)
		} else {
			p.syntaxError(p.token.Pos, errSecondHydrate)
		}
	default:
		p.syntaxError(p.token.Pos, errUnexpected, describe(p.token))
	}
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of formula"
	case token.NUMBER:
		return fmt.Sprintf("number %q", tok.Literal)
	case token.IDENT:
		return fmt.Sprintf("identifier %q", tok.Literal)
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}

// ---------- Grammar ----------

// parseCompound parses: group [dotted_group] [phase] EOF
func (p *Parser) parseCompound() *Compound {
	c := &Compound{Source: p.formula}

	if p.check(token.EOF) {
		c.Main = &Group{Multiplier: 1, Position: p.token.Pos}
		return c
	}

	c.Main = p.parseGroup(false)
	if p.failed() {
		return nil
	}

	if p.check(token.DOT) {
		c.Dotted = p.parseDottedGroup()
		if p.failed() {
			return nil
		}
	}

	if p.check(token.LBRACKET) {
		c.Phase = p.parsePhase()
		if p.failed() {
			return nil
		}
	}

	if !p.check(token.EOF) {
		p.unexpected()
		return nil
	}
	return c
}

// parseGroup parses one or more subscripted elements or groups into an
// unparenthesized group with multiplier 1.
func (p *Parser) parseGroup(dotted bool) *Group {
	g := &Group{Multiplier: 1, Dotted: dotted, Position: p.token.Pos}

	for !p.failed() {
		var n Node
		switch p.token.Type {
		case token.ELEMENT:
			n = p.parseSubscriptedElement()
		case token.LPAREN:
			n = p.parseSubscriptedGroup()
		default:
			if len(g.Children) == 0 {
				p.expectedElement()
				return nil
			}
			return g
		}
		if n != nil {
			g.Children = append(g.Children, n)
		}
	}
	return nil
}

func (p *Parser) expectedElement() {
	switch p.token.Type {
	case token.ILLEGAL, token.RPAREN:
		p.unexpected()
	default:
		p.syntaxError(p.token.Pos, errExpectedElement, describe(p.token))
	}
}

// parseSubscriptedElement parses: element [number]
func (p *Parser) parseSubscriptedElement() Node {
	el := p.parseElement()
	if el == nil {
		return nil
	}
	if !p.check(token.NUMBER) {
		return el
	}
	mult, ok := p.parseNumber()
	if !ok {
		return nil
	}
	return &Group{
		Children:   []Node{el},
		Multiplier: mult,
		Position:   el.Position,
	}
}

// parseElement validates the current ELEMENT token against the table.
func (p *Parser) parseElement() *Element {
	tok := p.token
	if !p.table.Has(tok.Literal) {
		if p.err == nil {
			hint := p.table.LongestSymbol(tok.Literal)
			if hint == tok.Literal {
				hint = ""
			}
			p.err = &UnknownElementError{
				Formula: p.formula,
				Pos:     tok.Pos,
				Symbol:  tok.Literal,
				Hint:    hint,
			}
		}
		return nil
	}
	p.nextToken()
	return &Element{Symbol: tok.Literal, Position: tok.Pos}
}

// parseSubscriptedGroup parses: "(" group ")" [number]
func (p *Parser) parseSubscriptedGroup() Node {
	open := p.token.Pos
	p.nextToken() // consume (

	switch {
	case p.check(token.RPAREN):
		p.syntaxError(open, errEmptyGroup)
		return nil
	case p.check(token.EOF):
		p.syntaxError(open, errUnclosedParen, open.Column)
		return nil
	}

	p.depth++
	inner := p.parseGroup(false)
	if p.failed() {
		return nil
	}
	if !p.match(token.RPAREN) {
		if p.check(token.EOF) {
			p.syntaxError(open, errUnclosedParen, open.Column)
		} else {
			p.unexpected()
		}
		return nil
	}
	p.depth--

	g := &Group{
		Children:   inner.Children,
		Multiplier: 1,
		Parens:     true,
		Position:   open,
	}
	if p.check(token.NUMBER) {
		mult, ok := p.parseNumber()
		if !ok {
			return nil
		}
		g.Multiplier = mult
	}
	return g
}

// parseDottedGroup parses: "." [number] group
func (p *Parser) parseDottedGroup() *Group {
	dot := p.token.Pos
	p.nextToken() // consume . or ·

	mult := 1.0
	if p.check(token.NUMBER) {
		var ok bool
		if mult, ok = p.parseNumber(); !ok {
			return nil
		}
	}

	g := p.parseGroup(true)
	if p.failed() {
		return nil
	}
	g.Multiplier = mult
	g.Position = dot
	return g
}

// parsePhase parses: "[" identifier "]"
func (p *Parser) parsePhase() string {
	open := p.token.Pos
	p.nextToken() // consume [

	switch {
	case p.check(token.RBRACKET):
		p.syntaxError(open, errEmptyPhase)
		return ""
	case p.check(token.EOF):
		p.syntaxError(open, errUnclosedPhase, open.Column)
		return ""
	case !p.check(token.IDENT):
		p.unexpected()
		return ""
	}

	phase := p.token.Literal
	p.nextToken()

	if !p.match(token.RBRACKET) {
		if p.check(token.EOF) {
			p.syntaxError(open, errUnclosedPhase, open.Column)
		} else {
			p.unexpected()
		}
		return ""
	}
	return phase
}

// parseNumber consumes the current NUMBER token.
func (p *Parser) parseNumber() (float64, bool) {
	tok := p.token
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.syntaxError(tok.Pos, errInvalidNumber, tok.Literal)
		return 0, false
	}
	p.nextToken()
	return v, true
}
