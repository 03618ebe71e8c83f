package formula

import "github.com/leapstack-labs/metalcalc/pkg/token"

// Node is a node of a parsed formula. The set of implementations is closed:
// *Element, *Group and *Compound.
type Node interface {
	Pos() token.Position
	formulaNode()
}

// Element is a single element occurrence with an implicit multiplier of 1.
type Element struct {
	Symbol   string
	Position token.Position
}

// Group is a run of nodes sharing one multiplier. Parens marks a
// parenthesized group; a subscripted element such as O2 is an implicit group
// holding one Element. Dotted marks the hydrate group of a Compound.
type Group struct {
	Children   []Node
	Multiplier float64
	Parens     bool
	Dotted     bool
	Position   token.Position
}

// Compound is the parse result of one formula string.
type Compound struct {
	Source string
	Main   *Group
	Dotted *Group // nil when the formula has no hydrate group
	Phase  string // "" when the formula has no phase tag
}

func (e *Element) Pos() token.Position { return e.Position }
func (g *Group) Pos() token.Position   { return g.Position }

// Pos returns the position of the start of the formula.
func (c *Compound) Pos() token.Position {
	if c.Main != nil && len(c.Main.Children) > 0 {
		return c.Main.Position
	}
	return token.Position{Line: 1, Column: 1}
}

func (*Element) formulaNode()  {}
func (*Group) formulaNode()    {}
func (*Compound) formulaNode() {}

// IsEmpty reports whether the compound was parsed from an empty formula.
func (c *Compound) IsEmpty() bool {
	return (c.Main == nil || len(c.Main.Children) == 0) && c.Dotted == nil
}

// HasPhase reports whether the formula carried a phase tag.
func (c *Compound) HasPhase() bool {
	return c.Phase != ""
}

// Walk traverses the tree rooted at n depth-first, calling fn for each node.
// Children are skipped when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Compound:
		if n.Main != nil {
			Walk(n.Main, fn)
		}
		if n.Dotted != nil {
			Walk(n.Dotted, fn)
		}
	case *Group:
		for _, child := range n.Children {
			Walk(child, fn)
		}
	case *Element:
	}
}
