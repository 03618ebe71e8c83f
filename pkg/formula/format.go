package formula

import (
	"strconv"
	"strings"
)

// Format renders n back into formula notation. Parsing the result yields the
// same element counts.
func Format(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

// String returns the canonical formula text of the compound.
func (c *Compound) String() string {
	return Format(c)
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Element:
		sb.WriteString(n.Symbol)
	case *Group:
		writeGroup(sb, n)
	case *Compound:
		if n.Main != nil {
			writeNode(sb, n.Main)
		}
		if n.Dotted != nil {
			writeNode(sb, n.Dotted)
		}
		if n.Phase != "" {
			sb.WriteByte('[')
			sb.WriteString(n.Phase)
			sb.WriteByte(']')
		}
	}
}

func writeGroup(sb *strings.Builder, g *Group) {
	if g.Dotted {
		sb.WriteByte('.')
		writeMultiplier(sb, g.Multiplier)
		writeChildren(sb, g.Children)
		return
	}
	if g.Parens {
		sb.WriteByte('(')
		writeChildren(sb, g.Children)
		sb.WriteByte(')')
	} else {
		writeChildren(sb, g.Children)
	}
	writeMultiplier(sb, g.Multiplier)
}

func writeChildren(sb *strings.Builder, children []Node) {
	for _, child := range children {
		writeNode(sb, child)
	}
}

func writeMultiplier(sb *strings.Builder, m float64) {
	if m == 1 {
		return
	}
	sb.WriteString(FormatNumber(m))
}

// FormatNumber renders a multiplier the shortest way that parses back to m.
func FormatNumber(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// Tree renders an indented outline of n, one node per line.
func Tree(n Node) string {
	var sb strings.Builder
	writeTree(&sb, n, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case *Element:
		sb.WriteString(indent + "Element " + n.Symbol + "\n")
	case *Group:
		kind := "Group"
		switch {
		case n.Dotted:
			kind = "DottedGroup"
		case n.Parens:
			kind = "Group ()"
		}
		sb.WriteString(indent + kind + " x" + FormatNumber(n.Multiplier) + "\n")
		for _, child := range n.Children {
			writeTree(sb, child, depth+1)
		}
	case *Compound:
		line := indent + "Compound"
		if n.Phase != "" {
			line += " [" + n.Phase + "]"
		}
		sb.WriteString(line + "\n")
		if n.Main != nil {
			writeTree(sb, n.Main, depth+1)
		}
		if n.Dotted != nil {
			writeTree(sb, n.Dotted, depth+1)
		}
	}
}
