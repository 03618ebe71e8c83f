package formula_test

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/metalcalc/pkg/element"
	"github.com/leapstack-labs/metalcalc/pkg/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, f string) *formula.Compound {
	t.Helper()
	c, err := formula.Parse(f, element.Default())
	require.NoError(t, err, f)
	require.NotNil(t, c)
	return c
}

func TestParseStructure(t *testing.T) {
	c := parse(t, "CaAl2(Si2O7)(OH)2.H2O[S1]")

	require.Len(t, c.Main.Children, 4)
	assert.InDelta(t, 1.0, c.Main.Multiplier, 0)
	assert.False(t, c.Main.Parens)

	ca, ok := c.Main.Children[0].(*formula.Element)
	require.True(t, ok)
	assert.Equal(t, "Ca", ca.Symbol)

	al, ok := c.Main.Children[1].(*formula.Group)
	require.True(t, ok, "subscripted element is an implicit group")
	assert.False(t, al.Parens)
	assert.InDelta(t, 2.0, al.Multiplier, 0)

	si2o7, ok := c.Main.Children[2].(*formula.Group)
	require.True(t, ok)
	assert.True(t, si2o7.Parens)
	assert.InDelta(t, 1.0, si2o7.Multiplier, 0, "absent multiplier defaults to 1")

	oh, ok := c.Main.Children[3].(*formula.Group)
	require.True(t, ok)
	assert.True(t, oh.Parens)
	assert.InDelta(t, 2.0, oh.Multiplier, 0)

	require.NotNil(t, c.Dotted)
	assert.True(t, c.Dotted.Dotted)
	assert.InDelta(t, 1.0, c.Dotted.Multiplier, 0)

	assert.Equal(t, "S1", c.Phase)
	assert.True(t, c.HasPhase())
	assert.False(t, c.IsEmpty())
	assert.Equal(t, "CaAl2(Si2O7)(OH)2.H2O[S1]", c.Source)
}

func TestParseEmpty(t *testing.T) {
	for _, f := range []string{"", "   ", "\t\n"} {
		c := parse(t, f)
		assert.True(t, c.IsEmpty())
		assert.Empty(t, formula.Count(c))
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		column  int
		msg     string
	}{
		{"unclosed paren at end", "Fe2O3(", 6, "never closed"},
		{"unclosed paren", "Ca(OH2", 3, "never closed"},
		{"stray close paren", "Fe2O3)", 6, "unexpected ')'"},
		{"empty group", "Ca()2", 3, "empty group"},
		{"unclosed phase", "Fe[S1", 3, "never closed"},
		{"unclosed phase at end", "Fe[", 3, "never closed"},
		{"empty phase", "Fe[]", 3, "empty phase"},
		{"stray bracket", "Fe]", 3, `unexpected "]"`},
		{"input after phase", "Fe[S1]O", 7, `unexpected "O"`},
		{"second hydrate", "CaSO4.2H2O.H2O", 11, "only one hydrate"},
		{"dot without group", "Fe.", 4, "expected an element"},
		{"leading number", "2H2O", 1, "expected an element"},
		{"lowercase start", "fe", 1, `invalid character "f"`},
		{"interior space", "Fe O", 3, `invalid character " "`},
		{"disallowed symbol", "Fe+O", 3, `invalid character "+"`},
		{"hydrate inside group", "(H2O.H2O)", 5, "outside parentheses"},
		{"phase with punctuation", "Fe[s-1]", 5, `invalid character "-"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := formula.Parse(tt.formula, element.Default())
			require.Error(t, err)
			assert.Nil(t, c, "a failed parse must not return a partial compound")

			var syn *formula.SyntaxError
			require.True(t, errors.As(err, &syn), "want SyntaxError, got %T: %v", err, err)
			assert.Equal(t, tt.formula, syn.Formula)
			assert.Equal(t, tt.column, syn.Pos.Column)
			assert.Contains(t, syn.Error(), tt.msg)
		})
	}
}

func TestParseUnknownElement(t *testing.T) {
	tests := []struct {
		formula string
		symbol  string
		column  int
		hint    string
	}{
		{"Xx2O", "Xx", 1, ""},
		{"FeUuo", "Uuo", 3, "U"},
		{"Ca(OHh)2", "Hh", 5, "H"},
		{"H2O.Cn", "Cn", 5, "C"},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			_, err := formula.Parse(tt.formula, element.Default())
			require.Error(t, err)

			var unknown *formula.UnknownElementError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, tt.symbol, unknown.Symbol)
			assert.Equal(t, tt.column, unknown.Pos.Column)
			assert.Equal(t, tt.hint, unknown.Hint)

			var tableErr *element.UnknownSymbolError
			require.True(t, errors.As(err, &tableErr), "should unwrap to the table error")
			assert.Equal(t, tt.symbol, tableErr.Symbol)
		})
	}
}

func TestParseCustomTable(t *testing.T) {
	tbl, err := element.NewTable([]element.Element{
		{Symbol: "H", Number: 1, AtomicMass: 1},
		{Symbol: "O", Number: 8, AtomicMass: 16},
	})
	require.NoError(t, err)

	c, err := formula.Parse("H2O", tbl)
	require.NoError(t, err)
	m, err := formula.MolarMass(c, tbl)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, m, 1e-12)

	_, err = formula.Parse("Fe", tbl)
	var unknown *formula.UnknownElementError
	require.ErrorAs(t, err, &unknown)
}

func TestParseNilTableUsesDefault(t *testing.T) {
	c, err := formula.NewParser("Fe", nil).Parse()
	require.NoError(t, err)
	assert.Equal(t, formula.Counts{"Fe": 1}, formula.Count(c))
}
