package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leapstack-labs/metalcalc/internal/cli/testutil"
	"github.com/leapstack-labs/metalcalc/internal/config"
	"github.com/leapstack-labs/metalcalc/pkg/element"
	"github.com/leapstack-labs/metalcalc/pkg/formula"
	"github.com/leapstack-labs/metalcalc/pkg/stoich"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	massFe = 55.845
	massO  = 15.9994
)

func testConfig(output string) *config.Config {
	cfg := config.Default()
	cfg.Output = output
	cfg.Aliases = map[string]string{"hematite": "Fe2O3", "magnetite": "Fe3O4"}
	return cfg
}

func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(config.WithConfig(context.Background(), cfg))
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewMolarMassCommand(), "molar-mass <formula>...", nil},
		{NewAmountCommand(), "amount <formula> <mass-kg>", nil},
		{NewMassCommand(), "mass <formula> <amount-kmol>", nil},
		{NewCoeffCommand(), "coeff <formula> <element>...", nil},
		{NewFractionsCommand(), "fractions <formula> [element...]", nil},
		{NewElementsCommand(), "elements <formula>...", nil},
		{NewConvertCommand(), "convert", []string{"mass", "from", "to", "element"}},
		{NewParseCommand(), "parse <formula>", []string{"tree"}},
		{NewTableCommand(), "table [symbol...]", []string{"class", "metals"}},
		{NewREPLCommand(), "repl", []string{"no-history"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}

	assert.Equal(t, []string{"mm"}, NewMolarMassCommand().Aliases)
}

func TestMolarMassCommand(t *testing.T) {
	out, _, err := execute(t, NewMolarMassCommand(), testConfig("json"), "hematite", "CaSO4.2H2O", "Al2O3[S1]")
	require.NoError(t, err)

	var results []MolarMassResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	assert.Equal(t, "hematite", results[0].Input)
	assert.Equal(t, "Fe2O3", results[0].Formula)
	assert.InDelta(t, 2*massFe+3*massO, results[0].MolarMass, 1e-9)
	assert.InDelta(t, 172.17116, results[1].MolarMass, 1e-9)
	assert.InDelta(t, 101.9612772, results[2].MolarMass, 1e-9)
}

func TestMolarMassCommandMarkdown(t *testing.T) {
	out, _, err := execute(t, NewMolarMassCommand(), testConfig("markdown"), "Fe2O3")
	require.NoError(t, err)

	assert.Contains(t, out, "| Fe2O3 | 159.6882 |")
	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
}

func TestMolarMassCommandErrors(t *testing.T) {
	_, _, err := execute(t, NewMolarMassCommand(), testConfig("json"), "Fe2Xx3")
	var unknown *formula.UnknownElementError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Xx", unknown.Symbol)

	_, _, err = execute(t, NewMolarMassCommand(), testConfig("json"), "Fe2O3)")
	var syntax *formula.SyntaxError
	require.ErrorAs(t, err, &syntax)

	_, _, err = execute(t, NewMolarMassCommand(), testConfig("json"))
	assert.Error(t, err, "at least one formula is required")
}

func TestAmountAndMassCommands(t *testing.T) {
	mm := 2*massFe + 3*massO

	out, _, err := execute(t, NewAmountCommand(), testConfig("json"), "hematite", "1000")
	require.NoError(t, err)
	var res ConversionResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Fe2O3", res.Formula)
	assert.InDelta(t, 1000/mm, res.Amount, 1e-9)
	assert.InDelta(t, mm, res.MolarMass, 1e-9)

	out, _, err = execute(t, NewMassCommand(), testConfig("json"), "Fe2O3", "2.5")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 2.5*mm, res.Mass, 1e-9)

	out, _, err = execute(t, NewMassCommand(), testConfig("markdown"), "Fe2O3", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "## Fe2O3")
	assert.Contains(t, out, "- **Mass**: 159.6882 kg")

	_, _, err = execute(t, NewAmountCommand(), testConfig("json"), " ", "10")
	assert.ErrorIs(t, err, stoich.ErrZeroMolarMass)

	_, _, err = execute(t, NewAmountCommand(), testConfig("json"), "Fe2O3", "ten")
	assert.ErrorContains(t, err, "invalid mass")
}

func TestParseQuantity(t *testing.T) {
	v, err := parseQuantity("mass", " 12.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, v, 0)

	_, err = parseQuantity("amount", "-1")
	assert.ErrorContains(t, err, "must not be negative")
}

func TestCoeffCommand(t *testing.T) {
	out, _, err := execute(t, NewCoeffCommand(), testConfig("json"), "CaAl2(Si2O7)(OH)2.H2O", "Ca", "Si", "O", "H", "Fe")
	require.NoError(t, err)

	var res ElementValuesResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	got := map[string]float64{}
	for _, v := range res.Values {
		got[v.Element] = v.Value
	}
	assert.Equal(t, map[string]float64{"Ca": 1, "Si": 2, "O": 10, "H": 4, "Fe": 0}, got)

	_, _, err = execute(t, NewCoeffCommand(), testConfig("json"), "Fe2O3", "Xx")
	var unknown *element.UnknownSymbolError
	assert.ErrorAs(t, err, &unknown)
}

func TestFractionsCommand(t *testing.T) {
	out, _, err := execute(t, NewFractionsCommand(), testConfig("json"), "Fe2O3")
	require.NoError(t, err)

	var res ElementValuesResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Values, 2)
	assert.Equal(t, "Fe", res.Values[0].Element)
	assert.Equal(t, "O", res.Values[1].Element)
	assert.InDelta(t, 1.0, res.Values[0].Value+res.Values[1].Value, 1e-12)

	out, _, err = execute(t, NewFractionsCommand(), testConfig("yaml"), "SiO2", "Fe")
	require.NoError(t, err)
	assert.Contains(t, out, "element: Fe")
	assert.Contains(t, out, "value: 0")
}

func TestElementsCommand(t *testing.T) {
	out, _, err := execute(t, NewElementsCommand(), testConfig("json"), "hematite", "SiO2", "CaO")
	require.NoError(t, err)

	var elements []element.Element
	require.NoError(t, json.Unmarshal([]byte(out), &elements))
	symbols := make([]string, len(elements))
	for i, el := range elements {
		symbols[i] = el.Symbol
	}
	assert.Equal(t, []string{"Ca", "Fe", "O", "Si"}, symbols)
}

func TestConvertCommand(t *testing.T) {
	out, _, err := execute(t, NewConvertCommand(), testConfig("json"),
		"--mass", "1000", "--from", "magnetite", "--to", "hematite", "--element", "Fe")
	require.NoError(t, err)

	var res ConvertResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	fromFraction := 3 * massFe / (3*massFe + 4*massO)
	toFraction := 2 * massFe / (2*massFe + 3*massO)
	assert.Equal(t, "Fe3O4", res.Source)
	assert.Equal(t, "Fe2O3", res.Target)
	assert.InDelta(t, 1000*fromFraction/toFraction, res.TargetMass, 1e-9)

	_, errOut, err := execute(t, NewConvertCommand(), testConfig("markdown"),
		"--mass", "10", "--from", "Fe2O3", "--to", "SiO2", "--element", "Fe")
	require.NoError(t, err)
	assert.Contains(t, errOut, "SiO2 contains no Fe")

	_, _, err = execute(t, NewConvertCommand(), testConfig("json"), "--mass", "10", "--from", "Fe2O3")
	assert.Error(t, err, "required flags")
}

func TestParseCommand(t *testing.T) {
	out, _, err := execute(t, NewParseCommand(), testConfig("json"), "  CaSO4·2H2O[S1] ")
	require.NoError(t, err)

	var res ParseResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "CaSO4.2H2O[S1]", res.Canonical)
	assert.Equal(t, "S1", res.Phase)
	assert.True(t, res.Hydrate)
	assert.InDelta(t, 172.17116, res.MolarMass, 1e-9)
	assert.Equal(t, map[string]float64{"Ca": 1, "S": 1, "O": 6, "H": 4}, res.Counts)

	out, _, err = execute(t, NewParseCommand(), testConfig("markdown"), "--tree", "(OH)2")
	require.NoError(t, err)
	assert.Contains(t, out, "- **Phase**: -")
	assert.Contains(t, out, "| H | 2.0000 |")
	assert.Contains(t, out, "```")
	testutil.AssertValidMarkdown(t, out)
}

func TestTableCommand(t *testing.T) {
	out, _, err := execute(t, NewTableCommand(), testConfig("json"), "--class", "lanthanide")
	require.NoError(t, err)

	var elements []element.Element
	require.NoError(t, json.Unmarshal([]byte(out), &elements))
	require.NotEmpty(t, elements)
	for _, el := range elements {
		assert.Equal(t, element.ClassLanthanide, el.Class, el.Symbol)
	}

	out, _, err = execute(t, NewTableCommand(), testConfig("markdown"), "--metals", "Fe", "O", "Cu")
	require.NoError(t, err)
	assert.Contains(t, out, "Iron")
	assert.Contains(t, out, "Copper")
	assert.NotContains(t, out, "Oxygen")

	_, _, err = execute(t, NewTableCommand(), testConfig("json"), "--class", "gas")
	assert.ErrorContains(t, err, "unknown element class")

	_, _, err = execute(t, NewTableCommand(), testConfig("json"), "Uuo")
	var unknown *element.UnknownSymbolError
	assert.ErrorAs(t, err, &unknown)
}

func TestPreloadFailsFast(t *testing.T) {
	cfg := testConfig("json")
	cfg.Cache.Preload = []string{"hematite", "Fe2(O3"}

	_, _, err := execute(t, NewMolarMassCommand(), cfg, "SiO2")
	assert.ErrorContains(t, err, "cache.preload")
}

func TestNewCalculatorBoundedCache(t *testing.T) {
	cfg := testConfig("json")
	cfg.Cache.Size = 2
	cfg.Cache.Preload = []string{"hematite", "SiO2", "CaO"}

	calc, err := newCalculator(cfg, config.GetLogger(context.Background()))
	require.NoError(t, err)
	st := calc.Stats()
	assert.Equal(t, 2, st.Entries)
	assert.Equal(t, int64(3), st.Misses)
}

func newTestSession(t *testing.T) (*replSession, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := testConfig("text")
	calc, err := newCalculator(cfg, config.GetLogger(context.Background()))
	require.NoError(t, err)

	tr := testutil.NewTestRendererText()
	cmdCtx := &CommandContext{Cfg: cfg, Logger: config.GetLogger(context.Background()), Calc: calc, Renderer: tr.Renderer}
	return &replSession{cmdCtx: cmdCtx, out: tr.Out, errOut: tr.ErrOut}, tr.Out, tr.ErrOut
}

func TestREPLSession(t *testing.T) {
	s, out, errOut := newTestSession(t)

	assert.False(t, s.eval("   "))
	assert.Empty(t, out.String())

	assert.False(t, s.eval("hematite"))
	assert.Contains(t, out.String(), "Fe2O3  159.6882 kg/kmol")
	assert.Contains(t, out.String(), "Fe 2  O 3")

	out.Reset()
	assert.False(t, s.eval(".coeff CaSO4.2H2O H O"))
	assert.Contains(t, out.String(), "H   4.0000")
	assert.Contains(t, out.String(), "O   6.0000")

	out.Reset()
	assert.False(t, s.eval(".amount Fe2O3 159.6882"))
	assert.Equal(t, "1.0000 kmol\n", out.String())

	out.Reset()
	assert.False(t, s.eval(".elements hematite SiO2"))
	assert.Equal(t, "Fe O Si\n", out.String())

	out.Reset()
	assert.False(t, s.eval(".stats"))
	assert.True(t, strings.HasPrefix(out.String(), "entries "))

	out.Reset()
	assert.False(t, s.eval(".tree (OH)2"))
	assert.Contains(t, out.String(), "Element O")

	assert.False(t, s.eval("Xx"))
	assert.Contains(t, errOut.String(), "Error: unknown element symbol")

	errOut.Reset()
	assert.False(t, s.eval(".coeff Fe2O3"))
	assert.Contains(t, errOut.String(), "usage: .coeff")

	errOut.Reset()
	assert.False(t, s.eval(".bogus"))
	assert.Contains(t, errOut.String(), "Unknown command: .bogus")

	assert.True(t, s.eval(".quit"))
	assert.True(t, s.eval(".EXIT"))
}

func TestREPLCompleter(t *testing.T) {
	s, _, _ := newTestSession(t)
	pc := newREPLCompleter(s.cmdCtx)

	var names []string
	for _, child := range pc.GetChildren() {
		names = append(names, strings.TrimSpace(string(child.GetName())))
	}
	assert.Contains(t, names, ".coeff")
	assert.Contains(t, names, "hematite")
	assert.Contains(t, names, ".quit")
}

func TestErrorsUnwrap(t *testing.T) {
	_, _, err := execute(t, NewFractionsCommand(), testConfig("json"), "Qq2O")
	var unknown *element.UnknownSymbolError
	assert.True(t, errors.As(err, &unknown))
}
