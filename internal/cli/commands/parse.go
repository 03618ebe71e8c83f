package commands

import (
	"strings"

	"github.com/leapstack-labs/metalcalc/internal/cli/output"
	"github.com/leapstack-labs/metalcalc/pkg/formula"
	"github.com/spf13/cobra"
)

// ParseResult is the structured output of the parse command.
type ParseResult struct {
	Input     string             `json:"input" yaml:"input"`
	Canonical string             `json:"canonical" yaml:"canonical"`
	Phase     string             `json:"phase,omitempty" yaml:"phase,omitempty"`
	Hydrate   bool               `json:"hydrate" yaml:"hydrate"`
	MolarMass float64            `json:"molar_mass" yaml:"molar_mass"`
	Counts    map[string]float64 `json:"counts" yaml:"counts"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "parse <formula>",
		Short: "Parse a formula and show its structure",
		Long: `Parse a formula and show its canonical form, phase, element counts
and, with --tree, the parsed group structure.

Syntax errors report the column of the offending character.`,
		Example: `  metalcalc parse "CaAl2(Si2O7)(OH)2.H2O[S1]" --tree`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], showTree)
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "Show the parsed group structure")
	return cmd
}

func runParse(cmd *cobra.Command, arg string, showTree bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer
	f := cmdCtx.resolve(arg)

	entry, err := cmdCtx.Calc.Lookup(f)
	if err != nil {
		return err
	}
	c := entry.Compound

	res := ParseResult{
		Input:     arg,
		Canonical: formula.Format(c),
		Phase:     c.Phase,
		Hydrate:   c.Dotted != nil,
		MolarMass: entry.MolarMass,
		Counts:    entry.Counts.Clone(),
	}

	if ok, err := r.Structured(res); ok {
		return err
	}

	phase := "-"
	if c.HasPhase() {
		phase = c.Phase
	}
	renderDetails(r, res.Canonical, []keyValue{
		{"Phase", phase},
		{"Molar mass", r.Number(res.MolarMass) + " kg/kmol"},
	})
	r.Println("")

	rows := make([][]string, 0, len(res.Counts))
	for _, sym := range entry.Counts.Symbols() {
		rows = append(rows, []string{sym, r.Number(res.Counts[sym])})
	}
	r.Table([]string{"Element", "Count"}, rows)

	if showTree {
		r.Println("")
		tree := strings.TrimRight(formula.Tree(c), "\n")
		if r.EffectiveMode() == output.ModeMarkdown {
			tree = output.FormatCodeBlock(tree)
		}
		r.Println(tree)
	}
	return nil
}
