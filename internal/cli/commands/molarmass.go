package commands

import (
	"github.com/spf13/cobra"
)

// MolarMassResult is the structured output of the molar-mass command.
type MolarMassResult struct {
	Input     string  `json:"input" yaml:"input"`
	Formula   string  `json:"formula" yaml:"formula"`
	MolarMass float64 `json:"molar_mass" yaml:"molar_mass"`
}

// NewMolarMassCommand creates the molar-mass command.
func NewMolarMassCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "molar-mass <formula>...",
		Aliases: []string{"mm"},
		Short:   "Calculate molar masses in kg/kmol",
		Long: `Calculate the molar mass of one or more chemical formulas.

Formulas may contain parenthesised groups, decimal subscripts, one hydrate
group separated by "." or "·" and a trailing [phase] tag. Names defined under
"aliases" in metalcalc.yaml are expanded first.`,
		Example: `  # Molar mass of hematite
  metalcalc molar-mass Fe2O3

  # Several formulas at once, as JSON
  metalcalc mm CaSO4.2H2O "Al2O3[S1]" Fe0.95O -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMolarMass(cmd, args)
		},
	}
	return cmd
}

func runMolarMass(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	results := make([]MolarMassResult, 0, len(args))
	for _, arg := range args {
		f := cmdCtx.resolve(arg)
		mm, err := cmdCtx.Calc.MolarMass(f)
		if err != nil {
			return err
		}
		results = append(results, MolarMassResult{Input: arg, Formula: f, MolarMass: mm})
	}

	if ok, err := r.Structured(results); ok {
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{res.Formula, r.Number(res.MolarMass)})
	}
	r.Table([]string{"Formula", "Molar mass (kg/kmol)"}, rows)
	return nil
}
