package commands

import (
	"github.com/spf13/cobra"
)

// ElementValue pairs an element symbol with a per-element quantity.
type ElementValue struct {
	Element string  `json:"element" yaml:"element"`
	Value   float64 `json:"value" yaml:"value"`
}

// ElementValuesResult is the structured output of coeff and fractions.
type ElementValuesResult struct {
	Formula string         `json:"formula" yaml:"formula"`
	Values  []ElementValue `json:"values" yaml:"values"`
}

// NewCoeffCommand creates the coeff command.
func NewCoeffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coeff <formula> <element>...",
		Short: "Show stoichiometric coefficients of elements in a compound",
		Long: `Show how many atoms of each element one formula unit contains.

A valid element that does not occur in the compound has coefficient 0;
a symbol missing from the periodic table is an error.`,
		Example: `  metalcalc coeff "CaAl2(Si2O7)(OH)2.H2O" Ca Si O H Fe`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoeff(cmd, args[0], args[1:])
		},
	}
}

func runCoeff(cmd *cobra.Command, arg string, elements []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	f := cmdCtx.resolve(arg)

	coeffs, err := cmdCtx.Calc.StoichiometryCoefficients(f, elements)
	if err != nil {
		return err
	}
	return renderElementValues(cmdCtx, f, elements, coeffs, "Coefficient")
}

func renderElementValues(cmdCtx *CommandContext, f string, elements []string, values []float64, label string) error {
	r := cmdCtx.Renderer

	res := ElementValuesResult{Formula: f, Values: make([]ElementValue, len(elements))}
	for i, el := range elements {
		res.Values[i] = ElementValue{Element: el, Value: values[i]}
	}

	if ok, err := r.Structured(res); ok {
		return err
	}

	rows := make([][]string, 0, len(res.Values))
	for _, v := range res.Values {
		rows = append(rows, []string{v.Element, r.Number(v.Value)})
	}
	r.Header(2, f)
	r.Table([]string{"Element", label}, rows)
	return nil
}
