package commands

import (
	"github.com/spf13/cobra"
)

// NewFractionsCommand creates the fractions command.
func NewFractionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fractions <formula> [element...]",
		Short: "Show element mass fractions of a compound",
		Long: `Show the mass fraction of each element in a compound.

Without element arguments every element of the compound is listed in
alphabetical order.`,
		Example: `  # All elements of gypsum
  metalcalc fractions CaSO4.2H2O

  # Iron content of several oxides
  metalcalc fractions Fe3O4 Fe`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFractions(cmd, args[0], args[1:])
		},
	}
}

func runFractions(cmd *cobra.Command, arg string, elements []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	f := cmdCtx.resolve(arg)

	if len(elements) == 0 {
		counts, err := cmdCtx.Calc.Counts(f)
		if err != nil {
			return err
		}
		elements = counts.Symbols()
	}

	fractions, err := cmdCtx.Calc.ElementMassFractions(f, elements)
	if err != nil {
		return err
	}
	return renderElementValues(cmdCtx, f, elements, fractions, "Mass fraction")
}
