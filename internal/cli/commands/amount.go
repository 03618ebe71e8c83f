package commands

import (
	"github.com/spf13/cobra"
)

// ConversionResult is the structured output of the amount and mass commands.
type ConversionResult struct {
	Formula   string  `json:"formula" yaml:"formula"`
	MolarMass float64 `json:"molar_mass" yaml:"molar_mass"`
	Mass      float64 `json:"mass_kg" yaml:"mass_kg"`
	Amount    float64 `json:"amount_kmol" yaml:"amount_kmol"`
}

// NewAmountCommand creates the amount command.
func NewAmountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "amount <formula> <mass-kg>",
		Short: "Convert a mass in kg to an amount in kmol",
		Long: `Convert a mass of compound in kg to the corresponding amount in kmol.

An empty formula has zero molar mass and cannot be converted.`,
		Example: `  # Amount of 1000 kg of hematite
  metalcalc amount Fe2O3 1000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, args[0], args[1], true)
		},
	}
}

// NewMassCommand creates the mass command.
func NewMassCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mass <formula> <amount-kmol>",
		Short: "Convert an amount in kmol to a mass in kg",
		Example: `  # Mass of 2.5 kmol of silica
  metalcalc mass SiO2 2.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, args[0], args[1], false)
		},
	}
}

func runConversion(cmd *cobra.Command, arg, quantity string, toAmount bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer
	f := cmdCtx.resolve(arg)

	res := ConversionResult{Formula: f}
	if toAmount {
		if res.Mass, err = parseQuantity("mass", quantity); err != nil {
			return err
		}
		if res.Amount, err = cmdCtx.Calc.Amount(f, res.Mass); err != nil {
			return err
		}
	} else {
		if res.Amount, err = parseQuantity("amount", quantity); err != nil {
			return err
		}
		if res.Mass, err = cmdCtx.Calc.Mass(f, res.Amount); err != nil {
			return err
		}
	}
	if res.MolarMass, err = cmdCtx.Calc.MolarMass(f); err != nil {
		return err
	}

	if ok, err := r.Structured(res); ok {
		return err
	}

	renderDetails(r, f, []keyValue{
		{"Molar mass", r.Number(res.MolarMass) + " kg/kmol"},
		{"Mass", r.Number(res.Mass) + " kg"},
		{"Amount", r.Number(res.Amount) + " kmol"},
	})
	return nil
}
