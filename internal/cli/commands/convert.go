package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ConvertOptions holds options for the convert command.
type ConvertOptions struct {
	Mass    float64
	From    string
	To      string
	Element string
}

// ConvertResult is the structured output of the convert command.
type ConvertResult struct {
	Element    string  `json:"element" yaml:"element"`
	Source     string  `json:"source" yaml:"source"`
	Target     string  `json:"target" yaml:"target"`
	SourceMass float64 `json:"source_mass_kg" yaml:"source_mass_kg"`
	TargetMass float64 `json:"target_mass_kg" yaml:"target_mass_kg"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a mass of one compound into another by a shared element",
		Long: `Convert a mass of the source compound into the mass of the target
compound that contains the same mass of the given element.

The result is 0 when the target compound does not contain the element.`,
		Example: `  # Mass of Fe2O3 holding the iron of 1000 kg of Fe3O4
  metalcalc convert --mass 1000 --from Fe3O4 --to Fe2O3 --element Fe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.Mass, "mass", 0, "Mass of the source compound in kg")
	cmd.Flags().StringVar(&opts.From, "from", "", "Source compound formula or alias")
	cmd.Flags().StringVar(&opts.To, "to", "", "Target compound formula or alias")
	cmd.Flags().StringVarP(&opts.Element, "element", "e", "", "Element shared by both compounds")
	_ = cmd.MarkFlagRequired("mass")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("element")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *ConvertOptions) error {
	if opts.Mass < 0 {
		return errors.New("--mass must not be negative")
	}

	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	res := ConvertResult{
		Element:    opts.Element,
		Source:     cmdCtx.resolve(opts.From),
		Target:     cmdCtx.resolve(opts.To),
		SourceMass: opts.Mass,
	}
	res.TargetMass, err = cmdCtx.Calc.ConvertCompound(res.SourceMass, res.Source, res.Target, res.Element)
	if err != nil {
		return err
	}

	if ok, err := r.Structured(res); ok {
		return err
	}

	renderDetails(r, fmt.Sprintf("%s → %s (by %s)", res.Source, res.Target, res.Element), []keyValue{
		{"Source mass", r.Number(res.SourceMass) + " kg " + res.Source},
		{"Target mass", r.Number(res.TargetMass) + " kg " + res.Target},
	})
	if res.TargetMass == 0 && res.SourceMass != 0 {
		r.Warning(fmt.Sprintf("%s contains no %s", res.Target, res.Element))
	}
	return nil
}
