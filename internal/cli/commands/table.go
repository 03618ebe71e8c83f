package commands

import (
	"fmt"

	"github.com/leapstack-labs/metalcalc/pkg/element"
	"github.com/spf13/cobra"
)

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	var class string
	var metals bool

	cmd := &cobra.Command{
		Use:   "table [symbol...]",
		Short: "List elements of the periodic table",
		Long: `List elements of the built-in periodic table with their atomic
masses in kg/kmol. Without arguments every element is listed by atomic number.`,
		Example: `  # Everything
  metalcalc table

  # Selected symbols
  metalcalc table Fe Cr Ni

  # Only lanthanides
  metalcalc table --class lanthanide`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, args, class, metals)
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Only list elements of this class (e.g. \"transition metal\")")
	cmd.Flags().BoolVar(&metals, "metals", false, "Only list metals")
	return cmd
}

func runTable(cmd *cobra.Command, symbols []string, class string, metals bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	tbl := cmdCtx.Calc.Table()

	var want element.Class
	if class != "" {
		var ok bool
		if want, ok = element.ParseClass(class); !ok {
			return fmt.Errorf("unknown element class %q", class)
		}
	}

	var candidates []element.Element
	if len(symbols) == 0 {
		candidates = tbl.All()
	} else {
		for _, sym := range symbols {
			el, err := tbl.Lookup(sym)
			if err != nil {
				return err
			}
			candidates = append(candidates, el)
		}
	}

	elements := candidates[:0]
	for _, el := range candidates {
		if class != "" && el.Class != want {
			continue
		}
		if metals && !el.Class.IsMetal() {
			continue
		}
		elements = append(elements, el)
	}
	return renderElementTable(cmdCtx.Renderer, elements)
}
