package commands

import (
	"strconv"

	"github.com/leapstack-labs/metalcalc/internal/cli/output"
	"github.com/leapstack-labs/metalcalc/pkg/element"
	"github.com/spf13/cobra"
)

// NewElementsCommand creates the elements command.
func NewElementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "elements <formula>...",
		Short: "List the distinct elements of one or more compounds",
		Example: `  metalcalc elements Fe2O3 SiO2 CaO Al2O3`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElements(cmd, args)
		},
	}
}

func runElements(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	set, err := cmdCtx.Calc.Elements(cmdCtx.Cfg.ResolveAll(args))
	if err != nil {
		return err
	}

	tbl := cmdCtx.Calc.Table()
	symbols := set.Sorted()
	elements := make([]element.Element, 0, len(symbols))
	for _, sym := range symbols {
		el, err := tbl.Lookup(sym)
		if err != nil {
			return err
		}
		elements = append(elements, el)
	}
	return renderElementTable(cmdCtx.Renderer, elements)
}

func renderElementTable(r *output.Renderer, elements []element.Element) error {
	if ok, err := r.Structured(elements); ok {
		return err
	}

	rows := make([][]string, 0, len(elements))
	for _, el := range elements {
		group := "-"
		if el.Group > 0 {
			group = strconv.Itoa(el.Group)
		}
		rows = append(rows, []string{
			strconv.Itoa(el.Number),
			el.Symbol,
			el.Name,
			strconv.Itoa(el.Period),
			group,
			el.Class.String(),
			r.Number(el.AtomicMass),
		})
	}
	r.Table([]string{"Z", "Symbol", "Name", "Period", "Group", "Class", "Atomic mass"}, rows)
	return nil
}
