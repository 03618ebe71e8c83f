package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/metalcalc/pkg/formula"
	"github.com/spf13/cobra"
)

const (
	replPrompt      = "metalcalc> "
	replHistoryFile = ".metalcalc_history"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive formula calculator",
		Long: `Start an interactive session. Each line is parsed as a formula and
its molar mass and element counts are printed. Lines starting with "." are
commands; type .help to list them.

Parsed formulas stay cached for the whole session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, noHistory)
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not read or write the history file")
	return cmd
}

func runREPL(cmd *cobra.Command, noHistory bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	// History is project-local, next to metalcalc.yaml.
	historyFile := ""
	if !noHistory && cmdCtx.Cfg.ProjectRoot != "" {
		historyFile = filepath.Join(cmdCtx.Cfg.ProjectRoot, replHistoryFile)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(cmdCtx),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	session := &replSession{cmdCtx: cmdCtx, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}

	_, _ = fmt.Fprintln(session.out, "metalcalc interactive calculator")
	_, _ = fmt.Fprintln(session.out, "Type a formula, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(session.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if session.eval(line) {
			break
		}
	}

	cmdCtx.Logger.Debug("repl finished", "hits", cmdCtx.Calc.Stats().Hits, "misses", cmdCtx.Calc.Stats().Misses)
	return nil
}

// replSession evaluates REPL input lines against a long-lived calculator.
type replSession struct {
	cmdCtx *CommandContext
	out    io.Writer
	errOut io.Writer
}

// eval handles one input line and reports whether the session should end.
func (s *replSession) eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	var err error
	if strings.HasPrefix(line, ".") {
		var quit bool
		quit, err = s.dotCommand(line)
		if quit {
			return true
		}
	} else {
		err = s.evalFormula(line)
	}

	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
	}
	return false
}

func (s *replSession) evalFormula(arg string) error {
	r := s.cmdCtx.Renderer
	f := s.cmdCtx.resolve(arg)

	entry, err := s.cmdCtx.Calc.Lookup(f)
	if err != nil {
		return err
	}

	parts := make([]string, 0, len(entry.Counts))
	for _, sym := range entry.Counts.Symbols() {
		parts = append(parts, sym+" "+formula.FormatNumber(entry.Counts[sym]))
	}

	_, _ = fmt.Fprintf(s.out, "%s  %s kg/kmol\n", formula.Format(entry.Compound), r.Number(entry.MolarMass))
	if len(parts) > 0 {
		_, _ = fmt.Fprintf(s.out, "  %s\n", r.Muted(strings.Join(parts, "  ")))
	}
	return nil
}

func (s *replSession) dotCommand(line string) (bool, error) {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	args := parts[1:]
	calc := s.cmdCtx.Calc
	r := s.cmdCtx.Renderer

	switch command {
	case ".quit", ".exit":
		return true, nil

	case ".help":
		printREPLHelp(s.out)

	case ".coeff", ".frac":
		minArgs := 1
		if command == ".coeff" {
			minArgs = 2
		}
		if len(args) < minArgs {
			return false, fmt.Errorf("usage: %s <formula> <element> [element...]", command)
		}
		f := s.cmdCtx.resolve(args[0])
		elements := args[1:]
		if len(elements) == 0 {
			counts, err := calc.Counts(f)
			if err != nil {
				return false, err
			}
			elements = counts.Symbols()
		}
		var values []float64
		var err error
		if command == ".coeff" {
			values, err = calc.StoichiometryCoefficients(f, elements)
		} else {
			values, err = calc.ElementMassFractions(f, elements)
		}
		if err != nil {
			return false, err
		}
		for i, el := range elements {
			_, _ = fmt.Fprintf(s.out, "  %-3s %s\n", el, r.Number(values[i]))
		}

	case ".amount", ".mass":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: %s <formula> <quantity>", command)
		}
		f := s.cmdCtx.resolve(args[0])
		if command == ".amount" {
			mass, err := parseQuantity("mass", args[1])
			if err != nil {
				return false, err
			}
			amount, err := calc.Amount(f, mass)
			if err != nil {
				return false, err
			}
			_, _ = fmt.Fprintf(s.out, "%s kmol\n", r.Number(amount))
		} else {
			amount, err := parseQuantity("amount", args[1])
			if err != nil {
				return false, err
			}
			mass, err := calc.Mass(f, amount)
			if err != nil {
				return false, err
			}
			_, _ = fmt.Fprintf(s.out, "%s kg\n", r.Number(mass))
		}

	case ".elements":
		if len(args) == 0 {
			return false, errors.New("usage: .elements <formula> [formula...]")
		}
		set, err := calc.Elements(s.cmdCtx.Cfg.ResolveAll(args))
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintln(s.out, strings.Join(set.Sorted(), " "))

	case ".tree":
		if len(args) != 1 {
			return false, errors.New("usage: .tree <formula>")
		}
		c, err := calc.ParseCompound(s.cmdCtx.resolve(args[0]))
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprint(s.out, formula.Tree(c))

	case ".aliases":
		names := make([]string, 0, len(s.cmdCtx.Cfg.Aliases))
		for name := range s.cmdCtx.Cfg.Aliases {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			_, _ = fmt.Fprintf(s.out, "  %s = %s\n", name, s.cmdCtx.Cfg.Aliases[name])
		}

	case ".stats":
		st := calc.Stats()
		_, _ = fmt.Fprintf(s.out, "entries %d, hits %d, misses %d\n", st.Entries, st.Hits, st.Misses)

	case ".clear":
		_, _ = fmt.Fprint(s.out, "\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false, nil
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .coeff <formula> <element>...   Stoichiometric coefficients
  .frac <formula> [element...]    Element mass fractions
  .amount <formula> <kg>          Mass to amount (kmol)
  .mass <formula> <kmol>          Amount to mass (kg)
  .elements <formula>...          Distinct elements
  .tree <formula>                 Parsed group structure
  .aliases                        Configured formula aliases
  .stats                          Formula cache statistics
  .clear                          Clear the screen
  .quit / .exit                   Exit the REPL

Any other line is evaluated as a formula, e.g. CaSO4.2H2O or Al2O3[S1].
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes dot-commands and configured aliases.
func newREPLCompleter(cmdCtx *CommandContext) *readline.PrefixCompleter {
	aliases := make([]string, 0, len(cmdCtx.Cfg.Aliases))
	for name := range cmdCtx.Cfg.Aliases {
		aliases = append(aliases, name)
	}
	sort.Strings(aliases)

	aliasItems := func() []readline.PrefixCompleterInterface {
		items := make([]readline.PrefixCompleterInterface, 0, len(aliases))
		for _, name := range aliases {
			items = append(items, readline.PcItem(name))
		}
		return items
	}

	items := aliasItems()
	for _, c := range []string{".coeff", ".frac", ".amount", ".mass", ".elements", ".tree"} {
		items = append(items, readline.PcItem(c, aliasItems()...))
	}
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".aliases"),
		readline.PcItem(".stats"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	return readline.NewPrefixCompleter(items...)
}
