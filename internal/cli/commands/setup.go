package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/leapstack-labs/metalcalc/internal/cli/output"
	"github.com/leapstack-labs/metalcalc/internal/config"
	"github.com/leapstack-labs/metalcalc/pkg/stoich"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Calc     *stoich.Calculator
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a calculator whose cache
// follows the configuration. Formulas listed under cache.preload are parsed
// up front so a bad entry fails before any output is written.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	calc, err := newCalculator(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Calc:     calc,
		Renderer: newRenderer(cmd, cfg),
	}, nil
}

func newCalculator(cfg *config.Config, logger *slog.Logger) (*stoich.Calculator, error) {
	cache, err := stoich.NewCache(cfg.Cache.Size)
	if err != nil {
		return nil, err
	}

	calc := stoich.New(stoich.WithCache(cache), stoich.WithLogger(logger))
	if len(cfg.Cache.Preload) > 0 {
		if err := calc.Preload(cfg.ResolveAll(cfg.Cache.Preload)...); err != nil {
			return nil, fmt.Errorf("cache.preload: %w", err)
		}
		logger.Debug("formula cache preloaded", "entries", calc.Stats().Entries)
	}
	return calc, nil
}

// newRenderer returns the renderer stored by the root command, or builds one
// on the command's writers when the command runs standalone.
func newRenderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	if r, ok := output.Lookup(cmd.Context()); ok {
		return r
	}
	mode, err := output.ParseMode(cfg.Output)
	if err != nil {
		mode = output.ModeAuto
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	r.SetPrecision(cfg.Precision)
	return r
}

// resolve maps a formula argument through the configured aliases.
func (c *CommandContext) resolve(arg string) string {
	return c.Cfg.Resolve(arg)
}

// parseQuantity parses a non-negative mass or amount argument.
func parseQuantity(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", name, s)
	}
	return v, nil
}

// keyValue is one labelled line in a detail view.
type keyValue struct {
	Key   string
	Value string
}

// renderDetails writes labelled values as styled lines in text mode and as a
// bullet list in markdown mode.
func renderDetails(r *output.Renderer, title string, items []keyValue) {
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(2, title))
		r.Println("")
		for _, kv := range items {
			r.Println(output.FormatKeyValue(kv.Key, kv.Value))
		}
		return
	}

	styles := r.Styles()
	r.Println(styles.Header.Render(title))
	width := 0
	for _, kv := range items {
		width = max(width, len(kv.Key))
	}
	for _, kv := range items {
		r.Printf("  %s  %s\n", styles.Muted.Render(fmt.Sprintf("%-*s", width, kv.Key)), kv.Value)
	}
}
