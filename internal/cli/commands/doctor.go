package commands

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/metalcalc/internal/cli/output"
	"github.com/leapstack-labs/metalcalc/internal/config"
	"github.com/leapstack-labs/metalcalc/pkg/stoich"
	"github.com/spf13/cobra"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the metalcalc configuration for problems",
		Long: `Check the active configuration before it is used in calculations.

The doctor command reports:
- Which config file is in effect
- Aliases whose formulas do not parse or that shadow real formulas
- Preloaded formulas that do not parse or do not fit the cache
- The size of the built-in periodic table

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Check the configuration found from the current directory
  metalcalc doctor

  # Check a specific file as JSON
  metalcalc doctor --config ./plant/metalcalc.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd)
		},
	}
}

// DoctorOutput is the structured output of the doctor command.
type DoctorOutput struct {
	ConfigFile      string        `json:"config_file" yaml:"config_file"`
	HealthChecks    []HealthCheck `json:"health_checks" yaml:"health_checks"`
	Score           int           `json:"score" yaml:"score"`
	Recommendations []string      `json:"recommendations" yaml:"recommendations"`
	IssueCount      int           `json:"issue_count" yaml:"issue_count"`
}

// HealthCheck represents a single check result.
type HealthCheck struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Group      string   `json:"group" yaml:"group"`
	Status     string   `json:"status" yaml:"status"` // "pass", "warn", "error"
	IssueCount int      `json:"issue_count" yaml:"issue_count"`
	Details    []string `json:"details,omitempty" yaml:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := newRenderer(cmd, cfg)

	// Preload problems are reported, not fatal, so the calculator is built
	// without one.
	calc := stoich.New(stoich.WithLogger(logger))
	out := buildDoctorOutput(cfg, config.GetConfigFileUsed(), calc)

	if ok, err := r.Structured(out); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		return renderDoctorMarkdown(r, out)
	}
	return renderDoctorText(r, out)
}

func buildDoctorOutput(cfg *config.Config, configFile string, calc *stoich.Calculator) *DoctorOutput {
	checks := []HealthCheck{
		checkConfigFile(configFile),
		checkAliasFormulas(cfg, calc),
		checkAliasShadowing(cfg, calc),
		checkAliasChains(cfg),
		checkPreload(cfg, calc),
		checkCacheSize(cfg),
		checkTable(calc),
	}

	out := &DoctorOutput{
		ConfigFile:      configFile,
		HealthChecks:    checks,
		Score:           100,
		Recommendations: []string{},
	}
	for _, c := range checks {
		out.IssueCount += c.IssueCount
		switch c.Status {
		case "error":
			out.Score -= 25
		case "warn":
			out.Score -= 10
		}
		if c.Status != "pass" {
			if rec := getRecommendation(c.ID); rec != "" {
				out.Recommendations = append(out.Recommendations, rec)
			}
		}
	}
	out.Score = max(out.Score, 0)
	return out
}

func newCheck(id, name, group string, errs, warns []string) HealthCheck {
	c := HealthCheck{ID: id, Name: name, Group: group, Status: "pass"}
	switch {
	case len(errs) > 0:
		c.Status = "error"
		c.Details = errs
	case len(warns) > 0:
		c.Status = "warn"
		c.Details = warns
	}
	c.IssueCount = len(c.Details)
	return c
}

func sortedAliases(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Aliases))
	for name := range cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkConfigFile(configFile string) HealthCheck {
	var warns []string
	if configFile == "" {
		warns = append(warns, "no metalcalc.yaml found; using defaults")
	}
	return newCheck("CF01", "Config file", "configuration", nil, warns)
}

func checkAliasFormulas(cfg *config.Config, calc *stoich.Calculator) HealthCheck {
	var errs []string
	for _, name := range sortedAliases(cfg) {
		if _, err := calc.ParseCompound(cfg.Aliases[name]); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
		}
	}
	return newCheck("AL01", "Alias formulas parse", "aliases", errs, nil)
}

func checkAliasShadowing(cfg *config.Config, calc *stoich.Calculator) HealthCheck {
	var warns []string
	for _, name := range sortedAliases(cfg) {
		if _, err := calc.ParseCompound(name); err == nil && name != cfg.Aliases[name] {
			warns = append(warns, fmt.Sprintf("%s is itself a valid formula and now means %s", name, cfg.Aliases[name]))
		}
	}
	return newCheck("AL02", "Aliases do not shadow formulas", "aliases", nil, warns)
}

func checkAliasChains(cfg *config.Config) HealthCheck {
	var warns []string
	for _, name := range sortedAliases(cfg) {
		target := cfg.Aliases[name]
		if resolved := cfg.Resolve(target); resolved != strings.TrimSpace(target) {
			warns = append(warns, fmt.Sprintf("%s points at alias %s; aliases are expanded once", name, target))
		}
	}
	return newCheck("AL03", "Aliases point at formulas", "aliases", nil, warns)
}

func checkPreload(cfg *config.Config, calc *stoich.Calculator) HealthCheck {
	var errs []string
	for _, f := range cfg.Cache.Preload {
		if _, err := calc.ParseCompound(cfg.Resolve(f)); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", f, err))
		}
	}
	return newCheck("CA01", "Preloaded formulas parse", "cache", errs, nil)
}

func checkCacheSize(cfg *config.Config) HealthCheck {
	var warns []string
	if cfg.Cache.Size > 0 && len(cfg.Cache.Preload) > cfg.Cache.Size {
		warns = append(warns, fmt.Sprintf("%d formulas preloaded into a cache of %d entries", len(cfg.Cache.Preload), cfg.Cache.Size))
	}
	return newCheck("CA02", "Preload fits the cache", "cache", nil, warns)
}

func checkTable(calc *stoich.Calculator) HealthCheck {
	c := newCheck("PT01", "Periodic table", "periodic table", nil, nil)
	c.Details = []string{fmt.Sprintf("%d elements loaded", calc.Table().Len())}
	return c
}

// getRecommendation returns a recommendation for a specific check.
func getRecommendation(id string) string {
	switch id {
	case "CF01":
		return "Create metalcalc.yaml in the project root to define aliases and cache settings"
	case "AL01":
		return "Fix or remove aliases whose formulas do not parse"
	case "AL02":
		return "Rename aliases that collide with real formulas, e.g. use lowercase mineral names"
	case "AL03":
		return "Point aliases directly at formulas instead of other aliases"
	case "CA01":
		return "Fix or remove cache.preload entries that do not parse"
	case "CA02":
		return "Raise cache.size or set it to 0 for an unbounded cache"
	default:
		return ""
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("metalcalc Configuration Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	configFile := out.ConfigFile
	if configFile == "" {
		configFile = "(none)"
	}
	r.Printf("   Config file: %s\n", configFile)
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.Success.Render("✓")
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "error":
			icon = styles.Error.Render("✗")
		}

		status := fmt.Sprintf("%s %s: %s", icon, check.ID, check.Name)
		if check.IssueCount > 0 {
			status += fmt.Sprintf(" (%d issues)", check.IssueCount)
		}
		r.Println("   " + status)

		for i, detail := range check.Details {
			if i >= 3 {
				r.Println(styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(styles.Header.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# metalcalc Configuration Report")
	r.Println("")

	configFile := out.ConfigFile
	if configFile == "" {
		configFile = "(none)"
	}
	r.Println(output.FormatKeyValue("Config file", configFile))
	r.Println("")

	r.Println("## Health Checks")
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("### " + titleCaser.String(currentGroup))
			r.Println("")
		}

		r.Printf("- **[%s]** %s: %s", strings.ToUpper(check.Status), check.ID, check.Name)
		if check.IssueCount > 0 {
			r.Printf(" (%d issues)", check.IssueCount)
		}
		r.Println("")

		for _, detail := range check.Details {
			r.Printf("  - %s\n", detail)
		}
	}
	r.Println("")

	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}
