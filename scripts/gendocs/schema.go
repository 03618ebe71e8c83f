package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leapstack-labs/metalcalc/internal/config"
)

// generateConfigDocs generates the configuration reference.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateConfigurationDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")

	return nil
}

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Env         string
	Flag        string
	Description string
	Category    string // "general", "cache", "aliases"
}

// configSchema returns the configuration schema definition.
// This mirrors internal/config/types.go Config.
func configSchema() []ConfigField {
	env := func(key string) string { return config.EnvPrefix + key }
	return []ConfigField{
		{Name: "output", Type: "string", Default: config.DefaultOutput, Env: env("OUTPUT"), Flag: "--output, -o",
			Description: "Output format: auto, text, markdown, json, yaml", Category: "general"},
		{Name: "precision", Type: "int", Default: strconv.Itoa(config.DefaultPrecision), Env: env("PRECISION"), Flag: "--precision",
			Description: fmt.Sprintf("Decimal places for numbers, 0 to %d, or -1 for the shortest exact form", config.MaxPrecision), Category: "general"},
		{Name: "verbose", Type: "bool", Default: "false", Env: env("VERBOSE"), Flag: "--verbose, -v",
			Description: "Enable debug logging", Category: "general"},
		{Name: "log_level", Type: "string", Default: config.DefaultLogLevel, Env: env("LOG_LEVEL"),
			Description: "Log level: debug, info, warn, error", Category: "general"},
		{Name: "cache.size", Type: "int", Default: strconv.Itoa(config.DefaultCacheSize), Env: env("CACHE_SIZE"), Flag: "--cache-size",
			Description: "Maximum number of cached formulas; 0 means unbounded", Category: "cache"},
		{Name: "cache.preload", Type: "[]string",
			Description: "Formulas or aliases parsed at startup", Category: "cache"},
		{Name: "aliases", Type: "map[string]string",
			Description: "Named formulas, usable anywhere a formula is accepted", Category: "aliases"},
	}
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "metalcalc configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("metalcalc is configured via " + InlineCode(config.ConfigFileName) +
		", searched for from the working directory upwards. Environment variables and flags override file values.")

	fields := configSchema()
	sections := []struct {
		category string
		title    string
		intro    string
	}{
		{"general", "General Settings", "Output and logging:"},
		{"cache", "Formula Cache", "Parsed formulas are cached by their text. A bounded cache evicts the least recently used entry."},
		{"aliases", "Aliases", "Aliases map a short name to a formula. Names are matched case-insensitively and expand one level only."},
	}

	headers := []string{"Field", "Type", "Default", "Environment", "Flag", "Description"}
	for _, s := range sections {
		w.Header(2, s.title)
		w.Paragraph(s.intro)

		var rows [][]string
		for _, f := range fields {
			if f.Category != s.category {
				continue
			}
			rows = append(rows, []string{
				InlineCode(f.Name),
				f.Type,
				orDash(f.Default, true),
				orDash(f.Env, true),
				orDash(f.Flag, false),
				cleanDescription(f.Description),
			})
		}
		w.Table(headers, rows)
	}

	w.Header(2, "Example")
	w.CodeBlock("yaml", `# metalcalc.yaml
output: auto
precision: 4
log_level: warn

cache:
  size: 256
  preload:
    - hematite
    - CaSO4.2H2O

aliases:
  hematite: Fe2O3
  magnetite: Fe3O4
  gypsum: CaSO4.2H2O`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}

func orDash(s string, code bool) string {
	if s == "" {
		return "-"
	}
	if code {
		return InlineCode(s)
	}
	return s
}
