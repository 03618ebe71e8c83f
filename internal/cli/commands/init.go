package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/metalcalc/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a metalcalc.yaml configuration file",
		Long: `Create a metalcalc.yaml configuration file with the default settings.

Use --example to start from a configuration with common mineral and slag
aliases (hematite, magnetite, lime, silica, ...) preloaded into the cache.`,
		Example: `  # Initialize in current directory
  metalcalc init

  # Initialize with example aliases
  metalcalc init --example

  # Initialize in a new directory
  metalcalc init plant-model --example

  # Force overwrite existing config
  metalcalc init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			template := "minimal"
			if example {
				template = "example"
			}
			return runInit(cmd, dir, template, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Include example mineral aliases")

	return cmd
}

func runInit(cmd *cobra.Command, dir, template string, force bool) error {
	r := newRenderer(cmd, config.FromContext(cmd.Context()))

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileName)
	}

	if err := copyTemplate(template, dir, force); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	files, _ := listTemplateFiles(template)
	for _, f := range files {
		r.Println("  " + r.Styles().Success.Render("✓") + " " + f)
	}

	r.Println("")
	r.Success("metalcalc configuration created!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Add your own formulas under aliases in " + config.ConfigFileName)
	r.Println("  2. Run 'metalcalc doctor' to check the configuration")
	r.Println("  3. Run 'metalcalc repl' to start calculating")

	return nil
}
