// Package cli provides the command-line interface for metalcalc.
package cli

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/metalcalc/internal/cli/commands"
	"github.com/leapstack-labs/metalcalc/internal/cli/output"
	"github.com/leapstack-labs/metalcalc/internal/config"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "metalcalc",
		Short: "metalcalc - chemical formula and stoichiometry calculator",
		Long: `metalcalc parses chemical formulas and performs stoichiometric
calculations for metallurgical process models: molar masses, mass/amount
conversions, element coefficients and mass fractions.

Formulas support parenthesised groups, decimal subscripts, hydrates
(CaSO4.2H2O) and phase tags (Al2O3[S1]). Masses are in kg, amounts in kmol.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)

			mode, err := output.ParseMode(cfg.Output)
			if err != nil {
				return err
			}
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
			renderer.SetPrecision(cfg.Precision)
			ctx = output.WithRenderer(ctx, renderer)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Info("using config file", "path", configFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./metalcalc.yaml, searched upward)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json|yaml)")
	rootCmd.PersistentFlags().Int("precision", config.DefaultPrecision, "Decimal places for printed numbers")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Int("cache-size", config.DefaultCacheSize, "Bound the formula cache to this many entries (0 = unbounded)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		modes := make([]string, len(output.Modes))
		for i, m := range output.Modes {
			modes[i] = string(m)
		}
		return modes, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewMolarMassCommand())
	rootCmd.AddCommand(commands.NewAmountCommand())
	rootCmd.AddCommand(commands.NewMassCommand())
	rootCmd.AddCommand(commands.NewCoeffCommand())
	rootCmd.AddCommand(commands.NewFractionsCommand())
	rootCmd.AddCommand(commands.NewElementsCommand())
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewTableCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewDoctorCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for metalcalc.

To load completions:

Bash:
  $ source <(metalcalc completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ metalcalc completion bash > /etc/bash_completion.d/metalcalc
  # macOS:
  $ metalcalc completion bash > $(brew --prefix)/etc/bash_completion.d/metalcalc

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ metalcalc completion zsh > "${fpath[1]}/_metalcalc"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ metalcalc completion fish | source

  # To load completions for each session, execute once:
  $ metalcalc completion fish > ~/.config/fish/completions/metalcalc.fish

PowerShell:
  PS> metalcalc completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> metalcalc completion powershell > metalcalc.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
