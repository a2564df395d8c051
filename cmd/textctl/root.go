package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/textctl/internal/config"
	"github.com/raphi011/textctl/internal/log"
	"github.com/raphi011/textctl/internal/output"
	"github.com/raphi011/textctl/internal/suggest"
	"github.com/raphi011/textctl/internal/ui/styles"
	"github.com/raphi011/textctl/texttype"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupFilter = "filter"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "textctl",
	Short: "Filter and validate text by content type",
	Long: `textctl strips text down to what a content type allows.

Built-in types: int, uint, float, digit, alpha, varname.
Custom types are declared in ~/.config/textctl/config.toml.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Logger (stderr for diagnostics), created once flags are parsed
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cfg := loadConfig()

	if err := config.Register(texttype.Default, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	styles.Init(cfg.Theme, os.Stdout)

	ctx := context.Background()
	ctx = config.WithConfig(ctx, cfg)
	ctx = withRegistry(ctx, texttype.Default)

	// Output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err, texttype.Default)
		os.Exit(1)
	}
}

// printError reports a failed command. Usage problems get a pointer to
// help; a check that found non-conforming input does not.
func printError(w io.Writer, err error, reg *texttype.Registry) {
	fmt.Fprintln(w, formatError(err, reg))
	if errors.Is(err, errNonConforming) {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'textctl -h' for help")
}

// loadConfig reads the global config and merges .textctl.toml from the
// working directory. Invalid files fall back to defaults with a warning.
func loadConfig() *config.Config {
	global, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg := &global

	workDir, err := os.Getwd()
	if err != nil {
		return cfg
	}
	local, err := config.LoadLocal(workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using global config)\n", err)
		return cfg
	}

	merged := config.MergeLocal(cfg, local)
	if err := merged.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v (using global config)\n", config.LocalConfigFileName, err)
		return cfg
	}
	return merged
}

// formatError appends a "did you mean" hint to unknown type errors.
func formatError(err error, reg *texttype.Registry) string {
	var ute *texttype.UnknownTypeError
	if errors.As(err, &ute) {
		if hint := suggest.Hint(ute.Name, reg.Types()); hint != "" {
			return fmt.Sprintf("%v, %s", err, hint)
		}
	}
	return err.Error()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupFilter, Title: "Filter Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Filter commands
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newCheckCmd())

	// Config commands
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
