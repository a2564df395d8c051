package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/textctl/internal/config"
	"github.com/raphi011/textctl/internal/log"
	"github.com/raphi011/textctl/internal/output"
	"github.com/raphi011/textctl/internal/storage"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage textctl configuration.

Global config: ~/.config/textctl/config.toml (or $TEXTCTL_CONFIG)
Local config:  .textctl.toml (in the working directory)`,
		Example: `  textctl config init          # Create default global config
  textctl config init --local  # Create local config
  textctl config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates .textctl.toml in the working directory.`,
		Example: `  textctl config init           # Create global config
  textctl config init --local   # Create local config
  textctl config init -f        # Overwrite existing config
  textctl config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			content := config.DefaultConfig()
			if local {
				content = config.DefaultLocalConfig()
			}

			if stdout {
				out.Print(content)
				return nil
			}

			path, err := initPath(local)
			if err != nil {
				return err
			}
			if err := storage.Create(path, []byte(content), force); err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create .textctl.toml instead of global config")

	return cmd
}

// initPath returns where config init writes.
func initPath(local bool) (string, error) {
	if !local {
		return config.Path()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(wd, config.LocalConfigFileName), nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Prints the global config merged with .textctl.toml from the working
directory, as TOML or JSON.`,
		Example: `  textctl config show         # Show config as TOML
  textctl config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg)
			}

			if cfg.Path != "" {
				out.Printf("# loaded from %s\n", cfg.Path)
			}
			if err := toml.NewEncoder(out.Writer()).Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
