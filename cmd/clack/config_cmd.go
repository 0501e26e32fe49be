package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/log"
	"github.com/raphi011/clack/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage clack configuration.

Global config: ~/.config/clack/config.toml
Local config:  .clack.toml (in the working directory)`,
		Example: `  clack config init          # Create default global config
  clack config init --local  # Create local config
  clack config show          # Show effective config`,
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

Without flags, creates the global config at ~/.config/clack/config.toml.
With --local, creates .clack.toml in the current directory.`,
		Example: `  clack config init           # Create global config
  clack config init --local   # Create local config
  clack config init -f        # Overwrite existing config
  clack config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			content := config.DefaultFile()
			if local {
				content = config.DefaultLocalFile()
			}
			if stdout {
				out.Printf("%s", content)
				return nil
			}

			path := filepath.Join(workDir, config.LocalConfigFileName)
			if !local {
				var err error
				if path, err = config.Path(); err != nil {
					return fmt.Errorf("locate config: %w", err)
				}
			}

			if err := writeConfigFile(path, content, force); err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create .clack.toml in the current directory")

	return cmd
}

// writeConfigFile writes content to path, creating parent directories.
// An existing file is only replaced when force is set.
func writeConfigFile(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration as TOML.

The output merges the global config, .clack.toml in the working
directory, environment variables and the --theme and --ascii flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			if path, err := config.Path(); err == nil {
				log.FromContext(ctx).Debug("global config", "path", path)
			}
			return toml.NewEncoder(output.FromContext(ctx).Writer()).Encode(cfg)
		},
	}

	return cmd
}
