package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/log"
	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/theme"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	themeName string
	ascii     bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// errCancelled is returned when the user cancels a prompt.
// Execute turns it into exit code 130 without printing anything.
var errCancelled = errors.New("cancelled")

// exitCancelled matches the shell convention for SIGINT.
const exitCancelled = 130

// Command group IDs for organizing help output
const (
	GroupPrompt = "prompt"
	GroupOutput = "output"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clack",
	Short: "Beautiful interactive prompts for shell scripts",
	Long: `clack draws clack-style prompts on the terminal and prints the answer
to stdout, so shell scripts can ask for input:

  name=$(clack input "What is your name?" --placeholder Ferris)

Prompts render to stderr. Cancelling with Esc or ctrl+c exits with 130.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return setup(cmd)
	},
	// Run is not set - shows help when no subcommand provided
}

// setup builds the effective config, installs the theme and attaches the
// logger, printer and config to the command context.
func setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)

	effective := cfg
	local, err := config.LoadLocal(workDir)
	if err != nil {
		logger.Printf("Warning: %v\n", err)
	}
	effective = config.MergeLocal(effective, local)

	if themeName != "" || ascii {
		c := *effective
		if err := config.ValidateThemeName(themeName); err != nil {
			return err
		}
		if themeName != "" {
			c.Theme.Name = themeName
		}
		if ascii {
			c.ASCII = true
		}
		effective = &c
	}

	theme.Set(theme.FromConfig(*effective))
	logger.Debug("theme ready", "name", effective.Theme.Name, "mode", effective.Theme.Mode, "ascii", effective.ASCII)

	ctx = config.WithConfig(ctx, effective)
	cmd.SetContext(ctx)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "clack: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for prompt results)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			cancel()
			os.Exit(exitCancelled)
		}
		if errors.Is(err, errDeclined) {
			cancel()
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'clack -h' for help")
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output and prompt timings")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Colour theme (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&ascii, "ascii", false, "Draw with ASCII glyphs only")

	_ = rootCmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.ValidThemeNames, cobra.ShellCompDirectiveNoFileComp
	})

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupPrompt, Title: "Prompt Commands:"},
		&cobra.Group{ID: GroupOutput, Title: "Output Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Prompt commands
	rootCmd.AddCommand(newPasswordCmd())
	rootCmd.AddCommand(newInputCmd())
	rootCmd.AddCommand(newConfirmCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newMultiSelectCmd())
	rootCmd.AddCommand(newDemoCmd())

	// Output commands
	rootCmd.AddCommand(newIntroCmd())
	rootCmd.AddCommand(newOutroCmd())
	rootCmd.AddCommand(newNoteCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newSpinCmd())

	// Config commands
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
