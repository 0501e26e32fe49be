package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/cursor"
	"github.com/raphi011/clack/internal/ui/static"
	"github.com/raphi011/clack/internal/ui/styles"
	"github.com/raphi011/clack/internal/ui/theme"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "theme",
		Short:   "List and preview colour themes",
		GroupID: GroupConfig,
		Long: `List and preview the built-in colour themes.

Select a theme with --theme, CLACK_THEME or the [theme] section of the
config file.`,
		Example: `  clack theme list
  clack theme preview nord
  clack theme preview --ascii`,
	}

	cmd.AddCommand(newThemeListCmd())
	cmd.AddCommand(newThemePreviewCmd())

	return cmd
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List theme names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := config.FromContext(cmd.Context()).Theme.Name

			var rows [][]string
			for _, name := range styles.PresetNames() {
				active := ""
				if name == current {
					active = "*"
				}
				rows = append(rows, []string{name, strings.Join(styles.PresetVariants(name), ", "), active})
			}
			output.FromContext(cmd.Context()).Printf("%s", static.RenderTable([]string{"NAME", "VARIANTS", "ACTIVE"}, rows))
			return nil
		},
	}
}

func newThemePreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "preview [name...]",
		Short:     "Draw sample prompts in a theme",
		Args:      cobra.OnlyValidArgs,
		ValidArgs: config.ValidThemeNames,
		Long: `Draw a sample session in each named theme, or in the active theme when
no name is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := lipgloss.Fprint(os.Stderr, preview(theme.Current()))
				return err
			}

			for _, name := range args {
				palette := styles.GetPreset(name)
				if palette == nil {
					return fmt.Errorf("unknown theme %q", name)
				}
				th := theme.NewClack(*palette, styles.CurrentSymbols())
				if _, err := lipgloss.Fprint(os.Stderr, th.FormatIntro(name)+preview(th)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// preview renders a sample session covering every prompt state.
func preview(th theme.Theme) string {
	var b strings.Builder

	name := cursor.New("Ferris")
	b.WriteString(th.FormatHeader(theme.Submit, "What is your name?"))
	b.WriteString(th.FormatInput(theme.Submit, name))
	b.WriteString(th.FormatFooter(theme.Submit))

	secret := cursor.New("hunter")
	b.WriteString(th.FormatHeader(theme.ErrorState("Must be at least 8 characters"), "Provide a password"))
	b.WriteString(th.FormatPassword(theme.ErrorState("Must be at least 8 characters"), secret, th.PasswordMask()))
	b.WriteString(th.FormatFooter(theme.ErrorState("Must be at least 8 characters")))

	b.WriteString(th.FormatHeader(theme.Active, "Pick a project type"))
	b.WriteString(th.FormatSelectItem(theme.Active, true, "TypeScript", ""))
	b.WriteString(th.FormatSelectItem(theme.Active, false, "JavaScript", "oh no"))
	b.WriteString(th.FormatSelectItem(theme.Active, false, "CoffeeScript", ""))
	b.WriteString(th.FormatFooter(theme.Active))

	b.WriteString(th.FormatHeader(theme.Active, "Select additional tools"))
	b.WriteString(th.FormatMultiSelectItem(theme.Active, true, false, "Prettier", ""))
	b.WriteString(th.FormatMultiSelectItem(theme.Active, false, true, "ESLint", "recommended"))
	b.WriteString(th.FormatMultiSelectItem(theme.Active, true, false, "Stylelint", ""))
	b.WriteString(th.FormatFooter(theme.Active))

	b.WriteString(th.FormatHeader(theme.Cancel, "Install dependencies?"))
	b.WriteString(th.FormatConfirm(theme.Cancel, true))
	b.WriteString(th.FormatFooter(theme.Cancel))

	b.WriteString(th.FormatLog("Fetched 42 packages", th.InfoSymbol()))
	b.WriteString(th.FormatLog("No lockfile found", th.WarningSymbol()))
	b.WriteString(th.FormatSpinnerStop("Installed via npm"))
	b.WriteString(th.FormatNote("Next steps", "cd my-app\nnpm run dev"))
	b.WriteString(th.FormatOutro("You're all set!"))

	return b.String()
}
