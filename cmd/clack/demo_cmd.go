package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/ui/progress"
	"github.com/raphi011/clack/internal/ui/prompt"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "demo",
		Short:   "Walk through every prompt",
		GroupID: GroupPrompt,
		Args:    cobra.NoArgs,
		Long: `Run a sample project setup session that shows every prompt, the
spinner and the progress bar. Nothing is written to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDemo(cmd)
			if errors.Is(err, errCancelled) {
				_ = prompt.OutroCancel(os.Stderr, "Operation cancelled")
			}
			return err
		},
	}

	return cmd
}

func runDemo(cmd *cobra.Command) error {
	interval := config.FromContext(cmd.Context()).Spinner.Interval.Duration

	if err := prompt.Intro(os.Stderr, "create-app"); err != nil {
		return err
	}

	name, err := ask[string](cmd, "input", "project name", prompt.NewInput("Where should we create your project?").
		Placeholder("./sparkling-solid").
		Default("./sparkling-solid").
		Validate(prompt.Match(`^\.?/?[\w./-]+$`, "Please enter a valid path")))
	if err != nil {
		return err
	}

	if _, err := ask[string](cmd, "password", "password", prompt.NewPassword("Provide a password").
		Validate(prompt.All(prompt.Required, prompt.MinLength(6)))); err != nil {
		return err
	}

	kind, err := ask[string](cmd, "select", "project type", prompt.NewSelect[string]("Pick a project type").
		Item("ts", "TypeScript", "").
		Item("js", "JavaScript", "oh no").
		Item("coffee", "CoffeeScript", ""))
	if err != nil {
		return err
	}

	tools, err := ask[[]string](cmd, "multiselect", "tools", prompt.NewMultiSelect[string]("Select additional tools").
		Item("prettier", "Prettier", "recommended").
		Item("eslint", "ESLint", "recommended").
		Item("stylelint", "Stylelint", "").
		InitialValues("prettier", "eslint").
		Required(false))
	if err != nil {
		return err
	}

	install, err := ask[bool](cmd, "confirm", "install", prompt.NewConfirm("Install dependencies?"))
	if err != nil {
		return err
	}

	if install {
		sp := progress.NewSpinner(progress.WithInterval(interval))
		sp.Start("Installing via npm")
		time.Sleep(time.Second)
		sp.SetMessage("Linking binaries")
		time.Sleep(500 * time.Millisecond)
		sp.Stop("Installed via npm")

		bar := progress.NewProgressBar(len(tools)+1, "Generating files")
		bar.Start()
		for i := 1; i <= bar.Total(); i++ {
			time.Sleep(300 * time.Millisecond)
			bar.SetProgress(i, fmt.Sprintf("Generating files (%d/%d)", i, bar.Total()))
		}
		bar.Stop("Generated files")
	} else {
		_ = prompt.LogWarning(os.Stderr, "Skipped dependency installation")
	}

	steps := []string{fmt.Sprintf("cd %s", name)}
	if !install {
		steps = append(steps, "npm install")
	}
	steps = append(steps, "npm run dev")
	if err := prompt.Note(os.Stderr, fmt.Sprintf("Next steps (%s)", kind), strings.Join(steps, "\n")); err != nil {
		return err
	}

	return prompt.Outro(os.Stderr, "You're all set!")
}
