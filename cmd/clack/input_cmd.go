package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/prompt"
)

func newInputCmd() *cobra.Command {
	var (
		placeholder     string
		defaultValue    string
		initialValue    string
		copyToClipboard bool
		checks          validatorFlags
	)

	cmd := &cobra.Command{
		Use:     "input <label>",
		Short:   "Ask for a line of text",
		Aliases: []string{"text"},
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Ask for a single line of text.

Arrow keys, Home and End move the cursor. The answer is printed to stdout.
With --default, submitting an empty input yields the default value.`,
		Example: `  clack input "What is your name?" --placeholder Ferris
  clack input "Project directory" --default ./app
  clack input "Email" --required --match '^[^@]+@[^@]+$' --match-message "Not an email"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			validate, err := checks.validator()
			if err != nil {
				return err
			}

			p := prompt.NewInput(args[0]).
				Placeholder(placeholder).
				InitialValue(initialValue).
				Validate(validate)
			if cmd.Flags().Changed("default") {
				p.Default(defaultValue)
			}

			value, err := ask[string](cmd, "input", args[0], p)
			if err != nil {
				return err
			}

			copyValue(ctx, copyToClipboard, value)
			output.FromContext(ctx).Println(value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&placeholder, "placeholder", "p", "", "Dimmed hint shown while the input is empty")
	cmd.Flags().StringVarP(&defaultValue, "default", "d", "", "Value submitted when the input is left empty")
	cmd.Flags().StringVarP(&initialValue, "initial", "i", "", "Pre-filled text")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the answer to the clipboard")
	checks.register(cmd)

	return cmd
}
