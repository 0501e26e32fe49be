package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/prompt"
)

func newPasswordCmd() *cobra.Command {
	var (
		mask            string
		copyToClipboard bool
		checks          validatorFlags
	)

	cmd := &cobra.Command{
		Use:     "password <label>",
		Short:   "Ask for a secret",
		Aliases: []string{"pw"},
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Ask for a secret without echoing it.

Every typed character is drawn as the mask glyph. The password is printed
to stdout once submitted.`,
		Example: `  clack password "Provide a password"
  clack password "Token" --mask "*" --min-length 8
  clack password "API key" --copy          # also copy to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			validate, err := checks.validator()
			if err != nil {
				return err
			}

			p := prompt.NewPassword(args[0]).Validate(validate)
			if mask != "" {
				p.Mask(mask)
			}

			value, err := ask[string](cmd, "password", args[0], p)
			if err != nil {
				return err
			}

			copyValue(ctx, copyToClipboard, value)
			output.FromContext(ctx).Println(value)
			return nil
		},
	}

	cmd.Flags().StringVar(&mask, "mask", "", "Glyph drawn for each character (default from theme)")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the password to the clipboard")
	checks.register(cmd)

	return cmd
}
