package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/prompt"
)

// errDeclined is returned by confirm --exit-code when the answer is No.
// Execute turns it into exit code 1 without printing anything.
var errDeclined = errors.New("declined")

func newConfirmCmd() *cobra.Command {
	var (
		initial  bool
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:     "confirm <label>",
		Short:   "Ask a yes/no question",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Ask a yes/no question.

y and n answer directly; arrow keys toggle and Enter submits. The answer is
printed as "true" or "false". With --exit-code nothing is printed and the
exit status is 0 for Yes and 1 for No.`,
		Example: `  clack confirm "Install dependencies?"
  clack confirm "Overwrite?" --initial=false
  if clack confirm "Deploy?" --exit-code; then ./deploy.sh; fi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := prompt.NewConfirm(args[0]).InitialValue(initial)

			yes, err := ask[bool](cmd, "confirm", args[0], p)
			if err != nil {
				return err
			}

			if exitCode {
				if !yes {
					return errDeclined
				}
				return nil
			}
			output.FromContext(cmd.Context()).Bool(yes)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&initial, "initial", "i", true, "Preselected answer")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Report the answer through the exit status")

	return cmd
}
