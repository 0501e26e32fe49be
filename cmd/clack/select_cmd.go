package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/prompt"
)

const optionHelp = `Options are given as arguments or piped on stdin, one per line, in the
form value[|label[|hint]]. The label defaults to the value.`

func newSelectCmd() *cobra.Command {
	var (
		filter          bool
		initial         string
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "select <label> [option...]",
		Short:   "Pick one option from a list",
		GroupID: GroupPrompt,
		Args:    cobra.MinimumNArgs(1),
		Long: `Pick one option from a list and print its value.

Up/Down (or k/j) move the cursor, Enter submits. With --filter, typing
narrows the list with fuzzy matching.

` + optionHelp,
		Example: `  clack select "Project type" "ts|TypeScript" "js|JavaScript|oh no" "coffee|CoffeeScript"
  git branch --format='%(refname:short)' | clack select "Branch" --filter
  clack select "Region" eu us ap --initial us`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			items, err := readOptions(args[1:], optionSource())
			if err != nil {
				return err
			}

			p := prompt.NewSelect[string](args[0]).
				Items(items...).
				Filter(filter)
			if initial != "" {
				p.InitialValue(initial)
			}

			value, err := ask[string](cmd, "select", args[0], p)
			if err != nil {
				return err
			}

			copyValue(ctx, copyToClipboard, value)
			output.FromContext(ctx).Println(value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&filter, "filter", "f", false, "Type to fuzzy-filter the options")
	cmd.Flags().StringVarP(&initial, "initial", "i", "", "Value selected at start")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the selected value to the clipboard")

	return cmd
}

func newMultiSelectCmd() *cobra.Command {
	var (
		initial  []string
		optional bool
	)

	cmd := &cobra.Command{
		Use:     "multiselect <label> [option...]",
		Short:   "Pick any number of options from a list",
		Aliases: []string{"multi"},
		GroupID: GroupPrompt,
		Args:    cobra.MinimumNArgs(1),
		Long: `Pick any number of options and print their values, one per line.

Up/Down move the cursor, Space toggles, a toggles all and Enter submits.
At least one option must be picked unless --optional is set.

` + optionHelp,
		Example: `  clack multiselect "Tools" "fmt|gofmt" "vet|go vet" "lint|golangci-lint|slow"
  ls | clack multiselect "Files to delete" --optional`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readOptions(args[1:], optionSource())
			if err != nil {
				return err
			}

			p := prompt.NewMultiSelect[string](args[0]).
				Items(items...).
				InitialValues(initial...).
				Required(!optional)

			values, err := ask[[]string](cmd, "multiselect", args[0], p)
			if err != nil {
				return err
			}

			output.FromContext(cmd.Context()).Lines(values)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&initial, "initial", "i", nil, "Values selected at start")
	cmd.Flags().BoolVar(&optional, "optional", false, "Allow submitting with nothing selected")

	return cmd
}
