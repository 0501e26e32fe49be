package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/ui/prompt"
)

func newIntroCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "intro <title>",
		Short:   "Draw the opening line of a session",
		GroupID: GroupOutput,
		Args:    cobra.ExactArgs(1),
		Example: `  clack intro "create-my-app"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return prompt.Intro(os.Stderr, args[0])
		},
	}
}

func newOutroCmd() *cobra.Command {
	var cancelled bool

	cmd := &cobra.Command{
		Use:     "outro <message>",
		Short:   "Draw the closing line of a session",
		GroupID: GroupOutput,
		Args:    cobra.ExactArgs(1),
		Example: `  clack outro "You're all set!"
  clack outro "Operation cancelled" --cancel`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cancelled {
				return prompt.OutroCancel(os.Stderr, args[0])
			}
			return prompt.Outro(os.Stderr, args[0])
		},
	}

	cmd.Flags().BoolVarP(&cancelled, "cancel", "c", false, "Draw the cancelled variant")

	return cmd
}

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note <title> [message...]",
		Short:   "Draw a boxed note",
		GroupID: GroupOutput,
		Args:    cobra.MinimumNArgs(1),
		Long: `Draw a boxed note below a title.

Message arguments are joined with newlines. Without message arguments the
message is read from stdin.`,
		Example: `  clack note "Next steps" "cd my-app" "npm install"
  git log --oneline -3 | clack note "Recent commits"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := messageFrom(args[1:], optionSource())
			if err != nil {
				return err
			}
			return prompt.Note(os.Stderr, args[0], message)
		},
	}

	return cmd
}

// logLevels maps "clack log" levels to their writers.
var logLevels = map[string]func(io.Writer, string) error{
	"message": prompt.LogMessage,
	"info":    prompt.LogInfo,
	"warning": prompt.LogWarning,
	"error":   prompt.LogError,
	"success": prompt.LogSuccess,
	"step":    prompt.LogStep,
	"remark":  prompt.LogRemark,
}

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "log <level> <message...>",
		Short:     "Draw a log line in the prompt gutter",
		GroupID:   GroupOutput,
		ValidArgs: []string{"message", "info", "warning", "error", "success", "step", "remark"},
		Args:      cobra.MinimumNArgs(2),
		Long: `Draw a message with a level symbol, aligned with the prompts.

Levels: message, info, warning, error, success, step, remark.
Multiple message arguments become separate lines.`,
		Example: `  clack log info "Starting installation"
  clack log warning "No lockfile found" "Resolving fresh versions"
  clack log success "Installed 42 packages"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, ok := logLevels[args[0]]
			if !ok {
				return fmt.Errorf("unknown log level %q", args[0])
			}
			return write(os.Stderr, strings.Join(args[1:], "\n"))
		},
	}

	return cmd
}

// messageFrom joins args with newlines, or reads r when there are none.
func messageFrom(args []string, r io.Reader) (string, error) {
	if len(args) > 0 || r == nil {
		return strings.Join(args, "\n"), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read message: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
