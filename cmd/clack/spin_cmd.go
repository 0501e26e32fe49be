package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/log"
	"github.com/raphi011/clack/internal/ui/progress"
)

func newSpinCmd() *cobra.Command {
	var (
		doneMsg  string
		failMsg  string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:     "spin <message> [-- command [args...]]",
		Short:   "Show a spinner while a command runs",
		GroupID: GroupOutput,
		Args:    cobra.MinimumNArgs(1),
		Long: `Animate a spinner while a command runs, then leave a result line.

The command's combined output is captured and replayed on stderr if it
fails. Without a command the spinner runs for --duration.`,
		Example: `  clack spin "Installing via npm" --done "Installed via npm" -- npm install
  clack spin "Waiting for the database" --duration 3s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			cfg := config.FromContext(ctx)

			message := args[0]
			command := args[1:]
			if len(command) == 0 && duration <= 0 {
				return fmt.Errorf("nothing to wait for: pass a command after -- or set --duration")
			}

			sp := progress.NewSpinner(progress.WithInterval(cfg.Spinner.Interval.Duration))
			sp.Start(message)

			if len(command) == 0 {
				select {
				case <-time.After(duration):
					sp.Stop(doneMsg)
					return nil
				case <-ctx.Done():
					sp.Error("Cancelled")
					return errCancelled
				}
			}

			l.Debug("running command", "cmd", command)
			out, err := exec.CommandContext(ctx, command[0], command[1:]...).CombinedOutput()
			if err != nil {
				if ctx.Err() != nil {
					sp.Error("Cancelled")
					return errCancelled
				}
				sp.Error(failMsg)
				_, _ = os.Stderr.Write(out)

				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return fmt.Errorf("%s exited with status %d", command[0], exitErr.ExitCode())
				}
				return fmt.Errorf("run %s: %w", command[0], err)
			}

			sp.Stop(doneMsg)
			return nil
		},
	}

	cmd.Flags().StringVar(&doneMsg, "done", "", "Message shown on success (default: the spinner message)")
	cmd.Flags().StringVar(&failMsg, "fail", "", "Message shown on failure (default: the spinner message)")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "Spin for a fixed time instead of running a command")

	return cmd
}
