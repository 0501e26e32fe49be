package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/log"
	"github.com/raphi011/clack/internal/ui/prompt"
)

// stdinIsTerminal reports whether stdin is attached to a terminal.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptOptions returns the options every prompt runs with. When stdin is
// piped, e.g. to feed select options, keys are read from the terminal.
// The returned func releases the terminal.
func promptOptions() ([]prompt.Option, func(), error) {
	if stdinIsTerminal() {
		return nil, func() {}, nil
	}

	in, out, err := tea.OpenTTY()
	if err != nil {
		return nil, nil, fmt.Errorf("open terminal: %w", err)
	}
	release := func() {
		_ = in.Close()
		_ = out.Close()
	}
	return []prompt.Option{prompt.WithInput(in)}, release, nil
}

type interactor[T any] interface {
	Interact(ctx context.Context, opts ...prompt.Option) (prompt.Result[T], error)
}

// ask runs p and returns its value. A cancelled prompt yields errCancelled.
func ask[T any](cmd *cobra.Command, kind, label string, p interactor[T]) (T, error) {
	var zero T
	ctx := cmd.Context()

	opts, release, err := promptOptions()
	if err != nil {
		return zero, err
	}
	defer release()

	start := time.Now()
	done := log.FromContext(ctx).Prompt(kind, label)
	res, err := p.Interact(ctx, opts...)
	done(time.Since(start))

	if err != nil {
		return zero, err
	}
	if res.Cancelled {
		return zero, errCancelled
	}
	return res.Value, nil
}

// copyValue copies text to the clipboard when enabled. Failures are
// reported as warnings since the value is printed anyway.
func copyValue(ctx context.Context, enabled bool, text string) {
	if !enabled {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.FromContext(ctx).Printf("Warning: failed to copy to clipboard: %v\n", err)
		return
	}
	log.FromContext(ctx).Debug("copied to clipboard", "chars", len([]rune(text)))
}

// validatorFlags holds the text validation flags shared by input and
// password.
type validatorFlags struct {
	required     bool
	minLength    int
	maxLength    int
	match        string
	matchMessage string
}

func (f *validatorFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.required, "required", false, "Reject empty input")
	cmd.Flags().IntVar(&f.minLength, "min-length", 0, "Minimum number of characters")
	cmd.Flags().IntVar(&f.maxLength, "max-length", 0, "Maximum number of characters")
	cmd.Flags().StringVar(&f.match, "match", "", "Regular expression the input must match")
	cmd.Flags().StringVar(&f.matchMessage, "match-message", "Invalid format", "Error shown when --match fails")
}

// validator combines the configured checks. It returns nil when no check
// is configured.
func (f validatorFlags) validator() (prompt.Validator, error) {
	var vs []prompt.Validator
	if f.required {
		vs = append(vs, prompt.Required)
	}
	if f.minLength > 0 {
		vs = append(vs, prompt.MinLength(f.minLength))
	}
	if f.maxLength > 0 {
		if f.minLength > f.maxLength {
			return nil, fmt.Errorf("--min-length %d exceeds --max-length %d", f.minLength, f.maxLength)
		}
		vs = append(vs, prompt.MaxLength(f.maxLength))
	}
	if f.match != "" {
		v, err := matchValidator(f.match, f.matchMessage)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}

	if len(vs) == 0 {
		return nil, nil
	}
	return prompt.All(vs...), nil
}

// matchValidator checks pattern up front so a bad flag is reported as an
// error rather than a panic.
func matchValidator(pattern, msg string) (prompt.Validator, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, fmt.Errorf("invalid --match pattern: %w", err)
	}
	return prompt.Match(pattern, msg), nil
}

// parseOption parses "value[|label[|hint]]".
func parseOption(s string) prompt.Item[string] {
	parts := strings.SplitN(s, "|", 3)
	item := prompt.Item[string]{Value: parts[0]}
	if len(parts) > 1 {
		item.Label = parts[1]
	}
	if len(parts) > 2 {
		item.Hint = parts[2]
	}
	return item
}

// readOptions returns the options given as args, or one option per
// non-empty line of r when there are no args.
func readOptions(args []string, r io.Reader) ([]prompt.Item[string], error) {
	lines := args
	if len(lines) == 0 && r != nil {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read options: %w", err)
		}
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("no options given: pass them as arguments or pipe one per line")
	}

	items := make([]prompt.Item[string], len(lines))
	for i, l := range lines {
		items[i] = parseOption(l)
	}
	return items, nil
}

// optionSource returns stdin when it is piped, nil otherwise.
func optionSource() io.Reader {
	if stdinIsTerminal() {
		return nil
	}
	return os.Stdin
}
