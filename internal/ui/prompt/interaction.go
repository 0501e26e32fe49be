package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/clack/internal/ui/theme"
)

// Interaction is implemented by every prompt. On turns a key event into the
// next state and Render draws the prompt for a state. Render must be
// deterministic: the same prompt contents and state give the same frame.
type Interaction[T any] interface {
	On(ev Event) State[T]
	Render(st State[T]) string
}

// Result is the outcome of an interaction. Value is only meaningful when
// Cancelled is false.
type Result[T any] struct {
	Value     T
	Cancelled bool
}

// ErrInputClosed is returned when the input ends or fails before the prompt
// finished. A read error other than io.EOF is wrapped along with it.
var ErrInputClosed = errors.New("input closed before prompt finished")

type options struct {
	input   io.Reader
	output  io.Writer
	profile *colorprofile.Profile
}

// Option configures how a prompt talks to the terminal.
type Option func(*options)

// WithInput reads key events from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.input = r }
}

// WithOutput draws frames to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithColorProfile forces a colour profile instead of detecting it from
// the output.
func WithColorProfile(p colorprofile.Profile) Option {
	return func(o *options) { o.profile = &p }
}

// Interact runs p until it is submitted or cancelled. Escape and ctrl+c
// cancel any prompt. Cancellation is not an error: it is reported through
// Result.Cancelled. Errors only come from the terminal, e.g. closed input
// or ctx being cancelled.
func Interact[T any](ctx context.Context, p Interaction[T], opts ...Option) (Result[T], error) {
	o := options{output: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	profile := colorprofile.Detect(o.output, os.Environ())
	if o.profile != nil {
		profile = *o.profile
	}

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(o.output),
		tea.WithColorProfile(profile),
	}
	in := o.input
	if in == nil {
		in = os.Stdin
	}
	progOpts = append(progOpts, tea.WithInput(watchInput(in)))

	final, err := tea.NewProgram(newLoop(p), progOpts...).Run()

	// The last keys can finish the prompt right before the input ends or
	// the program is stopped; the answer still counts.
	m, ok := final.(loop[T])
	if ok && m.state.Terminal() {
		if v, ok := m.state.Value(); ok {
			return Result[T]{Value: v}, nil
		}
		return Result[T]{Cancelled: true}, nil
	}

	if err != nil {
		var closed *inputClosedError
		if errors.As(err, &closed) {
			return Result[T]{}, fmt.Errorf("run prompt: %w", closed)
		}
		return Result[T]{}, fmt.Errorf("run prompt: %w", err)
	}
	return Result[T]{}, fmt.Errorf("run prompt: %w", ErrInputClosed)
}

// loop adapts an Interaction to a bubbletea model. The renderer replaces
// the previous frame on every update.
type loop[T any] struct {
	prompt Interaction[T]
	state  State[T]
}

func newLoop[T any](p Interaction[T]) loop[T] {
	return loop[T]{prompt: p, state: Active[T]()}
}

func (m loop[T]) Init() tea.Cmd {
	return nil
}

func (m loop[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Terminal() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		ev, ok := eventFromKey(msg)
		if !ok {
			return m, nil
		}
		return m.handle(ev)
	case tea.PasteMsg:
		for _, r := range msg.Content {
			ev := Char(r)
			if _, ok := ev.Text(); !ok {
				continue
			}
			var cmd tea.Cmd
			if m, cmd = m.handle(ev); cmd != nil {
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m loop[T]) handle(ev Event) (loop[T], tea.Cmd) {
	if ev.Key == KeyEscape || ev.Key == KeyInterrupt {
		m.state = Cancel[T]()
		return m, tea.Quit
	}

	m.state = m.prompt.On(ev)
	if m.state.Terminal() {
		return m, tea.Quit
	}
	return m, nil
}

func (m loop[T]) View() tea.View {
	return tea.NewView(strings.TrimSuffix(m.prompt.Render(m.state), "\n"))
}

// themed resolves the theme a prompt renders with.
type themed struct {
	theme theme.Theme
}

func (t themed) th() theme.Theme {
	if t.theme != nil {
		return t.theme
	}
	return theme.Current()
}

// inputClosedError reports that the key source ended or failed before the
// prompt finished. It matches ErrInputClosed and unwraps to the read error,
// except io.EOF: the terminal reader treats EOF as a clean stop and would
// swallow it.
type inputClosedError struct {
	cause error
}

func (e *inputClosedError) Error() string {
	if errors.Is(e.cause, io.EOF) {
		return ErrInputClosed.Error()
	}
	return fmt.Sprintf("%s: %v", ErrInputClosed, e.cause)
}

func (e *inputClosedError) Is(target error) bool { return target == ErrInputClosed }

func (e *inputClosedError) Unwrap() error {
	if errors.Is(e.cause, io.EOF) {
		return nil
	}
	return e.cause
}

// closeWatcher turns the end of its reader into an inputClosedError so the
// program stops instead of waiting for keys that never come. Bytes read
// together with the error are delivered first.
type closeWatcher struct {
	r   io.Reader
	err error
}

func (w *closeWatcher) Read(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.r.Read(p)
	if err != nil {
		w.err = &inputClosedError{cause: err}
		if n > 0 {
			return n, nil
		}
		return 0, w.err
	}
	return n, nil
}

// watchedFile keeps the *os.File methods so reads stay cancelable through
// the file descriptor.
type watchedFile struct {
	*os.File
	w *closeWatcher
}

func (f *watchedFile) Read(p []byte) (int, error) { return f.w.Read(p) }

// watchInput wraps r unless it is a terminal. Terminals do not end, and
// bubbletea needs the bare *os.File to switch them to raw mode.
func watchInput(r io.Reader) io.Reader {
	f, ok := r.(*os.File)
	if !ok {
		return &closeWatcher{r: r}
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return f
	}
	return &watchedFile{File: f, w: &closeWatcher{r: f}}
}
