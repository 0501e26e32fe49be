// Package progress provides progress indication components.
//
// [Spinner] animates while work of unknown length runs and [ProgressBar]
// tracks work with a known total. Both draw through the prompt theme, run
// a background bubbletea program on stderr and leave a themed final line
// behind when stopped.
package progress

import (
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/clack/internal/ui/theme"
)

// messageUpdate is sent to update the spinner message
type messageUpdate string

// Spinner wraps a Bubbletea spinner for simple non-interactive use
type Spinner struct {
	opts      options
	program   *tea.Program
	msgChan   chan string
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	lastMsg   string
}

// spinnerModel is the internal Bubbletea model
type spinnerModel struct {
	spinner spinner.Model
	theme   theme.Theme
	message string
	msgChan chan string
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForMessage())
}

func (m spinnerModel) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.msgChan
		if !ok {
			return tea.Quit()
		}
		return messageUpdate(msg)
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messageUpdate:
		m.message = string(msg)
		return m, m.waitForMessage()
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	return tea.NewView(m.theme.FormatSpinnerStart(m.spinner.View(), m.message))
}

// NewSpinner creates a spinner. It draws nothing until Start.
func NewSpinner(opts ...Option) *Spinner {
	return &Spinner{opts: newOptions(opts)}
}

func (s *Spinner) newModel() spinnerModel {
	th := s.opts.th()
	sp := spinner.New(spinner.WithSpinner(spinner.Spinner{
		Frames: th.SpinnerFrames(),
		FPS:    s.opts.interval,
	}))

	return spinnerModel{
		spinner: sp,
		theme:   th,
		message: s.lastMsg,
		msgChan: s.msgChan,
	}
}

// Start begins the spinner animation with message
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}
	s.lastMsg = message

	// Each run gets its own channels: the previous ones were closed by finish.
	s.msgChan = make(chan string, 10)
	s.done = make(chan struct{})

	// Keys are left to the caller; the spinner never reads input.
	program := tea.NewProgram(s.newModel(),
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(s.opts.output),
	)
	s.program = program
	s.isRunning = true

	done := s.done
	go func() {
		_, _ = program.Run()
		close(done)
	}()
}

// SetMessage changes the spinner message
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastMsg = message
	if !s.isRunning {
		return
	}

	// Non-blocking send - drops messages if the channel is full
	// Safe because channel close happens under same mutex
	select {
	case s.msgChan <- message:
	default:
	}
}

// Stop ends the animation and leaves a success line with message.
// An empty message keeps the last spinner message.
func (s *Spinner) Stop(message string) {
	s.finish(message, s.opts.th().FormatSpinnerStop)
}

// Error ends the animation and leaves an error line with message.
// An empty message keeps the last spinner message.
func (s *Spinner) Error(message string) {
	s.finish(message, s.opts.th().FormatSpinnerError)
}

func (s *Spinner) finish(message string, format func(string) string) {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	// Close channel inside mutex to prevent race with SetMessage
	close(s.msgChan)
	if message == "" {
		message = s.lastMsg
	}
	program, done := s.program, s.done
	s.mu.Unlock()

	stopProgram(program, done)
	writeFinal(s.opts.output, format(message))
}

// stopProgram quits program and waits briefly for it to exit.
func stopProgram(program *tea.Program, done <-chan struct{}) {
	if program != nil {
		program.Quit()
	}

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
	}
}

// writeFinal clears the animated line and writes the final frame.
func writeFinal(w io.Writer, frame string) {
	_, _ = lipgloss.Fprint(w, "\r"+ansi.EraseLineRight+frame)
}
