package progress

import (
	"fmt"
	"sync"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/clack/internal/ui/styles"
	"github.com/raphi011/clack/internal/ui/theme"
)

// progressUpdate is sent to update the progress bar
type progressUpdate struct {
	current int
	message string
}

// ProgressBar wraps a Bubbletea progress bar for simple non-interactive use.
// Use this for determinate operations where you know the total count.
type ProgressBar struct {
	opts      options
	program   *tea.Program
	updateCh  chan progressUpdate
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	total     int
	current   int
	message   string
}

// progressBarModel is the internal Bubbletea model
type progressBarModel struct {
	progress progress.Model
	theme    theme.Theme
	total    int
	current  int
	message  string
	updateCh chan progressUpdate
}

func (m progressBarModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m progressBarModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.updateCh
		if !ok {
			return tea.Quit()
		}
		return update
	}
}

func (m progressBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressUpdate:
		m.current = msg.current
		m.message = msg.message
		return m, m.waitForUpdate()
	default:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}
}

// percent returns the completed fraction, clamped to [0, 1].
func (m progressBarModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return min(max(float64(m.current)/float64(m.total), 0), 1)
}

func (m progressBarModel) View() tea.View {
	// │  ████████░░░░░░░░  45% Fetching...
	percent := m.percent()
	bar := fmt.Sprintf("%s %3d%%", m.progress.ViewAs(percent), int(percent*100))
	return tea.NewView(m.theme.FormatProgress(bar, m.message))
}

// NewProgressBar creates a new progress bar with the given total and message.
func NewProgressBar(total int, message string, opts ...Option) *ProgressBar {
	return &ProgressBar{
		opts:    newOptions(opts),
		total:   total,
		message: message,
	}
}

func (p *ProgressBar) newModel() progressBarModel {
	// Create progress bar with theme colors
	prog := progress.New(
		progress.WithWidth(40),
		progress.WithoutPercentage(),
		progress.WithColors(styles.Primary, styles.Accent),
	)

	return progressBarModel{
		progress: prog,
		theme:    p.opts.th(),
		total:    p.total,
		current:  p.current,
		message:  p.message,
		updateCh: p.updateCh,
	}
}

// Start begins the progress bar display.
func (p *ProgressBar) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		return
	}

	// Each run gets its own channels: the previous ones were closed by Stop.
	p.updateCh = make(chan progressUpdate, 10)
	p.done = make(chan struct{})

	program := tea.NewProgram(p.newModel(),
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(p.opts.output),
	)
	p.program = program
	p.isRunning = true

	done := p.done
	go func() {
		_, _ = program.Run()
		close(done)
	}()
}

// SetProgress updates the current progress and message.
func (p *ProgressBar) SetProgress(current int, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = current
	p.message = message
	if !p.isRunning {
		return
	}

	// Non-blocking send - drops updates if the channel is full
	// Safe because channel close happens under same mutex
	select {
	case p.updateCh <- progressUpdate{current: current, message: message}:
	default:
	}
}

// Stop stops the progress bar and leaves a success line with message.
// An empty message keeps the last progress message.
func (p *ProgressBar) Stop(message string) {
	p.mu.Lock()
	if !p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = false
	// Close channel inside mutex to prevent race with SetProgress
	close(p.updateCh)
	if message == "" {
		message = p.message
	}
	program, done := p.program, p.done
	p.mu.Unlock()

	stopProgram(program, done)
	writeFinal(p.opts.output, p.opts.th().FormatSpinnerStop(message))
}

// Total returns the total count for the progress bar.
func (p *ProgressBar) Total() int {
	return p.total
}
