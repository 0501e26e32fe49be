package prompt

import (
	"context"

	"github.com/raphi011/clack/internal/ui/theme"
)

// Confirm asks a yes/no question.
type Confirm struct {
	themed
	label string
	value bool
}

var _ Interaction[bool] = (*Confirm)(nil)

// NewConfirm returns a confirmation prompt labelled label. The initial
// choice is Yes.
func NewConfirm(label string) *Confirm {
	return &Confirm{label: label, value: true}
}

// InitialValue sets the preselected answer.
func (p *Confirm) InitialValue(v bool) *Confirm {
	p.value = v
	return p
}

// Theme renders this prompt with t instead of the process-wide theme.
func (p *Confirm) Theme(t theme.Theme) *Confirm {
	p.theme = t
	return p
}

// Interact runs the prompt and returns the chosen answer.
func (p *Confirm) Interact(ctx context.Context, opts ...Option) (Result[bool], error) {
	return Interact[bool](ctx, p, opts...)
}

func (p *Confirm) On(ev Event) State[bool] {
	switch {
	case ev.is('y', 'Y'):
		p.value = true
		return Submit(true)
	case ev.is('n', 'N'):
		p.value = false
		return Submit(false)
	case ev.is('h', 'j', 'k', 'l'):
		p.value = !p.value
	}

	switch ev.Key {
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeySpace, KeyTab:
		p.value = !p.value
	case KeyEnter:
		return Submit(p.value)
	}
	return Active[bool]()
}

func (p *Confirm) Render(st State[bool]) string {
	th := p.th()
	ts := st.Theme()
	return th.FormatHeader(ts, p.label) +
		th.FormatConfirm(ts, p.value) +
		th.FormatFooter(ts)
}
