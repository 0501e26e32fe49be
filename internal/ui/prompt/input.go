package prompt

import (
	"context"

	"github.com/raphi011/clack/internal/ui/cursor"
	"github.com/raphi011/clack/internal/ui/theme"
)

// Input reads a single line of text with cursor navigation.
type Input struct {
	themed
	label       string
	input       *cursor.Buffer
	placeholder string
	def         string
	hasDefault  bool
	validate    Validator
}

var _ Interaction[string] = (*Input)(nil)

// NewInput returns a text prompt labelled label.
func NewInput(label string) *Input {
	return &Input{label: label, input: cursor.New("")}
}

// Placeholder sets the dimmed text shown while the input is empty.
func (p *Input) Placeholder(text string) *Input {
	p.placeholder = text
	return p
}

// Default sets the value submitted when the input is left empty. It is shown
// as placeholder unless one is set.
func (p *Input) Default(value string) *Input {
	p.def = value
	p.hasDefault = true
	return p
}

// InitialValue pre-fills the input with the cursor at the end.
func (p *Input) InitialValue(value string) *Input {
	p.input.Set(value)
	return p
}

// Validate sets the validator run on submit.
func (p *Input) Validate(v Validator) *Input {
	p.validate = v
	return p
}

// Theme renders this prompt with t instead of the process-wide theme.
func (p *Input) Theme(t theme.Theme) *Input {
	p.theme = t
	return p
}

// Interact runs the prompt and returns the entered text.
func (p *Input) Interact(ctx context.Context, opts ...Option) (Result[string], error) {
	return Interact[string](ctx, p, opts...)
}

func (p *Input) On(ev Event) State[string] {
	if r, ok := ev.Text(); ok {
		p.input.Insert(r)
		return Active[string]()
	}

	switch ev.Key {
	case KeyBackspace:
		p.input.DeleteLeft()
	case KeyDelete:
		p.input.DeleteRight()
	case KeyLeft:
		p.input.MoveLeft()
	case KeyRight:
		p.input.MoveRight()
	case KeyHome:
		p.input.Home()
	case KeyEnd:
		p.input.End()
	case KeyEnter:
		value := p.input.String()
		if value == "" && p.hasDefault {
			value = p.def
		}
		if err := p.validate.run(value); err != nil {
			return Invalid[string](err.Error())
		}
		return Submit(value)
	}
	return Active[string]()
}

func (p *Input) Render(st State[string]) string {
	th := p.th()
	ts := st.Theme()

	var body string
	switch value, submitted := st.Value(); {
	case submitted:
		body = th.FormatInput(ts, cursor.New(value))
	case p.input.IsEmpty() && p.hint() != "":
		hint := cursor.New(p.hint())
		hint.Home()
		body = th.FormatPlaceholder(ts, hint)
	default:
		body = th.FormatInput(ts, p.input)
	}

	return th.FormatHeader(ts, p.label) + body + th.FormatFooter(ts)
}

func (p *Input) hint() string {
	if p.placeholder == "" && p.hasDefault {
		return p.def
	}
	return p.placeholder
}
