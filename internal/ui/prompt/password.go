package prompt

import (
	"context"

	"github.com/raphi011/clack/internal/ui/cursor"
	"github.com/raphi011/clack/internal/ui/theme"
)

// Password reads a secret. Typed characters are drawn as mask glyphs.
type Password struct {
	themed
	label    string
	input    *cursor.Buffer
	mask     string
	validate Validator
}

var _ Interaction[string] = (*Password)(nil)

// NewPassword returns a password prompt labelled label.
func NewPassword(label string) *Password {
	return &Password{label: label, input: cursor.New("")}
}

// Mask sets the glyph drawn for every typed character. The theme's mask is
// used when unset.
func (p *Password) Mask(mask string) *Password {
	p.mask = mask
	return p
}

// Validate sets the validator run on submit.
func (p *Password) Validate(v Validator) *Password {
	p.validate = v
	return p
}

// Theme renders this prompt with t instead of the process-wide theme.
func (p *Password) Theme(t theme.Theme) *Password {
	p.theme = t
	return p
}

// Interact runs the prompt and returns the entered password.
func (p *Password) Interact(ctx context.Context, opts ...Option) (Result[string], error) {
	return Interact[string](ctx, p, opts...)
}

func (p *Password) On(ev Event) State[string] {
	if r, ok := ev.Text(); ok {
		p.input.Insert(r)
		return Active[string]()
	}

	switch ev.Key {
	case KeyBackspace:
		p.input.DeleteLeft()
	case KeyEnter:
		value := p.input.String()
		if err := p.validate.run(value); err != nil {
			return Invalid[string](err.Error())
		}
		return Submit(value)
	}
	return Active[string]()
}

func (p *Password) Render(st State[string]) string {
	th := p.th()
	mask := p.mask
	if mask == "" {
		mask = th.PasswordMask()
	}

	ts := st.Theme()
	return th.FormatHeader(ts, p.label) +
		th.FormatPassword(ts, p.input, mask) +
		th.FormatFooter(ts)
}
