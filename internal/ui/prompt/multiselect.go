package prompt

import (
	"context"

	"github.com/raphi011/clack/internal/ui/theme"
)

const msgSelectOne = "Please select at least one option."

// MultiSelect picks any number of values from a list.
type MultiSelect[T comparable] struct {
	themed
	label    string
	items    []Item[T]
	selected []bool
	cursor   int
	required bool
}

var _ Interaction[[]string] = (*MultiSelect[string])(nil)

// NewMultiSelect returns a multiselect prompt labelled label. At least one
// option must be selected unless Required(false) is set.
func NewMultiSelect[T comparable](label string) *MultiSelect[T] {
	return &MultiSelect[T]{label: label, required: true}
}

// Item appends an option.
func (p *MultiSelect[T]) Item(value T, label, hint string) *MultiSelect[T] {
	return p.Items(Item[T]{Value: value, Label: label, Hint: hint})
}

// Items appends options.
func (p *MultiSelect[T]) Items(items ...Item[T]) *MultiSelect[T] {
	p.items = append(p.items, items...)
	p.selected = append(p.selected, make([]bool, len(items))...)
	return p
}

// InitialValues preselects every option holding one of vs. Options must be
// added first.
func (p *MultiSelect[T]) InitialValues(vs ...T) *MultiSelect[T] {
	for i, it := range p.items {
		for _, v := range vs {
			if it.Value == v {
				p.selected[i] = true
			}
		}
	}
	return p
}

// Required sets whether submitting with nothing selected is rejected.
func (p *MultiSelect[T]) Required(required bool) *MultiSelect[T] {
	p.required = required
	return p
}

// Theme renders this prompt with t instead of the process-wide theme.
func (p *MultiSelect[T]) Theme(t theme.Theme) *MultiSelect[T] {
	p.theme = t
	return p
}

// Interact runs the prompt and returns the selected values in option order.
func (p *MultiSelect[T]) Interact(ctx context.Context, opts ...Option) (Result[[]T], error) {
	return Interact[[]T](ctx, p, opts...)
}

func (p *MultiSelect[T]) On(ev Event) State[[]T] {
	n := len(p.items)

	switch {
	case ev.Key == KeyUp, ev.is('k'):
		if n > 0 {
			p.cursor = (p.cursor - 1 + n) % n
		}
	case ev.Key == KeyDown, ev.is('j'):
		if n > 0 {
			p.cursor = (p.cursor + 1) % n
		}
	case ev.Key == KeySpace:
		if n > 0 {
			p.selected[p.cursor] = !p.selected[p.cursor]
		}
	case ev.is('a'):
		p.toggleAll()
	case ev.Key == KeyEnter:
		values := p.values()
		if p.required && len(values) == 0 {
			return Invalid[[]T](msgSelectOne)
		}
		return Submit(values)
	}
	return Active[[]T]()
}

// toggleAll selects every option, or clears them all if all are selected.
func (p *MultiSelect[T]) toggleAll() {
	all := true
	for _, s := range p.selected {
		all = all && s
	}
	for i := range p.selected {
		p.selected[i] = !all
	}
}

func (p *MultiSelect[T]) values() []T {
	values := []T{}
	for i, it := range p.items {
		if p.selected[i] {
			values = append(values, it.Value)
		}
	}
	return values
}

func (p *MultiSelect[T]) Render(st State[[]T]) string {
	th := p.th()
	ts := st.Theme()

	out := th.FormatHeader(ts, p.label)
	for i, it := range p.items {
		out += th.FormatMultiSelectItem(ts, p.selected[i], i == p.cursor, it.label(), it.Hint)
	}
	return out + th.FormatFooter(ts)
}
