package prompt

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/clack/internal/ui/cursor"
	"github.com/raphi011/clack/internal/ui/theme"
)

// Item is one option of a select or multiselect prompt.
type Item[T any] struct {
	Value T
	Label string
	Hint  string
}

func (it Item[T]) label() string {
	if it.Label != "" {
		return it.Label
	}
	return fmt.Sprint(it.Value)
}

// labels implements fuzzy.Source over a list of items.
type labels[T any] []Item[T]

func (l labels[T]) String(i int) string { return l[i].label() }
func (l labels[T]) Len() int { return len(l) }

const (
	msgNoMatches = "No matches"
	msgNoOptions = "No options"
)

// Select picks one value from a list.
type Select[T comparable] struct {
	themed
	label  string
	items  []Item[T]
	cursor int

	filter  bool
	query   *cursor.Buffer
	visible []int // indexes into items, ranked when filtering
}

var _ Interaction[string] = (*Select[string])(nil)

// NewSelect returns a select prompt labelled label.
func NewSelect[T comparable](label string) *Select[T] {
	return &Select[T]{label: label, query: cursor.New("")}
}

// Item appends an option.
func (p *Select[T]) Item(value T, label, hint string) *Select[T] {
	return p.Items(Item[T]{Value: value, Label: label, Hint: hint})
}

// Items appends options.
func (p *Select[T]) Items(items ...Item[T]) *Select[T] {
	p.items = append(p.items, items...)
	p.refilter()
	return p
}

// InitialValue moves the cursor to the first option holding v. Options must
// be added first.
func (p *Select[T]) InitialValue(v T) *Select[T] {
	for i, idx := range p.visible {
		if p.items[idx].Value == v {
			p.cursor = i
			break
		}
	}
	return p
}

// Filter enables typing to fuzzy-filter the options.
func (p *Select[T]) Filter(enabled bool) *Select[T] {
	p.filter = enabled
	return p
}

// Theme renders this prompt with t instead of the process-wide theme.
func (p *Select[T]) Theme(t theme.Theme) *Select[T] {
	p.theme = t
	return p
}

// Interact runs the prompt and returns the selected value.
func (p *Select[T]) Interact(ctx context.Context, opts ...Option) (Result[T], error) {
	return Interact[T](ctx, p, opts...)
}

func (p *Select[T]) On(ev Event) State[T] {
	if p.filter {
		if r, ok := ev.Text(); ok {
			p.query.Insert(r)
			p.refilter()
			return Active[T]()
		}
		if ev.Key == KeyBackspace {
			p.query.DeleteLeft()
			p.refilter()
			return Active[T]()
		}
	}

	switch {
	case ev.Key == KeyUp, !p.filter && ev.is('k', 'h'):
		p.move(-1)
	case ev.Key == KeyDown, !p.filter && ev.is('j', 'l'):
		p.move(1)
	case ev.Key == KeyEnter:
		if len(p.visible) == 0 {
			if len(p.items) == 0 {
				return Invalid[T](msgNoOptions)
			}
			return Invalid[T](msgNoMatches)
		}
		return Submit(p.items[p.visible[p.cursor]].Value)
	}
	return Active[T]()
}

// move shifts the cursor by delta, wrapping at both ends.
func (p *Select[T]) move(delta int) {
	n := len(p.visible)
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// refilter recomputes the visible options for the current query. An empty
// query shows every option in order.
func (p *Select[T]) refilter() {
	p.visible = p.visible[:0]

	query := p.query.String()
	if query == "" {
		for i := range p.items {
			p.visible = append(p.visible, i)
		}
	} else {
		for _, m := range fuzzy.FindFrom(query, labels[T](p.items)) {
			p.visible = append(p.visible, m.Index)
		}
	}

	if p.cursor >= len(p.visible) {
		p.cursor = 0
	}
}

func (p *Select[T]) Render(st State[T]) string {
	th := p.th()
	ts := st.Theme()

	out := th.FormatHeader(ts, p.label)
	if p.filter && !st.Terminal() {
		out += th.FormatInput(ts, p.query)
	}
	for i, idx := range p.visible {
		it := p.items[idx]
		out += th.FormatSelectItem(ts, i == p.cursor, it.label(), it.Hint)
	}
	return out + th.FormatFooter(ts)
}
