package prompt

import (
	"slices"
	"testing"
)

func tools() *MultiSelect[string] {
	return NewMultiSelect[string]("Pick tools").
		Item("fmt", "gofmt", "").
		Item("vet", "go vet", "").
		Item("lint", "golangci-lint", "slow")
}

func TestMultiSelect_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   func() *MultiSelect[string]
		keys []string
		want []string
	}{
		{"toggle first", tools, []string{"space"}, []string{"fmt"}},
		{"toggle two", tools, []string{"space", "down", "down", "space"}, []string{"fmt", "lint"}},
		{"toggle off again", tools, []string{"space", "down", "space", "up", "space"}, []string{"vet"}},
		{"select all", tools, []string{"a"}, []string{"fmt", "vet", "lint"}},
		{"all twice clears", func() *MultiSelect[string] { return tools().Required(false) }, []string{"a", "a"}, []string{}},
		{"initial values", func() *MultiSelect[string] { return tools().InitialValues("lint", "fmt") }, nil, []string{"fmt", "lint"}},
		{"up wraps", tools, []string{"up", "space"}, []string{"lint"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, cmd := feed(t, newLoop[[]string](tt.ms()), append(keys(tt.keys...), keyPress("enter"))...)
			if !isQuit(cmd) {
				t.Fatalf("expected quit, state err = %q", m.state.Err())
			}
			if got, _ := m.state.Value(); !slices.Equal(got, tt.want) {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiSelect_RequiredRejectsEmpty(t *testing.T) {
	t.Parallel()

	m, cmd := feed(t, newLoop[[]string](tools()), keyPress("enter"))
	if cmd != nil {
		t.Fatal("empty required selection must not quit")
	}
	if m.state.Err() != "Please select at least one option." {
		t.Errorf("Err() = %q", m.state.Err())
	}

	m, _ = feed(t, m, keyPress("space"), keyPress("enter"))
	if got, _ := m.state.Value(); !slices.Equal(got, []string{"fmt"}) {
		t.Errorf("Value() = %v, want [fmt]", got)
	}
}

func TestMultiSelect_Render(t *testing.T) {
	t.Parallel()

	p := tools().Theme(testTheme)
	m, _ := feed(t, newLoop[[]string](p), keyPress("space"), keyPress("down"), keyPress("down"))

	want := "*  Pick tools\n" +
		"|  [+] gofmt\n" +
		"|  [ ] go vet\n" +
		"|  [•] golangci-lint (slow)\n" +
		"—\n"
	if got := frame(m); got != want {
		t.Errorf("active frame =\n%q\nwant\n%q", got, want)
	}

	m, _ = feed(t, m, keyPress("enter"))
	if got := frame(m); got != "o  Pick tools\n|  gofmt\n|\n" {
		t.Errorf("submitted frame = %q", got)
	}
}
