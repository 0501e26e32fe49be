package prompt

import (
	"testing"

	"github.com/raphi011/clack/internal/ui/theme"
)

func TestConfirm_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial bool
		keys    []string
		want    bool
		done    bool
	}{
		{"y confirms", false, []string{"y"}, true, true},
		{"Y confirms", false, []string{"Y"}, true, true},
		{"n declines", true, []string{"n"}, false, true},
		{"N declines", true, []string{"N"}, false, true},
		{"enter keeps initial yes", true, []string{"enter"}, true, true},
		{"enter keeps initial no", false, []string{"enter"}, false, true},
		{"arrow toggles", true, []string{"right", "enter"}, false, true},
		{"space toggles twice", true, []string{"space", "space", "enter"}, true, true},
		{"vim keys toggle", false, []string{"l", "enter"}, true, true},
		{"unhandled is no-op", true, []string{"x"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewConfirm("Continue?").InitialValue(tt.initial)
			m, cmd := feed(t, newLoop[bool](p), keys(tt.keys...)...)

			if m.state.Terminal() != tt.done {
				t.Fatalf("Terminal() = %v, want %v", m.state.Terminal(), tt.done)
			}
			if isQuit(cmd) != tt.done {
				t.Errorf("quit = %v, want %v", isQuit(cmd), tt.done)
			}
			if !tt.done {
				if m.state.Status() != theme.StatusActive {
					t.Errorf("status = %v, want active", m.state.Status())
				}
				return
			}
			if got, _ := m.state.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirm_Render(t *testing.T) {
	t.Parallel()

	p := NewConfirm("Continue?").Theme(testTheme)
	m := newLoop[bool](p)

	if got := frame(m); got != "*  Continue?\n|  > Yes /   No\n—\n" {
		t.Errorf("active frame = %q", got)
	}

	m, _ = feed(t, m, keyPress("n"))
	if got := frame(m); got != "o  Continue?\n|  No\n|\n" {
		t.Errorf("submitted frame = %q", got)
	}
}
