package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestEventFromKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want Event
		ok   bool
	}{
		{"letter", keyPress("a"), Char('a'), true},
		{"multibyte", keyPress("ä"), Char('ä'), true},
		{"emoji", keyPress("🔑"), Char('🔑'), true},
		{"space", keyPress("space"), Event{Key: KeySpace, Rune: ' '}, true},
		{"enter", keyPress("enter"), Press(KeyEnter), true},
		{"backspace", keyPress("backspace"), Press(KeyBackspace), true},
		{"escape", keyPress("esc"), Press(KeyEscape), true},
		{"ctrl+c", keyPress("ctrl+c"), Press(KeyInterrupt), true},
		{"arrow", keyPress("up"), Press(KeyUp), true},
		{"delete", keyPress("delete"), Press(KeyDelete), true},
		{"tab", keyPress("tab"), Press(KeyTab), true},
		{"function key", tea.KeyPressMsg{Code: tea.KeyF1}, Event{}, false},
		{"ctrl combo", tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}, Event{}, false},
		{"alt combo", tea.KeyPressMsg{Code: 'x', Mod: tea.ModAlt, Text: "x"}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := eventFromKey(tt.msg)
			if ok != tt.ok {
				t.Fatalf("eventFromKey() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("eventFromKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEventText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   Event
		want rune
		ok   bool
	}{
		{"char", Char('x'), 'x', true},
		{"space", Char(' '), ' ', true},
		{"control char", Event{Key: KeyChar, Rune: '\t'}, 0, false},
		{"delete char", Event{Key: KeyChar, Rune: 0x7f}, 0, false},
		{"enter", Press(KeyEnter), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.ev.Text()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Text() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
