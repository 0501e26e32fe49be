package prompt

import (
	"unicode"

	tea "charm.land/bubbletea/v2"
)

// Key identifies the kind of key event a prompt receives.
type Key int

const (
	KeyChar Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyInterrupt // ctrl+c
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeySpace
	KeyTab
)

// Event is a single decoded key press. Rune is set for KeyChar and KeySpace.
type Event struct {
	Key  Key
	Rune rune
}

// Char returns the event for typing r.
func Char(r rune) Event {
	if r == ' ' {
		return Event{Key: KeySpace, Rune: ' '}
	}
	return Event{Key: KeyChar, Rune: r}
}

// Press returns the event for a key without a character.
func Press(k Key) Event {
	return Event{Key: k}
}

// Text reports whether the event inserts text, returning the rune to insert.
// ASCII control characters never count as text.
func (e Event) Text() (rune, bool) {
	if e.Key != KeyChar && e.Key != KeySpace {
		return 0, false
	}
	if e.Rune < 0x20 || e.Rune == 0x7f {
		return 0, false
	}
	return e.Rune, true
}

// is reports whether the event is the character r.
func (e Event) is(runes ...rune) bool {
	if e.Key != KeyChar {
		return false
	}
	for _, r := range runes {
		if e.Rune == r {
			return true
		}
	}
	return false
}

var namedKeys = map[rune]Key{
	tea.KeyBackspace: KeyBackspace,
	tea.KeyEnter:     KeyEnter,
	tea.KeyEscape:    KeyEscape,
	tea.KeyUp:        KeyUp,
	tea.KeyDown:      KeyDown,
	tea.KeyLeft:      KeyLeft,
	tea.KeyRight:     KeyRight,
	tea.KeyHome:      KeyHome,
	tea.KeyEnd:       KeyEnd,
	tea.KeyDelete:    KeyDelete,
	tea.KeyTab:       KeyTab,
}

// eventFromKey converts a bubbletea key press. Keys without a mapping,
// such as function keys or alt combinations, report false.
func eventFromKey(msg tea.KeyPressMsg) (Event, bool) {
	if msg.String() == "ctrl+c" {
		return Press(KeyInterrupt), true
	}
	if msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
		return Event{}, false
	}
	if k, ok := namedKeys[msg.Code]; ok {
		return Press(k), true
	}
	if msg.Code == tea.KeySpace {
		return Char(' '), true
	}

	runes := []rune(msg.Text)
	if len(runes) != 1 || !unicode.IsPrint(runes[0]) {
		return Event{}, false
	}
	return Char(runes[0]), true
}
