package cursor

import "testing"

func TestBuffer_Insert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []rune
		want  string
	}{
		{"ascii", []rune("hello"), "hello"},
		{"multibyte", []rune("héllo→"), "héllo→"},
		{"emoji", []rune("🙂🙃"), "🙂🙃"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var b Buffer
			for _, r := range tt.input {
				b.Insert(r)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if b.Position() != len(tt.input) {
				t.Errorf("Position() = %d, want %d", b.Position(), len(tt.input))
			}
			if b.Len() != len(tt.input) {
				t.Errorf("Len() = %d, want %d", b.Len(), len(tt.input))
			}
		})
	}
}

func TestBuffer_InsertInMiddle(t *testing.T) {
	t.Parallel()

	b := New("ac")
	b.MoveLeft()
	b.Insert('b')

	if got := b.String(); got != "abc" {
		t.Errorf("String() = %q, want %q", got, "abc")
	}
	if b.Position() != 2 {
		t.Errorf("Position() = %d, want 2", b.Position())
	}
}

func TestBuffer_DeleteLeft(t *testing.T) {
	t.Parallel()

	t.Run("removes codepoint before cursor", func(t *testing.T) {
		t.Parallel()
		b := New("añb")
		b.MoveLeft()
		b.DeleteLeft()
		if got := b.String(); got != "ab" {
			t.Errorf("String() = %q, want %q", got, "ab")
		}
		if b.Position() != 1 {
			t.Errorf("Position() = %d, want 1", b.Position())
		}
	})

	t.Run("no-op at start", func(t *testing.T) {
		t.Parallel()
		b := New("abc")
		b.Home()
		b.DeleteLeft()
		if got := b.String(); got != "abc" {
			t.Errorf("String() = %q, want %q", got, "abc")
		}
		if b.Position() != 0 {
			t.Errorf("Position() = %d, want 0", b.Position())
		}
	})

	t.Run("no-op on empty buffer", func(t *testing.T) {
		t.Parallel()
		var b Buffer
		b.DeleteLeft()
		if !b.IsEmpty() || b.Position() != 0 {
			t.Errorf("buffer = (%q, %d), want empty", b.String(), b.Position())
		}
	})
}

func TestBuffer_InsertDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	starts := []struct {
		content string
		left    int // cursor moves left from the end
	}{
		{"", 0},
		{"abc", 0},
		{"abc", 1},
		{"abc", 3},
		{"日本語", 2},
	}

	for _, s := range starts {
		b := New(s.content)
		for i := 0; i < s.left; i++ {
			b.MoveLeft()
		}
		wantPos := b.Position()

		b.Insert('Ω')
		b.DeleteLeft()

		if got := b.String(); got != s.content {
			t.Errorf("%q@%d: String() = %q after round trip", s.content, wantPos, got)
		}
		if b.Position() != wantPos {
			t.Errorf("%q@%d: Position() = %d after round trip", s.content, wantPos, b.Position())
		}
	}
}

func TestBuffer_Split(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		left      int
		wantLeft  string
		wantCaret string
		wantRight string
	}{
		{"cursor at end", "abc", 0, "abc", "", ""},
		{"cursor on last", "abc", 1, "ab", "c", ""},
		{"cursor in middle", "abc", 2, "a", "b", "c"},
		{"cursor at start", "abc", 3, "", "a", "bc"},
		{"empty", "", 0, "", "", ""},
		{"multibyte caret", "aéz", 2, "a", "é", "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := New(tt.content)
			for i := 0; i < tt.left; i++ {
				b.MoveLeft()
			}
			l, c, r := b.Split()
			if l != tt.wantLeft || c != tt.wantCaret || r != tt.wantRight {
				t.Errorf("Split() = (%q, %q, %q), want (%q, %q, %q)",
					l, c, r, tt.wantLeft, tt.wantCaret, tt.wantRight)
			}
		})
	}
}

func TestBuffer_Navigation(t *testing.T) {
	t.Parallel()

	b := New("ab")
	b.MoveRight()
	if b.Position() != 2 {
		t.Errorf("MoveRight at end: Position() = %d, want 2", b.Position())
	}

	b.Home()
	b.MoveLeft()
	if b.Position() != 0 {
		t.Errorf("MoveLeft at start: Position() = %d, want 0", b.Position())
	}

	b.DeleteRight()
	if got := b.String(); got != "b" {
		t.Errorf("DeleteRight: String() = %q, want %q", got, "b")
	}

	b.End()
	b.DeleteRight()
	if got := b.String(); got != "b" {
		t.Errorf("DeleteRight at end: String() = %q, want %q", got, "b")
	}

	b.Clear()
	if !b.IsEmpty() || b.Position() != 0 {
		t.Errorf("Clear: buffer = (%q, %d), want empty", b.String(), b.Position())
	}
}
