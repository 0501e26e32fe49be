// Package cursor provides the editable text buffer behind text prompts.
//
// A [Buffer] stores its content as Unicode codepoints and keeps an edit
// position measured in codepoints, never bytes. The position always lies
// within 0..Len(); every operation preserves that invariant.
package cursor

// Buffer is a codepoint-indexed text buffer with an edit position.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	value []rune
	pos   int
}

// New returns a buffer holding s with the cursor at the end.
func New(s string) *Buffer {
	b := &Buffer{}
	b.Set(s)
	return b
}

// Insert puts r at the cursor and advances the cursor by one codepoint.
func (b *Buffer) Insert(r rune) {
	b.value = append(b.value, 0)
	copy(b.value[b.pos+1:], b.value[b.pos:])
	b.value[b.pos] = r
	b.pos++
}

// DeleteLeft removes the codepoint before the cursor.
// It does nothing when the cursor is at the start.
func (b *Buffer) DeleteLeft() {
	if b.pos == 0 {
		return
	}
	b.value = append(b.value[:b.pos-1], b.value[b.pos:]...)
	b.pos--
}

// DeleteRight removes the codepoint under the cursor.
// It does nothing when the cursor is at the end.
func (b *Buffer) DeleteRight() {
	if b.pos >= len(b.value) {
		return
	}
	b.value = append(b.value[:b.pos], b.value[b.pos+1:]...)
}

// MoveLeft moves the cursor one codepoint left, stopping at the start.
func (b *Buffer) MoveLeft() {
	if b.pos > 0 {
		b.pos--
	}
}

// MoveRight moves the cursor one codepoint right, stopping at the end.
func (b *Buffer) MoveRight() {
	if b.pos < len(b.value) {
		b.pos++
	}
}

// Home moves the cursor to the start.
func (b *Buffer) Home() { b.pos = 0 }

// End moves the cursor past the last codepoint.
func (b *Buffer) End() { b.pos = len(b.value) }

// Set replaces the content and moves the cursor to the end.
func (b *Buffer) Set(s string) {
	b.value = []rune(s)
	b.pos = len(b.value)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.value = b.value[:0]
	b.pos = 0
}

// Len returns the number of codepoints in the buffer.
func (b *Buffer) Len() int { return len(b.value) }

// Position returns the cursor position in codepoints.
func (b *Buffer) Position() int { return b.pos }

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool { return len(b.value) == 0 }

// String returns the full content regardless of the cursor position.
func (b *Buffer) String() string {
	return string(b.value)
}

// Split returns the text left of the cursor, the codepoint under the
// cursor and the text right of it. The middle part is empty when the
// cursor sits at the end.
func (b *Buffer) Split() (left, caret, right string) {
	left = string(b.value[:b.pos])
	if b.pos < len(b.value) {
		caret = string(b.value[b.pos])
		right = string(b.value[b.pos+1:])
	}
	return left, caret, right
}
