package prompt

import "github.com/raphi011/clack/internal/ui/theme"

// State is the render state of a prompt: active, cancelled, submitted with
// a value, or failed validation with a message. A new State is produced on
// every event; Submit and Cancel are terminal.
type State[T any] struct {
	status theme.Status
	value  T
	err    string
}

// Active returns the state of a prompt waiting for input.
func Active[T any]() State[T] {
	return State[T]{status: theme.StatusActive}
}

// Cancel returns the state of a cancelled prompt.
func Cancel[T any]() State[T] {
	return State[T]{status: theme.StatusCancel}
}

// Submit returns the state of a prompt that accepted v.
func Submit[T any](v T) State[T] {
	return State[T]{status: theme.StatusSubmit, value: v}
}

// Invalid returns the state of a prompt whose validation failed with msg.
// The prompt keeps accepting input.
func Invalid[T any](msg string) State[T] {
	return State[T]{status: theme.StatusError, err: msg}
}

// Status returns the variant of the state.
func (s State[T]) Status() theme.Status { return s.status }

// Value returns the submitted value. ok is false unless the state is Submit.
func (s State[T]) Value() (v T, ok bool) {
	return s.value, s.status == theme.StatusSubmit
}

// Err returns the validation message of an error state.
func (s State[T]) Err() string { return s.err }

// Terminal reports whether the prompt is finished.
func (s State[T]) Terminal() bool {
	return s.status == theme.StatusSubmit || s.status == theme.StatusCancel
}

// Theme drops the submitted value, keeping what a theme renders from.
func (s State[T]) Theme() theme.State {
	return theme.State{Status: s.status, Err: s.err}
}
