package theme

// Status is the rendering status of a prompt.
type Status int

const (
	// StatusActive means the prompt accepts input.
	StatusActive Status = iota
	// StatusCancel means the user cancelled (Esc or ctrl+c).
	StatusCancel
	// StatusSubmit means the value was accepted.
	StatusSubmit
	// StatusError means validation failed; the prompt still accepts input.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCancel:
		return "cancel"
	case StatusSubmit:
		return "submit"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is what a theme needs to know about a prompt's state: its status
// and, for StatusError, the validation message.
type State struct {
	Status Status
	Err    string
}

// Shared states without payload.
var (
	Active = State{Status: StatusActive}
	Cancel = State{Status: StatusCancel}
	Submit = State{Status: StatusSubmit}
)

// ErrorState returns the state of a prompt whose validation failed with msg.
func ErrorState(msg string) State {
	return State{Status: StatusError, Err: msg}
}

// editable reports whether the prompt still takes input in this state.
func (s State) editable() bool {
	return s.Status == StatusActive || s.Status == StatusError
}

// done reports whether the prompt finished in this state.
func (s State) done() bool {
	return s.Status == StatusCancel || s.Status == StatusSubmit
}
