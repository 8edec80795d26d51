package domain

import "time"

// Display texts shown in place of the buffer.
const (
	DisplayEmpty = "0"
	DisplayError = "Error"
)

// Session is a snapshot of one calculator instance.
type Session struct {
	ID        string
	Buffer    string
	Display   string
	State     State
	UpdatedAt time.Time
}

// State is the controller's state machine position.
type State int

const (
	// StateIdle: the buffer holds a partial or complete expression.
	StateIdle State = iota
	// StateError: the last calculate failed, the buffer is empty and
	// the display shows "Error".
	StateError
)

// String returns a human-readable state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
