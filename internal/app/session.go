package app

// State is the session loop state.
type State int

const (
	// StateRunning redraws and waits for input.
	StateRunning State = iota
	// StateQuitting draws the farewell frame and ends the loop.
	StateQuitting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
