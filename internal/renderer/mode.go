package renderer

// Mode selects what a frame shows.
//
// Transitions are monotonic: Welcome moves to Content on the first key,
// and Farewell is reachable from any mode and never left.
type Mode int

const (
	// ModeWelcome shows the banner over an empty buffer until the first key.
	ModeWelcome Mode = iota
	// ModeContent shows buffer lines and placeholder rows.
	ModeContent
	// ModeFarewell shows the goodbye line; the session ends after it.
	ModeFarewell
)

// InitialMode returns the mode for the first frame. The banner is only
// shown when there is no content to cover.
func InitialMode(bufferEmpty bool) Mode {
	if bufferEmpty {
		return ModeWelcome
	}
	return ModeContent
}

// AfterKey returns the mode following any key press that is not a quit.
func (m Mode) AfterKey() Mode {
	switch m {
	case ModeWelcome:
		return ModeContent
	default:
		return m
	}
}

// AfterQuit returns the mode once the user has asked to quit.
func (m Mode) AfterQuit() Mode {
	return ModeFarewell
}

// IsTerminal returns true if no further transitions happen from m.
func (m Mode) IsTerminal() bool {
	return m == ModeFarewell
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWelcome:
		return "welcome"
	case ModeContent:
		return "content"
	case ModeFarewell:
		return "farewell"
	default:
		return "unknown"
	}
}
