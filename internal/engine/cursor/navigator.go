package cursor

import "github.com/dshills/glint/internal/renderer/core"

// Motion is a cursor movement request.
type Motion int

const (
	MotionNone Motion = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionHome
	MotionEnd
	MotionPageUp
	MotionPageDown
)

// NeedsSize returns true if the motion's rule depends on the terminal size.
func (m Motion) NeedsSize() bool {
	switch m {
	case MotionLeft, MotionRight, MotionDown, MotionEnd, MotionPageDown:
		return true
	default:
		return false
	}
}

// String returns the motion name.
func (m Motion) String() string {
	switch m {
	case MotionNone:
		return "none"
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionHome:
		return "home"
	case MotionEnd:
		return "end"
	case MotionPageUp:
		return "pageUp"
	case MotionPageDown:
		return "pageDown"
	default:
		return "unknown"
	}
}

// Apply returns the position after applying motion to pos within size.
//
// Left wraps to the end of the previous row once the column would drop
// below 1 (on row 0 it stops at column 0); Right wraps to the start of the
// next row at the width. Up and Down never change the column, and Down
// stops at the last visible row.
func Apply(pos core.Position, m Motion, size core.Size) core.Position {
	switch m {
	case MotionLeft:
		switch x := core.SaturatingSub(pos.X, 1); {
		case x > 0:
			pos.X = x
		case pos.Y > 0:
			pos.X = size.Width
			pos.Y--
		default:
			// No previous row to wrap to.
			pos.X = 0
		}
	case MotionRight:
		if x := core.SaturatingAdd(pos.X, 1); x < size.Width {
			pos.X = x
		} else {
			pos.X = 0
			pos.Y = core.SaturatingAdd(pos.Y, 1)
		}
	case MotionUp:
		pos.Y = core.SaturatingSub(pos.Y, 1)
	case MotionDown:
		if y := core.SaturatingAdd(pos.Y, 1); y < size.Height {
			pos.Y = y
		}
	case MotionHome:
		pos.X = 0
	case MotionEnd:
		pos.X = size.Width
	case MotionPageUp:
		pos.Y = 0
	case MotionPageDown:
		pos.Y = size.Height
	}
	return pos
}

// Navigator owns the cursor position.
// Not thread-safe; the session loop is its only user.
type Navigator struct {
	pos core.Position
}

// NewNavigator creates a navigator at the origin.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Position returns the current position.
func (n *Navigator) Position() core.Position {
	return n.pos
}

// SetPosition replaces the current position.
func (n *Navigator) SetPosition(pos core.Position) {
	n.pos = pos
}

// Move applies a motion against the given size and returns the new position.
func (n *Navigator) Move(m Motion, size core.Size) core.Position {
	n.pos = Apply(n.pos, m, size)
	return n.pos
}
