// Package cursor provides cursor navigation over screen geometry.
//
// The cursor package handles:
//
//   - The Motion set (Left, Right, Up, Down, Home, End, PageUp, PageDown)
//   - Apply, the pure rule table mapping (position, motion, size) to a new position
//   - Navigator, which owns the current position
//
// Navigation is not buffer-aware: positions are screen coordinates and are
// clamped against the terminal size passed in with each move. Callers query
// the size fresh for every move (see Motion.NeedsSize) since the terminal
// may be resized between frames.
//
// Basic usage:
//
//	nav := cursor.NewNavigator()
//	size, _ := term.Size()
//	nav.Move(cursor.MotionRight, size)
//	pos := nav.Position()
//
// All arithmetic saturates at zero; positions never wrap around.
package cursor
