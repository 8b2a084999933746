// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer, backend and the
// cursor engine.
package core

import (
	"fmt"
	"math"
)

// Position is a location on screen (0-indexed column X, row Y).
// It is a plain value; copies are independent.
type Position struct {
	X uint
	Y uint
}

// Origin is the top-left corner of the screen.
var Origin = Position{}

// NewPosition creates a screen position.
func NewPosition(x, y uint) Position {
	return Position{X: x, Y: y}
}

// Equals returns true if two positions are the same.
func (p Position) Equals(other Position) bool {
	return p == other
}

// String returns a debug representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size holds terminal dimensions.
type Size struct {
	Width  uint
	Height uint
}

// NewSize creates a size.
func NewSize(width, height uint) Size {
	return Size{Width: width, Height: height}
}

// SizeFromInts converts a size reported by a terminal library.
// Returns false when either dimension is zero or negative, which the
// backends treat as an unreadable size.
func SizeFromInts(width, height int) (Size, bool) {
	if width <= 0 || height <= 0 {
		return Size{}, false
	}
	return Size{Width: uint(width), Height: uint(height)}, true
}

// Contains returns true if pos lies inside the visible area.
func (s Size) Contains(pos Position) bool {
	return pos.X < s.Width && pos.Y < s.Height
}

// IsEmpty returns true if the size has no visible cells.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// String returns a debug representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// SaturatingSub returns a-b, floored at zero.
func SaturatingSub(a, b uint) uint {
	if b > a {
		return 0
	}
	return a - b
}

// SaturatingAdd returns a+b, capped at the maximum uint value.
func SaturatingAdd(a, b uint) uint {
	if a > math.MaxUint-b {
		return math.MaxUint
	}
	return a + b
}
