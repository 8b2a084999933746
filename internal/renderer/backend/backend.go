// Package backend provides the terminal backend abstraction for the renderer.
//
// A Backend queues drawing instructions (cursor moves, line and screen
// clears, text) and makes them visible together on Flush, so a full-screen
// repaint never shows intermediate states.
package backend

import "github.com/dshills/glint/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// KeyEvent builds a key event for a special key.
func KeyEvent(k Key, mod ModMask) Event {
	return Event{Type: EventKey, Key: k, Mod: mod}
}

// RuneEvent builds a key event for a printable character.
func RuneEvent(r rune, mod ModMask) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r, Mod: mod}
}

// ResizeEvent builds a resize notification.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// CtrlKey returns the KeyCtrlA..KeyCtrlZ constant for a letter.
// Returns KeyNone for anything outside a-z/A-Z.
func CtrlKey(letter rune) Key {
	switch {
	case letter >= 'a' && letter <= 'z':
		return KeyCtrlA + Key(letter-'a')
	case letter >= 'A' && letter <= 'Z':
		return KeyCtrlA + Key(letter-'A')
	default:
		return KeyNone
	}
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the interface for terminal backends.
//
// Drawing methods only queue work. Nothing reaches the terminal until Flush,
// which writes everything queued since the previous Flush as one batch.
type Backend interface {
	// Init enters raw mode, clears the screen, homes the cursor and flushes.
	// Must be called before any other methods. On failure nothing stays
	// acquired.
	Init() error

	// Shutdown leaves raw mode and restores the prior terminal state.
	// Safe to call more than once.
	Shutdown() error

	// Size returns the current terminal dimensions, queried fresh.
	Size() (core.Size, error)

	// MoveCursorTo queues a cursor move.
	MoveCursorTo(pos core.Position)

	// HideCursor queues hiding the cursor.
	HideCursor()

	// ShowCursor queues showing the cursor at its current position.
	ShowCursor()

	// ClearScreen queues clearing the entire screen.
	ClearScreen()

	// ClearLine queues clearing the row the cursor is on.
	ClearLine()

	// Print queues text at the cursor. "\r" returns to column 0 and
	// "\n" advances one row.
	Print(text string)

	// Flush writes all queued instructions to the terminal.
	Flush() error

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() (Event, error)
}
