package app

import (
	"github.com/dshills/glint/internal/engine/cursor"
	"github.com/dshills/glint/internal/input/keymap"
	"github.com/dshills/glint/internal/renderer/backend"
	"github.com/dshills/glint/internal/renderer/core"
)

// motions maps navigation actions to cursor motions.
var motions = map[keymap.Action]cursor.Motion{
	keymap.ActionMoveLeft:  cursor.MotionLeft,
	keymap.ActionMoveRight: cursor.MotionRight,
	keymap.ActionMoveUp:    cursor.MotionUp,
	keymap.ActionMoveDown:  cursor.MotionDown,
	keymap.ActionMoveHome:  cursor.MotionHome,
	keymap.ActionMoveEnd:   cursor.MotionEnd,
	keymap.ActionPageUp:    cursor.MotionPageUp,
	keymap.ActionPageDown:  cursor.MotionPageDown,
}

// handleEvent processes one backend event.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventResize:
		app.handleResize(ev)
		return nil
	default:
		return nil
	}
}

// handleResize notes a terminal resize. The next frame queries the size
// itself, so nothing else is needed.
func (app *Application) handleResize(ev backend.Event) {
	app.metrics.RecordResize()
	app.logger.Debug("terminal resized to %dx%d", ev.Width, ev.Height)
}

// handleKey resolves a key through the keymap and applies the action.
// Every key leaves Welcome mode, bound or not.
func (app *Application) handleKey(ev backend.Event) error {
	app.metrics.RecordKey()
	app.mode = app.mode.AfterKey()

	action := app.keymap.Lookup(ev)
	if action == keymap.ActionQuit {
		app.state = StateQuitting
		app.mode = app.mode.AfterQuit()
		app.logger.Debug("quit requested")
		return nil
	}

	motion, ok := motions[action]
	if !ok {
		return nil
	}
	return app.move(motion)
}

// move applies a cursor motion, querying the terminal size only when the
// motion depends on it.
func (app *Application) move(m cursor.Motion) error {
	var size core.Size
	if m.NeedsSize() {
		var err error
		if size, err = app.backend.Size(); err != nil {
			return err
		}
	}

	pos := app.nav.Move(m, size)
	app.logger.Debug("cursor %s -> %s", m, pos)
	return nil
}
