package keymap

import (
	"fmt"
	"sort"
)

// Action is what a key press asks the session to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMoveHome
	ActionMoveEnd
	ActionPageUp
	ActionPageDown
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionQuit:      "quit",
	ActionMoveLeft:  "moveLeft",
	ActionMoveRight: "moveRight",
	ActionMoveUp:    "moveUp",
	ActionMoveDown:  "moveDown",
	ActionMoveHome:  "moveHome",
	ActionMoveEnd:   "moveEnd",
	ActionPageUp:    "pageUp",
	ActionPageDown:  "pageDown",
}

// String returns the configuration name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction looks up an action by its configuration name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// ActionNames returns all bindable action names, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(actionNames)-1)
	for a, n := range actionNames {
		if a != ActionNone {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
