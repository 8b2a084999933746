package keymap

// defaultBindings lists the built-in key bindings.
var defaultBindings = []struct {
	spec   string
	action Action
}{
	{"Ctrl+Q", ActionQuit},

	// Cursor movement
	{"Left", ActionMoveLeft},
	{"Right", ActionMoveRight},
	{"Up", ActionMoveUp},
	{"Down", ActionMoveDown},
	{"Home", ActionMoveHome},
	{"End", ActionMoveEnd},
	{"PageUp", ActionPageUp},
	{"PageDown", ActionPageDown},
}

// Default returns the built-in keymap.
func Default() *Keymap {
	km := NewKeymap("default")
	for _, d := range defaultBindings {
		if err := km.Bind(d.spec, d.action); err != nil {
			panic(err)
		}
	}
	return km
}
