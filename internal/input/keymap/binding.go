package keymap

import (
	"strconv"
	"strings"

	"github.com/dshills/glint/internal/renderer/backend"
)

// Binding identifies a key press in normalized form.
//
// Ctrl+letter is always stored as KeyCtrlA..KeyCtrlZ without ModCtrl, and
// runes never carry ModShift (the case is part of the rune).
type Binding struct {
	Key  backend.Key
	Rune rune
	Mod  backend.ModMask
}

// newBinding builds a normalized binding.
func newBinding(k backend.Key, r rune, mod backend.ModMask) Binding {
	if k == backend.KeyRune && mod.Has(backend.ModCtrl) {
		if ck := backend.CtrlKey(r); ck != backend.KeyNone {
			k, r = ck, 0
		}
	}
	if k >= backend.KeyCtrlA && k <= backend.KeyCtrlZ {
		mod &^= backend.ModCtrl
	}
	if k == backend.KeyRune {
		mod &^= backend.ModShift
	} else {
		r = 0
	}
	return Binding{Key: k, Rune: r, Mod: mod}
}

// BindingFromEvent normalizes a key event.
func BindingFromEvent(ev backend.Event) Binding {
	return newBinding(ev.Key, ev.Rune, ev.Mod)
}

// String returns the binding in "Ctrl+Q" notation.
func (b Binding) String() string {
	var parts []string
	if b.Mod.Has(backend.ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if b.Mod.Has(backend.ModAlt) {
		parts = append(parts, "Alt")
	}
	if b.Mod.Has(backend.ModShift) {
		parts = append(parts, "Shift")
	}
	if b.Mod.Has(backend.ModMeta) {
		parts = append(parts, "Meta")
	}

	switch {
	case b.Key == backend.KeyRune:
		parts = append(parts, string(b.Rune))
	case b.Key >= backend.KeyCtrlA && b.Key <= backend.KeyCtrlZ:
		parts = append(parts, "Ctrl", string(rune('A'+int(b.Key-backend.KeyCtrlA))))
	default:
		parts = append(parts, keyName(b.Key))
	}
	return strings.Join(parts, "+")
}

// keyName returns the display name of a special key.
func keyName(k backend.Key) string {
	switch k {
	case backend.KeyLeft:
		return "Left"
	case backend.KeyRight:
		return "Right"
	case backend.KeyUp:
		return "Up"
	case backend.KeyDown:
		return "Down"
	case backend.KeyHome:
		return "Home"
	case backend.KeyEnd:
		return "End"
	case backend.KeyPageUp:
		return "PageUp"
	case backend.KeyPageDown:
		return "PageDown"
	case backend.KeyEscape:
		return "Esc"
	case backend.KeyEnter:
		return "Enter"
	case backend.KeyTab:
		return "Tab"
	case backend.KeyBackspace:
		return "Backspace"
	case backend.KeyDelete:
		return "Delete"
	case backend.KeyInsert:
		return "Insert"
	}
	if k >= backend.KeyF1 && k <= backend.KeyF12 {
		return "F" + strconv.Itoa(int(k-backend.KeyF1)+1)
	}
	return "?"
}
