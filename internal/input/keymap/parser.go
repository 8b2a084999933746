package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/glint/internal/renderer/backend"
)

// Parse errors
var (
	ErrEmptySpec     = errors.New("empty key specification")
	ErrInvalidSpec   = errors.New("invalid key specification")
	ErrUnknownAction = errors.New("unknown action")
)

// Parse parses a key specification string into a Binding.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Left", "Home", "PageDown", "PgDn", "Esc", "F1"
//   - With modifiers: "Ctrl+Q", "Alt+Left"
//   - Vim-style: "<C-q>", "<A-Left>", "<Esc>"
func Parse(spec string) (Binding, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Binding{}, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Check for modifier+key format (Ctrl+Q); a lone "+" is the character
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKey(spec, backend.ModNone)
}

// parseVimStyle parses Vim-style notation like "C-q", "A-Left", "Esc"
func parseVimStyle(inner string) (Binding, error) {
	parts := strings.Split(strings.TrimSpace(inner), "-")

	var mods backend.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods |= backend.ModCtrl
		case "a":
			mods |= backend.ModAlt
		case "s":
			mods |= backend.ModShift
		case "m", "d": // D is Vim's notation for Command/Meta
			mods |= backend.ModMeta
		default:
			return Binding{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKey(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+Q" style notation
func parseModifierStyle(spec string) (Binding, error) {
	parts := strings.Split(spec, "+")

	var mods backend.ModMask
	for _, p := range parts[:len(parts)-1] {
		mod := modifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if mod == backend.ModNone {
			return Binding{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods |= mod
	}

	return parseKey(parts[len(parts)-1], mods)
}

// parseKey parses a key name or single character with known modifiers.
func parseKey(keyPart string, mods backend.ModMask) (Binding, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Binding{}, ErrInvalidSpec
	}

	if k := keyFromName(strings.ToLower(keyPart)); k != backend.KeyNone {
		return newBinding(k, 0, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Binding{}, fmt.Errorf("%w: %q", ErrInvalidSpec, keyPart)
	}
	return newBinding(backend.KeyRune, runes[0], mods), nil
}

// modifierFromName maps a readable modifier name.
func modifierFromName(name string) backend.ModMask {
	switch name {
	case "ctrl", "control", "c":
		return backend.ModCtrl
	case "alt", "opt", "option", "a":
		return backend.ModAlt
	case "shift", "s":
		return backend.ModShift
	case "meta", "cmd", "super", "m":
		return backend.ModMeta
	default:
		return backend.ModNone
	}
}

// keyFromName maps a lowercase key name to a special key.
func keyFromName(name string) backend.Key {
	switch name {
	case "left":
		return backend.KeyLeft
	case "right":
		return backend.KeyRight
	case "up":
		return backend.KeyUp
	case "down":
		return backend.KeyDown
	case "home":
		return backend.KeyHome
	case "end":
		return backend.KeyEnd
	case "pageup", "pgup":
		return backend.KeyPageUp
	case "pagedown", "pgdn", "pgdown":
		return backend.KeyPageDown
	case "esc", "escape":
		return backend.KeyEscape
	case "cr", "return", "enter":
		return backend.KeyEnter
	case "tab":
		return backend.KeyTab
	case "bs", "backspace":
		return backend.KeyBackspace
	case "del", "delete":
		return backend.KeyDelete
	case "ins", "insert":
		return backend.KeyInsert
	}

	var n int
	if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && n >= 1 && n <= 12 && name == fmt.Sprintf("f%d", n) {
		return backend.KeyF1 + backend.Key(n-1)
	}
	return backend.KeyNone
}
