package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/glint/internal/renderer/backend"
)

// Keymap maps normalized key bindings to actions.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	bindings map[Binding]Action
}

// NewKeymap creates an empty keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		bindings: make(map[Binding]Action),
	}
}

// Lookup returns the action bound to a key event.
// Non-key events and unbound keys resolve to ActionNone.
func (k *Keymap) Lookup(ev backend.Event) Action {
	if ev.Type != backend.EventKey {
		return ActionNone
	}

	b := BindingFromEvent(ev)
	if a, ok := k.bindings[b]; ok {
		return a
	}

	// Fall back to the unmodified key
	if b.Mod != backend.ModNone {
		b.Mod = backend.ModNone
		if a, ok := k.bindings[b]; ok {
			return a
		}
	}
	return ActionNone
}

// Bind parses spec and binds it to action, replacing any previous binding
// for the same key.
func (k *Keymap) Bind(spec string, action Action) error {
	b, err := Parse(spec)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	k.bindings[b] = action
	return nil
}

// Unbind removes every binding for action.
func (k *Keymap) Unbind(action Action) {
	for b, a := range k.bindings {
		if a == action {
			delete(k.bindings, b)
		}
	}
}

// Apply replaces the bindings of each named action with the given specs.
// Actions not present in overrides keep their bindings. The keymap is left
// unchanged when any name or spec is invalid.
func (k *Keymap) Apply(overrides map[string][]string) error {
	parsed := make(map[Action][]Binding, len(overrides))
	for name, specs := range overrides {
		action, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("keymap: %w", err)
		}
		for _, spec := range specs {
			b, err := Parse(spec)
			if err != nil {
				return fmt.Errorf("keymap %s: binding %q: %w", name, spec, err)
			}
			parsed[action] = append(parsed[action], b)
		}
	}

	for action, bs := range parsed {
		k.Unbind(action)
		for _, b := range bs {
			k.bindings[b] = action
		}
	}
	return nil
}

// BindingsFor returns the bindings for action in display form, sorted.
func (k *Keymap) BindingsFor(action Action) []string {
	var out []string
	for b, a := range k.bindings {
		if a == action {
			out = append(out, b.String())
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Clone creates a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := NewKeymap(k.Name)
	for b, a := range k.bindings {
		clone.bindings[b] = a
	}
	return clone
}
