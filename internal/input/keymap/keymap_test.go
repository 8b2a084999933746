package keymap

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/glint/internal/renderer/backend"
)

func TestDefaultLookup(t *testing.T) {
	km := Default()

	tests := []struct {
		name string
		ev   backend.Event
		want Action
	}{
		{"ctrl-q key", backend.KeyEvent(backend.KeyCtrlQ, backend.ModCtrl), ActionQuit},
		{"ctrl-q without mod", backend.KeyEvent(backend.KeyCtrlQ, backend.ModNone), ActionQuit},
		{"q with ctrl", backend.RuneEvent('q', backend.ModCtrl), ActionQuit},
		{"Q with ctrl", backend.RuneEvent('Q', backend.ModCtrl), ActionQuit},
		{"plain q", backend.RuneEvent('q', backend.ModNone), ActionNone},
		{"left", backend.KeyEvent(backend.KeyLeft, backend.ModNone), ActionMoveLeft},
		{"right", backend.KeyEvent(backend.KeyRight, backend.ModNone), ActionMoveRight},
		{"up", backend.KeyEvent(backend.KeyUp, backend.ModNone), ActionMoveUp},
		{"down", backend.KeyEvent(backend.KeyDown, backend.ModNone), ActionMoveDown},
		{"home", backend.KeyEvent(backend.KeyHome, backend.ModNone), ActionMoveHome},
		{"end", backend.KeyEvent(backend.KeyEnd, backend.ModNone), ActionMoveEnd},
		{"page up", backend.KeyEvent(backend.KeyPageUp, backend.ModNone), ActionPageUp},
		{"page down", backend.KeyEvent(backend.KeyPageDown, backend.ModNone), ActionPageDown},
		{"shift left falls back", backend.KeyEvent(backend.KeyLeft, backend.ModShift), ActionMoveLeft},
		{"escape unbound", backend.KeyEvent(backend.KeyEscape, backend.ModNone), ActionNone},
		{"resize", backend.ResizeEvent(80, 24), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupPrefersExactModifiers(t *testing.T) {
	km := NewKeymap("test")
	if err := km.Bind("Left", ActionMoveLeft); err != nil {
		t.Fatal(err)
	}
	if err := km.Bind("Alt+Left", ActionMoveHome); err != nil {
		t.Fatal(err)
	}

	if got := km.Lookup(backend.KeyEvent(backend.KeyLeft, backend.ModAlt)); got != ActionMoveHome {
		t.Errorf("Alt+Left = %v, want %v", got, ActionMoveHome)
	}
	if got := km.Lookup(backend.KeyEvent(backend.KeyLeft, backend.ModNone)); got != ActionMoveLeft {
		t.Errorf("Left = %v, want %v", got, ActionMoveLeft)
	}
}

func TestApplyReplacesActionBindings(t *testing.T) {
	km := Default()

	err := km.Apply(map[string][]string{
		"quit":     {"Esc", "<C-x>"},
		"moveLeft": {"h"},
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := km.Lookup(backend.KeyEvent(backend.KeyCtrlQ, backend.ModCtrl)); got != ActionNone {
		t.Errorf("Ctrl+Q should be unbound after override, got %v", got)
	}
	if got := km.Lookup(backend.KeyEvent(backend.KeyEscape, backend.ModNone)); got != ActionQuit {
		t.Errorf("Esc = %v, want quit", got)
	}
	if got := km.Lookup(backend.KeyEvent(backend.KeyCtrlX, backend.ModCtrl)); got != ActionQuit {
		t.Errorf("Ctrl+X = %v, want quit", got)
	}
	if got := km.Lookup(backend.RuneEvent('h', backend.ModNone)); got != ActionMoveLeft {
		t.Errorf("h = %v, want moveLeft", got)
	}
	if got := km.Lookup(backend.KeyEvent(backend.KeyLeft, backend.ModNone)); got != ActionNone {
		t.Errorf("Left should be unbound after override, got %v", got)
	}
	if got := km.Lookup(backend.KeyEvent(backend.KeyDown, backend.ModNone)); got != ActionMoveDown {
		t.Errorf("untouched action lost its binding: got %v", got)
	}
}

func TestApplyInvalidLeavesKeymapUnchanged(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string][]string
		wantErr   error
	}{
		{"unknown action", map[string][]string{"explode": {"x"}}, ErrUnknownAction},
		{"bad spec", map[string][]string{"quit": {"Hyper+Q"}}, ErrInvalidSpec},
		{"empty spec", map[string][]string{"quit": {""}}, ErrEmptySpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := Default()
			before := km.Len()

			err := km.Apply(tt.overrides)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if km.Len() != before {
				t.Errorf("keymap changed on error: %d bindings, want %d", km.Len(), before)
			}
			if got := km.Lookup(backend.KeyEvent(backend.KeyCtrlQ, backend.ModNone)); got != ActionQuit {
				t.Errorf("quit binding lost: %v", got)
			}
		})
	}
}

func TestBindingsFor(t *testing.T) {
	km := Default()

	if got, want := km.BindingsFor(ActionQuit), []string{"Ctrl+Q"}; !reflect.DeepEqual(got, want) {
		t.Errorf("BindingsFor(quit) = %v, want %v", got, want)
	}
	if got, want := km.BindingsFor(ActionPageDown), []string{"PageDown"}; !reflect.DeepEqual(got, want) {
		t.Errorf("BindingsFor(pageDown) = %v, want %v", got, want)
	}
}

func TestClone(t *testing.T) {
	km := Default()
	clone := km.Clone()
	clone.Unbind(ActionQuit)

	if got := km.Lookup(backend.KeyEvent(backend.KeyCtrlQ, backend.ModNone)); got != ActionQuit {
		t.Error("modifying clone affected original")
	}
	if clone.Len() != km.Len()-1 {
		t.Errorf("clone has %d bindings, want %d", clone.Len(), km.Len()-1)
	}
}

func TestParseAction(t *testing.T) {
	for _, name := range ActionNames() {
		a, err := ParseAction(name)
		if err != nil {
			t.Errorf("ParseAction(%q) failed: %v", name, err)
			continue
		}
		if a.String() != name {
			t.Errorf("round trip %q -> %q", name, a.String())
		}
	}

	if _, err := ParseAction("none"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("none should not be bindable, got %v", err)
	}
	if _, err := ParseAction("Quit"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("action names are case sensitive, got %v", err)
	}
}
