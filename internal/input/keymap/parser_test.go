package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/glint/internal/renderer/backend"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Binding
	}{
		{"a", Binding{Key: backend.KeyRune, Rune: 'a'}},
		{"A", Binding{Key: backend.KeyRune, Rune: 'A'}},
		{"+", Binding{Key: backend.KeyRune, Rune: '+'}},
		{"<", Binding{Key: backend.KeyRune, Rune: '<'}},
		{"é", Binding{Key: backend.KeyRune, Rune: 'é'}},
		{"Ctrl+Q", Binding{Key: backend.KeyCtrlQ}},
		{"ctrl+q", Binding{Key: backend.KeyCtrlQ}},
		{"<C-q>", Binding{Key: backend.KeyCtrlQ}},
		{"Shift+a", Binding{Key: backend.KeyRune, Rune: 'a'}},
		{"Alt+x", Binding{Key: backend.KeyRune, Rune: 'x', Mod: backend.ModAlt}},
		{"Left", Binding{Key: backend.KeyLeft}},
		{"<A-Left>", Binding{Key: backend.KeyLeft, Mod: backend.ModAlt}},
		{"Shift+Right", Binding{Key: backend.KeyRight, Mod: backend.ModShift}},
		{"PgDn", Binding{Key: backend.KeyPageDown}},
		{"pagedown", Binding{Key: backend.KeyPageDown}},
		{"PgUp", Binding{Key: backend.KeyPageUp}},
		{"<Esc>", Binding{Key: backend.KeyEscape}},
		{"Enter", Binding{Key: backend.KeyEnter}},
		{"F1", Binding{Key: backend.KeyF1}},
		{"f12", Binding{Key: backend.KeyF12}},
		{"  Home  ", Binding{Key: backend.KeyHome}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Hyper+Q", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
		{"<X-q>", ErrInvalidSpec},
		{"abc", ErrInvalidSpec},
		{"F13", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestBindingString(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"Ctrl+Q", "Ctrl+Q"},
		{"<C-a>", "Ctrl+A"},
		{"Alt+Left", "Alt+Left"},
		{"x", "x"},
		{"F10", "F10"},
		{"PgDn", "PageDown"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			b, err := Parse(tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
