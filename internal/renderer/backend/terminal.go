package backend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/glint/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
//
// Drawing goes into tcell's back buffer at a tracked cursor; Flush calls
// Screen.Show, which writes the accumulated changes in one pass.
type Terminal struct {
	screen      tcell.Screen
	initialized bool

	cursorX, cursorY int
	cursorVisible    bool
}

// NewTerminal creates a new terminal backend on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, newIOError("init", err)
	}
	return newTerminalWithScreen(screen), nil
}

// newTerminalWithScreen wraps an existing screen. Used by tests with a
// simulation screen.
func newTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return newIOError("init", err)
	}
	t.initialized = true

	if _, err := t.Size(); err != nil {
		t.screen.Fini()
		t.initialized = false
		return err
	}

	t.ClearScreen()
	t.MoveCursorTo(core.Origin)
	return t.Flush()
}

func (t *Terminal) Shutdown() error {
	if !t.initialized {
		return nil
	}
	t.initialized = false
	t.screen.Fini()
	return nil
}

func (t *Terminal) Size() (core.Size, error) {
	w, h := t.screen.Size()
	size, ok := core.SizeFromInts(w, h)
	if !ok {
		return core.Size{}, newIOError("size", ErrInvalidSize)
	}
	return size, nil
}

func (t *Terminal) MoveCursorTo(pos core.Position) {
	t.cursorX = int(pos.X)
	t.cursorY = int(pos.Y)
}

func (t *Terminal) HideCursor() {
	t.cursorVisible = false
}

func (t *Terminal) ShowCursor() {
	t.cursorVisible = true
}

func (t *Terminal) ClearScreen() {
	t.screen.Clear()
}

func (t *Terminal) ClearLine() {
	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, t.cursorY, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Terminal) Print(text string) {
	for _, r := range text {
		switch r {
		case '\r':
			t.cursorX = 0
		case '\n':
			t.cursorY++
		default:
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			t.screen.SetContent(t.cursorX, t.cursorY, r, nil, tcell.StyleDefault)
			t.cursorX += w
		}
	}
}

func (t *Terminal) Flush() error {
	if !t.initialized {
		return newIOError("flush", ErrNotInitialized)
	}
	if t.cursorVisible {
		t.screen.ShowCursor(t.cursorX, t.cursorY)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) PollEvent() (Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// PollEvent returns nil once the screen is finalized.
			return Event{}, newIOError("poll", ErrInputClosed)
		}
		if converted := convertEvent(ev); converted.Type != EventNone {
			return converted, nil
		}
	}
}

// convertEvent converts tcell events to our Event type.
// Mouse, paste and focus events map to EventNone and are skipped.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent(w, h)

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1)
	}
	// Ctrl letters are contiguous in tcell; Tab, Enter and Backspace share
	// codes with Ctrl+I/M/H and were matched above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyCtrlA + Key(k-tcell.KeyCtrlA)
	}
	return KeyNone
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}
