package backend

import (
	"bufio"
	"strconv"
	"strings"
)

const (
	byteEscape    = 0x1b
	byteTab       = 0x09
	byteEnter     = 0x0d
	byteLineFeed  = 0x0a
	byteBackspace = 0x08
	byteDelete    = 0x7f
)

// decodeEvent reads one key press from a raw-mode byte stream.
func decodeEvent(r *bufio.Reader) (Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == byteEscape:
		return decodeEscape(r)
	case b == byteEnter || b == byteLineFeed:
		return KeyEvent(KeyEnter, ModNone), nil
	case b == byteTab:
		return KeyEvent(KeyTab, ModNone), nil
	case b == byteBackspace || b == byteDelete:
		return KeyEvent(KeyBackspace, ModNone), nil
	case b >= 1 && b <= 26:
		return KeyEvent(CtrlKey(rune('a'+b-1)), ModCtrl), nil
	}

	if err := r.UnreadByte(); err != nil {
		return Event{}, err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return Event{}, err
	}
	return RuneEvent(ch, ModNone), nil
}

// decodeEscape handles input that started with ESC. A lone ESC (nothing
// else already buffered) is the Escape key; terminals send the bytes of a
// sequence in one write.
func decodeEscape(r *bufio.Reader) (Event, error) {
	if r.Buffered() == 0 {
		return KeyEvent(KeyEscape, ModNone), nil
	}

	next, err := r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch next {
	case '[':
		return decodeCSI(r)
	case 'O':
		final, err := r.ReadByte()
		if err != nil {
			return Event{}, err
		}
		return KeyEvent(ss3Key(final), ModNone), nil
	}

	if err := r.UnreadByte(); err != nil {
		return Event{}, err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return Event{}, err
	}
	return RuneEvent(ch, ModAlt), nil
}

// decodeCSI parses "ESC [ params final".
func decodeCSI(r *bufio.Reader) (Event, error) {
	var params strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if (b >= '0' && b <= '9') || b == ';' {
			params.WriteByte(b)
			continue
		}
		return csiKey(params.String(), b), nil
	}
}

// csiKey maps CSI parameters and final byte to a key event.
// Unknown sequences yield a key event with KeyNone.
func csiKey(params string, final byte) Event {
	fields := strings.Split(params, ";")
	mod := ModNone
	if len(fields) > 1 {
		mod = xtermModifier(fields[1])
	}

	var k Key
	switch final {
	case 'A':
		k = KeyUp
	case 'B':
		k = KeyDown
	case 'C':
		k = KeyRight
	case 'D':
		k = KeyLeft
	case 'H':
		k = KeyHome
	case 'F':
		k = KeyEnd
	case '~':
		k = tildeKey(fields[0])
	default:
		k = KeyNone
	}
	return KeyEvent(k, mod)
}

// tildeKey maps "ESC [ n ~" sequences.
func tildeKey(n string) Key {
	switch n {
	case "1", "7":
		return KeyHome
	case "2":
		return KeyInsert
	case "3":
		return KeyDelete
	case "4", "8":
		return KeyEnd
	case "5":
		return KeyPageUp
	case "6":
		return KeyPageDown
	default:
		return KeyNone
	}
}

// ss3Key maps "ESC O x" sequences.
func ss3Key(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	case 'P', 'Q', 'R', 'S':
		return KeyF1 + Key(final-'P')
	default:
		return KeyNone
	}
}

// xtermModifier decodes the xterm modifier parameter (1 + bitmask).
func xtermModifier(s string) ModMask {
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 {
		return ModNone
	}
	bits := n - 1
	var mod ModMask
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	if bits&8 != 0 {
		mod |= ModMeta
	}
	return mod
}
