package backend

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dshills/glint/internal/renderer/core"
)

// VT100 control sequences used by ANSITerminal.
const (
	seqClearScreen = "\x1b[2J"
	seqClearLine   = "\x1b[2K"
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
)

// ttyControl is the subset of golang.org/x/term used by ANSITerminal.
type ttyControl interface {
	IsTerminal(fd int) bool
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
	GetSize(fd int) (width, height int, err error)
}

// xterm forwards to golang.org/x/term.
type xterm struct{}

func (xterm) IsTerminal(fd int) bool                  { return term.IsTerminal(fd) }
func (xterm) MakeRaw(fd int) (*term.State, error)     { return term.MakeRaw(fd) }
func (xterm) Restore(fd int, state *term.State) error { return term.Restore(fd, state) }
func (xterm) GetSize(fd int) (int, int, error)        { return term.GetSize(fd) }

// ANSITerminal implements Backend by writing VT100 escape sequences
// directly to the terminal.
//
// Every drawing call appends to an in-memory queue; Flush hands the whole
// queue to the output in a single Write. Input is decoded from the raw
// byte stream. Terminal resizes are not reported as events; callers see the
// new size on the next Size call.
type ANSITerminal struct {
	fd    int
	tty   ttyControl
	in    *bufio.Reader
	out   io.Writer
	queue bytes.Buffer
	state *term.State
}

// NewANSITerminal creates an ANSI backend on stdin/stdout.
func NewANSITerminal() *ANSITerminal {
	return newANSITerminal(int(os.Stdin.Fd()), xterm{}, os.Stdin, os.Stdout)
}

func newANSITerminal(fd int, tty ttyControl, in io.Reader, out io.Writer) *ANSITerminal {
	return &ANSITerminal{
		fd:  fd,
		tty: tty,
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *ANSITerminal) Init() error {
	if !t.tty.IsTerminal(t.fd) {
		return newIOError("init", ErrNotTerminal)
	}

	state, err := t.tty.MakeRaw(t.fd)
	if err != nil {
		return newIOError("init", err)
	}
	t.state = state

	if _, err := t.Size(); err != nil {
		_ = t.Shutdown()
		return err
	}

	t.ClearScreen()
	t.MoveCursorTo(core.Origin)
	if err := t.Flush(); err != nil {
		_ = t.Shutdown()
		return err
	}
	return nil
}

func (t *ANSITerminal) Shutdown() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := t.tty.Restore(t.fd, state); err != nil {
		return newIOError("shutdown", err)
	}
	return nil
}

func (t *ANSITerminal) Size() (core.Size, error) {
	w, h, err := t.tty.GetSize(t.fd)
	if err != nil {
		return core.Size{}, newIOError("size", err)
	}
	size, ok := core.SizeFromInts(w, h)
	if !ok {
		return core.Size{}, newIOError("size", ErrInvalidSize)
	}
	return size, nil
}

func (t *ANSITerminal) MoveCursorTo(pos core.Position) {
	// VT100 coordinates are 1-based, row first.
	fmt.Fprintf(&t.queue, "\x1b[%d;%dH", pos.Y+1, pos.X+1)
}

func (t *ANSITerminal) HideCursor() {
	t.queue.WriteString(seqHideCursor)
}

func (t *ANSITerminal) ShowCursor() {
	t.queue.WriteString(seqShowCursor)
}

func (t *ANSITerminal) ClearScreen() {
	t.queue.WriteString(seqClearScreen)
}

func (t *ANSITerminal) ClearLine() {
	t.queue.WriteString(seqClearLine)
}

func (t *ANSITerminal) Print(text string) {
	t.queue.WriteString(text)
}

func (t *ANSITerminal) Flush() error {
	if t.queue.Len() == 0 {
		return nil
	}
	_, err := t.out.Write(t.queue.Bytes())
	t.queue.Reset()
	if err != nil {
		return newIOError("flush", err)
	}
	return nil
}

func (t *ANSITerminal) PollEvent() (Event, error) {
	ev, err := decodeEvent(t.in)
	if err != nil {
		if err == io.EOF {
			err = ErrInputClosed
		}
		return Event{}, newIOError("poll", err)
	}
	return ev, nil
}
