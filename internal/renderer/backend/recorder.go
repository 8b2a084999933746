package backend

import (
	"fmt"
	"strings"

	"github.com/dshills/glint/internal/renderer/core"
)

// OpKind identifies a recorded backend operation.
type OpKind int

const (
	OpMoveCursor OpKind = iota
	OpHideCursor
	OpShowCursor
	OpClearScreen
	OpClearLine
	OpPrint
	OpFlush
)

// Op is a single recorded backend operation.
type Op struct {
	Kind OpKind
	Pos  core.Position // OpMoveCursor
	Text string        // OpPrint
}

// MoveOp, PrintOp and friends build expected operations for comparisons.
func MoveOp(x, y uint) Op    { return Op{Kind: OpMoveCursor, Pos: core.NewPosition(x, y)} }
func PrintOp(text string) Op { return Op{Kind: OpPrint, Text: text} }
func ClearScreenOp() Op      { return Op{Kind: OpClearScreen} }
func ClearLineOp() Op        { return Op{Kind: OpClearLine} }
func HideCursorOp() Op       { return Op{Kind: OpHideCursor} }
func ShowCursorOp() Op       { return Op{Kind: OpShowCursor} }
func FlushOp() Op            { return Op{Kind: OpFlush} }

// String returns a readable form such as move_to(0,0) or print("~").
func (o Op) String() string {
	switch o.Kind {
	case OpMoveCursor:
		return fmt.Sprintf("move_to(%d,%d)", o.Pos.X, o.Pos.Y)
	case OpHideCursor:
		return "hide_cursor"
	case OpShowCursor:
		return "show_cursor"
	case OpClearScreen:
		return "clear_screen"
	case OpClearLine:
		return "clear_line"
	case OpPrint:
		return fmt.Sprintf("print(%q)", o.Text)
	case OpFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// Recorder is an in-memory backend for testing.
//
// It records every operation in order and emulates a character grid:
// drawing goes to a back grid that becomes visible on Flush. Sizes and
// events are scripted; failures can be injected per operation.
type Recorder struct {
	sizes  []core.Size
	events []Event

	ops     []Op
	back    [][]rune
	front   [][]rune
	cursorX int
	cursorY int

	cursorVisible bool
	visibleCursor core.Position
	visibleShown  bool

	initialized   bool
	initCount     int
	shutdownCount int

	// Failure injection. A nil error means the operation succeeds.
	InitErr     error
	SizeErr     error
	FlushErr    error
	ShutdownErr error
	PollErr     error
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height uint) *Recorder {
	return &Recorder{sizes: []core.Size{core.NewSize(width, height)}}
}

// QueueSizes scripts the sizes returned by subsequent Size calls. Each call
// consumes one entry; the last entry repeats once the script runs out.
func (r *Recorder) QueueSizes(sizes ...core.Size) {
	r.sizes = append(r.sizes[:0], sizes...)
}

// SetSize makes every subsequent Size call return the given size.
func (r *Recorder) SetSize(width, height uint) {
	r.QueueSizes(core.NewSize(width, height))
}

// QueueEvents appends events returned by PollEvent in order.
func (r *Recorder) QueueEvents(events ...Event) {
	r.events = append(r.events, events...)
}

func (r *Recorder) Init() error {
	r.initCount++
	if r.InitErr != nil {
		return newIOError("init", r.InitErr)
	}
	r.initialized = true
	r.ClearScreen()
	r.MoveCursorTo(core.Origin)
	return r.Flush()
}

func (r *Recorder) Shutdown() error {
	r.shutdownCount++
	r.initialized = false
	if r.ShutdownErr != nil {
		return newIOError("shutdown", r.ShutdownErr)
	}
	return nil
}

func (r *Recorder) Size() (core.Size, error) {
	if r.SizeErr != nil {
		return core.Size{}, newIOError("size", r.SizeErr)
	}
	if len(r.sizes) == 0 {
		return core.Size{}, newIOError("size", ErrInvalidSize)
	}
	size := r.sizes[0]
	if len(r.sizes) > 1 {
		r.sizes = r.sizes[1:]
	}
	return size, nil
}

func (r *Recorder) MoveCursorTo(pos core.Position) {
	r.ops = append(r.ops, Op{Kind: OpMoveCursor, Pos: pos})
	r.cursorX = int(pos.X)
	r.cursorY = int(pos.Y)
}

func (r *Recorder) HideCursor() {
	r.ops = append(r.ops, Op{Kind: OpHideCursor})
	r.cursorVisible = false
}

func (r *Recorder) ShowCursor() {
	r.ops = append(r.ops, Op{Kind: OpShowCursor})
	r.cursorVisible = true
}

func (r *Recorder) ClearScreen() {
	r.ops = append(r.ops, Op{Kind: OpClearScreen})
	r.back = nil
}

func (r *Recorder) ClearLine() {
	r.ops = append(r.ops, Op{Kind: OpClearLine})
	if r.cursorY < len(r.back) {
		r.back[r.cursorY] = nil
	}
}

func (r *Recorder) Print(text string) {
	r.ops = append(r.ops, Op{Kind: OpPrint, Text: text})
	for _, ch := range text {
		switch ch {
		case '\r':
			r.cursorX = 0
		case '\n':
			r.cursorY++
		default:
			r.put(ch)
			r.cursorX++
		}
	}
}

// put writes a rune into the back grid at the cursor, growing it as needed.
func (r *Recorder) put(ch rune) {
	for len(r.back) <= r.cursorY {
		r.back = append(r.back, nil)
	}
	row := r.back[r.cursorY]
	for len(row) <= r.cursorX {
		row = append(row, ' ')
	}
	row[r.cursorX] = ch
	r.back[r.cursorY] = row
}

func (r *Recorder) Flush() error {
	r.ops = append(r.ops, Op{Kind: OpFlush})
	if r.FlushErr != nil {
		return newIOError("flush", r.FlushErr)
	}
	r.front = make([][]rune, len(r.back))
	for i, row := range r.back {
		r.front[i] = append([]rune(nil), row...)
	}
	r.visibleShown = r.cursorVisible
	r.visibleCursor = core.NewPosition(uint(r.cursorX), uint(r.cursorY))
	return nil
}

// PollEvent returns the next queued event. Once the script is exhausted it
// fails with ErrInputClosed so a runaway loop terminates.
func (r *Recorder) PollEvent() (Event, error) {
	if r.PollErr != nil {
		return Event{}, newIOError("poll", r.PollErr)
	}
	if len(r.events) == 0 {
		return Event{}, newIOError("poll", ErrInputClosed)
	}
	ev := r.events[0]
	r.events = r.events[1:]
	return ev, nil
}

// Ops returns all operations recorded so far.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

// Frames splits the recorded operations into flushed batches. Each frame
// ends with its OpFlush; operations queued after the last flush are omitted.
func (r *Recorder) Frames() [][]Op {
	var frames [][]Op
	start := 0
	for i, op := range r.ops {
		if op.Kind == OpFlush {
			frames = append(frames, append([]Op(nil), r.ops[start:i+1]...))
			start = i + 1
		}
	}
	return frames
}

// LastFrame returns the most recently flushed batch.
func (r *Recorder) LastFrame() []Op {
	frames := r.Frames()
	if len(frames) == 0 {
		return nil
	}
	return frames[len(frames)-1]
}

// Reset discards recorded operations without touching the emulated screen.
func (r *Recorder) Reset() {
	r.ops = nil
}

// Screen returns the visible rows as of the last Flush, with trailing
// blanks trimmed.
func (r *Recorder) Screen() []string {
	rows := make([]string, len(r.front))
	for i, row := range r.front {
		rows[i] = strings.TrimRight(string(row), " ")
	}
	return rows
}

// Row returns a single visible row, or "" if nothing was drawn there.
func (r *Recorder) Row(y int) string {
	rows := r.Screen()
	if y < 0 || y >= len(rows) {
		return ""
	}
	return rows[y]
}

// Cursor returns the cursor position and visibility as of the last Flush.
func (r *Recorder) Cursor() (core.Position, bool) {
	return r.visibleCursor, r.visibleShown
}

// InitCount returns how many times Init was called.
func (r *Recorder) InitCount() int { return r.initCount }

// ShutdownCount returns how many times Shutdown was called.
func (r *Recorder) ShutdownCount() int { return r.shutdownCount }

// Initialized reports whether the recorder is between Init and Shutdown.
func (r *Recorder) Initialized() bool { return r.initialized }
