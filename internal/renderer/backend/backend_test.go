package backend

import (
	"errors"
	"testing"

	"github.com/dshills/glint/internal/renderer/core"
)

func TestRecorderInit(t *testing.T) {
	r := NewRecorder(80, 24)
	if err := r.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	want := []Op{ClearScreenOp(), MoveOp(0, 0), FlushOp()}
	assertOps(t, r.Ops(), want)

	size, err := r.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != core.NewSize(80, 24) {
		t.Errorf("expected size 80x24, got %v", size)
	}
}

func TestRecorderBatchesUntilFlush(t *testing.T) {
	r := NewRecorder(20, 5)
	r.Init()

	r.MoveCursorTo(core.NewPosition(0, 1))
	r.Print("hello")

	if got := r.Row(1); got != "" {
		t.Errorf("expected nothing visible before flush, got %q", got)
	}

	r.Flush()

	if got := r.Row(1); got != "hello" {
		t.Errorf("expected %q after flush, got %q", "hello", got)
	}
}

func TestRecorderPrintControlCharacters(t *testing.T) {
	r := NewRecorder(20, 5)
	r.Init()

	r.Print("ab\r\ncd")
	r.Flush()

	if r.Row(0) != "ab" || r.Row(1) != "cd" {
		t.Errorf("unexpected screen: %q", r.Screen())
	}
}

func TestRecorderClearLine(t *testing.T) {
	r := NewRecorder(20, 5)
	r.Init()

	r.Print("first line")
	r.Flush()

	r.MoveCursorTo(core.Origin)
	r.ClearLine()
	r.Print("x")
	r.Flush()

	if got := r.Row(0); got != "x" {
		t.Errorf("expected cleared row to hold only %q, got %q", "x", got)
	}
}

func TestRecorderCursorVisibility(t *testing.T) {
	r := NewRecorder(20, 5)
	r.Init()

	r.HideCursor()
	r.MoveCursorTo(core.NewPosition(3, 2))
	r.Flush()
	if _, visible := r.Cursor(); visible {
		t.Error("cursor should be hidden")
	}

	r.ShowCursor()
	r.Flush()
	pos, visible := r.Cursor()
	if !visible {
		t.Error("cursor should be visible")
	}
	if pos != core.NewPosition(3, 2) {
		t.Errorf("expected cursor at (3,2), got %v", pos)
	}
}

func TestRecorderQueuedSizes(t *testing.T) {
	r := NewRecorder(80, 24)
	r.QueueSizes(core.NewSize(80, 24), core.NewSize(80, 10))

	first, _ := r.Size()
	second, _ := r.Size()
	third, _ := r.Size()

	if first.Height != 24 || second.Height != 10 || third.Height != 10 {
		t.Errorf("unexpected size sequence: %v %v %v", first, second, third)
	}
}

func TestRecorderFailures(t *testing.T) {
	cause := errors.New("boom")

	r := NewRecorder(80, 24)
	r.FlushErr = cause
	err := r.Flush()
	if !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}

	r.SizeErr = cause
	if _, err := r.Size(); !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO from Size, got %v", err)
	}

	if _, err := r.PollEvent(); !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed for empty script, got %v", err)
	}
}

func TestRecorderFrames(t *testing.T) {
	r := NewRecorder(80, 24)
	r.Init()
	r.Print("a")
	r.Flush()
	r.Print("pending")

	frames := r.Frames()
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	assertOps(t, r.LastFrame(), []Op{PrintOp("a"), FlushOp()})
}

func TestIOErrorMessage(t *testing.T) {
	err := newIOError("size", ErrInvalidSize)
	if err.Error() != "terminal size: invalid terminal size" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	var ioErr *IOError
	if !errors.As(error(err), &ioErr) || ioErr.Op != "size" {
		t.Error("errors.As should extract IOError")
	}
}

func TestCtrlKey(t *testing.T) {
	if CtrlKey('q') != KeyCtrlQ {
		t.Error("expected KeyCtrlQ for 'q'")
	}
	if CtrlKey('A') != KeyCtrlA {
		t.Error("expected KeyCtrlA for 'A'")
	}
	if CtrlKey('1') != KeyNone {
		t.Error("expected KeyNone for non-letter")
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Error("mask should contain ctrl and shift")
	}
	if m.Has(ModAlt) {
		t.Error("mask should not contain alt")
	}
}

func assertOps(t *testing.T, got, want []Op) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d ops %v, got %d ops %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
