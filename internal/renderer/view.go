package renderer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/glint/internal/renderer/backend"
	"github.com/dshills/glint/internal/renderer/core"
)

// LineSource provides read access to the lines being displayed.
type LineSource interface {
	// IsEmpty returns true if there are no lines.
	IsEmpty() bool

	// Line returns the line at index i, or false past the last line.
	Line(i int) (string, bool)
}

// ViewOptions configures frame composition.
type ViewOptions struct {
	// Product and Version make up the welcome banner.
	Product string
	Version string

	// Placeholder marks rows past the end of content.
	Placeholder string

	// Farewell is printed on the final frame.
	Farewell string
}

// DefaultViewOptions returns default view options.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		Product:     "glint",
		Version:     "dev",
		Placeholder: "~",
		Farewell:    "Goodbye \r\n",
	}
}

// View composes full frames from buffer lines and draws them through a
// backend. It keeps no state between frames; the terminal size is queried
// at the start of every frame.
type View struct {
	backend backend.Backend
	lines   LineSource
	opts    ViewOptions
}

// NewView creates a view drawing lines to the given backend.
func NewView(b backend.Backend, lines LineSource, opts ViewOptions) *View {
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultViewOptions().Placeholder
	}
	if opts.Farewell == "" {
		opts.Farewell = DefaultViewOptions().Farewell
	}
	return &View{
		backend: b,
		lines:   lines,
		opts:    opts,
	}
}

// Options returns the view options.
func (v *View) Options() ViewOptions {
	return v.opts
}

// Render draws one frame for the given mode with the hardware cursor at
// cursor. ModeFarewell draws the farewell frame instead.
func (v *View) Render(mode Mode, cursor core.Position) error {
	if mode == ModeFarewell {
		return v.RenderFarewell()
	}

	size, err := v.backend.Size()
	if err != nil {
		return err
	}

	v.backend.HideCursor()
	v.backend.MoveCursorTo(core.Origin)

	bannerRow := size.Height / 3
	for row := uint(0); row < size.Height; row++ {
		v.backend.ClearLine()

		switch line, ok := v.lines.Line(int(row)); {
		case mode == ModeWelcome && row == bannerRow:
			v.backend.Print(v.Banner(size.Width))
		case ok:
			v.backend.Print(line)
		default:
			v.backend.Print(v.opts.Placeholder)
		}

		// No newline after the last row so the terminal never scrolls.
		if row+1 < size.Height {
			v.backend.Print("\r\n")
		}
	}

	v.backend.MoveCursorTo(cursor)
	v.backend.ShowCursor()
	return v.backend.Flush()
}

// RenderFarewell clears the screen and prints the farewell line from the
// origin.
func (v *View) RenderFarewell() error {
	v.backend.ClearScreen()
	v.backend.MoveCursorTo(core.Origin)
	v.backend.Print(v.opts.Farewell)
	return v.backend.Flush()
}

// Banner returns the welcome line centered for the given width and
// truncated so it never exceeds width display cells.
func (v *View) Banner(width uint) string {
	msg := fmt.Sprintf("%s editor -- version %s", v.opts.Product, v.opts.Version)

	msgWidth := uint(runewidth.StringWidth(msg))
	if padding := core.SaturatingSub(width, msgWidth) / 2; padding > 0 {
		msg = v.opts.Placeholder + strings.Repeat(" ", int(padding-1)) + msg
	}

	return runewidth.Truncate(msg, int(width), "")
}
