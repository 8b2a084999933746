package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	default:
		return "\\n"
	}
}

// Buffer is a read-only ordered sequence of text lines.
type Buffer struct {
	path       string
	lines      []string
	lineEnding LineEnding
}

// New creates a buffer holding the given lines.
func New(lines ...string) *Buffer {
	return &Buffer{lines: append([]string(nil), lines...)}
}

// NewFromString creates a buffer by splitting text into lines.
func NewFromString(text string) *Buffer {
	lines, le := splitLines(text)
	return &Buffer{lines: lines, lineEnding: le}
}

// Load reads a file from disk into a new buffer.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	b := NewFromString(string(data))
	b.path = path
	return b, nil
}

// LoadFS reads a file from fsys into a new buffer.
func LoadFS(fsys fs.FS, name string) (*Buffer, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	b := NewFromString(string(data))
	b.path = name
	return b, nil
}

// Path returns the file the buffer was loaded from, or "" for a scratch buffer.
func (b *Buffer) Path() string {
	return b.path
}

// IsEmpty returns true if the buffer holds no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line i (without its terminator), or false if
// i is out of range.
func (b *Buffer) Line(i int) (string, bool) {
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// LineEnding returns the line ending detected on load.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// splitLines splits text on "\n" and "\r\n". A final terminator does not
// start an extra empty line. The line ending style is taken from the first
// terminator found.
func splitLines(text string) ([]string, LineEnding) {
	if text == "" {
		return nil, LineEndingLF
	}

	le := LineEndingLF
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		le = LineEndingCRLF
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, le
}

// LoadError reports a failure to read a file into a buffer.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.NotFound() {
		return fmt.Sprintf("file not found: %s", e.Path)
	}
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NotFound returns true if the file does not exist.
func (e *LoadError) NotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}
