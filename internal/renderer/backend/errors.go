package backend

import (
	"errors"
	"fmt"
)

// ErrIO matches every error produced by a backend via errors.Is.
var ErrIO = errors.New("terminal i/o failure")

// Backend failure causes.
var (
	ErrNotTerminal    = errors.New("not a terminal")
	ErrInvalidSize    = errors.New("invalid terminal size")
	ErrInputClosed    = errors.New("input stream closed")
	ErrNotInitialized = errors.New("backend not initialized")
)

// IOError wraps a failure from terminal configuration, size query,
// output flush or input read.
type IOError struct {
	Op  string // Operation name (e.g., "init", "size", "flush")
	Err error  // Underlying error
}

// newIOError creates an IOError for the given operation.
func newIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("terminal %s failed", e.Op)
	}
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports ErrIO as a match so callers can detect any backend failure.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
