package workspace

import (
	"errors"
	"fmt"
)

var ErrCopyFailed = errors.New("copy failed")

// Describes a failed staging operation on a single path.
type Error struct {
	Path string // File or directory that could not be written or read.
	Err  error  // Underlying filesystem error.
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrCopyFailed, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrCopyFailed, e.Err}
}

func copyFailed(path string, err error) error {
	return &Error{Path: path, Err: err}
}
