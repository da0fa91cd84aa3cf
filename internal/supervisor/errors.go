package supervisor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSpawnFailed = errors.New("failed to start server")

// Describes a child process that could not be started.
type Error struct {
	Args []string // Command line that was attempted.
	Dir  string   // Working directory.
	Err  error    // Underlying cause.
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s (in %s): %v", ErrSpawnFailed, strings.Join(e.Args, " "), e.Dir, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrSpawnFailed, e.Err}
}
