package artifact

import (
	"errors"
	"fmt"
)

var (
	ErrDownloadFailed = errors.New("download failed")
	ErrSourceNotFound = errors.New("server jar not found")
)

// Describes a failed resolution.
//
// The error matches its kind ([ErrDownloadFailed] or [ErrSourceNotFound])
// and its cause with [errors.Is].
type Error struct {
	Kind   error  // Sentinel describing the failure.
	Source string // URL or absolute path that could not be resolved.
	Err    error  // Underlying cause, may be nil.
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Source)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Source, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func downloadFailed(url string, err error) error {
	return &Error{Kind: ErrDownloadFailed, Source: url, Err: err}
}

func sourceNotFound(path string, err error) error {
	return &Error{Kind: ErrSourceNotFound, Source: path, Err: err}
}
