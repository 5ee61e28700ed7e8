package buffer

import (
	"errors"
	"io/fs"
)

// Load failure kinds. Every *LoadError matches exactly one of these with
// errors.Is.
var (
	ErrNotFound         = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidEncoding  = errors.New("content is not valid UTF-8 text")
	ErrUnreadable       = errors.New("file could not be read")
)

// LoadError reports a failed buffer load.
type LoadError struct {
	Op    string // "open", "read" or "decode"
	Path  string
	Err   error // one of the Err* kinds above
	Cause error // underlying error, may be nil
}

func (e *LoadError) Error() string {
	msg := e.Op + " " + e.Path + ": " + e.Err.Error()
	if e.Cause != nil && errors.Is(e.Err, ErrUnreadable) {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// classify maps a filesystem error onto a load failure kind.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return ErrUnreadable
	}
}
