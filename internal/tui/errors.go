package tui

import "errors"

// ErrScreenClosed is reported by PollEvent once the screen has been
// finalized.
var ErrScreenClosed = errors.New("screen closed")

// TerminalError reports a failure to acquire or drive the terminal.
type TerminalError struct {
	Op  string // "create screen", "init screen" or "poll event"
	Err error
}

func (e *TerminalError) Error() string {
	return "terminal: " + e.Op + ": " + e.Err.Error()
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}
