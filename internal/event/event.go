// internal/event/event.go
package event

import "github.com/gdamore/tcell/v2"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Session state
	TypeBufferAdded   // A buffer was registered with the session
	TypeBufferRemoved // A buffer was removed from the session
	TypeWindowOpened  // A window was bound to a buffer
	TypeWindowClosed  // A window was closed, directly or with its buffer

	// Input
	TypeKeyPressed // Raw key press, forwarded before interpretation

	// Application lifecycle
	TypeAppReady // Session is set up, first frame not yet drawn
	TypeAppQuit  // Quit requested, the loop ends after this
)

var typeNames = map[Type]string{
	TypeUnknown:       "Unknown",
	TypeBufferAdded:   "BufferAdded",
	TypeBufferRemoved: "BufferRemoved",
	TypeWindowOpened:  "WindowOpened",
	TypeWindowClosed:  "WindowClosed",
	TypeKeyPressed:    "KeyPressed",
	TypeAppReady:      "AppReady",
	TypeAppQuit:       "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferData identifies a buffer in TypeBufferAdded and TypeBufferRemoved.
type BufferData struct {
	BufferID uint64
	FilePath string // empty for scratch buffers
}

// WindowData identifies a window in TypeWindowOpened and TypeWindowClosed.
type WindowData struct {
	WindowID uint64
	BufferID uint64
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppReadyData carries the path the session opened, empty for scratch.
type AppReadyData struct {
	FilePath string
}

// AppQuitData is sent once when the session terminates.
type AppQuitData struct{}
