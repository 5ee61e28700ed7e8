// internal/core/state.go
package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bethropolis/glance/internal/buffer"
	"github.com/bethropolis/glance/internal/event"
	"github.com/bethropolis/glance/internal/logger"
)

var (
	ErrUnknownBuffer = errors.New("unknown buffer")
	ErrUnknownWindow = errors.New("unknown window")
)

type bufferEntry struct {
	id  BufferID
	buf *buffer.TextBuffer
}

// State owns every buffer and window of a session. Windows hold buffer IDs,
// not buffers, and every operation keeps each window bound to a live buffer.
//
// State is not safe for concurrent use.
type State struct {
	buffers      []bufferEntry
	windows      []Window
	active       WindowID // 0 when there are no windows
	nextBuffer   BufferID
	nextWindow   WindowID
	eventManager *event.Manager
}

// NewState creates an empty session state.
func NewState() *State {
	return &State{}
}

// SetEventManager sets the bus that receives buffer and window lifecycle
// events. A nil manager disables notifications.
func (s *State) SetEventManager(mgr *event.Manager) {
	s.eventManager = mgr
}

// AddBuffer registers buf and returns its new ID.
func (s *State) AddBuffer(buf *buffer.TextBuffer) BufferID {
	s.nextBuffer++
	id := s.nextBuffer
	s.buffers = append(s.buffers, bufferEntry{id: id, buf: buf})

	logger.Debugf("State: added buffer %d (%q)", id, buf.FilePath())
	s.eventManager.Dispatch(event.TypeBufferAdded, event.BufferData{BufferID: uint64(id), FilePath: buf.FilePath()})
	return id
}

func (s *State) bufferIndex(id BufferID) int {
	return slices.IndexFunc(s.buffers, func(e bufferEntry) bool { return e.id == id })
}

func (s *State) windowIndex(id WindowID) int {
	return slices.IndexFunc(s.windows, func(w Window) bool { return w.ID == id })
}

// Buffer returns the buffer with the given ID.
func (s *State) Buffer(id BufferID) (*buffer.TextBuffer, bool) {
	if i := s.bufferIndex(id); i >= 0 {
		return s.buffers[i].buf, true
	}
	return nil, false
}

// Buffers returns the IDs of all buffers in the order they were added.
func (s *State) Buffers() []BufferID {
	ids := make([]BufferID, len(s.buffers))
	for i, e := range s.buffers {
		ids[i] = e.id
	}
	return ids
}

// OpenWindow creates a window bound to buffer id and makes it active.
func (s *State) OpenWindow(id BufferID) (WindowID, error) {
	if s.bufferIndex(id) < 0 {
		return 0, fmt.Errorf("open window: buffer %d: %w", id, ErrUnknownBuffer)
	}
	s.nextWindow++
	win := Window{ID: s.nextWindow, Buffer: id}
	s.windows = append(s.windows, win)
	s.active = win.ID

	logger.Debugf("State: opened window %d on buffer %d", win.ID, id)
	s.eventManager.Dispatch(event.TypeWindowOpened, event.WindowData{WindowID: uint64(win.ID), BufferID: uint64(id)})
	return win.ID, nil
}

// Window returns a copy of the window with the given ID.
func (s *State) Window(id WindowID) (Window, bool) {
	if i := s.windowIndex(id); i >= 0 {
		return s.windows[i], true
	}
	return Window{}, false
}

// Windows returns copies of all windows in the order they were opened.
func (s *State) Windows() []Window {
	return slices.Clone(s.windows)
}

// ActiveWindow returns the active window, or false when none is open.
func (s *State) ActiveWindow() (Window, bool) {
	return s.Window(s.active)
}

// SetActiveWindow makes window id active.
func (s *State) SetActiveWindow(id WindowID) error {
	if s.windowIndex(id) < 0 {
		return fmt.Errorf("activate window %d: %w", id, ErrUnknownWindow)
	}
	s.active = id
	return nil
}

// RebindWindow points window wid at buffer bid.
func (s *State) RebindWindow(wid WindowID, bid BufferID) error {
	wi := s.windowIndex(wid)
	if wi < 0 {
		return fmt.Errorf("rebind window %d: %w", wid, ErrUnknownWindow)
	}
	if s.bufferIndex(bid) < 0 {
		return fmt.Errorf("rebind window %d: buffer %d: %w", wid, bid, ErrUnknownBuffer)
	}
	s.windows[wi].Buffer = bid
	s.windows[wi].ScrollOffset = 0
	return nil
}

// CloseWindow removes window id. If it was active, the most recently opened
// remaining window becomes active.
func (s *State) CloseWindow(id WindowID) error {
	i := s.windowIndex(id)
	if i < 0 {
		return fmt.Errorf("close window %d: %w", id, ErrUnknownWindow)
	}
	win := s.windows[i]
	s.windows = slices.Delete(s.windows, i, i+1)
	s.fixActive()

	logger.Debugf("State: closed window %d", id)
	s.eventManager.Dispatch(event.TypeWindowClosed, event.WindowData{WindowID: uint64(win.ID), BufferID: uint64(win.Buffer)})
	return nil
}

// RemoveBuffer removes buffer id together with every window bound to it and
// returns the IDs of the closed windows. No window ever refers to a removed
// buffer, even between the two steps: events are sent only once the state
// is consistent again.
func (s *State) RemoveBuffer(id BufferID) ([]WindowID, error) {
	bi := s.bufferIndex(id)
	if bi < 0 {
		return nil, fmt.Errorf("remove buffer %d: %w", id, ErrUnknownBuffer)
	}
	path := s.buffers[bi].buf.FilePath()

	var closed []WindowID
	s.windows = slices.DeleteFunc(s.windows, func(w Window) bool {
		if w.Buffer == id {
			closed = append(closed, w.ID)
			return true
		}
		return false
	})
	s.buffers = slices.Delete(s.buffers, bi, bi+1)
	s.fixActive()

	logger.Debugf("State: removed buffer %d and %d window(s)", id, len(closed))
	for _, wid := range closed {
		s.eventManager.Dispatch(event.TypeWindowClosed, event.WindowData{WindowID: uint64(wid), BufferID: uint64(id)})
	}
	s.eventManager.Dispatch(event.TypeBufferRemoved, event.BufferData{BufferID: uint64(id), FilePath: path})
	return closed, nil
}

// fixActive moves the active window to the last window when the active one
// is gone.
func (s *State) fixActive() {
	if s.windowIndex(s.active) >= 0 {
		return
	}
	s.active = 0
	if n := len(s.windows); n > 0 {
		s.active = s.windows[n-1].ID
	}
}

// Resolve returns window id and the buffer it shows.
func (s *State) Resolve(id WindowID) (Window, *buffer.TextBuffer, error) {
	win, ok := s.Window(id)
	if !ok {
		return Window{}, nil, fmt.Errorf("resolve window %d: %w", id, ErrUnknownWindow)
	}
	buf, ok := s.Buffer(win.Buffer)
	if !ok {
		return win, nil, fmt.Errorf("resolve window %d: buffer %d: %w", id, win.Buffer, ErrUnknownBuffer)
	}
	return win, buf, nil
}

// Validate checks that IDs are unique and every window resolves to a live
// buffer. It returns all violations joined.
func (s *State) Validate() error {
	var errs []error

	seenBuffers := make(map[BufferID]bool, len(s.buffers))
	for _, e := range s.buffers {
		if seenBuffers[e.id] {
			errs = append(errs, fmt.Errorf("duplicate buffer id %d", e.id))
		}
		seenBuffers[e.id] = true
		if e.buf == nil {
			errs = append(errs, fmt.Errorf("buffer %d is nil", e.id))
		}
	}

	seenWindows := make(map[WindowID]bool, len(s.windows))
	for _, w := range s.windows {
		if seenWindows[w.ID] {
			errs = append(errs, fmt.Errorf("duplicate window id %d", w.ID))
		}
		seenWindows[w.ID] = true
		if !seenBuffers[w.Buffer] {
			errs = append(errs, fmt.Errorf("window %d: buffer %d: %w", w.ID, w.Buffer, ErrUnknownBuffer))
		}
	}

	if s.active != 0 && !seenWindows[s.active] {
		errs = append(errs, fmt.Errorf("active window %d: %w", s.active, ErrUnknownWindow))
	}
	return errors.Join(errs...)
}
