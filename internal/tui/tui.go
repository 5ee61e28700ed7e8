// internal/tui/tui.go
package tui

import (
	"sync"

	"github.com/bethropolis/glance/internal/logger"
	"github.com/bethropolis/glance/internal/render"
	"github.com/bethropolis/glance/internal/theme"
	"github.com/bethropolis/glance/internal/types"
	"github.com/gdamore/tcell/v2"
)

// ScreenFactory creates an uninitialized screen.
type ScreenFactory func() (tcell.Screen, error)

// DefaultScreen opens the process's terminal.
func DefaultScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

// TUI owns an initialized tcell screen until Release.
type TUI struct {
	screen      tcell.Screen
	releaseOnce sync.Once
}

// Acquire creates and initializes a screen from open and switches the
// terminal into full-screen mode. The caller must Release the result.
func Acquire(open ScreenFactory, th *theme.Theme) (*TUI, error) {
	s, err := open()
	if err != nil {
		return nil, &TerminalError{Op: "create screen", Err: err}
	}
	if err := s.Init(); err != nil {
		return nil, &TerminalError{Op: "init screen", Err: err}
	}

	s.SetStyle(th.GetStyle(theme.StyleDefault))
	s.HideCursor()
	s.Clear()
	logger.Debugf("TUI: screen acquired")
	return &TUI{screen: s}, nil
}

// Run acquires a screen, calls fn with it and releases the screen on every
// way out of fn, panics included.
func Run(open ScreenFactory, th *theme.Theme, fn func(*TUI) error) error {
	t, err := Acquire(open, th)
	if err != nil {
		return err
	}
	defer t.Release()
	return fn(t)
}

// Release restores the terminal. Calls after the first do nothing.
func (t *TUI) Release() {
	t.releaseOnce.Do(func() {
		t.screen.Fini()
		logger.Debugf("TUI: screen released")
	})
}

// PollEvent blocks until the next terminal event.
func (t *TUI) PollEvent() (tcell.Event, error) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return nil, &TerminalError{Op: "poll event", Err: ErrScreenClosed}
	}
	return ev, nil
}

// Area returns the whole screen as a rectangle.
func (t *TUI) Area() types.Rect {
	w, h := t.screen.Size()
	return types.Rect{Width: w, Height: h}
}

// Draw paints frame over a cleared screen and shows the result.
func (t *TUI) Draw(frame render.Frame, th *theme.Theme, opts PaintOptions) {
	t.screen.Clear()
	Paint(t.screen, frame, th, opts)
	t.screen.Show()
}

// Sync redraws the whole terminal, after a resize for example.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Screen provides direct access to the screen.
func (t *TUI) Screen() tcell.Screen {
	return t.screen
}
