package app

import (
	"fmt"

	"github.com/bethropolis/glance/internal/logger"
	"github.com/bethropolis/glance/internal/render"
	"github.com/bethropolis/glance/internal/tui"
)

// draw renders the app's window over the whole screen. A panic while
// building or painting the frame is returned as a *RenderError so the
// terminal is released normally.
func (a *App) draw(t *tui.TUI) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Window: a.window, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	win, buf, err := a.state.Resolve(a.window)
	if err != nil {
		return &RenderError{Window: a.window, Err: err}
	}

	area := t.Area()
	frame := render.Render(win, buf, area)
	logger.DebugTagf("draw", "draw: window %d, area %dx%d, %d lines", win.ID, area.Width, area.Height, len(frame.Lines))

	t.Draw(frame, a.themeManager.Current(), a.paintOptions)
	return nil
}
