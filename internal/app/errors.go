package app

import (
	"fmt"

	"github.com/bethropolis/glance/internal/core"
)

// RenderError reports that a window could not be drawn.
type RenderError struct {
	Window core.WindowID // 0 when no window was active
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render window %d: %v", e.Window, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
