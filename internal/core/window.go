// internal/core/window.go
package core

// BufferID identifies a buffer within a State. IDs start at 1 and are never
// reused, so a stale ID can never resolve to a different buffer.
type BufferID uint64

// WindowID identifies a window within a State.
type WindowID uint64

// Window is a view onto one buffer. It refers to the buffer by ID; the State
// owns both.
type Window struct {
	ID           WindowID
	Buffer       BufferID
	ScrollOffset int // first line shown; always 0 until scrolling exists
}

// VisibleRange returns the inclusive range of buffer lines to render, or
// ok=false when the buffer has no lines.
//
// viewportHeight is accepted but not applied: the range runs to the last
// line of the buffer and the painter clips to the rows it has.
func (w Window) VisibleRange(lineCount, viewportHeight int) (first, last int, ok bool) {
	_ = viewportHeight
	if lineCount <= 0 {
		return 0, 0, false
	}
	first = max(0, min(w.ScrollOffset, lineCount-1))
	return first, lineCount - 1, true
}
