// internal/types/rect.go
package types

// Rect is a rectangular screen region in cells. X and Y are the top-left
// corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inner returns the region left after removing a one-cell border on every
// side. The result never has negative extent.
func (r Rect) Inner() Rect {
	return Rect{
		X:      r.X + 1,
		Y:      r.Y + 1,
		Width:  max(r.Width-2, 0),
		Height: max(r.Height-2, 0),
	}
}

// Empty reports whether the region covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
