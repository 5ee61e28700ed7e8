// internal/tui/drawing.go
package tui

import (
	"unicode/utf8"

	"github.com/bethropolis/glance/internal/render"
	"github.com/bethropolis/glance/internal/theme"
	"github.com/bethropolis/glance/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 4

// PaintOptions controls how text is laid out in cells.
type PaintOptions struct {
	TabWidth int // columns per tab stop; DefaultTabWidth when <= 0
}

// cell is one grapheme cluster ready to be placed on screen.
type cell struct {
	mainc rune
	combc []rune
	width int
	style tcell.Style
}

// Paint draws frame onto screen: the area is cleared, a border is drawn
// around it with the title on the top edge, and the lines fill the inner
// area. Text that does not fit the inner area is clipped.
func Paint(screen tcell.Screen, frame render.Frame, th *theme.Theme, opts PaintOptions) {
	area := frame.Area
	if area.Empty() {
		return
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}

	fill(screen, area, th.GetStyle(theme.StyleDefault))
	if area.Width >= 2 && area.Height >= 2 {
		drawBorder(screen, area, th.GetStyle(theme.StyleBorder))
		drawTitle(screen, area, frame.Title, th.GetStyle(theme.StyleTitle))
	}

	inner := frame.Inner
	for row, line := range frame.Lines {
		if row >= inner.Height {
			break
		}
		drawLine(screen, inner.X, inner.Y+row, inner.Width, line, th, opts.TabWidth)
	}
}

func fill(screen tcell.Screen, r types.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawBorder(screen tcell.Screen, r types.Rect, style tcell.Style) {
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		screen.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		screen.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawTitle writes the title on the top border between the corners,
// truncated with an ellipsis when it is too long.
func drawTitle(screen tcell.Screen, r types.Rect, title string, style tcell.Style) {
	avail := r.Width - 2
	if avail <= 0 || title == "" {
		return
	}
	title = runewidth.Truncate(title, avail, "…")
	cells := layout([]segment{{text: title, style: style}}, 0)
	place(screen, r.X+1, r.Y, avail, cells)
}

func drawLine(screen tcell.Screen, x, y, width int, line render.Line, th *theme.Theme, tabWidth int) {
	if width <= 0 || len(line.Spans) == 0 {
		return
	}
	segs := make([]segment, len(line.Spans))
	for i, span := range line.Spans {
		segs[i] = segment{text: span.Text, style: th.GetStyle(span.Style)}
	}
	cells := layout(segs, tabWidth)

	total := 0
	for _, c := range cells {
		total += c.width
	}
	offset := 0
	switch line.Align {
	case render.AlignCenter:
		offset = max(0, (width-total)/2)
	case render.AlignRight:
		offset = max(0, width-total)
	}
	place(screen, x+offset, y, width-offset, cells)
}

// place draws cells left to right from x, stopping before the first cell
// that would cross the limit.
func place(screen tcell.Screen, x, y, limit int, cells []cell) {
	col := 0
	for _, c := range cells {
		if col+c.width > limit {
			return
		}
		screen.SetContent(x+col, y, c.mainc, c.combc, c.style)
		col += c.width
	}
}

type segment struct {
	text  string
	style tcell.Style
}

// layout splits the segments into grapheme clusters with display widths.
// Clusters are found across segment boundaries; a cluster takes the style of
// the segment it starts in. A tabWidth of 0 leaves tabs to control-character
// handling.
func layout(segs []segment, tabWidth int) []cell {
	var text []byte
	starts := make([]int, len(segs))
	for i, s := range segs {
		starts[i] = len(text)
		text = append(text, s.text...)
	}

	var cells []cell
	seg, col, offset := 0, 0, 0
	state := -1
	for len(text) > 0 {
		var cluster []byte
		var boundaries int
		cluster, text, boundaries, state = uniseg.Step(text, state)
		width := boundaries >> uniseg.ShiftWidth

		for seg+1 < len(segs) && starts[seg+1] <= offset {
			seg++
		}
		offset += len(cluster)
		style := segs[seg].style

		r, _ := utf8.DecodeRune(cluster)
		switch {
		case r == '\t' && tabWidth > 0:
			for n := tabWidth - col%tabWidth; n > 0; n-- {
				cells = append(cells, cell{mainc: ' ', width: 1, style: style})
				col++
			}
			continue
		case r < 0x20 || r == 0x7f:
			// Caret notation: ^M for carriage return, ^? for DEL.
			cells = append(cells,
				cell{mainc: '^', width: 1, style: style},
				cell{mainc: r ^ 0x40, width: 1, style: style})
			col += 2
			continue
		case r >= 0x80 && r < 0xa0:
			cells = append(cells, cell{mainc: utf8.RuneError, width: 1, style: style})
			col++
			continue
		}

		if width <= 0 {
			continue
		}
		runes := []rune(string(cluster))
		cells = append(cells, cell{mainc: runes[0], combc: runes[1:], width: width, style: style})
		col += width
	}
	return cells
}
