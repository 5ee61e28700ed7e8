// Package render projects a window's view of a buffer into a Frame: the
// title, inner area and styled lines the painter draws. It never touches the
// terminal.
package render

import (
	"strings"

	"github.com/bethropolis/glance/internal/buffer"
	"github.com/bethropolis/glance/internal/core"
	"github.com/bethropolis/glance/internal/theme"
	"github.com/bethropolis/glance/internal/types"
)

// ScratchTitle is the title of a window showing a buffer with no file.
const ScratchTitle = "<scratch>"

// Alignment is the horizontal placement of a line within the inner area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Span is a run of text drawn in one style. Style is a theme style name.
type Span struct {
	Text  string
	Style string
}

// Line is one display line. A line with no spans is blank.
type Line struct {
	Spans []Span
	Align Alignment
}

// Text returns the concatenated span text.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Frame is everything needed to draw one window.
type Frame struct {
	Area      types.Rect // full window area, border included
	Inner     types.Rect // area inside the border
	Title     string
	Lines     []Line
	FirstLine int // buffer index of Lines[0]
}

// Title returns the display title for buf: its path, or ScratchTitle.
// Bytes that are not valid UTF-8 show as U+FFFD.
func Title(buf buffer.Buffer) string {
	if buf.IsScratch() {
		return ScratchTitle
	}
	return strings.ToValidUTF8(buf.FilePath(), "�")
}

// Render builds the frame for win showing buf inside area. Every line in the
// window's visible range is included; lines that do not fit the inner area
// are left for the painter to clip. The frame is rebuilt from scratch on
// every call.
func Render(win core.Window, buf buffer.Buffer, area types.Rect) Frame {
	inner := area.Inner()
	frame := Frame{
		Area:  area,
		Inner: inner,
		Title: Title(buf),
	}

	first, last, ok := win.VisibleRange(buf.LineCount(), inner.Height)
	if !ok {
		return frame
	}

	frame.FirstLine = first
	frame.Lines = make([]Line, 0, last-first+1)
	for i := first; i <= last; i++ {
		var spans []Span
		for chunk := range buf.LineChunks(i) {
			spans = append(spans, Span{Text: chunk, Style: theme.StyleDefault})
		}
		frame.Lines = append(frame.Lines, Line{Spans: spans, Align: AlignLeft})
	}
	return frame
}
