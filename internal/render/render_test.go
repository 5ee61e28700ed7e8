package render

import (
	"strings"
	"testing"

	"github.com/bethropolis/glance/internal/buffer"
	"github.com/bethropolis/glance/internal/core"
	"github.com/bethropolis/glance/internal/theme"
	"github.com/bethropolis/glance/internal/types"
)

var win = core.Window{ID: 1, Buffer: 1}

func mustBuffer(t *testing.T, path, content string) *buffer.TextBuffer {
	t.Helper()
	buf, err := buffer.FromBytes(path, []byte(content))
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestRenderFile(t *testing.T) {
	buf := mustBuffer(t, "notes.txt", "hello\nworld\n")
	area := types.Rect{Width: 20, Height: 5}

	frame := Render(win, buf, area)

	if frame.Title != "notes.txt" {
		t.Errorf("Title = %q, want notes.txt", frame.Title)
	}
	if frame.Area != area {
		t.Errorf("Area = %+v", frame.Area)
	}
	if want := (types.Rect{X: 1, Y: 1, Width: 18, Height: 3}); frame.Inner != want {
		t.Errorf("Inner = %+v, want %+v", frame.Inner, want)
	}
	if len(frame.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(frame.Lines))
	}
	for i, want := range []string{"hello", "world"} {
		line := frame.Lines[i]
		if line.Text() != want {
			t.Errorf("line %d = %q, want %q", i, line.Text(), want)
		}
		if line.Align != AlignLeft {
			t.Errorf("line %d align = %v", i, line.Align)
		}
		for _, span := range line.Spans {
			if span.Style != theme.StyleDefault {
				t.Errorf("line %d span style = %q", i, span.Style)
			}
		}
	}
}

func TestRenderScratch(t *testing.T) {
	frame := Render(win, buffer.NewScratch(), types.Rect{Width: 10, Height: 4})
	if frame.Title != ScratchTitle {
		t.Errorf("Title = %q, want %q", frame.Title, ScratchTitle)
	}
	if len(frame.Lines) != 0 {
		t.Errorf("empty buffer rendered %d lines", len(frame.Lines))
	}
}

func TestRenderDoesNotLimitToViewport(t *testing.T) {
	buf := mustBuffer(t, "many.txt", strings.Repeat("line\n", 50))
	frame := Render(win, buf, types.Rect{Width: 10, Height: 4})
	if len(frame.Lines) != 50 {
		t.Errorf("got %d lines, want every line in the visible range", len(frame.Lines))
	}
}

func TestRenderPreservesBytes(t *testing.T) {
	long := strings.Repeat("αβγ\t", 300)
	content := "  lead and trail  \n\n" + long + "\ncr\r"
	buf := mustBuffer(t, "bytes.txt", content)

	frame := Render(win, buf, types.Rect{Width: 80, Height: 24})
	want := []string{"  lead and trail  ", "", long, "cr\r"}
	if len(frame.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(frame.Lines), len(want))
	}
	for i := range want {
		if got := frame.Lines[i].Text(); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}
	if n := len(frame.Lines[1].Spans); n != 0 {
		t.Errorf("blank line has %d spans, want 0", n)
	}
	if n := len(frame.Lines[2].Spans); n < 2 {
		t.Errorf("long line has %d spans, want one per storage chunk", n)
	}
}

func TestRenderTinyArea(t *testing.T) {
	frame := Render(win, mustBuffer(t, "a", "x"), types.Rect{Width: 1, Height: 1})
	if !frame.Inner.Empty() || frame.Inner.Width < 0 || frame.Inner.Height < 0 {
		t.Errorf("Inner = %+v, want empty and non-negative", frame.Inner)
	}
}

func TestTitleInvalidUTF8(t *testing.T) {
	buf := mustBuffer(t, "bad\xffname.txt", "x")
	if got := Title(buf); got != "bad�name.txt" {
		t.Errorf("Title = %q", got)
	}
}
