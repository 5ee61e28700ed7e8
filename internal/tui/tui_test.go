package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/bethropolis/glance/internal/render"
	"github.com/bethropolis/glance/internal/theme"
	"github.com/bethropolis/glance/internal/types"
	"github.com/gdamore/tcell/v2"
)

// countingScreen records how often the terminal is restored.
type countingScreen struct {
	tcell.SimulationScreen
	initErr error
	finis   int
}

func (c *countingScreen) Init() error {
	if c.initErr != nil {
		return c.initErr
	}
	return c.SimulationScreen.Init()
}

func (c *countingScreen) Fini() {
	c.finis++
	c.SimulationScreen.Fini()
}

func newCountingScreen() *countingScreen {
	return &countingScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
}

func (c *countingScreen) factory() ScreenFactory {
	return func() (tcell.Screen, error) { return c, nil }
}

// screenRows returns the visible text of s, one string per row.
func screenRows(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if runes := cells[y*w+x].Runes; len(runes) > 0 {
				sb.WriteString(string(runes))
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func TestRunReleasesOnReturn(t *testing.T) {
	scr := newCountingScreen()
	sentinel := errors.New("stop")

	err := Run(scr.factory(), &theme.Plain, func(tu *TUI) error {
		tu.Release() // an early release must not be repeated
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Run error = %v, want the callback's error", err)
	}
	if scr.finis != 1 {
		t.Errorf("Fini called %d times, want 1", scr.finis)
	}
}

func TestRunReleasesOnPanic(t *testing.T) {
	scr := newCountingScreen()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = Run(scr.factory(), &theme.Plain, func(*TUI) error {
			panic("boom")
		})
	}()

	if scr.finis != 1 {
		t.Errorf("Fini called %d times after panic, want 1", scr.finis)
	}
}

func TestAcquireFailures(t *testing.T) {
	createErr := errors.New("no tty")
	_, err := Acquire(func() (tcell.Screen, error) { return nil, createErr }, &theme.Plain)
	var termErr *TerminalError
	if !errors.As(err, &termErr) || termErr.Op != "create screen" || !errors.Is(err, createErr) {
		t.Errorf("create failure = %v", err)
	}

	scr := newCountingScreen()
	scr.initErr = errors.New("bad terminfo")
	called := false
	err = Run(scr.factory(), &theme.Plain, func(*TUI) error {
		called = true
		return nil
	})
	if !errors.As(err, &termErr) || termErr.Op != "init screen" {
		t.Errorf("init failure = %v", err)
	}
	if called {
		t.Error("callback ran without a screen")
	}
}

func TestPollEvent(t *testing.T) {
	scr := newCountingScreen()
	tu, err := Acquire(scr.factory(), &theme.Plain)
	if err != nil {
		t.Fatal(err)
	}

	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	for {
		ev, err := tu.PollEvent()
		if err != nil {
			t.Fatalf("PollEvent: %v", err)
		}
		// The screen may report its initial size first.
		if key, ok := ev.(*tcell.EventKey); ok {
			if key.Rune() != 'q' {
				t.Errorf("key = %q, want q", key.Rune())
			}
			break
		}
	}

	tu.Release()
	if _, err := tu.PollEvent(); !errors.Is(err, ErrScreenClosed) {
		t.Errorf("PollEvent after release = %v, want ErrScreenClosed", err)
	}
}

func TestDrawFrame(t *testing.T) {
	scr := newCountingScreen()
	tu, err := Acquire(scr.factory(), &theme.Plain)
	if err != nil {
		t.Fatal(err)
	}
	defer tu.Release()
	scr.SetSize(12, 5)

	area := tu.Area()
	if area != (types.Rect{Width: 12, Height: 5}) {
		t.Fatalf("Area = %+v", area)
	}
	frame := render.Frame{
		Area:  area,
		Inner: area.Inner(),
		Title: "a.txt",
		Lines: []render.Line{
			{Spans: []render.Span{{Text: "hello", Style: theme.StyleDefault}}},
			{Spans: []render.Span{{Text: "wor", Style: theme.StyleDefault}, {Text: "ld", Style: theme.StyleDefault}}},
			{},
			{Spans: []render.Span{{Text: "clipped row", Style: theme.StyleDefault}}},
		},
	}
	tu.Draw(frame, &theme.Plain, PaintOptions{})

	want := []string{
		"┌a.txt─────┐",
		"│hello     │",
		"│world     │",
		"│          │",
		"└──────────┘",
	}
	got := screenRows(scr)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}
