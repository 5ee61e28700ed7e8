package core

import (
	"errors"
	"slices"
	"testing"

	"github.com/bethropolis/glance/internal/buffer"
	"github.com/bethropolis/glance/internal/event"
)

func mustBuffer(t *testing.T, path, content string) *buffer.TextBuffer {
	t.Helper()
	buf, err := buffer.FromBytes(path, []byte(content))
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestOpenWindowBindsBuffer(t *testing.T) {
	s := NewState()
	bid := s.AddBuffer(mustBuffer(t, "a.txt", "hello\n"))

	wid, err := s.OpenWindow(bid)
	if err != nil {
		t.Fatalf("OpenWindow: %v", err)
	}
	win, buf, err := s.Resolve(wid)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if win.Buffer != bid || buf.FilePath() != "a.txt" {
		t.Errorf("Resolve = %+v, %q", win, buf.FilePath())
	}
	if active, ok := s.ActiveWindow(); !ok || active.ID != wid {
		t.Errorf("ActiveWindow = %+v, %v", active, ok)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestOpenWindowUnknownBuffer(t *testing.T) {
	s := NewState()
	if _, err := s.OpenWindow(42); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("error = %v, want ErrUnknownBuffer", err)
	}
	if len(s.Windows()) != 0 {
		t.Error("failed OpenWindow created a window")
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	s := NewState()
	first := s.AddBuffer(buffer.NewScratch())
	if _, err := s.RemoveBuffer(first); err != nil {
		t.Fatal(err)
	}
	second := s.AddBuffer(buffer.NewScratch())
	if second == first {
		t.Errorf("buffer id %d reused", first)
	}
	if _, ok := s.Buffer(first); ok {
		t.Error("removed buffer still resolves")
	}
}

func TestRemoveBufferClosesBoundWindows(t *testing.T) {
	s := NewState()
	mgr := event.NewManager()
	s.SetEventManager(mgr)

	var seen []event.Type
	for _, typ := range []event.Type{event.TypeWindowClosed, event.TypeBufferRemoved} {
		mgr.Subscribe(typ, func(e event.Event) bool {
			// Subscribers must never see a dangling window.
			if err := s.Validate(); err != nil {
				t.Errorf("state inconsistent during %v: %v", e.Type, err)
			}
			seen = append(seen, e.Type)
			return false
		})
	}

	a := s.AddBuffer(mustBuffer(t, "a.txt", "a"))
	b := s.AddBuffer(mustBuffer(t, "b.txt", "b"))
	w1, _ := s.OpenWindow(a)
	w2, _ := s.OpenWindow(b)
	w3, _ := s.OpenWindow(a)

	closed, err := s.RemoveBuffer(a)
	if err != nil {
		t.Fatalf("RemoveBuffer: %v", err)
	}
	if !slices.Equal(closed, []WindowID{w1, w3}) {
		t.Errorf("closed = %v, want [%d %d]", closed, w1, w3)
	}
	if got := s.Windows(); len(got) != 1 || got[0].ID != w2 {
		t.Errorf("remaining windows = %+v", got)
	}
	if active, _ := s.ActiveWindow(); active.ID != w2 {
		t.Errorf("active = %d, want %d", active.ID, w2)
	}
	if _, _, err := s.Resolve(w1); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("Resolve closed window error = %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	want := []event.Type{event.TypeWindowClosed, event.TypeWindowClosed, event.TypeBufferRemoved}
	if !slices.Equal(seen, want) {
		t.Errorf("events = %v, want %v", seen, want)
	}

	if _, err := s.RemoveBuffer(a); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("second RemoveBuffer error = %v", err)
	}
}

func TestRemoveLastBufferLeavesNoActiveWindow(t *testing.T) {
	s := NewState()
	bid := s.AddBuffer(buffer.NewScratch())
	if _, err := s.OpenWindow(bid); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RemoveBuffer(bid); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.ActiveWindow(); ok {
		t.Error("ActiveWindow should report none")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestRebindAndCloseWindow(t *testing.T) {
	s := NewState()
	a := s.AddBuffer(mustBuffer(t, "a.txt", "a"))
	b := s.AddBuffer(mustBuffer(t, "b.txt", "b"))
	w1, _ := s.OpenWindow(a)
	w2, _ := s.OpenWindow(a)

	if err := s.RebindWindow(w1, b); err != nil {
		t.Fatalf("RebindWindow: %v", err)
	}
	if _, buf, _ := s.Resolve(w1); buf.FilePath() != "b.txt" {
		t.Errorf("rebound window shows %q", buf.FilePath())
	}
	if err := s.RebindWindow(w1, 99); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("rebind to unknown buffer error = %v", err)
	}
	if err := s.SetActiveWindow(w1); err != nil {
		t.Fatal(err)
	}
	if err := s.CloseWindow(w1); err != nil {
		t.Fatal(err)
	}
	if active, _ := s.ActiveWindow(); active.ID != w2 {
		t.Errorf("active after close = %d, want %d", active.ID, w2)
	}
	if err := s.CloseWindow(w1); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("second close error = %v", err)
	}
	if err := s.SetActiveWindow(w1); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("activate closed window error = %v", err)
	}
	if got := s.Buffers(); !slices.Equal(got, []BufferID{a, b}) {
		t.Errorf("Buffers() = %v", got)
	}
}

func TestValidateReportsDanglingWindow(t *testing.T) {
	s := NewState()
	s.windows = append(s.windows, Window{ID: 7, Buffer: 3})
	if err := s.Validate(); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("Validate = %v, want ErrUnknownBuffer", err)
	}
}
