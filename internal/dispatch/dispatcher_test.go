package dispatch

import (
	"testing"

	"github.com/bethropolis/glance/internal/event"
	"github.com/gdamore/tcell/v2"
)

func key(r rune, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, mod)
}

func TestDispatchQuit(t *testing.T) {
	mgr := event.NewManager()
	quits := 0
	mgr.Subscribe(event.TypeAppQuit, func(event.Event) bool {
		quits++
		return false
	})
	d := New(Config{EventManager: mgr})

	if got := d.Dispatch(key('q', tcell.ModNone)); got != StateTerminated {
		t.Fatalf("state after q = %v, want Terminated", got)
	}
	// Further events, quit included, change nothing.
	for _, ev := range []tcell.Event{key('q', tcell.ModNone), key('x', tcell.ModNone), tcell.NewEventResize(10, 10)} {
		if got := d.Dispatch(ev); got != StateTerminated {
			t.Errorf("state after %T = %v, want Terminated", ev, got)
		}
	}
	if quits != 1 {
		t.Errorf("AppQuit dispatched %d times, want 1", quits)
	}
}

func TestDispatchIgnoresOtherEvents(t *testing.T) {
	d := New(Config{})
	events := []tcell.Event{
		key('x', tcell.ModNone),
		key('q', tcell.ModCtrl),
		key('q', tcell.ModAlt),
		key('Q', tcell.ModShift),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventResize(80, 24),
		tcell.NewEventInterrupt(nil),
	}
	for _, ev := range events {
		if got := d.Dispatch(ev); got != StateRunning {
			t.Errorf("Dispatch(%T) = %v, want Running", ev, got)
		}
	}
	if d.State() != StateRunning {
		t.Errorf("State() = %v", d.State())
	}
}

func TestKeyPressedSubscriberCanConsume(t *testing.T) {
	mgr := event.NewManager()
	var seen []rune
	mgr.Subscribe(event.TypeKeyPressed, func(e event.Event) bool {
		data := e.Data.(event.KeyPressedData)
		seen = append(seen, data.KeyEvent.Rune())
		return data.KeyEvent.Rune() == 'q'
	})
	d := New(Config{EventManager: mgr})

	if got := d.Dispatch(key('q', tcell.ModNone)); got != StateRunning {
		t.Errorf("consumed q still changed state to %v", got)
	}
	d.Dispatch(key('a', tcell.ModNone))
	if string(seen) != "qa" {
		t.Errorf("subscriber saw %q, want \"qa\"", string(seen))
	}
}
