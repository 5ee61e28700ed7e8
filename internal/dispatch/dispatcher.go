// internal/dispatch/dispatcher.go
package dispatch

import (
	"github.com/bethropolis/glance/internal/event"
	"github.com/bethropolis/glance/internal/input"
	"github.com/bethropolis/glance/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// State is the session's run state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "Terminated"
	}
	return "Running"
}

// Config holds the Dispatcher's dependencies.
type Config struct {
	InputProcessor *input.Processor
	EventManager   *event.Manager // optional
}

// Dispatcher turns terminal events into run-state transitions. It starts
// Running; a quit action moves it to Terminated, which is final.
type Dispatcher struct {
	inputProcessor *input.Processor
	eventManager   *event.Manager
	state          State
}

// New creates a Dispatcher in StateRunning. A nil InputProcessor gets the
// default bindings.
func New(cfg Config) *Dispatcher {
	if cfg.InputProcessor == nil {
		cfg.InputProcessor = input.NewProcessor()
	}
	return &Dispatcher{
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		state:          StateRunning,
	}
}

// State returns the current state.
func (d *Dispatcher) State() State {
	return d.state
}

// Dispatch handles one terminal event and returns the resulting state.
// Events that arrive after termination are ignored.
func (d *Dispatcher) Dispatch(ev tcell.Event) State {
	if d.state == StateTerminated {
		return d.state
	}

	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return d.state
	}

	// Subscribers see the raw key first; consuming it skips the keymap.
	if d.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: keyEv}) {
		return d.state
	}

	actionEvent := d.inputProcessor.Process(keyEv)
	switch actionEvent.Action {
	case input.ActionQuit:
		logger.DebugTagf("input", "Dispatcher: quit requested")
		d.state = StateTerminated
		d.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	default:
		logger.DebugTagf("input", "Dispatcher: ignoring key %s", keyEv.Name())
	}
	return d.state
}
