// internal/input/action.go
package input

// Action is what a key press asks the viewer to do.
type Action int

const (
	ActionUnknown Action = iota // unbound key, ignored
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // the rune typed, for rune bindings
}
