// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps unmodified runes to actions.
type RuneKeymap map[rune]Action

// ModKeymap maps a modifier combination to its key bindings.
type ModKeymap map[tcell.ModMask]Keymap

// Processor translates tcell key events into ActionEvents.
type Processor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewProcessor creates a processor with the default bindings: a plain 'q'
// quits and nothing else is bound.
func NewProcessor() *Processor {
	p := &Processor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.BindRune('q', ActionQuit)
	return p
}

// BindKey binds a special key pressed with exactly mod.
func (p *Processor) BindKey(key tcell.Key, mod tcell.ModMask, action Action) {
	if mod == tcell.ModNone {
		p.keymap[key] = action
		return
	}
	if p.modKeymap[mod] == nil {
		p.modKeymap[mod] = make(Keymap)
	}
	p.modKeymap[mod][key] = action
}

// BindRune binds a rune typed without modifiers.
func (p *Processor) BindRune(r rune, action Action) {
	p.runeKeymap[r] = action
}

// Process returns the action bound to ev, or ActionUnknown.
func (p *Processor) Process(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if key == tcell.KeyRune {
		// Runes only match when typed plain: Alt+q is not q.
		if mod != tcell.ModNone {
			return ActionEvent{Action: ActionUnknown, Rune: ev.Rune()}
		}
		if action, ok := p.runeKeymap[ev.Rune()]; ok {
			return ActionEvent{Action: action, Rune: ev.Rune()}
		}
		return ActionEvent{Action: ActionUnknown, Rune: ev.Rune()}
	}

	if mod == tcell.ModNone {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}
	if action, ok := p.modKeymap[mod][key]; ok {
		return ActionEvent{Action: action}
	}
	return ActionEvent{Action: ActionUnknown}
}
