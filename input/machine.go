// Package input interprets terminal key, mouse and resize events as game intents
package input

import "github.com/gdamore/tcell/v2"

// InputMode selects which bindings are live
type InputMode uint8

const (
	ModeMenu   InputMode = iota // title and game over
	ModePlay                    // playing and paused
	ModeSelect                  // upgrade modal
)

func (m InputMode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlay:
		return "play"
	case ModeSelect:
		return "select"
	}
	return "unknown"
}

// Machine maps raw events to intents for the current mode
type Machine struct {
	keys *KeyTable
	mode InputMode
}

func NewMachine(keys *KeyTable) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keys: keys}
}

func (m *Machine) SetMode(mode InputMode) { m.mode = mode }
func (m *Machine) Mode() InputMode        { return m.mode }

// Process returns the intent for ev, or nil when the event means nothing in this mode
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, X: w, Y: h}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if e, ok := m.keys.SystemKeys[ev.Key()]; ok {
		return entryIntent(e)
	}
	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
		return &Intent{Type: IntentQuit}
	}

	switch m.mode {
	case ModeMenu:
		if e, ok := m.keys.MenuKeys[ev.Key()]; ok {
			return entryIntent(e)
		}
	case ModePlay:
		if ev.Key() == tcell.KeyRune {
			if e, ok := m.keys.PlayRunes[ev.Rune()]; ok {
				return entryIntent(e)
			}
			return nil
		}
		if e, ok := m.keys.PlayKeys[ev.Key()]; ok {
			return entryIntent(e)
		}
	case ModeSelect:
		if ev.Key() == tcell.KeyRune {
			if r := ev.Rune(); r >= '1' && r <= '9' {
				return &Intent{Type: IntentChoose, Index: int(r - '1')}
			}
			return nil
		}
		if e, ok := m.keys.SelectKeys[ev.Key()]; ok {
			in := entryIntent(e)
			if in.Type == IntentChoose {
				in.Index = ChooseHighlighted
			}
			return in
		}
	}
	return nil
}

// processMouse steers on any motion or button while playing
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	if m.mode != ModePlay {
		return nil
	}
	if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		return nil
	}
	x, y := ev.Position()
	return &Intent{Type: IntentSteer, X: x, Y: y}
}

func entryIntent(e KeyEntry) *Intent {
	return &Intent{Type: e.Intent, DX: e.DX, DY: e.DY, Delta: e.Delta}
}
