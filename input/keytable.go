package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a key's behaviour in one mode
type KeyEntry struct {
	Intent IntentType
	DX, DY int
	Delta  int
}

// KeyTable maps keys to behaviours for all modes
type KeyTable struct {
	// Keys honoured in every mode
	SystemKeys map[tcell.Key]KeyEntry

	// Title and game over
	MenuKeys map[tcell.Key]KeyEntry

	// Playing and paused
	PlayKeys  map[tcell.Key]KeyEntry
	PlayRunes map[rune]KeyEntry

	// Upgrade modal; digits are handled by the machine
	SelectKeys map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	nudge := func(dx, dy int) KeyEntry { return KeyEntry{Intent: IntentNudge, DX: dx, DY: dy} }
	move := func(d int) KeyEntry { return KeyEntry{Intent: IntentSelectMove, Delta: d} }

	return &KeyTable{
		SystemKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
		},
		MenuKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter: {Intent: IntentStart},
		},
		PlayKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:    nudge(0, -1),
			tcell.KeyDown:  nudge(0, 1),
			tcell.KeyLeft:  nudge(-1, 0),
			tcell.KeyRight: nudge(1, 0),
		},
		PlayRunes: map[rune]KeyEntry{
			'w': nudge(0, -1),
			's': nudge(0, 1),
			'a': nudge(-1, 0),
			'd': nudge(1, 0),
			'W': nudge(0, -1),
			'S': nudge(0, 1),
			'A': nudge(-1, 0),
			'D': nudge(1, 0),
			'p': {Intent: IntentPause},
			'P': {Intent: IntentPause},
		},
		SelectKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:  move(-1),
			tcell.KeyUp:    move(-1),
			tcell.KeyRight: move(1),
			tcell.KeyDown:  move(1),
			tcell.KeyTab:   move(1),
			tcell.KeyEnter: {Intent: IntentChoose},
		},
	}
}
