package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Lifecycle
	IntentStart // Enter on title or game over
	IntentPause // p while playing or paused

	// Steering
	IntentSteer // Mouse motion or click, X/Y screen cell
	IntentNudge // Arrows/WASD while playing, DX/DY cells

	// Upgrade modal
	IntentSelectMove // Left/Right/Up/Down, Delta
	IntentChoose     // 1-9 picks Index, Enter picks the highlight (Index -1)
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentStart:
		return "start"
	case IntentPause:
		return "pause"
	case IntentSteer:
		return "steer"
	case IntentNudge:
		return "nudge"
	case IntentSelectMove:
		return "select_move"
	case IntentChoose:
		return "choose"
	}
	return "none"
}

// ChooseHighlighted is the Index of an Enter press in the modal
const ChooseHighlighted = -1

// Intent is one interpreted input event
type Intent struct {
	Type IntentType

	X, Y   int // screen cell for IntentSteer, size for IntentResize
	DX, DY int // cell direction for IntentNudge
	Delta  int // highlight shift for IntentSelectMove
	Index  int // offer index for IntentChoose
}
