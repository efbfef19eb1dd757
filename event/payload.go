package event

import (
	"time"

	"github.com/lixenwraith/star-defense/vmath"
)

// ExplosionPayload describes a particle burst
type ExplosionPayload struct {
	Pos      vmath.Vec2
	Radius   float64
	Gold     bool // god drop wipe
	Duration time.Duration
}

// LightningPayload is the ordered path of a chain arc
type LightningPayload struct {
	Points []vmath.Vec2
}

// PulsePayload is an expanding ring
type PulsePayload struct {
	Center vmath.Vec2
	Radius float64
}

// ShakePayload is screen shake strength in cells
type ShakePayload struct {
	Duration  time.Duration
	Intensity float64
}

// FlashColor selects the flash tint
type FlashColor int

const (
	FlashRed FlashColor = iota
	FlashWhite
)

// FlashPayload tints the field for Duration
type FlashPayload struct {
	Color    FlashColor
	Duration time.Duration
}
