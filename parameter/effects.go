package parameter

import "time"

// Screen effects requested by the game core
const (
	// KillShakeDuration, KillShakeIntensity shake the field on every kill
	KillShakeDuration  = 50 * time.Millisecond
	KillShakeIntensity = 0.5

	// HitShakeDuration, HitShakeIntensity shake the field on player contact
	HitShakeDuration  = 200 * time.Millisecond
	HitShakeIntensity = 2.0

	// GodShakeDuration, GodShakeIntensity shake the field on obliteration
	GodShakeDuration  = 2 * time.Second
	GodShakeIntensity = 2.0

	// HitFlashDuration tints the field red on player contact
	HitFlashDuration = 200 * time.Millisecond

	// GodFlashDuration tints the field white on obliteration
	GodFlashDuration = time.Second

	// ExplosionDuration is the lifetime of a death burst
	ExplosionDuration = 500 * time.Millisecond

	// GodExplosionDuration is the lifetime of an obliteration burst
	GodExplosionDuration = 400 * time.Millisecond

	// LightningDuration is the lifetime of a chain arc
	LightningDuration = 150 * time.Millisecond

	// PulseDuration is the expansion time of a nova or death bomb ring
	PulseDuration = 300 * time.Millisecond

	// ToastDuration is how long a toast message stays on screen
	ToastDuration = 3 * time.Second

	// GodDropOffsetFloat places the god drop below the top edge
	GodDropOffsetFloat = 100.0
)
