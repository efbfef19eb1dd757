package parameter

import "time"

// Pool capacities
const (
	ProjectilePoolSize = 300
	EnemyPoolSize      = 200
	DropPoolSize       = 100
)

// Projectiles
const (
	// ProjectileSpeedFloat is projectile velocity (units/sec)
	ProjectileSpeedFloat = 900.0

	// ProjectileRadiusFloat is collision radius at scale 1
	ProjectileRadiusFloat = 6.0

	// HomingTurnRateFloat is maximum steering per second for homing projectiles (radians)
	HomingTurnRateFloat = 6.0
)

// Drops
const (
	// DropRadiusFloat is drop collision radius
	DropRadiusFloat = 12.0

	// DropMagnetSpeedFloat is drop velocity toward the ship inside pickup range
	DropMagnetSpeedFloat = 400.0
)

// Logical play field, mapped onto terminal cells by the renderer
const (
	// CellWidthFloat, CellHeightFloat are world units per terminal cell
	CellWidthFloat  = 10.0
	CellHeightFloat = 20.0

	// HUDRows is the number of terminal rows reserved for the HUD
	HUDRows = 2
)

// Loop timing
const (
	// FrameInterval is the render/update cadence
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps a single update after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// EventQueueSize must be a power of two
	EventQueueSize = 256

	// EventBufferMask indexes the ring buffer
	EventBufferMask = EventQueueSize - 1
)
