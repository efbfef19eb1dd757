package parameter

import "time"

// Hit resolution
const (
	// CombatExecuteMultiplier applies when enemy hp is below the execute threshold
	CombatExecuteMultiplier = 3.0

	// CombatDropChance is the probability a killed enemy leaves an energy drop
	CombatDropChance = 0.15

	// CombatLeechHeal is hp restored by a successful leech roll
	CombatLeechHeal = 1.0
)

// Contact damage
const (
	// CombatContactDamage is hull loss from an enemy collision before armor
	CombatContactDamage = 30.0

	// CombatContactDamageFloor is the minimum hull loss armor cannot reduce below
	CombatContactDamageFloor = 10.0
)

// Chain lightning
const (
	// ChainJumpCount is the maximum number of jumps per proc
	ChainJumpCount = 3

	// ChainRadiusFloat is the maximum jump distance
	ChainRadiusFloat = 150.0

	// ChainDamageFalloff multiplies damage on each successive jump
	ChainDamageFalloff = 0.6
)

// Death bomb
const (
	// DeathBombRadiusFloat is blast radius around a dying enemy
	DeathBombRadiusFloat = 90.0

	// DeathBombDamageFactor is blast damage as a fraction of player damage
	DeathBombDamageFactor = 0.5
)

// Area effects
const (
	// RepelRadiusFloat is the repel field radius
	RepelRadiusFloat = 160.0

	// RepelSpeedFloat is the outward velocity applied inside the field
	RepelSpeedFloat = 180.0

	// NovaInterval is the delay between static nova pulses
	NovaInterval = 3 * time.Second

	// NovaRadiusFloat is the nova pulse radius
	NovaRadiusFloat = 120.0

	// NovaDamageFactor is pulse damage as a fraction of player damage
	NovaDamageFactor = 0.5

	// OrbitalRadiusFloat is blade orbit distance from the ship
	OrbitalRadiusFloat = 70.0

	// OrbitalAngularSpeedFloat is blade rotation (radians/sec)
	OrbitalAngularSpeedFloat = 3.0

	// OrbitalHitRadiusFloat is blade collision radius
	OrbitalHitRadiusFloat = 12.0

	// OrbitalDamageFactor is blade damage as a fraction of player damage
	OrbitalDamageFactor = 0.5

	// OrbitalHitCooldown is per-enemy immunity after a blade hit
	OrbitalHitCooldown = 300 * time.Millisecond

	// MissileInterval is the delay between missile salvos
	MissileInterval = 2 * time.Second

	// MissileDamageFactor is missile damage as a fraction of player damage
	MissileDamageFactor = 1.5

	// MissileSpeedFloat is missile launch velocity (units/sec)
	MissileSpeedFloat = 450.0

	// SlowMinFactor floors cumulative freeze slow on an enemy
	SlowMinFactor = 0.3
)
