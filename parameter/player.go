package parameter

import "time"

// Base ship loadout at run start
const (
	// PlayerBaseHP is starting and maximum hull points
	PlayerBaseHP = 100.0

	// PlayerBaseDamage is damage per projectile before upgrades
	PlayerBaseDamage = 15.0

	// PlayerBaseFireInterval is the delay between auto-fire volleys
	PlayerBaseFireInterval = 250 * time.Millisecond

	// PlayerMinFireInterval caps fire-rate upgrades
	PlayerMinFireInterval = 40 * time.Millisecond

	// PlayerBaseCritDamage is the crit multiplier before upgrades
	PlayerBaseCritDamage = 2.0

	// PlayerBasePickupRange is the drop magnet radius (world units)
	PlayerBasePickupRange = 60.0

	// PlayerBaseSpreadFloat is the angle between projectiles in one volley (radians)
	PlayerBaseSpreadFloat = 0.15

	// PlayerMaxProjectileCount caps multishot upgrades
	PlayerMaxProjectileCount = 9
)

// Ship movement
const (
	// PlayerMoveSpeedFloat is ship speed toward the steering target (units/sec)
	PlayerMoveSpeedFloat = 450.0

	// PlayerArriveRadiusFloat stops the ship when this close to its target
	PlayerArriveRadiusFloat = 15.0

	// PlayerRadiusFloat is ship collision radius
	PlayerRadiusFloat = 20.0

	// PlayerTurnRateFloat is heading change per frame toward velocity (radians)
	PlayerTurnRateFloat = 0.1
)
