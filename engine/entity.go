package engine

import (
	"time"

	"github.com/lixenwraith/star-defense/physics"
	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/spawn"
)

// Projectile is a player shot or missile
type Projectile struct {
	physics.Body
	Mult    float64 // damage multiplier on the player's Damage
	Pierce  int
	Bounce  int
	Homing  bool
	Missile bool
	hits    []pool.Handle
}

func (p *Projectile) struck(h pool.Handle) bool {
	for _, x := range p.hits {
		if x == h {
			return true
		}
	}
	return false
}

// Enemy is a drone chasing the ship
type Enemy struct {
	spawn.Enemy
	physics.Body
	Slow     float64 // speed multiplier, 1 when unslowed
	Rotation float64
	Flash    time.Duration // hit tint remaining
	bladeCD  time.Duration
}

// Drop is an energy pickup
type Drop struct {
	physics.Body
	God   bool
	Phase float64 // bob animation
}
