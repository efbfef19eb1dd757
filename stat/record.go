// Package stat holds the player's per-run capability record
package stat

import (
	"time"

	"github.com/lixenwraith/star-defense/parameter"
)

// Record is the flat set of player capabilities for one run
// Mutated only through upgrade effects and run bookkeeping (hp, regen)
type Record struct {
	HP    float64
	MaxHP float64

	// Weapon
	Damage          float64
	FireInterval    time.Duration
	ProjectileCount int
	ProjectileScale float64
	Spread          float64
	Pierce          int
	Bounce          int
	CritChance      float64
	CritDamage      float64

	// Mobility and defense
	MoveSpeed   float64
	Regen       float64 // hp/sec, negative bleeds
	Dodge       float64
	Armor       float64
	PickupRange float64

	// On-hit and on-kill procs
	ExecuteThreshold float64
	ChainChance      float64
	LeechChance      float64
	Thorns           float64
	SlowOnHit        float64

	// Extra weapons
	SideGuns bool
	RearGuns bool
	Missiles int
	Orbitals int

	// Toggles
	Homing    bool
	Repel     bool
	Nova      bool
	DeathBomb bool
}

// Default returns the loadout every run starts with
func Default() Record {
	return Record{
		HP:              parameter.PlayerBaseHP,
		MaxHP:           parameter.PlayerBaseHP,
		Damage:          parameter.PlayerBaseDamage,
		FireInterval:    parameter.PlayerBaseFireInterval,
		ProjectileCount: 1,
		ProjectileScale: 1,
		Spread:          parameter.PlayerBaseSpreadFloat,
		CritDamage:      parameter.PlayerBaseCritDamage,
		MoveSpeed:       1,
		PickupRange:     parameter.PlayerBasePickupRange,
	}
}

// Heal adds amount to HP clamped to [0, MaxHP] and returns the applied delta
func (r *Record) Heal(amount float64) float64 {
	before := r.HP
	r.HP += amount
	r.clampHP()
	return r.HP - before
}

// Alive reports whether the hull is intact
func (r *Record) Alive() bool {
	return r.HP > 0
}

func (r *Record) clampHP() {
	if r.MaxHP < 1 {
		r.MaxHP = 1
	}
	if r.HP > r.MaxHP {
		r.HP = r.MaxHP
	}
	if r.HP < 0 {
		r.HP = 0
	}
}
