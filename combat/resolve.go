// Package combat resolves projectile hits, kills, procs and contact damage
package combat

import (
	"math"

	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/spawn"
	"github.com/lixenwraith/star-defense/stat"
	"github.com/lixenwraith/star-defense/vmath"
)

// Params are the fixed combat constants; DefaultParams mirrors the parameter package
type Params struct {
	ExecuteMultiplier float64
	DropChance        float64
	LeechHeal         float64
	ContactDamage     float64
	ContactFloor      float64
}

func DefaultParams() Params {
	return Params{
		ExecuteMultiplier: parameter.CombatExecuteMultiplier,
		DropChance:        parameter.CombatDropChance,
		LeechHeal:         parameter.CombatLeechHeal,
		ContactDamage:     parameter.CombatContactDamage,
		ContactFloor:      parameter.CombatContactDamageFloor,
	}
}

// HitResult reports one resolved hit
type HitResult struct {
	Damage     float64
	Crit       bool
	Execute    bool
	Died       bool
	ScoreDelta int
	Drop       bool    // enemy left an energy drop
	HPDelta    float64 // hp restored to the player by leech
	Chain      bool    // chain lightning proc rolled
}

// PlayerHitResult reports one resolved enemy contact
type PlayerHitResult struct {
	Dodged bool
	Damage float64
	Died   bool
}

// Resolver owns the combat random source
type Resolver struct {
	params Params
	rng    *vmath.FastRand
}

func NewResolver(params Params, rng *vmath.FastRand) *Resolver {
	return &Resolver{params: params, rng: rng}
}

func (r *Resolver) Params() Params {
	return r.params
}

// ResolveHit applies st.Damage × mult to the enemy
// Multiplier order is fixed: crit first, then execute; execute is judged on hp before the hit
// Leech heals st directly (clamped) and reports the applied delta
// A hit on an already dead enemy resolves to the zero result
func (r *Resolver) ResolveHit(st *stat.Record, e *spawn.Enemy, mult float64) HitResult {
	var res HitResult
	if e.HP <= 0 {
		return res
	}

	dmg := st.Damage * mult
	if r.rng.Chance(st.CritChance) {
		dmg *= st.CritDamage
		res.Crit = true
	}
	if e.HP < e.MaxHP*st.ExecuteThreshold {
		dmg *= r.params.ExecuteMultiplier
		res.Execute = true
	}

	res.Damage = dmg
	e.HP -= dmg
	res.Chain = r.rng.Chance(st.ChainChance)

	if e.HP <= 0 {
		res.Died = true
		res.ScoreDelta = e.ScoreValue
		res.Drop = r.rng.Chance(r.params.DropChance)
		if r.rng.Chance(st.LeechChance) {
			res.HPDelta = st.Heal(r.params.LeechHeal)
		}
	}
	return res
}

// ResolvePlayerHit applies one enemy contact to the player
// Armor reduces the loss but never below the floor; the hull clamps at zero
func (r *Resolver) ResolvePlayerHit(st *stat.Record) PlayerHitResult {
	if r.rng.Chance(st.Dodge) {
		return PlayerHitResult{Dodged: true}
	}
	dmg := math.Max(r.params.ContactDamage-st.Armor, r.params.ContactFloor)
	st.Heal(-dmg)
	return PlayerHitResult{Damage: dmg, Died: !st.Alive()}
}

// Thorns applies reflected contact damage to an enemy, bypassing crit and execute
func (r *Resolver) Thorns(st *stat.Record, e *spawn.Enemy) HitResult {
	var res HitResult
	if st.Thorns <= 0 || e.HP <= 0 {
		return res
	}
	res.Damage = st.Thorns
	e.HP -= st.Thorns
	if e.HP <= 0 {
		res.Died = true
		res.ScoreDelta = e.ScoreValue
		res.Drop = r.rng.Chance(r.params.DropChance)
	}
	return res
}
