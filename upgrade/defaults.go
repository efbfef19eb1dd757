package upgrade

import (
	"fmt"

	"github.com/lixenwraith/star-defense/stat"
)

// tierLevel pairs a rarity with its magnitude and draw weight
type tierLevel struct {
	tier    Tier
	numeral string
	level   float64
	weight  float64
}

var statTiers = []tierLevel{
	{TierT1, "I", 1, 50},
	{TierT2, "II", 2, 30},
	{TierT3, "III", 3, 10},
}

// statFamily is a tiered numeric upgrade; effect scales with tier level
type statFamily struct {
	id     string
	name   string
	desc   string
	base   float64
	unit   string
	effect func(level float64) Effect
}

var statFamilies = []statFamily{
	{"dmg", "Firepower", "Damage", 5, "", func(l float64) Effect {
		return Effect{Add(stat.FieldDamage, 5*l)}
	}},
	{"spd", "Rapid Reload", "Fire rate", 5, "%", func(l float64) Effect {
		return Effect{Mul(stat.FieldFireInterval, 1-0.05*l)}
	}},
	{"mov", "Engine Overclock", "Move speed", 10, "%", func(l float64) Effect {
		return Effect{Add(stat.FieldMoveSpeed, 0.10*l)}
	}},
	{"hp", "Hull Plating", "Max HP", 30, "", func(l float64) Effect {
		return Effect{Add(stat.FieldMaxHP, 30*l), Add(stat.FieldHP, 30*l)}
	}},
	{"crit", "Weakpoint Scan", "Crit chance", 5, "%", func(l float64) Effect {
		return Effect{Add(stat.FieldCritChance, 0.05*l)}
	}},
	{"arm", "Nano Coating", "Armor", 2, "", func(l float64) Effect {
		return Effect{Add(stat.FieldArmor, 2*l)}
	}},
	{"reg", "Bio Repair", "HP per second", 1, "", func(l float64) Effect {
		return Effect{Add(stat.FieldRegen, 1*l)}
	}},
}

var specials = []Definition{
	// Weapons
	{ID: "w_multi", Name: "Split Barrel", Description: "Projectiles +1", Tier: TierT2, Weight: 15,
		Effect: Effect{Add(stat.FieldProjectileCount, 1)}},
	{ID: "w_multi_2", Name: "Multi Strike", Description: "Projectiles +2", Tier: TierT3, Weight: 5,
		Effect: Effect{Add(stat.FieldProjectileCount, 2)}},
	{ID: "w_side", Name: "Flank Cannons", Description: "Adds side volleys", Tier: TierT2, Weight: 15,
		Effect: Effect{Set(stat.FieldSideGuns, 1)}},
	{ID: "w_rear", Name: "Tail Gun", Description: "Adds a rear volley", Tier: TierT2, Weight: 15,
		Effect: Effect{Set(stat.FieldRearGuns, 1)}},
	{ID: "w_missile", Name: "Hydra Missiles", Description: "Periodic homing missiles", Tier: TierT3, Weight: 8,
		Effect: Effect{Add(stat.FieldMissiles, 1)}},
	{ID: "w_orbit", Name: "Orbital Blades", Description: "Adds a blade orbiting the ship", Tier: TierT2, Weight: 15,
		Effect: Effect{Add(stat.FieldOrbitals, 1)}},

	// Utility
	{ID: "u_heal", Name: "Emergency Repair", Description: "Restore full HP", Tier: TierT1, Weight: 20,
		Effect: Effect{Refill()}},
	{ID: "u_magnet", Name: "Graviton Field", Description: "Pickup range +100%", Tier: TierT1, Weight: 20,
		Effect: Effect{Mul(stat.FieldPickupRange, 2)}},

	// Effects
	{ID: "e_pierce", Name: "Phase Rounds", Description: "Pierce +1", Tier: TierT2, Weight: 15,
		Effect: Effect{Add(stat.FieldPierce, 1)}},
	{ID: "e_bounce", Name: "Ricochet Coating", Description: "Bounce +1", Tier: TierT2, Weight: 15,
		Effect: Effect{Add(stat.FieldBounce, 1)}},
	{ID: "e_size", Name: "Gravity Lens", Description: "Projectile size +25%", Tier: TierT1, Weight: 25,
		Effect: Effect{Mul(stat.FieldProjectileScale, 1.25)}},
	{ID: "e_freeze", Name: "Cryo Stasis", Description: "Hits slow enemies", Tier: TierT2, Weight: 12,
		Effect: Effect{Add(stat.FieldSlowOnHit, 0.2)}},
	{ID: "e_shock", Name: "Tesla Coil", Description: "Chance to chain lightning", Tier: TierT3, Weight: 8,
		Effect: Effect{Add(stat.FieldChainChance, 0.15)}},
	{ID: "e_nova", Name: "Static Nova", Description: "Periodic electric pulse", Tier: TierT2, Weight: 12,
		Effect: Effect{Set(stat.FieldNova, 1)}},
	{ID: "e_repel", Name: "Repulsor Field", Description: "Pushes nearby enemies away", Tier: TierT2, Weight: 12,
		Effect: Effect{Set(stat.FieldRepel, 1)}},
	{ID: "e_bomb", Name: "Corpse Detonation", Description: "Enemies explode on death", Tier: TierT3, Weight: 8,
		Effect: Effect{Set(stat.FieldDeathBomb, 1)}},
	{ID: "e_homing", Name: "Smart Guidance", Description: "Projectiles home in", Tier: TierT3, Weight: 5,
		Effect: Effect{Set(stat.FieldHoming, 1)}},
	{ID: "e_thorns", Name: "Reactive Armor", Description: "Contact reflects damage", Tier: TierT2, Weight: 15,
		Effect: Effect{Add(stat.FieldThorns, 20)}},
	{ID: "e_exec", Name: "Execute Protocol", Description: "3x damage to low-HP enemies", Tier: TierT3, Weight: 8,
		Effect: Effect{Max(stat.FieldExecuteThreshold, 0.2)}},
	{ID: "e_dodge", Name: "Phase Shift", Description: "Dodge +10%", Tier: TierT2, Weight: 12,
		Effect: Effect{Add(stat.FieldDodge, 0.10)}},
	{ID: "e_leech", Name: "Energy Siphon", Description: "Kills may restore HP", Tier: TierT3, Weight: 5,
		Effect: Effect{Add(stat.FieldLeechChance, 0.05)}},

	// Curses
	{ID: "c_glass", Name: "Glass Cannon", Description: "Damage x2, max HP halved", Tier: TierCurse, Weight: 2,
		Effect: Effect{Mul(stat.FieldDamage, 2), Mul(stat.FieldMaxHP, 0.5)}},
	{ID: "c_wild", Name: "Berserk Fire", Description: "Fire rate x2, accuracy gone", Tier: TierCurse, Weight: 2,
		Effect: Effect{Mul(stat.FieldFireInterval, 0.5), Set(stat.FieldSpread, 0.6)}},
	{ID: "c_heavy", Name: "Heavy Rounds", Description: "Damage x1.8, move speed -40%", Tier: TierCurse, Weight: 2,
		Effect: Effect{Mul(stat.FieldDamage, 1.8), Mul(stat.FieldMoveSpeed, 0.6)}},
	{ID: "c_blood", Name: "Bloodlust", Description: "Strong leech, lose 1 HP per second", Tier: TierCurse, Weight: 2,
		Effect: Effect{Add(stat.FieldLeechChance, 0.3), Add(stat.FieldRegen, -1)}},
}

// DefaultDefinitions returns the full upgrade list: tiered stat families then specials
func DefaultDefinitions() []Definition {
	defs := make([]Definition, 0, len(statFamilies)*len(statTiers)+len(specials))
	for _, f := range statFamilies {
		for _, t := range statTiers {
			defs = append(defs, Definition{
				ID:          fmt.Sprintf("%s_%d", f.id, int(t.level)),
				Name:        f.name + " " + t.numeral,
				Description: fmt.Sprintf("%s +%g%s", f.desc, f.base*t.level, f.unit),
				Tier:        t.tier,
				Weight:      t.weight,
				Effect:      f.effect(t.level),
			})
		}
	}
	return append(defs, specials...)
}

// DefaultCatalog builds the standard catalog; the definitions are static so failure is a programming error
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultDefinitions()...)
	if err != nil {
		panic(fmt.Sprintf("default upgrade catalog: %v", err))
	}
	return c
}
