package stat

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/star-defense/parameter"
)

// ErrUnknownField is returned for a Field outside the defined set
var ErrUnknownField = errors.New("unknown stat field")

// Field addresses one attribute of Record for declarative modifiers
type Field int

const (
	FieldHP Field = iota
	FieldMaxHP
	FieldDamage
	FieldFireInterval // seconds
	FieldProjectileCount
	FieldProjectileScale
	FieldSpread
	FieldPierce
	FieldBounce
	FieldCritChance
	FieldCritDamage
	FieldMoveSpeed
	FieldRegen
	FieldDodge
	FieldArmor
	FieldPickupRange
	FieldExecuteThreshold
	FieldChainChance
	FieldLeechChance
	FieldThorns
	FieldSlowOnHit
	FieldSideGuns
	FieldRearGuns
	FieldMissiles
	FieldOrbitals
	FieldHoming
	FieldRepel
	FieldNova
	FieldDeathBomb

	fieldCount
)

var fieldNames = [fieldCount]string{
	"hp", "max_hp", "damage", "fire_interval", "projectile_count", "projectile_scale",
	"spread", "pierce", "bounce", "crit_chance", "crit_damage", "move_speed", "regen",
	"dodge", "armor", "pickup_range", "execute_threshold", "chain_chance", "leech_chance",
	"thorns", "slow_on_hit", "side_guns", "rear_guns", "missiles", "orbitals", "homing",
	"repel", "nova", "death_bomb",
}

func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Get reads a field as float64; booleans read as 0 or 1
func (r *Record) Get(f Field) (float64, error) {
	switch f {
	case FieldHP:
		return r.HP, nil
	case FieldMaxHP:
		return r.MaxHP, nil
	case FieldDamage:
		return r.Damage, nil
	case FieldFireInterval:
		return r.FireInterval.Seconds(), nil
	case FieldProjectileCount:
		return float64(r.ProjectileCount), nil
	case FieldProjectileScale:
		return r.ProjectileScale, nil
	case FieldSpread:
		return r.Spread, nil
	case FieldPierce:
		return float64(r.Pierce), nil
	case FieldBounce:
		return float64(r.Bounce), nil
	case FieldCritChance:
		return r.CritChance, nil
	case FieldCritDamage:
		return r.CritDamage, nil
	case FieldMoveSpeed:
		return r.MoveSpeed, nil
	case FieldRegen:
		return r.Regen, nil
	case FieldDodge:
		return r.Dodge, nil
	case FieldArmor:
		return r.Armor, nil
	case FieldPickupRange:
		return r.PickupRange, nil
	case FieldExecuteThreshold:
		return r.ExecuteThreshold, nil
	case FieldChainChance:
		return r.ChainChance, nil
	case FieldLeechChance:
		return r.LeechChance, nil
	case FieldThorns:
		return r.Thorns, nil
	case FieldSlowOnHit:
		return r.SlowOnHit, nil
	case FieldSideGuns:
		return boolValue(r.SideGuns), nil
	case FieldRearGuns:
		return boolValue(r.RearGuns), nil
	case FieldMissiles:
		return float64(r.Missiles), nil
	case FieldOrbitals:
		return float64(r.Orbitals), nil
	case FieldHoming:
		return boolValue(r.Homing), nil
	case FieldRepel:
		return boolValue(r.Repel), nil
	case FieldNova:
		return boolValue(r.Nova), nil
	case FieldDeathBomb:
		return boolValue(r.DeathBomb), nil
	}
	return 0, fmt.Errorf("get %v: %w", f, ErrUnknownField)
}

// Set writes a field, normalizing to the field's domain:
// counts round and floor at their minimum, probabilities clamp to [0,1],
// fire interval floors at PlayerMinFireInterval, hp clamps to [0, MaxHP]
func (r *Record) Set(f Field, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("set %v: non-finite value %v", f, v)
	}
	switch f {
	case FieldHP:
		r.HP = v
	case FieldMaxHP:
		r.MaxHP = math.Max(1, v)
	case FieldDamage:
		r.Damage = math.Max(0, v)
	case FieldFireInterval:
		d := time.Duration(v * float64(time.Second))
		if d < parameter.PlayerMinFireInterval {
			d = parameter.PlayerMinFireInterval
		}
		r.FireInterval = d
	case FieldProjectileCount:
		r.ProjectileCount = clampInt(v, 1, parameter.PlayerMaxProjectileCount)
	case FieldProjectileScale:
		r.ProjectileScale = math.Max(0.1, v)
	case FieldSpread:
		r.Spread = math.Max(0, v)
	case FieldPierce:
		r.Pierce = clampInt(v, 0, math.MaxInt32)
	case FieldBounce:
		r.Bounce = clampInt(v, 0, math.MaxInt32)
	case FieldCritChance:
		r.CritChance = probability(v)
	case FieldCritDamage:
		r.CritDamage = math.Max(1, v)
	case FieldMoveSpeed:
		r.MoveSpeed = math.Max(0.1, v)
	case FieldRegen:
		r.Regen = v
	case FieldDodge:
		r.Dodge = probability(v)
	case FieldArmor:
		r.Armor = math.Max(0, v)
	case FieldPickupRange:
		r.PickupRange = math.Max(0, v)
	case FieldExecuteThreshold:
		r.ExecuteThreshold = probability(v)
	case FieldChainChance:
		r.ChainChance = probability(v)
	case FieldLeechChance:
		r.LeechChance = probability(v)
	case FieldThorns:
		r.Thorns = math.Max(0, v)
	case FieldSlowOnHit:
		r.SlowOnHit = probability(v)
	case FieldSideGuns:
		r.SideGuns = v != 0
	case FieldRearGuns:
		r.RearGuns = v != 0
	case FieldMissiles:
		r.Missiles = clampInt(v, 0, math.MaxInt32)
	case FieldOrbitals:
		r.Orbitals = clampInt(v, 0, math.MaxInt32)
	case FieldHoming:
		r.Homing = v != 0
	case FieldRepel:
		r.Repel = v != 0
	case FieldNova:
		r.Nova = v != 0
	case FieldDeathBomb:
		r.DeathBomb = v != 0
	default:
		return fmt.Errorf("set %v: %w", f, ErrUnknownField)
	}
	r.clampHP()
	return nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func probability(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func clampInt(v float64, lo, hi int) int {
	n := int(math.Round(v))
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
