package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-defense/stat"
)

func def(id string, weight float64) Definition {
	return Definition{ID: id, Tier: TierT1, Weight: weight, Effect: Effect{Add(stat.FieldDamage, 1)}}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name string
		defs []Definition
		want error
	}{
		{"empty id", []Definition{def("", 1)}, ErrEmptyID},
		{"duplicate", []Definition{def("a", 1), def("a", 2)}, ErrDuplicateID},
		{"zero weight", []Definition{def("a", 0)}, ErrInvalidWeight},
		{"negative weight", []Definition{def("a", -3)}, ErrInvalidWeight},
		{"empty effect", []Definition{{ID: "a", Weight: 1}}, ErrEmptyEffect},
		{"bad tier", []Definition{{ID: "a", Weight: 1, Tier: Tier(9), Effect: Effect{Refill()}}}, ErrInvalidTier},
		{"bad field", []Definition{{ID: "a", Weight: 1, Effect: Effect{Add(stat.Field(99), 1)}}}, stat.ErrUnknownField},
		{"bad op", []Definition{{ID: "a", Weight: 1, Effect: Effect{{Field: stat.FieldDamage, Op: Op(42)}}}}, ErrUnknownOp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.defs...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, 46, c.Len())

	d, ok := c.Lookup("dmg_2")
	require.True(t, ok)
	assert.Equal(t, TierT2, d.Tier)
	assert.Equal(t, 30.0, d.Weight)
	assert.Equal(t, "Damage +10", d.Description)

	curse, ok := c.Lookup("c_glass")
	require.True(t, ok)
	assert.Equal(t, "ANOMALY", curse.Tier.Label())

	_, ok = c.Lookup("nope")
	assert.False(t, ok)
}

func TestCatalogAllIsACopy(t *testing.T) {
	c := DefaultCatalog()
	all := c.All()
	all[0].Weight = 9999
	all[0].Effect[0].Value = 9999

	d, _ := c.Lookup(all[0].ID)
	assert.NotEqual(t, 9999.0, d.Weight)
	assert.NotEqual(t, 9999.0, d.Effect[0].Value)
}

func TestTieredEffectsScale(t *testing.T) {
	c := DefaultCatalog()
	for level, want := range map[string]float64{"dmg_1": 20, "dmg_2": 25, "dmg_3": 30} {
		rec := stat.Default()
		d, ok := c.Lookup(level)
		require.True(t, ok)
		require.NoError(t, d.Effect.Apply(&rec))
		assert.Equal(t, want, rec.Damage, level)
	}
}

func TestEffectApplySpecials(t *testing.T) {
	c := DefaultCatalog()
	apply := func(id string, rec *stat.Record) {
		d, ok := c.Lookup(id)
		require.True(t, ok, id)
		require.NoError(t, d.Effect.Apply(rec), id)
	}

	rec := stat.Default()
	rec.HP = 10
	apply("u_heal", &rec)
	assert.Equal(t, rec.MaxHP, rec.HP)

	apply("c_glass", &rec)
	assert.Equal(t, 30.0, rec.Damage)
	assert.Equal(t, 50.0, rec.MaxHP)
	assert.Equal(t, 50.0, rec.HP)

	apply("e_exec", &rec)
	apply("e_exec", &rec)
	assert.Equal(t, 0.2, rec.ExecuteThreshold, "execute does not stack")

	apply("hp_1", &rec)
	assert.Equal(t, 80.0, rec.MaxHP)
	assert.Equal(t, 80.0, rec.HP)

	apply("e_bomb", &rec)
	assert.True(t, rec.DeathBomb)
}

func TestEffectApplyIsAllOrNothing(t *testing.T) {
	rec := stat.Default()
	before := rec

	bad := Effect{Add(stat.FieldDamage, 100), Add(stat.Field(77), 1)}
	err := bad.Apply(&rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, stat.ErrUnknownField)
	assert.Equal(t, before, rec, "failed effect must not partially apply")
}
