package stat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-defense/parameter"
)

func TestDefault(t *testing.T) {
	r := Default()
	assert.Equal(t, parameter.PlayerBaseHP, r.HP)
	assert.Equal(t, r.MaxHP, r.HP)
	assert.Equal(t, 1, r.ProjectileCount)
	assert.Zero(t, r.CritChance)
	assert.False(t, r.DeathBomb)
}

func TestGetSetRoundTripAllFields(t *testing.T) {
	for f := Field(0); f < fieldCount; f++ {
		r := Default()
		before, err := r.Get(f)
		require.NoError(t, err, f.String())
		require.NoError(t, r.Set(f, before), f.String())
		after, err := r.Get(f)
		require.NoError(t, err)
		assert.InDelta(t, before, after, 1e-9, "field %s changed on identity set", f)
	}
}

func TestSetNormalizes(t *testing.T) {
	r := Default()

	require.NoError(t, r.Set(FieldCritChance, 1.7))
	assert.Equal(t, 1.0, r.CritChance)

	require.NoError(t, r.Set(FieldProjectileCount, 40))
	assert.Equal(t, parameter.PlayerMaxProjectileCount, r.ProjectileCount)

	require.NoError(t, r.Set(FieldFireInterval, 0.001))
	assert.Equal(t, parameter.PlayerMinFireInterval, r.FireInterval)

	require.NoError(t, r.Set(FieldFireInterval, 0.5))
	assert.Equal(t, 500*time.Millisecond, r.FireInterval)

	require.NoError(t, r.Set(FieldMaxHP, 50))
	assert.Equal(t, 50.0, r.HP, "hp clamps down to a reduced max")

	require.NoError(t, r.Set(FieldHoming, 1))
	assert.True(t, r.Homing)
}

func TestSetRejects(t *testing.T) {
	r := Default()
	assert.ErrorIs(t, r.Set(Field(999), 1), ErrUnknownField)
	_, err := r.Get(Field(-1))
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Error(t, r.Set(FieldDamage, nan()))
}

func TestHealClamps(t *testing.T) {
	r := Default()
	r.HP = 90
	assert.Equal(t, 10.0, r.Heal(25))
	assert.Equal(t, r.MaxHP, r.HP)

	assert.Equal(t, -100.0, r.Heal(-500))
	assert.Zero(t, r.HP)
	assert.False(t, r.Alive())
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}
