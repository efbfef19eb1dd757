package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/vmath"
)

func candidates(n int, positions ...vmath.Vec2) []Candidate {
	a := pool.NewArena[struct{}](n)
	out := make([]Candidate, 0, len(positions))
	for _, p := range positions {
		h, _, _ := a.Acquire()
		out = append(out, Candidate{Handle: h, Pos: p})
	}
	return out
}

func TestChainPathNearestFirst(t *testing.T) {
	c := candidates(5,
		vmath.Vec2{X: 0, Y: 0},
		vmath.Vec2{X: 100, Y: 0},
		vmath.Vec2{X: 40, Y: 0},
		vmath.Vec2{X: 500, Y: 0},
	)
	path := ChainPath(c[0], c, 150, 3)
	require.Len(t, path, 2, "the far candidate is out of range")
	assert.Equal(t, c[2].Handle, path[0].Handle)
	assert.Equal(t, c[1].Handle, path[1].Handle)
}

func TestChainPathTwoEnemiesTerminates(t *testing.T) {
	c := candidates(2, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 10, Y: 0})
	path := ChainPath(c[0], c, 150, 3)
	require.Len(t, path, 1, "chain never bounces back to a visited target")
	assert.Equal(t, c[1].Handle, path[0].Handle)
}

func TestChainPathJumpBudget(t *testing.T) {
	var pos []vmath.Vec2
	for i := 0; i < 20; i++ {
		pos = append(pos, vmath.Vec2{X: float64(i * 10)})
	}
	c := candidates(20, pos...)
	assert.Len(t, ChainPath(c[0], c, 150, 3), 3)
	assert.Empty(t, ChainPath(c[0], c, 150, 0))
}

func TestChainDamageFactor(t *testing.T) {
	assert.InDelta(t, 0.6, ChainDamageFactor(0.6, 0), 1e-12)
	assert.InDelta(t, 0.36, ChainDamageFactor(0.6, 1), 1e-12)
}

func TestInRadius(t *testing.T) {
	c := candidates(4, vmath.Vec2{}, vmath.Vec2{X: 50}, vmath.Vec2{X: 0, Y: 89}, vmath.Vec2{X: 91})
	got := InRadius(vmath.Vec2{}, c[0].Handle, c, 90)
	require.Len(t, got, 2)
	assert.Equal(t, c[1].Handle, got[0].Handle)
	assert.Equal(t, c[2].Handle, got[1].Handle)
}

func TestBlastExcludesOrigin(t *testing.T) {
	c := candidates(3, vmath.Vec2{}, vmath.Vec2{X: 30}, vmath.Vec2{X: 1000})
	got := Blast(c[0], c)
	require.Len(t, got, 1)
	assert.Equal(t, c[1].Handle, got[0].Handle)
}

func TestChainDefaults(t *testing.T) {
	c := candidates(3, vmath.Vec2{}, vmath.Vec2{X: 100}, vmath.Vec2{X: 200})
	assert.Len(t, Chain(c[0], c), 2)
}
