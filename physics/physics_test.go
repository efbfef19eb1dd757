package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/vmath"
)

func TestOverlap(t *testing.T) {
	a := Body{Pos: vmath.Vec2{}, Radius: 5}
	b := Body{Pos: vmath.Vec2{X: 10}, Radius: 5}
	assert.True(t, Overlap(a, b))
	b.Pos.X = 10.5
	assert.False(t, Overlap(a, b))
}

func TestArriveStopsAtRadius(t *testing.T) {
	pos := vmath.Vec2{}
	target := vmath.Vec2{X: 100}
	for i := 0; i < 100; i++ {
		pos = Arrive(pos, target, 450, 15, 0.016)
	}
	assert.InDelta(t, 85, pos.X, 1e-9)
	assert.Equal(t, pos, Arrive(pos, target, 450, 15, 0.016))
}

func TestSteerTurnsGradually(t *testing.T) {
	vel := vmath.Vec2{X: 100}
	next := Steer(vmath.Vec2{}, vel, vmath.Vec2{Y: 100}, 1, 0.1)
	assert.InDelta(t, 100, next.Len(), 1e-9)
	assert.InDelta(t, 0.1, next.Angle(), 1e-9)
}

func TestPush(t *testing.T) {
	p := Push(vmath.Vec2{X: 10}, vmath.Vec2{}, 160, 180, 0.5)
	assert.InDelta(t, 100, p.X, 1e-9)
	far := vmath.Vec2{X: 500}
	assert.Equal(t, far, Push(far, vmath.Vec2{}, 160, 180, 0.5))
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, math.Pi, WrapAngle(-math.Pi), 1e-12)
	assert.InDelta(t, 1, WrapAngle(1+2*math.Pi), 1e-12)
}

func TestGridQuery(t *testing.T) {
	a := pool.NewArena[struct{}](4)
	near, _, _ := a.Acquire()
	far, _, _ := a.Acquire()
	outside, _, _ := a.Acquire()

	g := NewGrid(vmath.NewRect(0, 0, 400, 400), 50)
	require.True(t, g.Insert(near, vmath.Vec2{X: 60, Y: 60}))
	require.True(t, g.Insert(far, vmath.Vec2{X: 390, Y: 390}))
	require.True(t, g.Insert(outside, vmath.Vec2{X: -300, Y: 10}))

	var got []pool.Handle
	g.Query(vmath.Vec2{X: 40, Y: 40}, 30, func(h pool.Handle) bool {
		got = append(got, h)
		return true
	})
	assert.Contains(t, got, near)
	assert.Contains(t, got, outside, "out-of-bounds points clamp into edge cells")
	assert.NotContains(t, got, far)

	g.Clear()
	got = got[:0]
	g.Query(vmath.Vec2{X: 40, Y: 40}, 400, func(h pool.Handle) bool {
		got = append(got, h)
		return true
	})
	assert.Empty(t, got)
}

func TestGridCellCapacity(t *testing.T) {
	a := pool.NewArena[struct{}](MaxPerCell + 1)
	g := NewGrid(vmath.NewRect(0, 0, 100, 100), 100)
	for i := 0; i < MaxPerCell; i++ {
		h, _, _ := a.Acquire()
		require.True(t, g.Insert(h, vmath.Vec2{X: 1, Y: 1}))
	}
	h, _, _ := a.Acquire()
	assert.False(t, g.Insert(h, vmath.Vec2{X: 1, Y: 1}))
}
