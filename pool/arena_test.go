package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct{ hp int }

func TestAcquireUntilFull(t *testing.T) {
	a := NewArena[item](3)
	for i := 0; i < 3; i++ {
		h, v, ok := a.Acquire()
		require.True(t, ok)
		assert.False(t, h.IsNil())
		v.hp = i
	}
	_, _, ok := a.Acquire()
	assert.False(t, ok, "full arena must refuse")
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 3, a.Cap())
}

func TestReleaseIsIdempotent(t *testing.T) {
	a := NewArena[item](2)
	h, _, _ := a.Acquire()
	assert.True(t, a.Release(h))
	assert.False(t, a.Release(h), "second release is a no-op")
	assert.Equal(t, 0, a.Len())
}

func TestStaleHandleAfterReuse(t *testing.T) {
	a := NewArena[item](1)
	h1, v, _ := a.Acquire()
	v.hp = 10
	a.Release(h1)

	h2, v2, ok := a.Acquire()
	require.True(t, ok)
	assert.Equal(t, h1.Index(), h2.Index())
	assert.Zero(t, v2.hp, "reacquired slot is zeroed")

	_, ok = a.Get(h1)
	assert.False(t, ok, "old generation must not resolve")
	assert.False(t, a.Release(h1))
	assert.True(t, a.Active(h2))
}

func TestEachAllowsRelease(t *testing.T) {
	a := NewArena[item](5)
	for i := 0; i < 5; i++ {
		_, v, _ := a.Acquire()
		v.hp = i
	}
	a.Each(func(h Handle, v *item) {
		if v.hp%2 == 0 {
			a.Release(h)
		}
	})
	assert.Equal(t, 2, a.Len())

	sum := 0
	for _, h := range a.Handles() {
		v, ok := a.Get(h)
		require.True(t, ok)
		sum += v.hp
	}
	assert.Equal(t, 4, sum)
}

func TestResetInvalidatesHandles(t *testing.T) {
	a := NewArena[item](4)
	h, _, _ := a.Acquire()
	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Active(h))
	for i := 0; i < 4; i++ {
		_, _, ok := a.Acquire()
		assert.True(t, ok)
	}
}

func TestNilHandle(t *testing.T) {
	a := NewArena[item](1)
	_, ok := a.Get(Nil)
	assert.False(t, ok)
	assert.Equal(t, "Handle(nil)", Nil.String())
}
