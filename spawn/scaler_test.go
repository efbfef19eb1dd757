package spawn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/vmath"
)

func TestDifficultyRamp(t *testing.T) {
	s := NewScaler(Config{}, vmath.NewFastRand(1))
	assert.Equal(t, 1.0, s.Difficulty(0))
	assert.Equal(t, 2.0, s.Difficulty(45*time.Second))
	assert.Equal(t, 1.0, s.Difficulty(-time.Second))

	fast := NewScaler(Config{RampSeconds: 22.5}, vmath.NewFastRand(1))
	assert.Equal(t, 3.0, fast.Difficulty(45*time.Second))
}

func TestNextEnemyBounds(t *testing.T) {
	s := NewScaler(Config{}, vmath.NewFastRand(5))
	for i := 0; i < 5000; i++ {
		e := s.NextEnemy(0)
		assert.GreaterOrEqual(t, e.HP, parameter.EnemyBaseHP*0.8)
		assert.Less(t, e.HP, parameter.EnemyBaseHP*1.3)
		assert.Equal(t, e.HP, e.MaxHP)
		assert.GreaterOrEqual(t, e.Speed, 53.0)
		assert.LessOrEqual(t, e.Speed, 103.0)
		assert.Equal(t, 10, e.ScoreValue)
	}

	e := s.NextEnemy(45 * time.Second)
	assert.InDelta(t, parameter.EnemyBaseHP*2*e.Scale, e.HP, 1e-9)
	assert.Equal(t, 20, e.ScoreValue)
}

func TestHPGrowsWithTime(t *testing.T) {
	mean := func(elapsed time.Duration) float64 {
		s := NewScaler(Config{}, vmath.NewFastRand(11))
		total := 0.0
		for i := 0; i < 2000; i++ {
			total += s.NextEnemy(elapsed).HP
		}
		return total / 2000
	}
	prev := 0.0
	for _, sec := range []int{0, 30, 60, 120, 300} {
		m := mean(time.Duration(sec) * time.Second)
		assert.Greater(t, m, prev, "mean hp at %ds", sec)
		prev = m
	}
}

func TestSpawnPointAlwaysOutsideVisible(t *testing.T) {
	visible := vmath.NewRect(0, 0, 800, 600)
	s := NewScaler(Config{}, vmath.NewFastRand(99))
	edges := map[string]int{}
	for i := 0; i < 10000; i++ {
		p := s.SpawnPoint(visible)
		assert.False(t, visible.Contains(p), "spawn %v inside visible area", p)
		assert.True(t, p.X >= -50 && p.X <= 850 && p.Y >= -50 && p.Y <= 650, "spawn %v beyond ring", p)
		switch {
		case p.Y == -50:
			edges["top"]++
		case p.Y == 650:
			edges["bottom"]++
		case p.X == -50:
			edges["left"]++
		case p.X == 850:
			edges["right"]++
		}
	}
	assert.Len(t, edges, 4, "every edge is used")
}
