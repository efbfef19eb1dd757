// Package spawn derives enemy stats and spawn points from survival time
package spawn

import (
	"math"
	"time"

	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/vmath"
)

// Enemy is the stat block of one spawned enemy
type Enemy struct {
	HP         float64
	MaxHP      float64
	Speed      float64
	ScoreValue int
	Scale      float64
}

// Config tunes the difficulty ramp; zero fields take parameter defaults
type Config struct {
	RampSeconds float64
	BaseHP      float64
	Margin      float64
}

// Scaler produces enemies and spawn points
type Scaler struct {
	cfg Config
	rng *vmath.FastRand
}

func NewScaler(cfg Config, rng *vmath.FastRand) *Scaler {
	if cfg.RampSeconds <= 0 {
		cfg.RampSeconds = parameter.DifficultyRampSeconds
	}
	if cfg.BaseHP <= 0 {
		cfg.BaseHP = parameter.EnemyBaseHP
	}
	if cfg.Margin <= 0 {
		cfg.Margin = parameter.EnemySpawnMarginFloat
	}
	return &Scaler{cfg: cfg, rng: rng}
}

// Difficulty is 1 + elapsed/ramp, monotonic in elapsed
func (s *Scaler) Difficulty(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1 + elapsed.Seconds()/s.cfg.RampSeconds
}

// NextEnemy rolls one enemy for the given survival time
func (s *Scaler) NextEnemy(elapsed time.Duration) Enemy {
	d := s.Difficulty(elapsed)
	scale := s.rng.Range(parameter.EnemyScaleMinFloat, parameter.EnemyScaleMaxFloat)
	hp := s.cfg.BaseHP * d * scale
	return Enemy{
		HP:         hp,
		MaxHP:      hp,
		Speed:      float64(s.rng.IntRange(parameter.EnemySpeedMin, parameter.EnemySpeedMax)) + d*parameter.EnemySpeedPerDifficulty,
		ScoreValue: int(math.Floor(parameter.EnemyScorePerDifficulty * d)),
		Scale:      scale,
	}
}

// Edge of the visible area an enemy enters from
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnPoint returns a point on the ring Margin units outside visible
// One edge is chosen uniformly, then a uniform position along the outer rectangle's side
// The result never lies inside visible
func (s *Scaler) SpawnPoint(visible vmath.Rect) vmath.Vec2 {
	outer := visible.Expand(s.cfg.Margin)
	switch Edge(s.rng.Intn(4)) {
	case EdgeTop:
		return vmath.Vec2{X: s.rng.Range(outer.Min.X, outer.Max.X), Y: outer.Min.Y}
	case EdgeRight:
		return vmath.Vec2{X: outer.Max.X, Y: s.rng.Range(outer.Min.Y, outer.Max.Y)}
	case EdgeBottom:
		return vmath.Vec2{X: s.rng.Range(outer.Min.X, outer.Max.X), Y: outer.Max.Y}
	default:
		return vmath.Vec2{X: outer.Min.X, Y: s.rng.Range(outer.Min.Y, outer.Max.Y)}
	}
}
