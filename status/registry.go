// Package status is the run's metric registry
// Owners cache counter pointers at construction and bump them from the tick
package status

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Metric keys
const (
	CombatKills       = "combat.kills"
	CombatCrits       = "combat.crits"
	CombatShots       = "combat.shots"
	LootDrops         = "loot.drops"
	LootCollects      = "loot.collects"
	ProgressionLevels = "progression.levels"
	ProgressionEnergy = "progression.energy"
	RunElapsedSeconds = "run.elapsed"
	RunDifficulty     = "run.difficulty"
	PoolProjectiles   = "pool.projectiles"
	PoolEnemies       = "pool.enemies"
	PoolDrops         = "pool.drops"
	PoolExhausted     = "pool.exhausted"
)

// Registry groups integer counters and float gauges
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Reset zeroes every registered metric; cached pointers stay valid
func (r *Registry) Reset() {
	r.Ints.Range(func(_ string, p *atomic.Int64) { p.Store(0) })
	r.Floats.Range(func(_ string, p *AtomicFloat) { p.Store(0) })
}

// MarshalZerologObject writes every metric as a field
func (r *Registry) MarshalZerologObject(e *zerolog.Event) {
	r.Ints.Range(func(k string, p *atomic.Int64) { e.Int64(k, p.Load()) })
	r.Floats.Range(func(k string, p *AtomicFloat) { e.Float64(k, p.Load()) })
}
