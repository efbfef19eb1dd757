package engine

import (
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/physics"
	"github.com/lixenwraith/star-defense/pool"
)

// maxEnemyRadius widens grid queries so any overlapping enemy is a candidate
const maxEnemyRadius = parameter.EnemyRadiusFloat * parameter.EnemyScaleMaxFloat

// collide runs the overlap pass and delivers hits through the public entry points
// The pass stops as soon as a hit leaves the playing phase (level-up or death)
func (g *Game) collide() {
	r := g.run
	g.grid.Clear()
	overflow := g.overflow[:0]
	r.enemies.Each(func(h pool.Handle, e *Enemy) {
		if !g.grid.Insert(h, e.Pos) {
			overflow = append(overflow, h)
		}
	})
	g.overflow = overflow

	var touching []pool.Handle
	near := func(b physics.Body) []pool.Handle {
		touching = touching[:0]
		visit := func(h pool.Handle) bool {
			if e, ok := r.enemies.Get(h); ok && physics.Overlap(b, e.Body) {
				touching = append(touching, h)
			}
			return true
		}
		g.grid.Query(b.Pos, b.Radius+maxEnemyRadius, visit)
		for _, h := range g.overflow {
			visit(h)
		}
		return touching
	}

	for _, ph := range r.projectiles.Handles() {
		p, ok := r.projectiles.Get(ph)
		if !ok {
			continue
		}
		for _, eh := range near(p.Body) {
			g.HitEnemy(ph, eh)
			if !r.projectiles.Active(ph) {
				break
			}
		}
		if g.Phase() != PhasePlaying {
			return
		}
	}

	if r.stats.Orbitals > 0 {
		for _, pos := range g.Blades() {
			blade := physics.Body{Pos: pos, Radius: parameter.OrbitalHitRadiusFloat}
			for _, eh := range near(blade) {
				e, ok := r.enemies.Get(eh)
				if !ok || e.bladeCD > 0 {
					continue
				}
				e.bladeCD = parameter.OrbitalHitCooldown
				g.damageEnemy(eh, parameter.OrbitalDamageFactor, false)
			}
		}
	}

	for _, eh := range near(r.player) {
		g.HitPlayer(eh)
		if g.Phase() != PhasePlaying {
			return
		}
	}

	for _, dh := range r.drops.Handles() {
		d, ok := r.drops.Get(dh)
		if !ok || !physics.Overlap(r.player, d.Body) {
			continue
		}
		g.CollectDrop(dh)
		if g.Phase() != PhasePlaying {
			return
		}
	}
}
