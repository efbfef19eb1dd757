package engine

import (
	"time"

	"github.com/lixenwraith/star-defense/combat"
	"github.com/lixenwraith/star-defense/core"
	"github.com/lixenwraith/star-defense/event"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/physics"
	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/vmath"
)

const hitFlash = 50 * time.Millisecond

// HitEnemy resolves a projectile striking an enemy
// Stale handles, repeat pierce hits and calls outside play are no-ops
func (g *Game) HitEnemy(projectile, enemy pool.Handle) {
	if g.Phase() != PhasePlaying {
		return
	}
	r := g.run
	p, ok := r.projectiles.Get(projectile)
	if !ok {
		return
	}
	e, ok := r.enemies.Get(enemy)
	if !ok || p.struck(enemy) {
		return
	}
	origin := combat.Candidate{Handle: enemy, Pos: e.Pos}

	res := g.damageEnemy(enemy, p.Mult, false)
	if res.Chain {
		g.chain(origin, p.Mult)
	}

	switch {
	case p.Pierce > 0:
		p.Pierce--
		p.hits = append(p.hits, enemy)
	case p.Bounce > 0:
		p.Bounce--
		p.hits = append(p.hits, enemy)
		if _, next, ok := g.nearestEnemy(p.Pos, p.hits); ok {
			p.Vel = physics.Seek(p.Pos, next, p.Vel.Len())
		} else {
			r.projectiles.Release(projectile)
		}
	default:
		r.projectiles.Release(projectile)
	}
}

// HitPlayer resolves an enemy touching the ship; the enemy is always consumed
func (g *Game) HitPlayer(enemy pool.Handle) {
	if g.Phase() != PhasePlaying {
		return
	}
	r := g.run
	e, ok := r.enemies.Get(enemy)
	if !ok {
		return
	}

	res := r.resolver.ResolvePlayerHit(&r.stats)
	if th := r.resolver.Thorns(&r.stats, &e.Enemy); th.Died {
		g.kill(enemy, th.ScoreDelta, th.Drop, false)
	} else {
		g.emit(event.EventExplosionRequest, &event.ExplosionPayload{Pos: e.Pos, Radius: e.Radius, Duration: parameter.ExplosionDuration})
		r.enemies.Release(enemy)
	}

	if res.Dodged {
		r.log.Debug().Msg("contact dodged")
		return
	}
	g.emit(event.EventSoundRequest, core.SoundHurt)
	g.emit(event.EventShakeRequest, &event.ShakePayload{Duration: parameter.HitShakeDuration, Intensity: parameter.HitShakeIntensity})
	g.emit(event.EventFlashRequest, &event.FlashPayload{Color: event.FlashRed, Duration: parameter.HitFlashDuration})
	if res.Died {
		g.gameOver()
	}
}

// CollectDrop resolves the ship picking up a drop
func (g *Game) CollectDrop(drop pool.Handle) {
	if g.Phase() != PhasePlaying {
		return
	}
	r := g.run
	d, ok := r.drops.Get(drop)
	if !ok {
		return
	}
	god := d.God
	r.drops.Release(drop)

	if god {
		g.obliterate()
		return
	}
	g.collects.Add(1)
	g.emit(event.EventSoundRequest, core.SoundCollect)
	if r.progress.Collect() {
		r.clock.Pause()
	}
}

// damageEnemy resolves one hit of mult × Damage; secondary marks death-bomb damage
func (g *Game) damageEnemy(h pool.Handle, mult float64, secondary bool) combat.HitResult {
	r := g.run
	e, ok := r.enemies.Get(h)
	if !ok {
		return combat.HitResult{}
	}
	res := r.resolver.ResolveHit(&r.stats, &e.Enemy, mult)
	if res.Damage == 0 {
		return res
	}
	if res.Crit {
		g.crits.Add(1)
	}
	e.Flash = hitFlash
	if s := r.stats.SlowOnHit; s > 0 {
		e.Slow = max(e.Slow*(1-s), parameter.SlowMinFactor)
	}
	if res.Died {
		g.kill(h, res.ScoreDelta, res.Drop, secondary)
	} else {
		g.emit(event.EventSoundRequest, core.SoundHit)
	}
	return res
}

// kill removes a dead enemy and settles score, drop and death bomb
// Bomb victims are secondary and never detonate in turn
func (g *Game) kill(h pool.Handle, score int, drop, secondary bool) {
	r := g.run
	e, ok := r.enemies.Get(h)
	if !ok {
		return
	}
	pos, radius := e.Pos, e.Radius
	r.enemies.Release(h)

	r.score += score
	g.kills.Add(1)
	g.emit(event.EventSoundRequest, core.SoundExplode)
	g.emit(event.EventExplosionRequest, &event.ExplosionPayload{Pos: pos, Radius: radius, Duration: parameter.ExplosionDuration})
	g.emit(event.EventShakeRequest, &event.ShakePayload{Duration: parameter.KillShakeDuration, Intensity: parameter.KillShakeIntensity})
	if drop {
		g.spawnDrop(pos, false)
	}

	if r.stats.DeathBomb && !secondary {
		g.emit(event.EventPulseRequest, &event.PulsePayload{Center: pos, Radius: parameter.DeathBombRadiusFloat})
		for _, c := range g.enemiesWithin(pos, parameter.DeathBombRadiusFloat) {
			g.damageEnemy(c.Handle, parameter.DeathBombDamageFactor, true)
		}
	}
}

// chain arcs lightning from a struck enemy; arc hits never proc another chain
func (g *Game) chain(origin combat.Candidate, mult float64) {
	path := combat.Chain(origin, g.candidates())
	if len(path) == 0 {
		return
	}
	points := make([]vmath.Vec2, 0, len(path)+1)
	points = append(points, origin.Pos)
	for i, c := range path {
		points = append(points, c.Pos)
		g.damageEnemy(c.Handle, mult*combat.ChainDamageFactor(parameter.ChainDamageFalloff, i), false)
	}
	g.emit(event.EventLightningRequest, &event.LightningPayload{Points: points})
}

// obliterate is the god drop: every active enemy dies for double score
func (g *Game) obliterate() {
	r := g.run
	wiped := 0
	for _, h := range r.enemies.Handles() {
		e, ok := r.enemies.Get(h)
		if !ok {
			continue
		}
		r.score += e.ScoreValue * parameter.GodScoreMultiplier
		g.emit(event.EventExplosionRequest, &event.ExplosionPayload{Pos: e.Pos, Radius: e.Radius, Gold: true, Duration: parameter.GodExplosionDuration})
		r.enemies.Release(h)
		wiped++
	}
	g.kills.Add(int64(wiped))
	g.emit(event.EventSoundRequest, core.SoundGod)
	g.emit(event.EventFlashRequest, &event.FlashPayload{Color: event.FlashWhite, Duration: parameter.GodFlashDuration})
	g.emit(event.EventShakeRequest, &event.ShakePayload{Duration: parameter.GodShakeDuration, Intensity: parameter.GodShakeIntensity})
	r.log.Info().Int("wiped", wiped).Int("score", r.score).Msg("obliteration")
	g.notifier.Toast("SYSTEM OVERLOAD: OBLITERATION")
}

// candidates snapshots active enemies for area effects
func (g *Game) candidates() []combat.Candidate {
	out := make([]combat.Candidate, 0, g.run.enemies.Len())
	g.run.enemies.Each(func(h pool.Handle, e *Enemy) {
		out = append(out, combat.Candidate{Handle: h, Pos: e.Pos})
	})
	return out
}

func (g *Game) enemiesWithin(center vmath.Vec2, radius float64) []combat.Candidate {
	return combat.InRadius(center, pool.Nil, g.candidates(), radius)
}
