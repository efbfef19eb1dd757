package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/star-defense/core"
	"github.com/lixenwraith/star-defense/event"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/physics"
	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/vmath"
)

const (
	pi     = math.Pi
	halfPi = math.Pi / 2
)

// Update advances the run by one frame delta
// The run clock is stopped whenever the phase is paused or selecting, so those frames only
// accrue pause time; nothing moves, spawns or collides unless the phase is playing
func (g *Game) Update(dt time.Duration) {
	switch g.Phase() {
	case PhaseTitle, PhaseGameOver:
		return
	}
	r := g.run
	dt = r.clock.Advance(min(dt, parameter.MaxFrameDelta))
	if dt <= 0 || g.Phase() != PhasePlaying {
		return
	}
	r.frame++
	secs := dt.Seconds()

	g.regen(secs)
	if r.over {
		g.sendHUD()
		return
	}

	g.movePlayer(secs)
	g.spawnEnemies(dt)
	g.spawnGodDrop()
	g.fire(dt)
	g.fireMissiles(dt)
	g.pulseNova(dt)
	g.moveProjectiles(secs)
	g.moveEnemies(dt, secs)
	g.moveDrops(secs)
	g.spinBlades(secs)
	g.collide()

	g.elapsedG.Store(r.clock.Elapsed().Seconds())
	g.diffG.Store(g.Difficulty())
	g.projG.Store(float64(r.projectiles.Len()))
	g.enemyG.Store(float64(r.enemies.Len()))
	g.dropG.Store(float64(r.drops.Len()))
	g.sendHUD()
}

// regen applies Regen×dt; negative regen bleeds and can end the run
func (g *Game) regen(secs float64) {
	r := g.run
	if r.stats.Regen == 0 {
		return
	}
	r.stats.Heal(r.stats.Regen * secs)
	if !r.stats.Alive() {
		r.log.Info().Msg("bled out")
		g.gameOver()
	}
}

func (g *Game) movePlayer(secs float64) {
	r := g.run
	speed := parameter.PlayerMoveSpeedFloat * r.stats.MoveSpeed
	prev := r.player.Pos
	r.player.Pos = g.bounds.Clamp(physics.Arrive(prev, r.target, speed, parameter.PlayerArriveRadiusFloat, secs))
	if moved := r.player.Pos.Sub(prev); moved.LenSq() > 0 {
		r.heading = vmath.RotateTo(r.heading, moved.Angle(), parameter.PlayerTurnRateFloat)
	}
}

func (g *Game) spawnEnemies(dt time.Duration) {
	r := g.run
	r.spawnCD.Elapse(dt)
	for r.spawnCD.Ready() {
		r.spawnCD.Arm(g.cfg.Difficulty.SpawnInterval)
		h, e, ok := r.enemies.Acquire()
		if !ok {
			g.exhaust.Add(1)
			return
		}
		stats := r.scaler.NextEnemy(r.clock.Elapsed())
		*e = Enemy{
			Enemy: stats,
			Body: physics.Body{
				Pos:    r.scaler.SpawnPoint(g.bounds),
				Radius: parameter.EnemyRadiusFloat * stats.Scale,
			},
			Slow: 1,
		}
		r.log.Debug().Stringer("enemy", h).Float64("hp", stats.HP).Msg("spawn")
	}
}

func (g *Game) spawnGodDrop() {
	r := g.run
	if r.godSpawned || r.clock.Elapsed() < g.cfg.Difficulty.GodDropAfter {
		return
	}
	r.godSpawned = true
	pos := vmath.Vec2{X: g.bounds.Center().X, Y: g.bounds.Min.Y + parameter.GodDropOffsetFloat}
	if !g.spawnDrop(pos, true) {
		// pool full: retry next frame
		r.godSpawned = false
		return
	}
	r.log.Info().Msg("god drop spawned")
	g.notifier.Toast("ANOMALY DETECTED: GOD ENERGY")
}

func (g *Game) spawnDrop(pos vmath.Vec2, god bool) bool {
	_, d, ok := g.run.drops.Acquire()
	if !ok {
		g.exhaust.Add(1)
		return false
	}
	*d = Drop{Body: physics.Body{Pos: pos, Radius: parameter.DropRadiusFloat}, God: god}
	if !god {
		g.drops.Add(1)
	}
	return true
}

// nearestEnemy returns the closest active enemy to p, skipping handles in skip
func (g *Game) nearestEnemy(p vmath.Vec2, skip []pool.Handle) (pool.Handle, vmath.Vec2, bool) {
	best := pool.Nil
	var bestPos vmath.Vec2
	bestD := math.Inf(1)
	g.run.enemies.Each(func(h pool.Handle, e *Enemy) {
		for _, s := range skip {
			if s == h {
				return
			}
		}
		if d := vmath.DistSq(p, e.Pos); d < bestD {
			best, bestPos, bestD = h, e.Pos, d
		}
	})
	return best, bestPos, !best.IsNil()
}

// fire shoots one volley at the nearest enemy when the reload is done
// With no enemy the gun stays loaded
func (g *Game) fire(dt time.Duration) {
	r := g.run
	r.fireCD.Elapse(dt)
	if !r.fireCD.Ready() {
		return
	}
	_, target, ok := g.nearestEnemy(r.player.Pos, nil)
	if !ok {
		return
	}
	aim := target.Sub(r.player.Pos).Angle()
	st := &r.stats

	fired := g.fan(aim, st.ProjectileCount, st.Spread)
	if st.SideGuns {
		fired += g.fan(aim+halfPi, st.ProjectileCount, st.Spread)
		fired += g.fan(aim-halfPi, st.ProjectileCount, st.Spread)
	}
	if st.RearGuns {
		fired += g.fan(aim+pi, st.ProjectileCount, st.Spread)
	}
	if fired > 0 {
		g.shots.Add(int64(fired))
		g.emit(event.EventSoundRequest, core.SoundShoot)
	}
	r.fireCD.Arm(st.FireInterval)
}

// fan spawns count projectiles centred on angle, spaced by spread radians
func (g *Game) fan(angle float64, count int, spread float64) int {
	start := angle - float64(count-1)*spread/2
	n := 0
	for i := range count {
		if g.spawnProjectile(start+float64(i)*spread, parameter.ProjectileSpeedFloat, 1, false) {
			n++
		}
	}
	return n
}

func (g *Game) spawnProjectile(angle, speed, mult float64, missile bool) bool {
	r := g.run
	_, p, ok := r.projectiles.Acquire()
	if !ok {
		g.exhaust.Add(1)
		return false
	}
	*p = Projectile{
		Body: physics.Body{
			Pos:    r.player.Pos,
			Vel:    vmath.FromAngle(angle, speed),
			Radius: parameter.ProjectileRadiusFloat * r.stats.ProjectileScale,
		},
		Mult:    mult,
		Pierce:  r.stats.Pierce,
		Bounce:  r.stats.Bounce,
		Homing:  r.stats.Homing || missile,
		Missile: missile,
	}
	return true
}

func (g *Game) fireMissiles(dt time.Duration) {
	r := g.run
	r.missileCD.Elapse(dt)
	if r.stats.Missiles <= 0 || !r.missileCD.Ready() {
		return
	}
	_, target, ok := g.nearestEnemy(r.player.Pos, nil)
	if !ok {
		return
	}
	aim := target.Sub(r.player.Pos).Angle()
	n := r.stats.Missiles
	for i := range n {
		// launch spread around the ship, guidance turns them in
		angle := aim + float64(i)*2*pi/float64(n)
		if g.spawnProjectile(angle, parameter.MissileSpeedFloat, parameter.MissileDamageFactor, true) {
			g.shots.Add(1)
		}
	}
	g.emit(event.EventSoundRequest, core.SoundShoot)
	r.missileCD.Arm(parameter.MissileInterval)
}

func (g *Game) pulseNova(dt time.Duration) {
	r := g.run
	r.novaCD.Elapse(dt)
	if !r.stats.Nova || !r.novaCD.Ready() {
		return
	}
	r.novaCD.Arm(parameter.NovaInterval)
	g.emit(event.EventPulseRequest, &event.PulsePayload{Center: r.player.Pos, Radius: parameter.NovaRadiusFloat})
	for _, c := range g.enemiesWithin(r.player.Pos, parameter.NovaRadiusFloat) {
		g.damageEnemy(c.Handle, parameter.NovaDamageFactor, false)
	}
}

func (g *Game) moveProjectiles(secs float64) {
	r := g.run
	limit := g.bounds.Expand(parameter.EnemySpawnMarginFloat + parameter.EnemyRadiusFloat)
	r.projectiles.Each(func(h pool.Handle, p *Projectile) {
		if p.Homing {
			if _, target, ok := g.nearestEnemy(p.Pos, p.hits); ok {
				p.Vel = physics.Steer(p.Pos, p.Vel, target, parameter.HomingTurnRateFloat, secs)
			}
		}
		p.Integrate(secs)
		if !limit.Contains(p.Pos) {
			r.projectiles.Release(h)
		}
	})
}

func (g *Game) moveEnemies(dt time.Duration, secs float64) {
	r := g.run
	limit := g.bounds.Expand(parameter.EnemySpawnMarginFloat + parameter.EnemyCullMarginFloat)
	r.enemies.Each(func(h pool.Handle, e *Enemy) {
		e.Vel = physics.Seek(e.Pos, r.player.Pos, e.Speed*e.Slow)
		e.Integrate(secs)
		if r.stats.Repel {
			e.Pos = physics.Push(e.Pos, r.player.Pos, parameter.RepelRadiusFloat, parameter.RepelSpeedFloat, secs)
		}
		e.Rotation = physics.WrapAngle(e.Rotation + parameter.EnemySpinFloat)
		if e.Flash > 0 {
			e.Flash -= dt
		}
		if e.bladeCD > 0 {
			e.bladeCD -= dt
		}
		if !limit.Contains(e.Pos) {
			r.enemies.Release(h)
		}
	})
}

func (g *Game) moveDrops(secs float64) {
	r := g.run
	reach := r.stats.PickupRange
	r.drops.Each(func(_ pool.Handle, d *Drop) {
		d.Phase = physics.WrapAngle(d.Phase + 2*pi*secs)
		if vmath.DistSq(d.Pos, r.player.Pos) <= reach*reach {
			d.Pos = d.Pos.Add(physics.Seek(d.Pos, r.player.Pos, parameter.DropMagnetSpeedFloat).Scale(secs))
		}
	})
}

func (g *Game) spinBlades(secs float64) {
	r := g.run
	if r.stats.Orbitals <= 0 {
		return
	}
	r.bladeAngle = physics.WrapAngle(r.bladeAngle + parameter.OrbitalAngularSpeedFloat*secs)
}
