// Package engine runs one bullet-heaven session: the tick loop, collisions and the run lifecycle
package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/star-defense/combat"
	"github.com/lixenwraith/star-defense/config"
	"github.com/lixenwraith/star-defense/core"
	"github.com/lixenwraith/star-defense/event"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/physics"
	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/progression"
	"github.com/lixenwraith/star-defense/spawn"
	"github.com/lixenwraith/star-defense/stat"
	"github.com/lixenwraith/star-defense/status"
	"github.com/lixenwraith/star-defense/upgrade"
	"github.com/lixenwraith/star-defense/vmath"
)

// Phase is the externally visible game state
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseSelecting
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseSelecting:
		return "selecting"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Options wires a Game; zero fields take defaults
type Options struct {
	Config   config.Config
	Seed     uint64
	Bounds   vmath.Rect
	Catalog  *upgrade.Catalog
	Notifier event.Notifier
	Events   *event.EventQueue
	Status   *status.Registry
	Logger   zerolog.Logger
}

// run is everything that restarts with a new run
type run struct {
	id       uuid.UUID
	stats    stat.Record
	progress *progression.Controller
	resolver *combat.Resolver
	scaler   *spawn.Scaler
	clock    *PausableClock

	projectiles *pool.Arena[Projectile]
	enemies     *pool.Arena[Enemy]
	drops       *pool.Arena[Drop]

	player  physics.Body
	target  vmath.Vec2
	heading float64

	score      int
	frame      int64
	godSpawned bool
	over       bool

	fireCD     Cooldown
	spawnCD    Cooldown
	novaCD     Cooldown
	missileCD  Cooldown
	bladeAngle float64

	log zerolog.Logger
}

// Game owns the active run; every method must be called from one goroutine
type Game struct {
	cfg      config.Config
	catalog  *upgrade.Catalog
	notifier event.Notifier
	events   *event.EventQueue
	status   *status.Registry
	log      zerolog.Logger
	rng      *vmath.FastRand
	seed     uint64
	bounds   vmath.Rect
	grid     *physics.Grid
	overflow []pool.Handle

	title  bool
	paused bool
	run    *run

	kills    *atomic.Int64
	crits    *atomic.Int64
	shots    *atomic.Int64
	drops    *atomic.Int64
	collects *atomic.Int64
	exhaust  *atomic.Int64
	elapsedG *status.AtomicFloat
	diffG    *status.AtomicFloat
	projG    *status.AtomicFloat
	enemyG   *status.AtomicFloat
	dropG    *status.AtomicFloat
}

func New(opts Options) *Game {
	log := opts.Logger.With().Str("component", "engine").Logger()
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		log.Warn().Err(err).Msg("config rejected, using defaults")
		cfg = config.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if opts.Bounds.Width() <= 0 || opts.Bounds.Height() <= 0 {
		opts.Bounds = vmath.NewRect(0, 0, 800, 600)
	}
	if opts.Catalog == nil {
		opts.Catalog = upgrade.DefaultCatalog()
	}
	if opts.Notifier == nil {
		opts.Notifier = event.Nop{}
	}
	if opts.Events == nil {
		opts.Events = event.NewEventQueue()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	g := &Game{
		cfg:      cfg,
		catalog:  opts.Catalog,
		notifier: opts.Notifier,
		events:   opts.Events,
		status:   opts.Status,
		log:      log,
		rng:      vmath.NewFastRand(seed),
		seed:     seed,
		bounds:   opts.Bounds,
		title:    true,
		kills:    opts.Status.Ints.Get(status.CombatKills),
		crits:    opts.Status.Ints.Get(status.CombatCrits),
		shots:    opts.Status.Ints.Get(status.CombatShots),
		drops:    opts.Status.Ints.Get(status.LootDrops),
		collects: opts.Status.Ints.Get(status.LootCollects),
		exhaust:  opts.Status.Ints.Get(status.PoolExhausted),
		elapsedG: opts.Status.Floats.Get(status.RunElapsedSeconds),
		diffG:    opts.Status.Floats.Get(status.RunDifficulty),
		projG:    opts.Status.Floats.Get(status.PoolProjectiles),
		enemyG:   opts.Status.Floats.Get(status.PoolEnemies),
		dropG:    opts.Status.Floats.Get(status.PoolDrops),
	}
	g.grid = physics.NewGrid(g.collisionBounds(), 2*parameter.EnemyRadiusFloat*parameter.EnemyScaleMaxFloat)
	g.run = g.newRun()
	return g
}

func (g *Game) newRun() *run {
	id := uuid.New()
	r := &run{
		id:          id,
		stats:       stat.Default(),
		clock:       NewPausableClock(),
		projectiles: pool.NewArena[Projectile](parameter.ProjectilePoolSize),
		enemies:     pool.NewArena[Enemy](parameter.EnemyPoolSize),
		drops:       pool.NewArena[Drop](parameter.DropPoolSize),
		log:         g.log.With().Str("run_id", id.String()).Logger(),
	}
	r.resolver = combat.NewResolver(combat.Params{
		ExecuteMultiplier: parameter.CombatExecuteMultiplier,
		DropChance:        g.cfg.Combat.DropChance,
		LeechHeal:         parameter.CombatLeechHeal,
		ContactDamage:     g.cfg.Combat.ContactDamage,
		ContactFloor:      g.cfg.Combat.ContactFloor,
	}, vmath.NewFastRand(g.rng.Next()))
	r.scaler = spawn.NewScaler(spawn.Config{
		RampSeconds: g.cfg.Difficulty.RampSeconds,
		BaseHP:      g.cfg.Difficulty.EnemyBaseHP,
	}, vmath.NewFastRand(g.rng.Next()))
	r.progress = progression.New(progression.Config{
		InitialThreshold: g.cfg.Progression.InitialThreshold,
		ThresholdStep:    g.cfg.Progression.ThresholdStep,
		Offers:           g.cfg.Progression.Offers,
	}, g.catalog, vmath.NewFastRand(g.rng.Next()), g.notifier, r.log, g.status)

	r.player = physics.Body{Pos: g.bounds.Center(), Radius: parameter.PlayerRadiusFloat}
	r.target = r.player.Pos
	r.heading = -halfPi
	r.spawnCD.Arm(g.cfg.Difficulty.SpawnInterval)
	r.novaCD.Arm(parameter.NovaInterval)
	r.missileCD.Arm(parameter.MissileInterval)
	return r
}

// Start leaves the title screen and begins the first run
func (g *Game) Start() {
	if !g.title {
		return
	}
	g.title = false
	g.run.log.Info().Uint64("seed", g.seed).Msg("run start")
	g.sendHUD()
}

// Restart discards the current run and begins a fresh one
func (g *Game) Restart() {
	g.status.Reset()
	next := g.newRun()
	g.run = next
	g.title = false
	g.paused = false
	g.grid.Clear()
	g.run.log.Info().Msg("run restart")
	g.sendHUD()
}

// TogglePause flips the manual pause; ignored outside play
func (g *Game) TogglePause() {
	switch g.Phase() {
	case PhasePlaying:
		g.paused = true
		g.run.clock.Pause()
	case PhasePaused:
		g.paused = false
		g.run.clock.Resume()
	}
}

// Phase derives the current state; game over wins over selection and pause
func (g *Game) Phase() Phase {
	switch {
	case g.title:
		return PhaseTitle
	case g.run.over:
		return PhaseGameOver
	case g.run.progress.Selecting():
		return PhaseSelecting
	case g.paused:
		return PhasePaused
	}
	return PhasePlaying
}

// Resize sets the visible field; entities keep their world positions
func (g *Game) Resize(bounds vmath.Rect) {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return
	}
	g.bounds = bounds
	g.grid.Resize(g.collisionBounds())
	r := g.run
	r.player.Pos = bounds.Clamp(r.player.Pos)
	r.target = bounds.Clamp(r.target)
}

// SetTarget points the ship at a field position
func (g *Game) SetTarget(p vmath.Vec2) {
	if g.Phase() != PhasePlaying {
		return
	}
	g.run.target = g.bounds.Clamp(p)
}

// ChooseUpgrade reports the player's pick from the offers
// Returns progression.ErrNotSelecting outside selection; every other outcome resumes play
func (g *Game) ChooseUpgrade(id string) error {
	r := g.run
	if g.Phase() != PhaseSelecting {
		return progression.ErrNotSelecting
	}
	err := r.progress.Choose(id, &r.stats)
	if !g.paused {
		r.clock.Resume()
	}
	g.emit(event.EventSoundRequest, core.SoundUpgrade)
	g.sendHUD()
	return err
}

// Progress is the run bookkeeping outside the stat record
type Progress struct {
	Score     int
	Elapsed   time.Duration
	Energy    int
	Threshold int
	Level     int
}

// Progress returns the current run bookkeeping
func (g *Game) Progress() Progress {
	r := g.run
	return Progress{
		Score:     r.score,
		Elapsed:   r.clock.Elapsed(),
		Energy:    r.progress.Energy(),
		Threshold: r.progress.Threshold(),
		Level:     r.progress.Level(),
	}
}

// Snapshot is the HUD view of the run
func (g *Game) Snapshot() event.Snapshot {
	r := g.run
	return event.Snapshot{
		Score:     r.score,
		HP:        r.stats.HP,
		MaxHP:     r.stats.MaxHP,
		Energy:    r.progress.Energy(),
		MaxEnergy: r.progress.Threshold(),
		Elapsed:   r.clock.Elapsed(),
	}
}

func (g *Game) sendHUD() {
	g.notifier.HUD(g.Snapshot())
}

func (g *Game) emit(t event.EventType, payload any) {
	g.events.Emit(t, payload, g.run.frame)
}

// gameOver ends the run once
func (g *Game) gameOver() {
	r := g.run
	if r.over {
		return
	}
	r.over = true
	r.clock.Pause()
	r.log.Info().Int("score", r.score).Dur("elapsed", r.clock.Elapsed()).
		Int("level", r.progress.Level()).EmbedObject(g.status).Msg("game over")
	g.notifier.GameOver(r.score)
}

// collisionBounds covers the spawn ring and the cull margin
func (g *Game) collisionBounds() vmath.Rect {
	return g.bounds.Expand(parameter.EnemySpawnMarginFloat + parameter.EnemyCullMarginFloat)
}

// Read-only views for the renderer

func (g *Game) RunID() uuid.UUID             { return g.run.id }
func (g *Game) Bounds() vmath.Rect           { return g.bounds }
func (g *Game) Score() int                   { return g.run.score }
func (g *Game) Stats() stat.Record           { return g.run.stats }
func (g *Game) Elapsed() time.Duration       { return g.run.clock.Elapsed() }
func (g *Game) Player() vmath.Vec2           { return g.run.player.Pos }
func (g *Game) Heading() float64             { return g.run.heading }
func (g *Game) Target() vmath.Vec2           { return g.run.target }
func (g *Game) Offers() []upgrade.Definition { return g.run.progress.Offers() }
func (g *Game) Level() int                   { return g.run.progress.Level() }
func (g *Game) Events() *event.EventQueue    { return g.events }
func (g *Game) Difficulty() float64          { return g.run.scaler.Difficulty(g.run.clock.Elapsed()) }
func (g *Game) Metrics() *status.Registry    { return g.status }
func (g *Game) EnemyCount() int              { return g.run.enemies.Len() }
func (g *Game) ProjectileCount() int         { return g.run.projectiles.Len() }
func (g *Game) DropCount() int               { return g.run.drops.Len() }

func (g *Game) EachEnemy(fn func(h pool.Handle, e *Enemy)) { g.run.enemies.Each(fn) }

func (g *Game) EachProjectile(fn func(h pool.Handle, p *Projectile)) {
	g.run.projectiles.Each(fn)
}

func (g *Game) EachDrop(fn func(h pool.Handle, d *Drop)) { g.run.drops.Each(fn) }

// Blades returns the current orbital blade positions
func (g *Game) Blades() []vmath.Vec2 {
	r := g.run
	n := r.stats.Orbitals
	out := make([]vmath.Vec2, n)
	for i := range n {
		out[i] = physics.OrbitPoint(r.player.Pos, parameter.OrbitalRadiusFloat, r.bladeAngle+float64(i)*2*pi/float64(n))
	}
	return out
}
