package mode

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-defense/config"
	"github.com/lixenwraith/star-defense/engine"
	"github.com/lixenwraith/star-defense/input"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/render"
	"github.com/lixenwraith/star-defense/vmath"
)

type rig struct {
	screen  tcell.SimulationScreen
	game    *engine.Game
	machine *input.Machine
	ui      *render.UI
	router  *Router
}

func newRig(t *testing.T, cfg config.Config) *rig {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(100, 32)
	t.Cleanup(s.Fini)

	ui := render.NewUI()
	fx := render.NewEffects(vmath.NewFastRand(5))
	orch := render.NewOrchestrator(s)
	g := engine.New(engine.Options{
		Config:   cfg,
		Seed:     42,
		Bounds:   orch.Viewport().World(),
		Notifier: ui,
		Logger:   zerolog.Nop(),
	})
	m := input.NewMachine(nil)
	return &rig{screen: s, game: g, machine: m, ui: ui, router: NewRouter(g, m, ui, fx, orch, zerolog.Nop())}
}

func (r *rig) send(ev tcell.Event) bool {
	return r.router.Handle(r.machine.Process(ev))
}

func enter() tcell.Event { return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone) }

func runeKey(c rune) tcell.Event { return tcell.NewEventKey(tcell.KeyRune, c, tcell.ModNone) }

// playUntilSelecting chases drops until the first level-up
func (r *rig) playUntilSelecting(t *testing.T) {
	t.Helper()
	for range 60 * 60 {
		if r.game.Phase() == engine.PhaseSelecting {
			r.router.SyncMode()
			return
		}
		require.Equal(t, engine.PhasePlaying, r.game.Phase())
		r.game.EachDrop(func(_ pool.Handle, d *engine.Drop) {
			r.game.SetTarget(d.Pos)
		})
		r.game.Update(parameter.FrameInterval)
	}
	t.Fatal("no level-up within a minute of play")
}

func easyConfig() config.Config {
	cfg := config.Default()
	cfg.Combat.DropChance = 1
	cfg.Combat.ContactDamage = 1
	cfg.Combat.ContactFloor = 1
	cfg.Progression.InitialThreshold = 1
	return cfg
}

func TestRouterStartAndQuit(t *testing.T) {
	r := newRig(t, config.Default())
	assert.Equal(t, input.ModeMenu, r.machine.Mode())

	assert.True(t, r.send(runeKey('p')), "pause ignored on the title")
	assert.Equal(t, engine.PhaseTitle, r.game.Phase())

	assert.True(t, r.send(enter()))
	assert.Equal(t, engine.PhasePlaying, r.game.Phase())
	assert.Equal(t, input.ModePlay, r.machine.Mode())

	assert.False(t, r.send(runeKey('q')))
	assert.True(t, r.router.Handle(nil))
}

func TestRouterPauseToggle(t *testing.T) {
	r := newRig(t, config.Default())
	r.send(enter())

	r.send(runeKey('p'))
	assert.Equal(t, engine.PhasePaused, r.game.Phase())
	assert.Equal(t, input.ModePlay, r.machine.Mode())

	r.send(runeKey('p'))
	assert.Equal(t, engine.PhasePlaying, r.game.Phase())
}

func TestRouterSteerAndNudge(t *testing.T) {
	r := newRig(t, config.Default())
	r.send(enter())

	r.send(tcell.NewEventMouse(10, 12, tcell.ButtonNone, tcell.ModNone))
	want := render.Viewport{Cols: 100, Rows: 32}.ToWorld(10, 12)
	assert.InDelta(t, want.X, r.game.Target().X, 1e-9)
	assert.InDelta(t, want.Y, r.game.Target().Y, 1e-9)

	r.send(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.InDelta(t, want.X+parameter.NudgeStepFloat, r.game.Target().X, 1e-9)

	r.send(runeKey('w'))
	assert.InDelta(t, want.Y-parameter.NudgeStepFloat, r.game.Target().Y, 1e-9)
}

func TestRouterResize(t *testing.T) {
	r := newRig(t, config.Default())
	r.send(tcell.NewEventResize(60, 22))
	world := r.game.Bounds()
	assert.InDelta(t, 60*parameter.CellWidthFloat, world.Width(), 1e-9)
	assert.InDelta(t, 20*parameter.CellHeightFloat, world.Height(), 1e-9)
}

func TestRouterChooseByDigit(t *testing.T) {
	r := newRig(t, easyConfig())
	r.send(enter())
	r.playUntilSelecting(t)

	assert.Equal(t, input.ModeSelect, r.machine.Mode())
	offers := r.ui.Offers()
	require.NotEmpty(t, offers)

	assert.True(t, r.send(runeKey('p')), "pause is not bound while selecting")
	assert.Equal(t, engine.PhaseSelecting, r.game.Phase())

	r.send(runeKey('1'))
	assert.Equal(t, engine.PhasePlaying, r.game.Phase())
	assert.Equal(t, input.ModePlay, r.machine.Mode())
	assert.Empty(t, r.ui.Offers())
}

func TestRouterChooseHighlighted(t *testing.T) {
	r := newRig(t, easyConfig())
	r.send(enter())
	r.playUntilSelecting(t)

	n := len(r.ui.Offers())
	r.send(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Equal(t, 1%n, r.ui.Selected())

	r.send(enter())
	assert.Equal(t, engine.PhasePlaying, r.game.Phase())
}

func TestRouterChooseOutOfRangeStaysSelecting(t *testing.T) {
	r := newRig(t, easyConfig())
	r.send(enter())
	r.playUntilSelecting(t)

	r.send(runeKey('9'))
	assert.Equal(t, engine.PhaseSelecting, r.game.Phase())
}

func TestRouterRestartAfterGameOver(t *testing.T) {
	cfg := config.Default()
	cfg.Combat.ContactDamage = 1000
	cfg.Combat.ContactFloor = 1000
	r := newRig(t, cfg)
	r.send(enter())
	first := r.game.RunID()

	for range 60 * 60 {
		var hit pool.Handle
		r.game.EachEnemy(func(h pool.Handle, _ *engine.Enemy) { hit = h })
		if !hit.IsNil() {
			r.game.HitPlayer(hit)
			break
		}
		r.game.Update(parameter.FrameInterval)
	}
	require.Equal(t, engine.PhaseGameOver, r.game.Phase())
	r.router.SyncMode()
	assert.Equal(t, input.ModeMenu, r.machine.Mode())

	r.ui.Toast("stale")
	r.send(enter())
	assert.Equal(t, engine.PhasePlaying, r.game.Phase())
	assert.NotEqual(t, first, r.game.RunID())
	assert.Zero(t, r.game.Score())
	_, toasting := r.ui.Toasting()
	assert.False(t, toasting)
}

func TestRouterIgnoresStartMidRun(t *testing.T) {
	r := newRig(t, config.Default())
	r.send(enter())
	id := r.game.RunID()
	r.game.Update(time.Second / 60)
	r.router.Handle(&input.Intent{Type: input.IntentStart})
	assert.Equal(t, id, r.game.RunID())
}
