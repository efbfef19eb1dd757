package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-defense/engine"
	"github.com/lixenwraith/star-defense/event"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/upgrade"
	"github.com/lixenwraith/star-defense/vmath"
)

const (
	testCols = 100
	testRows = 32
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(testCols, testRows)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range h {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

type pipeline struct {
	screen  tcell.SimulationScreen
	orch    *Orchestrator
	ui      *UI
	effects *Effects
	game    *engine.Game
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	s := newScreen(t)
	ui := NewUI()
	o := NewOrchestrator(s)
	fx := NewEffects(vmath.NewFastRand(7))
	o.Register(ui, PriorityUI)
	o.Register(NewField(), PriorityEntities)
	o.Register(fx, PriorityEffects)
	o.SetShaker(fx)

	g := engine.New(engine.Options{
		Seed:     99,
		Bounds:   o.Viewport().World(),
		Notifier: ui,
		Logger:   zerolog.Nop(),
	})
	return &pipeline{screen: s, orch: o, ui: ui, effects: fx, game: g}
}

func (p *pipeline) frame(debug bool) {
	p.orch.RenderFrame(Context{
		Game:  p.game,
		View:  p.orch.Viewport(),
		Phase: p.game.Phase(),
		Debug: debug,
	})
}

func TestViewportMapping(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 24}
	assert.Equal(t, 22, v.FieldRows())

	world := v.World()
	assert.InDelta(t, 800.0, world.Width(), 1e-9)
	assert.InDelta(t, 440.0, world.Height(), 1e-9)

	x, y := v.ToCell(vmath.Vec2{X: 15, Y: 25})
	assert.Equal(t, 1, x)
	assert.Equal(t, 1+parameter.HUDRows, y)

	p := v.ToWorld(x, y)
	cx, cy := v.ToCell(p)
	assert.Equal(t, x, cx)
	assert.Equal(t, y, cy)

	// HUD rows clamp to the first field row
	assert.InDelta(t, 0.5*parameter.CellHeightFloat, v.ToWorld(3, 0).Y, 1e-9)

	assert.True(t, v.InField(0, parameter.HUDRows))
	assert.False(t, v.InField(0, parameter.HUDRows-1))
	assert.False(t, v.InField(80, 5))

	nx, _ := v.ToCell(vmath.Vec2{X: -1, Y: 5})
	assert.Equal(t, -1, nx)
}

func TestBufferTextAndClip(t *testing.T) {
	b := NewBuffer(10, 3)
	end := b.Text(7, 1, "hello", StyleField)
	assert.Equal(t, 12, end)
	assert.Equal(t, 'h', b.Get(7, 1).Rune)
	assert.Equal(t, 'e', b.Get(8, 1).Rune)
	assert.Equal(t, 'l', b.Get(9, 1).Rune)
	assert.Equal(t, ' ', b.Get(10, 1).Rune, "out of bounds reads the empty cell")

	b.Set(-1, 0, 'x', StyleField)
	b.Clear()
	for y := range 3 {
		for x := range 10 {
			require.Equal(t, ' ', b.Get(x, y).Rune)
		}
	}

	b.Resize(4, 2)
	w, h := b.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
}

func TestBufferFlushShiftsFieldOnly(t *testing.T) {
	s := newScreen(t)
	b := NewBuffer(testCols, testRows)
	b.Set(0, 0, 'H', StyleField)
	b.Set(5, 10, 'F', StyleField)
	b.Flush(s, parameter.HUDRows, 2, 1)

	r, _, _, _ := s.GetContent(0, 0)
	assert.Equal(t, 'H', r)
	r, _, _, _ = s.GetContent(7, 11)
	assert.Equal(t, 'F', r)
}

func TestTitleScreen(t *testing.T) {
	p := newPipeline(t)
	p.frame(false)
	text := screenText(p.screen)
	assert.Contains(t, text, "S T A R   D E F E N S E")
	assert.Contains(t, text, "press ENTER to launch")
	assert.NotContains(t, text, "SCORE")
}

func TestPlayingHUDAndShip(t *testing.T) {
	p := newPipeline(t)
	p.game.Start()
	p.game.Update(16 * time.Millisecond)
	p.frame(false)

	hud := rowText(p.screen, 0)
	assert.Contains(t, hud, "SCORE 0")
	assert.Contains(t, hud, "HP ")
	assert.Contains(t, hud, "100/100")
	assert.Contains(t, hud, "LV 1")

	x, y := p.orch.Viewport().ToCell(p.game.Player())
	r, _, _, _ := p.screen.GetContent(x, y)
	assert.Contains(t, string(headingChars[:]), string(r))
}

func TestDebugLineShowsMetrics(t *testing.T) {
	p := newPipeline(t)
	p.game.Start()
	p.game.Update(16 * time.Millisecond)
	p.frame(true)

	line := rowText(p.screen, 1)
	assert.Contains(t, line, "run "+p.game.RunID().String()[:8])
	assert.Contains(t, line, "combat.kills=0")

	p.frame(false)
	assert.NotContains(t, rowText(p.screen, 1), "combat.kills")
}

func TestUpgradeModal(t *testing.T) {
	p := newPipeline(t)
	offers := upgrade.DefaultCatalog().All()[:3]
	p.ui.LevelUp(offers)

	require.Len(t, p.ui.Offers(), 3)
	assert.Equal(t, 0, p.ui.Selected())
	p.ui.MoveSelection(-1)
	assert.Equal(t, 2, p.ui.Selected())
	p.ui.MoveSelection(2)
	assert.Equal(t, 1, p.ui.Selected())
	id, ok := p.ui.SelectedID()
	require.True(t, ok)
	assert.Equal(t, offers[1].ID, id)
	_, ok = p.ui.OfferID(3)
	assert.False(t, ok)

	p.game.Start()
	p.orch.RenderFrame(Context{Game: p.game, View: p.orch.Viewport(), Phase: engine.PhaseSelecting})
	text := screenText(p.screen)
	assert.Contains(t, text, "LEVEL UP")
	assert.Contains(t, text, "1 "+offers[0].Tier.Label())
	assert.Contains(t, text, "3 "+offers[2].Tier.Label())

	p.ui.Resume()
	assert.Empty(t, p.ui.Offers())
	p.ui.MoveSelection(1)
	assert.Equal(t, 0, p.ui.Selected())
}

func TestToastExpires(t *testing.T) {
	u := NewUI()
	u.Toast("ANOMALY DETECTED: GOD ENERGY")
	msg, ok := u.Toasting()
	require.True(t, ok)
	assert.Equal(t, "ANOMALY DETECTED: GOD ENERGY", msg)

	u.Update(parameter.ToastDuration - time.Millisecond)
	_, ok = u.Toasting()
	assert.True(t, ok)
	u.Update(time.Millisecond)
	_, ok = u.Toasting()
	assert.False(t, ok)
}

func TestToastRendered(t *testing.T) {
	p := newPipeline(t)
	p.game.Start()
	p.ui.Toast("SYSTEM OVERLOAD: OBLITERATION")
	p.frame(false)
	assert.Contains(t, rowText(p.screen, parameter.HUDRows+1), "SYSTEM OVERLOAD: OBLITERATION")
}

func TestGameOverScreen(t *testing.T) {
	p := newPipeline(t)
	p.game.Start()
	p.ui.GameOver(4321)
	p.orch.RenderFrame(Context{Game: p.game, View: p.orch.Viewport(), Phase: engine.PhaseGameOver})
	text := screenText(p.screen)
	assert.Contains(t, text, "FINAL SCORE 4321")
	assert.Contains(t, text, "ENTER restarts")

	p.ui.Reset()
	p.frame(false)
	assert.NotContains(t, screenText(p.screen), "FINAL SCORE")
}

func TestPausedBanner(t *testing.T) {
	p := newPipeline(t)
	p.game.Start()
	p.game.TogglePause()
	require.Equal(t, engine.PhasePaused, p.game.Phase())
	p.frame(false)
	assert.Contains(t, screenText(p.screen), "PAUSED")
}

func TestEffectsLifecycle(t *testing.T) {
	fx := NewEffects(vmath.NewFastRand(1))
	assert.False(t, fx.Active())

	fx.Consume([]event.GameEvent{
		{Type: event.EventExplosionRequest, Payload: &event.ExplosionPayload{Pos: vmath.Vec2{X: 100, Y: 100}, Radius: 14, Duration: parameter.ExplosionDuration}},
		{Type: event.EventLightningRequest, Payload: &event.LightningPayload{Points: []vmath.Vec2{{X: 0, Y: 0}, {X: 200, Y: 100}}}},
		{Type: event.EventPulseRequest, Payload: &event.PulsePayload{Center: vmath.Vec2{X: 50, Y: 50}, Radius: 120}},
		{Type: event.EventSoundRequest, Payload: nil},
	})
	require.True(t, fx.Active())
	assert.Len(t, fx.explosions, 1)
	assert.Len(t, fx.bolts, 1)
	assert.Len(t, fx.pulses, 1)

	fx.Update(parameter.LightningDuration)
	assert.Empty(t, fx.bolts)
	assert.Len(t, fx.pulses, 1)

	fx.Update(parameter.ExplosionDuration)
	assert.False(t, fx.Active())
}

func TestEffectsShakeBounded(t *testing.T) {
	fx := NewEffects(vmath.NewFastRand(3))
	dx, dy := fx.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	fx.Consume([]event.GameEvent{{Type: event.EventShakeRequest, Payload: &event.ShakePayload{Duration: parameter.HitShakeDuration, Intensity: parameter.HitShakeIntensity}}})
	for range 100 {
		dx, dy := fx.Offset()
		assert.LessOrEqual(t, dx, 4)
		assert.GreaterOrEqual(t, dx, -4)
		assert.LessOrEqual(t, dy, 2)
		assert.GreaterOrEqual(t, dy, -2)
	}
	fx.Update(parameter.HitShakeDuration)
	dx, dy = fx.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestFlashTintsFieldOnly(t *testing.T) {
	fx := NewEffects(vmath.NewFastRand(1))
	fx.Consume([]event.GameEvent{{Type: event.EventFlashRequest, Payload: &event.FlashPayload{Color: event.FlashRed, Duration: parameter.HitFlashDuration}}})

	b := NewBuffer(20, 6)
	fx.Render(Context{View: Viewport{Cols: 20, Rows: 6}}, b)

	_, hudBg, _ := b.Get(0, 0).Style.Decompose()
	_, fieldBg, _ := b.Get(0, parameter.HUDRows).Style.Decompose()
	assert.Equal(t, RgbBackground, hudBg)
	assert.Equal(t, RgbFlashRed, fieldBg)

	fx.Reset()
	assert.False(t, fx.Active())
}

func TestEffectListsAreCapped(t *testing.T) {
	fx := NewEffects(vmath.NewFastRand(1))
	batch := make([]event.GameEvent, maxEffects+10)
	for i := range batch {
		batch[i] = event.GameEvent{Type: event.EventPulseRequest, Payload: &event.PulsePayload{Radius: float64(i)}}
	}
	fx.Consume(batch)
	require.Len(t, fx.pulses, maxEffects)
	assert.InDelta(t, float64(maxEffects+9), fx.pulses[maxEffects-1].radius, 1e-9)
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	s := newScreen(t)
	o := NewOrchestrator(s)
	var order []string
	o.Register(recordingRenderer{name: "ui", order: &order}, PriorityUI)
	o.Register(recordingRenderer{name: "bg", order: &order}, PriorityBackground)
	o.Register(recordingRenderer{name: "fx", order: &order}, PriorityEffects)
	o.Register(recordingRenderer{name: "hidden", order: &order, hidden: true}, PriorityEffects)
	o.RenderFrame(Context{View: o.Viewport()})
	assert.Equal(t, []string{"bg", "fx", "ui"}, order)
}

type recordingRenderer struct {
	name   string
	order  *[]string
	hidden bool
}

func (r recordingRenderer) Render(Context, *Buffer) { *r.order = append(*r.order, r.name) }
func (r recordingRenderer) IsVisible() bool         { return !r.hidden }

func TestWrapAndClip(t *testing.T) {
	assert.Equal(t, []string{"Damage +20%", "and more"}, wrap("Damage +20% and more", 11, 3))
	assert.Len(t, wrap("a b c d e f g h", 1, 2), 2)
	assert.Equal(t, "abc", clip("abcdef", 3))
	assert.Equal(t, "", clip("abc", 0))
}
