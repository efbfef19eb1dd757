package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/star-defense/audio"
	"github.com/lixenwraith/star-defense/config"
	"github.com/lixenwraith/star-defense/engine"
	"github.com/lixenwraith/star-defense/input"
	"github.com/lixenwraith/star-defense/mode"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/render"
	"github.com/lixenwraith/star-defense/status"
	"github.com/lixenwraith/star-defense/vmath"
)

// app owns every frame-loop object; all methods run on the loop goroutine
type app struct {
	screen  tcell.Screen
	game    *engine.Game
	ui      *render.UI
	effects *render.Effects
	orch    *render.Orchestrator
	machine *input.Machine
	router  *mode.Router
	player  audio.Player
	debug   bool
	start   time.Time
	log     zerolog.Logger
}

func newApp(screen tcell.Screen, cfg config.Config, seed uint64, debug bool, player audio.Player, log zerolog.Logger) *app {
	ui := render.NewUI()
	fx := render.NewEffects(vmath.NewFastRand(uint64(time.Now().UnixNano())))
	orch := render.NewOrchestrator(screen)
	orch.Register(render.NewField(), render.PriorityEntities)
	orch.Register(fx, render.PriorityEffects)
	orch.Register(ui, render.PriorityUI)
	orch.SetShaker(fx)

	game := engine.New(engine.Options{
		Config:   cfg,
		Seed:     seed,
		Bounds:   orch.Viewport().World(),
		Notifier: ui,
		Status:   status.NewRegistry(),
		Logger:   log,
	})
	machine := input.NewMachine(input.DefaultKeyTable())

	return &app{
		screen:  screen,
		game:    game,
		ui:      ui,
		effects: fx,
		orch:    orch,
		machine: machine,
		router:  mode.NewRouter(game, machine, ui, fx, orch, log),
		player:  player,
		debug:   debug,
		start:   time.Now(),
		log:     log,
	}
}

// handle routes one terminal event; false means quit
func (a *app) handle(ev tcell.Event) bool {
	return a.router.Handle(a.machine.Process(ev))
}

// frame advances the game by dt, drains side-effect requests and draws
func (a *app) frame(dt time.Duration) {
	a.game.Update(dt)

	events := a.game.Events().Consume()
	audio.Dispatch(a.player, events)
	a.effects.Consume(events)
	a.effects.Update(dt)
	a.ui.Update(dt)
	a.router.SyncMode()

	a.orch.RenderFrame(render.Context{
		Game:  a.game,
		View:  a.orch.Viewport(),
		Phase: a.game.Phase(),
		Debug: a.debug,
		Now:   time.Since(a.start),
	})
}

// loop runs the ticker-driven frame loop until quit or cancellation
func (a *app) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	a.frame(0)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handle(ev) {
				a.log.Info().Int("score", a.game.Score()).Msg("quit")
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			a.frame(dt)
		}
	}
}
