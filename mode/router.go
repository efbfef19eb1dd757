// Package mode routes input intents to the game and its screen state
package mode

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/star-defense/engine"
	"github.com/lixenwraith/star-defense/input"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/render"
	"github.com/lixenwraith/star-defense/vmath"
)

// Router interprets Intents and executes game actions
// Must run on the goroutine that owns the game
type Router struct {
	game    *engine.Game
	machine *input.Machine
	ui      *render.UI
	effects *render.Effects
	orch    *render.Orchestrator
	log     zerolog.Logger
}

func NewRouter(game *engine.Game, machine *input.Machine, ui *render.UI, effects *render.Effects, orch *render.Orchestrator, log zerolog.Logger) *Router {
	r := &Router{
		game:    game,
		machine: machine,
		ui:      ui,
		effects: effects,
		orch:    orch,
		log:     log.With().Str("component", "router").Logger(),
	}
	r.SyncMode()
	return r
}

// SyncMode points the input machine at the bindings for the current phase
func (r *Router) SyncMode() {
	switch r.game.Phase() {
	case engine.PhaseTitle, engine.PhaseGameOver:
		r.machine.SetMode(input.ModeMenu)
	case engine.PhaseSelecting:
		r.machine.SetMode(input.ModeSelect)
	default:
		r.machine.SetMode(input.ModePlay)
	}
}

// Handle executes one intent; returns false when the program should exit
func (r *Router) Handle(intent *input.Intent) bool {
	if intent == nil {
		return true
	}
	defer r.SyncMode()

	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		r.handleResize(intent.X, intent.Y)
	case input.IntentStart:
		r.handleStart()
	case input.IntentPause:
		r.game.TogglePause()
	case input.IntentSteer:
		r.game.SetTarget(r.orch.Viewport().ToWorld(intent.X, intent.Y))
	case input.IntentNudge:
		step := vmath.Vec2{X: float64(intent.DX), Y: float64(intent.DY)}.Scale(parameter.NudgeStepFloat)
		r.game.SetTarget(r.game.Target().Add(step))
	case input.IntentSelectMove:
		r.ui.MoveSelection(intent.Delta)
	case input.IntentChoose:
		r.handleChoose(intent.Index)
	}
	return true
}

func (r *Router) handleResize(w, h int) {
	r.orch.Resize(w, h)
	r.game.Resize(r.orch.Viewport().World())
	r.log.Debug().Int("cols", w).Int("rows", h).Msg("resize")
}

func (r *Router) handleStart() {
	switch r.game.Phase() {
	case engine.PhaseTitle:
		r.game.Start()
	case engine.PhaseGameOver:
		r.ui.Reset()
		r.effects.Reset()
		r.game.Restart()
	}
}

func (r *Router) handleChoose(index int) {
	id, ok := r.ui.SelectedID()
	if index != input.ChooseHighlighted {
		id, ok = r.ui.OfferID(index)
	}
	if !ok {
		return
	}
	if err := r.game.ChooseUpgrade(id); err != nil {
		r.log.Warn().Err(err).Str("upgrade", id).Msg("choose failed")
	}
}
