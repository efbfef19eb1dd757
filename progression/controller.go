// Package progression tracks skill energy and drives the level-up selection cycle
package progression

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/star-defense/event"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/stat"
	"github.com/lixenwraith/star-defense/status"
	"github.com/lixenwraith/star-defense/upgrade"
)

var (
	ErrNotSelecting   = errors.New("progression: no selection pending")
	ErrUnknownUpgrade = errors.New("progression: unknown upgrade id")
	ErrEffectFault    = errors.New("progression: effect fault")
)

// State of the selection cycle
type State int

const (
	StateActive State = iota
	StateSelecting
)

func (s State) String() string {
	if s == StateSelecting {
		return "selecting"
	}
	return "active"
}

// Config sets the energy curve; zero fields take parameter defaults
type Config struct {
	InitialThreshold int
	ThresholdStep    int
	Offers           int
}

func (c Config) withDefaults() Config {
	if c.InitialThreshold <= 0 {
		c.InitialThreshold = parameter.EnergyInitialThreshold
	}
	if c.ThresholdStep <= 0 {
		c.ThresholdStep = parameter.EnergyThresholdStep
	}
	if c.Offers <= 0 {
		c.Offers = parameter.UpgradeChoiceCount
	}
	return c
}

// Controller owns energy, threshold and the pending offers of one run
// Not safe for concurrent use; the game goroutine owns it
type Controller struct {
	cfg      Config
	catalog  *upgrade.Catalog
	rng      upgrade.Rand
	notifier event.Notifier
	log      zerolog.Logger

	state     State
	energy    int
	threshold int
	level     int
	offers    []upgrade.Definition

	levels      *atomic.Int64
	energyGauge *status.AtomicFloat

	apply func(upgrade.Effect, *stat.Record) error
}

func New(cfg Config, catalog *upgrade.Catalog, rng upgrade.Rand, notifier event.Notifier, log zerolog.Logger, reg *status.Registry) *Controller {
	cfg = cfg.withDefaults()
	if notifier == nil {
		notifier = event.Nop{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Controller{
		cfg:         cfg,
		catalog:     catalog,
		rng:         rng,
		notifier:    notifier,
		log:         log.With().Str("component", "progression").Logger(),
		threshold:   cfg.InitialThreshold,
		levels:      reg.Ints.Get(status.ProgressionLevels),
		energyGauge: reg.Floats.Get(status.ProgressionEnergy),
		apply:       upgrade.Effect.Apply,
	}
}

func (c *Controller) State() State                 { return c.state }
func (c *Controller) Selecting() bool              { return c.state == StateSelecting }
func (c *Controller) Energy() int                  { return c.energy }
func (c *Controller) Threshold() int               { return c.threshold }
func (c *Controller) Level() int                   { return c.level }
func (c *Controller) Offers() []upgrade.Definition { return c.offers }

// Collect adds one energy and reports whether it crossed the threshold
// Ignored while selecting; the game loop does not deliver collections then
func (c *Controller) Collect() bool {
	if c.state != StateActive {
		return false
	}
	c.energy++
	if c.energy < c.threshold {
		c.energyGauge.Store(float64(c.energy))
		return false
	}

	c.energy = 0
	c.threshold += c.cfg.ThresholdStep
	c.level++
	c.levels.Add(1)
	c.energyGauge.Store(0)
	c.state = StateSelecting
	c.offers = c.catalog.Select(c.rng, c.cfg.Offers)

	ids := make([]string, len(c.offers))
	for i, o := range c.offers {
		ids[i] = o.ID
	}
	c.log.Info().Int("level", c.level).Int("next_threshold", c.threshold).Strs("offers", ids).Msg("level up")
	c.notifier.LevelUp(c.offers)
	return true
}

// Choose applies the chosen upgrade and resumes play
// The record is untouched unless the effect applies in full
// Any outcome other than ErrNotSelecting returns the controller to active and notifies Resume
func (c *Controller) Choose(id string, rec *stat.Record) (err error) {
	if c.state != StateSelecting {
		return ErrNotSelecting
	}
	defer c.resume()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q panicked: %v", ErrEffectFault, id, r)
			c.log.Error().Str("upgrade", id).Interface("panic", r).Msg("upgrade effect panicked")
		}
	}()

	def, ok := c.catalog.Lookup(id)
	if !ok {
		c.log.Warn().Str("upgrade", id).Msg("unknown upgrade id ignored")
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, id)
	}
	if err := c.apply(def.Effect, rec); err != nil {
		c.log.Error().Err(err).Str("upgrade", id).Msg("upgrade effect failed")
		return fmt.Errorf("%w: %q: %w", ErrEffectFault, id, err)
	}
	c.log.Info().Str("upgrade", id).Str("tier", def.Tier.String()).Msg("upgrade applied")
	return nil
}

func (c *Controller) resume() {
	c.state = StateActive
	c.offers = nil
	c.notifier.Resume()
}
