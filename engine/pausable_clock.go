package engine

import "time"

// PausableClock accumulates game time from frame deltas; paused deltas go to the pause total
type PausableClock struct {
	elapsed time.Duration
	paused  time.Duration
	stopped bool
}

func NewPausableClock() *PausableClock {
	return &PausableClock{}
}

// Advance consumes a frame delta and returns the part that counts as game time
func (c *PausableClock) Advance(dt time.Duration) time.Duration {
	if dt <= 0 {
		return 0
	}
	if c.stopped {
		c.paused += dt
		return 0
	}
	c.elapsed += dt
	return dt
}

func (c *PausableClock) Pause()  { c.stopped = true }
func (c *PausableClock) Resume() { c.stopped = false }

func (c *PausableClock) IsPaused() bool { return c.stopped }

// Elapsed is game time, frozen while paused
func (c *PausableClock) Elapsed() time.Duration { return c.elapsed }

// TotalPaused is cumulative time delivered while paused
func (c *PausableClock) TotalPaused() time.Duration { return c.paused }

// Cooldown counts down game time between repeating actions
type Cooldown struct {
	left time.Duration
}

func (c *Cooldown) Elapse(dt time.Duration) {
	if c.left > 0 {
		c.left -= dt
	}
}

func (c *Cooldown) Ready() bool { return c.left <= 0 }

// Arm starts the next interval, carrying any overshoot from the last one
func (c *Cooldown) Arm(interval time.Duration) {
	c.left = max(c.left+interval, 0)
}

// Remaining is the time until Ready
func (c *Cooldown) Remaining() time.Duration { return max(c.left, 0) }
