package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-defense/event"
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/vmath"
)

// maxEffects caps each effect list; the oldest entry is dropped
const maxEffects = 128

var burstChars = [...]rune{'█', '▓', '▒', '░', '·'}

type timed struct {
	left  time.Duration
	total time.Duration
}

// progress runs 0 at spawn to 1 at expiry
func (t timed) progress() float64 {
	if t.total <= 0 {
		return 1
	}
	return 1 - float64(t.left)/float64(t.total)
}

type explosion struct {
	timed
	pos    vmath.Vec2
	radius float64
	gold   bool
}

type bolt struct {
	timed
	points []vmath.Vec2
}

type pulse struct {
	timed
	center vmath.Vec2
	radius float64
}

// Effects owns transient visuals requested through the event queue
type Effects struct {
	rng *vmath.FastRand

	explosions []explosion
	bolts      []bolt
	pulses     []pulse

	shakeLeft      time.Duration
	shakeIntensity float64
	flashLeft      time.Duration
	flashColor     event.FlashColor
}

func NewEffects(rng *vmath.FastRand) *Effects {
	return &Effects{rng: rng}
}

// Consume picks up visual requests from one batch of queued events
func (e *Effects) Consume(events []event.GameEvent) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case *event.ExplosionPayload:
			e.explosions = appendCapped(e.explosions, explosion{
				timed: timed{left: p.Duration, total: p.Duration},
				pos:   p.Pos, radius: p.Radius, gold: p.Gold,
			})
		case *event.LightningPayload:
			e.bolts = appendCapped(e.bolts, bolt{
				timed:  timed{left: parameter.LightningDuration, total: parameter.LightningDuration},
				points: p.Points,
			})
		case *event.PulsePayload:
			e.pulses = appendCapped(e.pulses, pulse{
				timed:  timed{left: parameter.PulseDuration, total: parameter.PulseDuration},
				center: p.Center, radius: p.Radius,
			})
		case *event.ShakePayload:
			// strongest request wins, durations extend
			e.shakeLeft = max(e.shakeLeft, p.Duration)
			e.shakeIntensity = max(e.shakeIntensity, p.Intensity)
		case *event.FlashPayload:
			e.flashLeft = max(e.flashLeft, p.Duration)
			e.flashColor = p.Color
		}
	}
}

func appendCapped[T any](s []T, v T) []T {
	if len(s) >= maxEffects {
		s = append(s[:0], s[1:]...)
	}
	return append(s, v)
}

// Update ages every effect by wall-clock dt
func (e *Effects) Update(dt time.Duration) {
	e.explosions = age(e.explosions, dt, func(x *explosion) *timed { return &x.timed })
	e.bolts = age(e.bolts, dt, func(x *bolt) *timed { return &x.timed })
	e.pulses = age(e.pulses, dt, func(x *pulse) *timed { return &x.timed })

	if e.shakeLeft -= dt; e.shakeLeft <= 0 {
		e.shakeLeft, e.shakeIntensity = 0, 0
	}
	if e.flashLeft -= dt; e.flashLeft <= 0 {
		e.flashLeft = 0
	}
}

// age decrements lifetimes and compacts expired entries in place
func age[T any](s []T, dt time.Duration, t func(*T) *timed) []T {
	n := 0
	for i := range s {
		tm := t(&s[i])
		tm.left -= dt
		if tm.left > 0 {
			s[n] = s[i]
			n++
		}
	}
	clear(s[n:])
	return s[:n]
}

// Active reports whether any effect is still running
func (e *Effects) Active() bool {
	return len(e.explosions)+len(e.bolts)+len(e.pulses) > 0 || e.shakeLeft > 0 || e.flashLeft > 0
}

// Reset drops every effect, used on restart
func (e *Effects) Reset() {
	e.explosions = e.explosions[:0]
	e.bolts = e.bolts[:0]
	e.pulses = e.pulses[:0]
	e.shakeLeft, e.shakeIntensity, e.flashLeft = 0, 0, 0
}

// Offset returns the current shake displacement in cells
func (e *Effects) Offset() (int, int) {
	if e.shakeLeft <= 0 || e.shakeIntensity <= 0 {
		return 0, 0
	}
	// horizontal cells are half as tall, shake twice as wide
	dx := int(math.Round(e.rng.Range(-2*e.shakeIntensity, 2*e.shakeIntensity)))
	dy := int(math.Round(e.rng.Range(-e.shakeIntensity, e.shakeIntensity)))
	return dx, dy
}

func (e *Effects) Render(ctx Context, buf *Buffer) {
	v := ctx.View
	for _, p := range e.pulses {
		drawRing(buf, v, p.center, p.radius*p.progress(), '∙', RgbPulse)
	}
	for _, x := range e.explosions {
		color := RgbExplosion
		if x.gold {
			color = RgbGold
		}
		ch := burstChars[min(int(x.progress()*float64(len(burstChars))), len(burstChars)-1)]
		drawRing(buf, v, x.pos, x.radius*(1+2*x.progress()), ch, color)
	}
	for _, b := range e.bolts {
		for i := 1; i < len(b.points); i++ {
			x0, y0 := v.ToCell(b.points[i-1])
			x1, y1 := v.ToCell(b.points[i])
			drawLine(buf, v, x0, y0, x1, y1, '╳', RgbLightning)
		}
	}
	if e.flashLeft > 0 {
		bg := RgbFlashRed
		if e.flashColor == event.FlashWhite {
			bg = RgbFlashWhit
		}
		buf.TintRows(parameter.HUDRows, bg)
	}
}

// drawRing plots a circle of world radius r around c
func drawRing(buf *Buffer, v Viewport, c vmath.Vec2, r float64, ch rune, fg tcell.Color) {
	cx, cy := v.ToCell(c)
	if r < parameter.CellWidthFloat {
		if v.InField(cx, cy) {
			buf.SetFg(cx, cy, ch, fg)
		}
		return
	}
	steps := max(int(2*math.Pi*r/parameter.CellWidthFloat), 8)
	for i := range steps {
		p := vmath.FromAngle(2*math.Pi*float64(i)/float64(steps), r).Add(c)
		x, y := v.ToCell(p)
		if v.InField(x, y) {
			buf.SetFg(x, y, ch, fg)
		}
	}
}

// drawLine plots cells between two points (Bresenham)
func drawLine(buf *Buffer, v Viewport, x0, y0, x1, y1 int, ch rune, fg tcell.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		if v.InField(x0, y0) {
			buf.SetFg(x0, y0, ch, fg)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
