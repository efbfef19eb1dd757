package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-defense/engine"
	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/vmath"
)

// headingChars index by octant, 0 = east, clockwise in screen space
var headingChars = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// spinChars animate enemy rotation
var spinChars = [4]rune{'|', '/', '─', '\\'}

// heavyEnemyScale switches to the large glyph
const heavyEnemyScale = 1.4

// Field draws the ship, enemies, projectiles, drops and blades
type Field struct{}

func NewField() *Field { return &Field{} }

func (f *Field) Render(ctx Context, buf *Buffer) {
	if ctx.Phase == engine.PhaseTitle {
		return
	}
	g, v := ctx.Game, ctx.View

	plot := func(p vmath.Vec2, r rune, fg tcell.Color) {
		if x, y := v.ToCell(p); v.InField(x, y) {
			buf.SetFg(x, y, r, fg)
		}
	}

	if ctx.Phase == engine.PhasePlaying && vmath.DistSq(g.Target(), g.Player()) > 1 {
		plot(g.Target(), '+', RgbTarget)
	}

	g.EachDrop(func(_ pool.Handle, d *engine.Drop) {
		if d.God {
			// pulse between two glyphs
			if math.Sin(d.Phase) > 0 {
				plot(d.Pos, '✦', RgbGold)
			} else {
				plot(d.Pos, '✧', RgbGold)
			}
			return
		}
		plot(d.Pos, '◆', RgbDrop)
	})

	g.EachEnemy(func(_ pool.Handle, e *engine.Enemy) {
		fg := RgbEnemy
		if e.Flash > 0 {
			fg = RgbEnemyHit
		}
		if e.Scale >= heavyEnemyScale {
			plot(e.Pos, '◉', fg)
			return
		}
		plot(e.Pos, spinChars[octant(e.Rotation)%len(spinChars)], fg)
	})

	g.EachProjectile(func(_ pool.Handle, p *engine.Projectile) {
		if p.Missile {
			plot(p.Pos, '»', RgbMissile)
			return
		}
		plot(p.Pos, '•', RgbProjectile)
	})

	for _, b := range g.Blades() {
		plot(b, '✶', RgbBlade)
	}

	plot(g.Player(), headingChars[octant(g.Heading())], RgbPlayer)
}

// octant maps an angle to 0..7, 0 centred on east
func octant(angle float64) int {
	o := int(math.Round(angle/(math.Pi/4))) % 8
	if o < 0 {
		o += 8
	}
	return o
}
