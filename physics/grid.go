package physics

import (
	"math"

	"github.com/lixenwraith/star-defense/pool"
	"github.com/lixenwraith/star-defense/vmath"
)

// MaxPerCell bounds a cell; inserts beyond it are dropped
const MaxPerCell = 16

// Cell is a fixed array of handles, kept dense by count
type Cell struct {
	Count   uint8
	Handles [MaxPerCell]pool.Handle
}

// Grid is a dense uniform bucket grid over a world rectangle
// Points outside the rectangle fall into the nearest edge cell
type Grid struct {
	bounds   vmath.Rect
	cellSize float64
	cols     int
	rows     int
	cells    []Cell
}

func NewGrid(bounds vmath.Rect, cellSize float64) *Grid {
	g := &Grid{cellSize: cellSize}
	g.Resize(bounds)
	return g
}

// Resize rebuilds the grid for new bounds, clearing it
func (g *Grid) Resize(bounds vmath.Rect) {
	g.bounds = bounds
	g.cols = max(1, int(math.Ceil(bounds.Width()/g.cellSize)))
	g.rows = max(1, int(math.Ceil(bounds.Height()/g.cellSize)))
	g.cells = make([]Cell, g.cols*g.rows)
}

func (g *Grid) Bounds() vmath.Rect { return g.bounds }

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Count = 0
	}
}

// Insert adds h at p; returns false when the cell is full
func (g *Grid) Insert(h pool.Handle, p vmath.Vec2) bool {
	cx, cy := g.cellOf(p)
	c := &g.cells[cy*g.cols+cx]
	if int(c.Count) >= MaxPerCell {
		return false
	}
	c.Handles[c.Count] = h
	c.Count++
	return true
}

// Query visits every handle in cells touching the circle at p with radius r
// Candidates still need an exact overlap test; stop early by returning false
func (g *Grid) Query(p vmath.Vec2, r float64, fn func(h pool.Handle) bool) {
	x0, y0 := g.cellOf(vmath.Vec2{X: p.X - r, Y: p.Y - r})
	x1, y1 := g.cellOf(vmath.Vec2{X: p.X + r, Y: p.Y + r})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := &g.cells[y*g.cols+x]
			for i := uint8(0); i < c.Count; i++ {
				if !fn(c.Handles[i]) {
					return
				}
			}
		}
	}
}

func (g *Grid) cellOf(p vmath.Vec2) (int, int) {
	cx := int((p.X - g.bounds.Min.X) / g.cellSize)
	cy := int((p.Y - g.bounds.Min.Y) / g.cellSize)
	return min(max(cx, 0), g.cols-1), min(max(cy, 0), g.rows-1)
}
