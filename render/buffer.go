package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composed terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

var emptyCell = Cell{Rune: ' ', Style: StyleField}

// Buffer is a compositor flushed to the screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width, b.height = width, height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Size() (int, int) { return b.width, b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields the empty cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell, clipping silently
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetFg recolors a cell's foreground, keeping rune and background
func (b *Buffer) SetFg(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Style = c.Style.Foreground(fg)
}

// TintRows replaces the background of every cell from row y down
func (b *Buffer) TintRows(y int, bg tcell.Color) {
	for i := max(y, 0) * b.width; i < len(b.cells); i++ {
		b.cells[i].Style = b.cells[i].Style.Background(bg)
	}
}

// Text writes s starting at x,y and returns the column after the last rune
func (b *Buffer) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// TextCentered writes s centred on row y
func (b *Buffer) TextCentered(y int, s string, style tcell.Style) {
	b.Text((b.width-runewidth.StringWidth(s))/2, y, s, style)
}

// Fill paints a rectangle of cells
func (b *Buffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}

// Flush copies the buffer to the screen; rows below skipRows shift by dx,dy
func (b *Buffer) Flush(screen tcell.Screen, skipRows, dx, dy int) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sx, sy := x, y
			if y >= skipRows {
				sx, sy = x+dx, y+dy
				if sy < skipRows {
					continue
				}
			}
			c := b.cells[y*b.width+x]
			screen.SetContent(sx, sy, c.Rune, nil, c.Style)
		}
	}
}
