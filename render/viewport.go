package render

import (
	"github.com/lixenwraith/star-defense/parameter"
	"github.com/lixenwraith/star-defense/vmath"
)

// Viewport maps world units onto terminal cells below the HUD rows
type Viewport struct {
	Cols int
	Rows int
}

// FieldRows is the number of rows available to the play field
func (v Viewport) FieldRows() int {
	return max(v.Rows-parameter.HUDRows, 0)
}

// World is the play field rectangle in world units
func (v Viewport) World() vmath.Rect {
	return vmath.NewRect(0, 0,
		float64(v.Cols)*parameter.CellWidthFloat,
		float64(v.FieldRows())*parameter.CellHeightFloat)
}

// ToCell converts a world position to screen column and row
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	x := int(p.X / parameter.CellWidthFloat)
	y := int(p.Y / parameter.CellHeightFloat)
	if p.X < 0 {
		x--
	}
	if p.Y < 0 {
		y--
	}
	return x, y + parameter.HUDRows
}

// ToWorld converts a screen cell to the world position at its centre
// Rows inside the HUD clamp to the top field row
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	row := max(y-parameter.HUDRows, 0)
	return vmath.Vec2{
		X: (float64(x) + 0.5) * parameter.CellWidthFloat,
		Y: (float64(row) + 0.5) * parameter.CellHeightFloat,
	}
}

// InField reports whether a screen cell lies in the play field
func (v Viewport) InField(x, y int) bool {
	return x >= 0 && x < v.Cols && y >= parameter.HUDRows && y < v.Rows
}
