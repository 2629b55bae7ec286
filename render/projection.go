package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection maps y-up world space centred on the origin to terminal cells
// Row 0 is reserved for the HUD
type Projection struct {
	Cols, Rows  int
	World       mgl64.Vec2 // Width, height
	fieldTop    int
	cellW       float64
	cellH       float64
	fieldHeight int
}

// NewProjection fits the world rectangle to cols x rows
func NewProjection(cols, rows int, world mgl64.Vec2) Projection {
	p := Projection{Cols: cols, Rows: rows, World: world, fieldTop: 1}
	p.fieldHeight = rows - p.fieldTop
	if cols > 0 {
		p.cellW = world.X() / float64(cols)
	}
	if p.fieldHeight > 0 {
		p.cellH = world.Y() / float64(p.fieldHeight)
	}
	return p
}

// ToCell returns the cell containing pos, ok false when off-screen
func (p Projection) ToCell(pos mgl64.Vec2) (x, y int, ok bool) {
	if p.cellW == 0 || p.cellH == 0 {
		return 0, 0, false
	}
	x = int(math.Floor((pos.X() + p.World.X()/2) / p.cellW))
	y = p.fieldTop + int(math.Floor((p.World.Y()/2-pos.Y())/p.cellH))
	ok = x >= 0 && x < p.Cols && y >= p.fieldTop && y < p.Rows
	return x, y, ok
}

// Span returns how many cells a world-space half-extent covers on each axis, at least one
func (p Projection) Span(half mgl64.Vec2) (int, int) {
	if p.cellW == 0 || p.cellH == 0 {
		return 1, 1
	}
	w := int(math.Round(2 * half.X() / p.cellW))
	h := int(math.Round(2 * half.Y() / p.cellH))
	return max(w, 1), max(h, 1)
}
