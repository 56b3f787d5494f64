//go:build ebiten

package render

import (
	"image/color"

	"sparselife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellPainter draws the live cells of a grid as filled rectangles. Each cell
// occupies a scale×scale square of the destination, inset by a fixed border
// so adjacent cells stay visually distinct.
type CellPainter struct {
	pixel  *ebiten.Image
	border int
}

// NewCellPainter constructs a painter with the given border inset in
// destination pixels.
func NewCellPainter(border int) *CellPainter {
	if border < 0 {
		border = 0
	}
	cp := &CellPainter{border: border}
	cp.pixel = ebiten.NewImage(1, 1)
	cp.pixel.Fill(color.White)
	return cp
}

// Paint renders every live cell of the grid onto dst at the given scale.
// Cells outside the grid's nominal extent are drawn off-screen and clipped
// by the destination.
func (cp *CellPainter) Paint(dst *ebiten.Image, g life.Grid, scale int, col color.RGBA) {
	for c := range g.Cells {
		x, y, side := CellRect(c, scale, cp.border)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(side, side)
		op.GeoM.Translate(x, y)
		op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
		dst.DrawImage(cp.pixel, op)
	}
}
