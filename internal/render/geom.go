package render

import "sparselife/internal/life"

// CellRect returns the destination-pixel origin and side length for a cell
// drawn at the given scale with a fixed border inset. A border that would
// consume the whole cell is dropped rather than producing an empty rect.
func CellRect(c life.Cell, scale, border int) (x, y, side float64) {
	if scale <= 0 {
		scale = 1
	}
	if border < 0 || border >= scale {
		border = 0
	}
	return float64(c.X*scale + border), float64(c.Y*scale + border), float64(scale - border)
}
