package life

// mooreOffsets enumerates the 8 positions adjacent to a cell.
var mooreOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbours partitions the Moore neighbourhood of one queried position into
// the positions that are currently live and those that are not. The two sets
// are disjoint and always total 8 entries; the grid has no edges, so no
// neighbour is ever truncated away.
type Neighbours struct {
	Alive map[Cell]struct{}
	Dead  map[Cell]struct{}
}

// Neighbours classifies the 8 positions around (x, y). The queried position
// itself need not be live, and any integer coordinate is valid.
func (g Grid) Neighbours(x, y int) Neighbours {
	n := Neighbours{
		Alive: make(map[Cell]struct{}, 8),
		Dead:  make(map[Cell]struct{}, 8),
	}
	for _, off := range mooreOffsets {
		pos := Cell{X: x + off.X, Y: y + off.Y}
		if _, ok := g.Cells[pos]; ok {
			n.Alive[pos] = struct{}{}
		} else {
			n.Dead[pos] = struct{}{}
		}
	}
	return n
}
