package life

// Dim describes the nominal extent of a grid. It bounds random seeding and
// rendering scale only; live cells may lie outside it.
type Dim struct {
	W int
	H int
}

// Cell addresses one grid position. Structural equality makes it usable as a
// map key.
type Cell struct {
	X int
	Y int
}

// Grid is one generation of an automaton: a nominal extent plus the sparse
// set of live cells. A Grid is never mutated after construction; every
// generation step builds a fresh cell set.
type Grid struct {
	Dim   Dim
	Cells map[Cell]struct{}
}

// NewGrid constructs a grid with the given extent and live cells.
func NewGrid(dim Dim, cells ...Cell) Grid {
	set := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return Grid{Dim: dim, Cells: set}
}

// Alive reports whether the cell at (x, y) is live.
func (g Grid) Alive(x, y int) bool {
	_, ok := g.Cells[Cell{X: x, Y: y}]
	return ok
}

// Population returns the number of live cells.
func (g Grid) Population() int { return len(g.Cells) }
