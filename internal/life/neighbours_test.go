package life

import "testing"

func TestNeighbourPartition(t *testing.T) {
	grid := NewGrid(Dim{W: 5, H: 5},
		Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}, Cell{X: 2, Y: 2})

	queries := []Cell{
		{X: 2, Y: 2},
		{X: 0, Y: 0},
		{X: -7, Y: 4},
		{X: 1000000, Y: -1000000},
	}

	for _, q := range queries {
		n := grid.Neighbours(q.X, q.Y)
		if len(n.Alive)+len(n.Dead) != 8 {
			t.Fatalf("query (%d,%d): partition has %d+%d entries, expected 8",
				q.X, q.Y, len(n.Alive), len(n.Dead))
		}
		for pos := range n.Alive {
			if _, overlap := n.Dead[pos]; overlap {
				t.Fatalf("query (%d,%d): position (%d,%d) in both sets", q.X, q.Y, pos.X, pos.Y)
			}
			if !grid.Alive(pos.X, pos.Y) {
				t.Fatalf("query (%d,%d): dead position (%d,%d) classified alive", q.X, q.Y, pos.X, pos.Y)
			}
		}
		for pos := range n.Dead {
			if grid.Alive(pos.X, pos.Y) {
				t.Fatalf("query (%d,%d): live position (%d,%d) classified dead", q.X, q.Y, pos.X, pos.Y)
			}
		}
	}
}

func TestNeighbourCounts(t *testing.T) {
	grid := NewGrid(Dim{W: 3, H: 3},
		Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}, Cell{X: 2, Y: 0})

	n := grid.Neighbours(1, 1)
	if len(n.Alive) != 3 {
		t.Fatalf("expected 3 live neighbours, got %d", len(n.Alive))
	}

	n = grid.Neighbours(1, 0)
	if len(n.Alive) != 2 {
		t.Fatalf("live cell itself must not count, expected 2 live neighbours, got %d", len(n.Alive))
	}

	empty := NewGrid(Dim{W: 3, H: 3})
	n = empty.Neighbours(1, 1)
	if len(n.Alive) != 0 || len(n.Dead) != 8 {
		t.Fatalf("empty grid: expected 0 alive / 8 dead, got %d/%d", len(n.Alive), len(n.Dead))
	}
}
