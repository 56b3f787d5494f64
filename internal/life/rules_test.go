package life

import (
	"maps"
	"testing"
)

func TestEmptyGridFixedPoint(t *testing.T) {
	for name, rule := range Variants() {
		next := rule.Step(NewGrid(Dim{W: 10, H: 10}))
		if next.Population() != 0 {
			t.Fatalf("%s: empty grid produced %d live cells", name, next.Population())
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	block := NewGrid(Dim{W: 4, H: 4},
		Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}, Cell{X: 0, Y: 1}, Cell{X: 1, Y: 1})

	next := Conway.Step(block)
	if !maps.Equal(next.Cells, block.Cells) {
		t.Fatalf("2x2 block is a still life, got %v", next.Cells)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := NewGrid(Dim{W: 3, H: 3},
		Cell{X: 1, Y: 0}, Cell{X: 1, Y: 1}, Cell{X: 1, Y: 2})

	horizontal := Conway.Step(vertical)
	expects := map[Cell]struct{}{
		{X: 0, Y: 1}: {},
		{X: 1, Y: 1}: {},
		{X: 2, Y: 1}: {},
	}
	if !maps.Equal(horizontal.Cells, expects) {
		t.Fatalf("after one step expected horizontal blinker, got %v", horizontal.Cells)
	}

	back := Conway.Step(horizontal)
	if !maps.Equal(back.Cells, vertical.Cells) {
		t.Fatalf("after two steps expected original vertical blinker, got %v", back.Cells)
	}
}

func TestSeedsAllCellsDie(t *testing.T) {
	grid := NewGrid(Dim{W: 5, H: 5},
		Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}, Cell{X: 1, Y: 2},
		Cell{X: 2, Y: 2}, Cell{X: 4, Y: 4})

	next := Seeds.Step(grid)
	for c := range grid.Cells {
		if next.Alive(c.X, c.Y) {
			t.Fatalf("seeds must kill every live cell, (%d,%d) survived", c.X, c.Y)
		}
	}
}

func TestHighLifeSixNeighbourBirth(t *testing.T) {
	// (0,0) is dead with exactly 6 live neighbours.
	grid := NewGrid(Dim{W: 5, H: 5},
		Cell{X: -1, Y: -1}, Cell{X: 0, Y: -1}, Cell{X: 1, Y: -1},
		Cell{X: -1, Y: 0}, Cell{X: 1, Y: 0}, Cell{X: -1, Y: 1})

	if !HighLife.Step(grid).Alive(0, 0) {
		t.Fatal("highlife must birth a dead cell with 6 live neighbours")
	}
	if Conway.Step(grid).Alive(0, 0) {
		t.Fatal("conway must not birth a dead cell with 6 live neighbours")
	}
}

func TestStepDeterministic(t *testing.T) {
	mk := func() Grid {
		return NewGrid(Dim{W: 6, H: 6},
			Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}, Cell{X: 3, Y: 1},
			Cell{X: 3, Y: 2}, Cell{X: 2, Y: 3})
	}

	for name, rule := range Variants() {
		a := rule.Step(mk())
		b := rule.Step(mk())
		if !maps.Equal(a.Cells, b.Cells) {
			t.Fatalf("%s: equal inputs produced different generations", name)
		}
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	grid := NewGrid(Dim{W: 6, H: 6},
		Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}, Cell{X: 3, Y: 1})
	snapshot := maps.Clone(grid.Cells)

	for name, rule := range Variants() {
		rule.Step(grid)
		if !maps.Equal(grid.Cells, snapshot) {
			t.Fatalf("%s: Step mutated its input grid", name)
		}
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"conway", "highlife", "daynight", "seeds"} {
		rule, ok := Lookup(name)
		if !ok {
			t.Fatalf("variant %q not registered", name)
		}
		if rule.Name() != name {
			t.Fatalf("variant %q registered under name %q", name, rule.Name())
		}
	}
	if _, ok := Lookup("wireworld"); ok {
		t.Fatal("unexpected variant registered")
	}
}
