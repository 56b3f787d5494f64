package life

// Rule is one automaton variant: a survival predicate applied to live cells
// and a birth predicate applied to dead positions, both over the count of
// live Moore neighbours.
type Rule struct {
	name     string
	survives func(liveNeighbours int) bool
	born     func(liveNeighbours int) bool
}

// Name returns the variant identifier used for registry lookup and display.
func (r Rule) Name() string { return r.name }

// Step advances the grid by one generation under this rule. The input grid is
// left untouched; the result shares its Dim and carries a freshly built cell
// set.
//
// The pass over live cells doubles as the census for dead positions: every
// time a dead position shows up in some live cell's neighbourhood its tally
// is incremented, so by the end of the pass the tally holds each candidate
// position's live-neighbour count. Births then read the tally directly
// instead of re-classifying most of the board, keeping a step at
// O(live cells) for sparse grids.
func (r Rule) Step(g Grid) Grid {
	next := make(map[Cell]struct{}, len(g.Cells))
	tally := make(map[Cell]int)

	for c := range g.Cells {
		n := g.Neighbours(c.X, c.Y)
		if r.survives(len(n.Alive)) {
			next[c] = struct{}{}
		}
		for pos := range n.Dead {
			tally[pos]++
		}
	}

	for pos, count := range tally {
		if r.born(count) {
			next[pos] = struct{}{}
		}
	}

	return Grid{Dim: g.Dim, Cells: next}
}

// The four shipped variants. Seeds never retains a live cell, so its survival
// predicate is constant false.
var (
	Conway = Rule{
		name:     "conway",
		survives: func(n int) bool { return n == 2 || n == 3 },
		born:     func(n int) bool { return n == 3 },
	}

	HighLife = Rule{
		name:     "highlife",
		survives: func(n int) bool { return n == 2 || n == 3 },
		born:     func(n int) bool { return n == 3 || n == 6 },
	}

	DayNight = Rule{
		name:     "daynight",
		survives: func(n int) bool { return n == 3 || n == 4 || n >= 6 },
		born:     func(n int) bool { return n == 3 || n >= 6 },
	}

	Seeds = Rule{
		name:     "seeds",
		survives: func(int) bool { return false },
		born:     func(n int) bool { return n == 2 },
	}
)

var rules = map[string]Rule{}

// Register adds a rule variant under its own name.
func Register(r Rule) {
	if r.name == "" || r.survives == nil || r.born == nil {
		return
	}
	rules[r.name] = r
}

// Variants exposes the registry of available rule variants.
func Variants() map[string]Rule {
	return rules
}

// Lookup returns the registered rule with the given name.
func Lookup(name string) (Rule, bool) {
	r, ok := rules[name]
	return r, ok
}

func init() {
	Register(Conway)
	Register(HighLife)
	Register(DayNight)
	Register(Seeds)
}
