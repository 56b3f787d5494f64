package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"sparselife/internal/life"
	pcore "sparselife/pkg/core"

	"golang.org/x/sync/errgroup"
)

type trajectory struct {
	rule    string
	samples []sample
}

type sample struct {
	generation int
	population int
}

func main() {
	rulesArg := flag.String("rules", "conway,highlife,daynight,seeds", "comma-separated rule variants to run")
	steps := flag.Int("steps", 200, "generations to simulate per variant")
	every := flag.Int("every", 20, "sampling interval in generations")
	width := flag.Int("width", 128, "grid width in cells")
	height := flag.Int("height", 128, "grid height in cells")
	density := flag.Float64("density", 0.15, "live-cell probability for the shared starting grid")
	seed := flag.Int64("seed", 1337, "seed for deterministic runs")
	flag.Parse()

	var rules []life.Rule
	for _, name := range strings.Split(*rulesArg, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		rule, ok := life.Lookup(name)
		if !ok {
			log.Fatalf("unknown rule %q", name)
		}
		rules = append(rules, rule)
	}
	if len(rules) == 0 {
		log.Fatal("no rules enabled")
	}
	if *every <= 0 {
		*every = 1
	}

	dim := life.Dim{W: *width, H: *height}
	results := make([]trajectory, len(rules))

	// Every variant steps its own grid, so the runs share nothing and can
	// proceed in parallel. Each starts from an identical seeding.
	var group errgroup.Group
	for i, rule := range rules {
		group.Go(func() error {
			grid := life.Random(dim, *density, pcore.NewRNG(*seed).Source())
			tr := trajectory{rule: rule.Name()}
			tr.samples = append(tr.samples, sample{generation: 0, population: grid.Population()})
			for gen := 1; gen <= *steps; gen++ {
				grid = rule.Step(grid)
				if gen%*every == 0 || gen == *steps {
					tr.samples = append(tr.samples, sample{generation: gen, population: grid.Population()})
				}
			}
			results[i] = tr
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].rule < results[j].rule })
	for _, tr := range results {
		for _, s := range tr.samples {
			fmt.Printf("%-10s gen=%-6d pop=%d\n", tr.rule, s.generation, s.population)
		}
	}
}
