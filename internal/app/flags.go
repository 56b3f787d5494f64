package app

import (
	"flag"
	"fmt"
	"strings"

	"sparselife/internal/life"
	pcore "sparselife/pkg/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rules     string
	Width     int
	Height    int
	Scale     int
	GPS       int
	Seed      int64
	Density   float64
	Seeding   string
	Threshold float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:     "conway",
		Width:     200,
		Height:    200,
		Scale:     3,
		GPS:       10,
		Seed:      42,
		Density:   0.1,
		Seeding:   "random",
		Threshold: 0.2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rules, "rules", c.Rules, "comma-separated rule variants; each generation picks one at random")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid generation")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random seeding")
	fs.StringVar(&c.Seeding, "seeding", c.Seeding, "initial grid mode: random or noise")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "noise threshold for noise seeding")
}

// EnabledRules resolves the -rules list against the variant registry.
func (c *Config) EnabledRules() ([]life.Rule, error) {
	var rules []life.Rule
	for _, name := range strings.Split(c.Rules, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		rule, ok := life.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
		rules = append(rules, rule)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules enabled")
	}
	return rules, nil
}

// Seeder returns the initial-grid constructor selected by -seeding.
func (c *Config) Seeder() (func(seed int64) life.Grid, error) {
	dim := life.Dim{W: c.Width, H: c.Height}
	switch c.Seeding {
	case "random":
		return func(seed int64) life.Grid {
			return life.Random(dim, c.Density, pcore.NewRNG(seed).Source())
		}, nil
	case "noise":
		return func(seed int64) life.Grid {
			return life.Noise(dim, c.Threshold, seed)
		}, nil
	default:
		return nil, fmt.Errorf("unknown seeding mode %q", c.Seeding)
	}
}
