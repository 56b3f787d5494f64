//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sparselife/internal/core"
	"sparselife/internal/life"
	"sparselife/internal/render"
	"sparselife/internal/ui"
	pcore "sparselife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const cellBorder = 1

// Game adapts the automaton to the ebiten.Game interface: it owns the
// current generation, picks a rule variant per tick and paces updates
// independently of the frame rate.
type Game struct {
	grid    life.Grid
	rules   []life.Rule
	current life.Rule
	seeder  func(seed int64) life.Grid

	rng     *pcore.RNG
	pacer   *core.Pacer
	painter *render.CellPainter
	hud     *ui.HUD

	cellColor  color.RGBA
	scale      int
	generation int
	paused     bool
	tickOnce   bool
	seed       int64
}

// New constructs a Game. rules must be non-empty and seeder must already be
// validated against the configured seeding mode.
func New(cfg *Config, rules []life.Rule, seeder func(seed int64) life.Grid) *Game {
	g := &Game{
		rules:     rules,
		current:   rules[0],
		seeder:    seeder,
		rng:       pcore.NewRNG(cfg.Seed),
		pacer:     core.NewPacer(cfg.GPS),
		painter:   render.NewCellPainter(cellBorder),
		hud:       ui.NewHUD(),
		cellColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		scale:     cfg.Scale,
		seed:      cfg.Seed,
	}
	g.grid = seeder(cfg.Seed)
	return g
}

// Reset reinitializes the grid from the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.grid = g.seeder(seed)
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.hud != nil {
		g.hud.Update()
	}

	steps := g.pacer.Tick()
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.step()
	}
	return nil
}

// step runs one generation: pick a variant from the enabled subset, then
// replace the current grid with the one it produces.
func (g *Game) step() {
	if len(g.rules) > 1 {
		g.current = g.rules[g.rng.IntN(len(g.rules))]
	}
	g.grid = g.current.Step(g.grid)
	g.generation++
	ebiten.SetWindowTitle("sparselife — " + g.current.Name())
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Paint(screen, g.grid, g.scale, g.cellColor)
	if g.hud != nil {
		g.hud.Draw(screen, g.current.Name(), g.generation, g.grid.Population())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Dim.W * g.scale, g.grid.Dim.H * g.scale
}
