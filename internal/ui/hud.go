//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the current variant name, generation number and live population
// in the top-left corner of the view.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD; it starts visible.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update handles the HUD visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the status lines onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, variant string, generation, population int) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("rule: %s", variant),
		fmt.Sprintf("gen:  %d", generation),
		fmt.Sprintf("pop:  %d", population),
	}
	y := face.Metrics().Height.Ceil() + 2
	for i, line := range lines {
		// Offset shadow keeps the text readable over live cells.
		text.Draw(screen, line, face, 5, y*(i+1)+1, color.Black)
		text.Draw(screen, line, face, 4, y*(i+1), color.RGBA{R: 120, G: 220, B: 120, A: 255})
	}
}
