//go:build !ebiten

package ui

// HUD is a placeholder for headless builds.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD() *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder to satisfy the GUI API shape.
func (h *HUD) Draw(any, string, int, int) {}
