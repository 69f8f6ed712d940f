//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*Status, int) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
