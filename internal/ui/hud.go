//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 15
)

// HUD renders a Status panel in the top-left corner of the view.
type HUD struct {
	status *Status
	width  int
}

// NewHUD constructs a HUD for status, width pixels wide.
func NewHUD(status *Status, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{status: status, width: width}
}

// Draw renders the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.status == nil || h.width == 0 {
		return
	}
	lines := h.status.Lines()
	height := hudPadding*2 + len(lines)*hudLineHeight
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(height), color.RGBA{A: 170}, false)

	face := basicfont.Face7x13
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, color.White)
	}
}
