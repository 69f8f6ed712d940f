//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Width of one glyph of the ebitenutil debug font.
const labelGlyphW = 6

var lineColor = color.RGBA{R: 255, G: 255, B: 255, A: 160}

// Draw renders the recorded lines and labels onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.visible || o.project == nil {
		return
	}
	for _, l := range o.lines {
		x1, y1 := o.project(l.From)
		x2, y2 := o.project(l.To)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, lineColor, false)
	}
	for _, lb := range o.labels {
		sx, sy := o.project(lb.Pos)
		ebitenutil.DebugPrintAt(screen, lb.Text, int(sx)-len(lb.Text)*labelGlyphW/2, int(sy)-8)
	}
}
