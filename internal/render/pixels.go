package render

import (
	"image/color"

	"gridsys/pkg/grid"
)

// Shade maps a cell value to a pixel color.
type Shade[T any] func(T) color.RGBA

// PaletteShade builds a Shade from an index function. Indices past the end of
// the palette use the last entry and negative indices use the first. An empty
// palette yields transparent black.
func PaletteShade[T any](palette []color.RGBA, index func(T) int) Shade[T] {
	return func(v T) color.RGBA {
		if len(palette) == 0 {
			return color.RGBA{}
		}
		idx := index(v)
		if idx < 0 {
			idx = 0
		}
		if last := len(palette) - 1; idx > last {
			idx = last
		}
		return palette[idx]
	}
}

// FillGridRGBA writes one RGBA pixel per cell into buf. Grid row 0 lands on
// the bottom image row so that grid Y points up on screen. buf must hold
// 4*width*height bytes; shorter buffers are left untouched.
func FillGridRGBA[T any](buf []byte, g *grid.Grid[T], shade Shade[T]) {
	w, h := g.Width(), g.Height()
	if len(buf) < 4*w*h {
		return
	}
	g.Each(func(x, y int, v T) {
		col := shade(v)
		base := ((h-1-y)*w + x) * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	})
}
