//go:build !ebiten

package ui

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
