package ui

import (
	"gridsys/pkg/grid"
)

// Line is a recorded grid line in world space.
type Line struct {
	From, To grid.Vec3
}

// Label is a recorded cell label in world space.
type Label struct {
	Text   string
	Pos    grid.Vec3
	Facing grid.Vec3
}

// Projector maps a world position to screen pixels.
type Projector func(pos grid.Vec3) (sx, sy float64)

// NewProjector projects onto the converter's plane with scale pixels per
// cell. Screen Y grows downward, so grid row 0 sits at the bottom of a view
// rows cells tall.
func NewProjector(conv grid.CoordinateConverter, cellSize float64, origin grid.Vec3, rows, scale int) Projector {
	ou, ov := conv.PlaneCoords(origin)
	s := float64(scale)
	return func(pos grid.Vec3) (float64, float64) {
		u, v := conv.PlaneCoords(pos)
		return (u - ou) / cellSize * s, (float64(rows) - (v-ov)/cellSize) * s
	}
}

// Overlay collects the debug primitives a grid emits at construction and
// replays them every frame. It satisfies grid.DebugOverlay.
type Overlay struct {
	lines   []Line
	labels  []Label
	project Projector
	visible bool
}

var _ grid.DebugOverlay = (*Overlay)(nil)

// NewOverlay constructs an overlay drawing through project.
func NewOverlay(project Projector) *Overlay {
	return &Overlay{project: project, visible: true}
}

func (o *Overlay) DrawLine(from, to grid.Vec3) {
	o.lines = append(o.lines, Line{From: from, To: to})
}

func (o *Overlay) DrawLabel(text string, pos, facing grid.Vec3) {
	o.labels = append(o.labels, Label{Text: text, Pos: pos, Facing: facing})
}

func (o *Overlay) Lines() []Line   { return o.lines }
func (o *Overlay) Labels() []Label { return o.labels }

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }
