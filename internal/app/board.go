package app

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"go.uber.org/zap"

	"gridsys/internal/config"
	"gridsys/internal/core"
	"gridsys/internal/render"
	"gridsys/internal/ui"
	pcore "gridsys/pkg/core"
	"gridsys/pkg/grid"
)

// Cell is the payload stored in every board cell: a marker index wrapped in
// a GridObject so each cell knows its own coordinates.
type Cell = *grid.GridObject[int]

// Palette lists marker colors; index 0 is an empty cell.
var Palette = []color.RGBA{
	{R: 24, G: 26, B: 32, A: 255},
	{R: 86, G: 180, B: 233, A: 255},
	{R: 230, G: 159, B: 0, A: 255},
	{R: 0, G: 158, B: 115, A: 255},
	{R: 204, G: 121, B: 167, A: 255},
}

// scatterMarkers are the non-empty palette indices Scatter chooses from.
var scatterMarkers = func() []int {
	markers := make([]int, 0, len(Palette)-1)
	for i := 1; i < len(Palette); i++ {
		markers = append(markers, i)
	}
	return markers
}()

// Board owns the grid shared by the viewer and the probe along with the
// bookkeeping that reacts to its change notifications.
type Board struct {
	cfg     config.Config
	grid    *grid.Grid[Cell]
	status  *ui.Status
	rng     *pcore.RNG
	scatter *core.FixedStep
	log     *zap.Logger
}

// NewBoard builds the board grid from cfg. overlay may be nil.
func NewBoard(cfg config.Config, logger *zap.Logger, overlay grid.DebugOverlay) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Board{
		cfg:     cfg,
		rng:     pcore.NewRNG(cfg.Seed),
		scatter: core.NewFixedStep(cfg.ScatterRate),
		log:     logger,
	}
	b.grid = grid.NewObjectGrid[int](cfg.GridConfig(logger.Named("grid"), overlay))
	b.status = ui.NewStatus(b.Title())
	b.grid.OnValueChanged(func(x, y int, c Cell) {
		b.status.Changed(x, y, c.Value())
	})
	b.grid.OnValueChanged(func(x, y int, c Cell) {
		b.log.Debug("cell changed", zap.Int("x", x), zap.Int("y", y), zap.Int("marker", c.Value()))
	})
	return b
}

func (b *Board) Grid() *grid.Grid[Cell] { return b.grid }
func (b *Board) Status() *ui.Status     { return b.status }

// Title describes the board for window titles and the HUD.
func (b *Board) Title() string {
	g := b.grid
	return fmt.Sprintf("gridsys %dx%d %s cell=%g", g.Width(), g.Height(), strings.ToLower(b.cfg.Converter), g.CellSize())
}

// Shade colors a cell by its marker.
func (b *Board) Shade() render.Shade[Cell] {
	return render.PaletteShade(Palette, func(c Cell) int {
		if c == nil {
			return 0
		}
		return c.Value()
	})
}

// Mark sets the marker of the cell containing pos and republishes the cell
// so observers see the change. It reports whether pos was on the grid.
func (b *Board) Mark(pos grid.Vec3, marker int) bool {
	c := b.grid.ValueAt(pos)
	if c == nil {
		return false
	}
	c.SetValue(marker)
	b.grid.SetValueAt(pos, c)
	return true
}

// Cycle advances the marker of the cell containing pos to the next color.
func (b *Board) Cycle(pos grid.Vec3) bool {
	c := b.grid.ValueAt(pos)
	if c == nil {
		return false
	}
	return b.Mark(pos, (c.Value()+1)%len(Palette))
}

// Scatter marks n random world points around the grid. Points may fall off the
// grid and are then dropped. It returns how many landed.
func (b *Board) Scatter(n int) int {
	landed := 0
	for i := 0; i < n; i++ {
		pos := pcore.WorldPoint(b.rng, b.grid, 1)
		marker := pcore.Pick(b.rng, scatterMarkers)
		if b.Mark(pos, marker) {
			landed++
		}
	}
	return landed
}

// Tick runs the timed scatter for the wall-clock time now.
func (b *Board) Tick(now time.Time) int {
	n := b.scatter.Advance(now)
	if n == 0 {
		return 0
	}
	return b.Scatter(n)
}

// Reset clears every marker. Cell objects stay in place and observers are not
// notified.
func (b *Board) Reset() {
	b.grid.Each(func(_, _ int, c Cell) { c.SetValue(0) })
}

// ScreenToWorld maps a screen pixel to the world position under it for a view
// drawn at scale pixels per cell with grid row 0 at the bottom.
func (b *Board) ScreenToWorld(sx, sy float64) grid.Vec3 {
	scale := float64(b.cfg.Scale)
	return b.grid.WorldPositionAt(sx/scale, float64(b.grid.Height())-sy/scale)
}

// Hover updates the status line for the cell under pos.
func (b *Board) Hover(pos grid.Vec3) {
	x, y := b.grid.XY(pos)
	in := b.grid.InBounds(x, y)
	var marker any
	if c := b.grid.Value(x, y); c != nil {
		marker = c.Value()
	}
	b.status.Hover(x, y, in, marker)
}

// Dump renders the markers as text, top row first. Empty cells print as '.'.
func (b *Board) Dump() string {
	g := b.grid
	var sb strings.Builder
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			m := g.Value(x, y).Value()
			if m == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('0' + min(m, 9)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
