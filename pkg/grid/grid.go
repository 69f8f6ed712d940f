// Package grid maps world-space positions onto a fixed 2D array of cells.
//
// A Grid never reports errors for coordinates: reads outside the grid return
// the zero value and writes outside the grid are dropped. Observers are
// notified synchronously after each successful write.
package grid

import "go.uber.org/zap"

// Config describes a grid at construction time.
type Config struct {
	Width    int
	Height   int
	CellSize float64
	// Origin is the world position of cell (0,0)'s corner.
	Origin Vec3
	// Converter defaults to VerticalConverter when nil.
	Converter CoordinateConverter

	// Debug draws grid lines and cell labels once during construction.
	Debug bool
	// Overlay receives debug primitives. When Debug is set and Overlay is
	// nil a LogOverlay over Logger is used.
	Overlay DebugOverlay

	Logger *zap.Logger
}

// Grid stores one value of type T per cell in row-major order.
type Grid[T any] struct {
	w, h     int
	cellSize float64
	origin   Vec3
	conv     CoordinateConverter
	data     []T
	log      *zap.Logger

	subs    []subscriber[T]
	nextSub Subscription
}

// NewGrid allocates a zero-valued grid. Dimensions are not validated;
// negative sizes are treated as zero, which leaves every coordinate out of
// bounds.
func NewGrid[T any](cfg Config) *Grid[T] {
	w, h := max(cfg.Width, 0), max(cfg.Height, 0)
	conv := cfg.Converter
	if conv == nil {
		conv = VerticalConverter{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Grid[T]{
		w:        w,
		h:        h,
		cellSize: cfg.CellSize,
		origin:   cfg.Origin,
		conv:     conv,
		data:     make([]T, w*h),
		log:      logger,
	}
	g.log.Debug("grid allocated",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Float64("cell_size", cfg.CellSize),
		zap.Stringer("origin", cfg.Origin),
	)

	if cfg.Debug {
		overlay := cfg.Overlay
		if overlay == nil {
			overlay = NewLogOverlay(logger)
		}
		g.drawDebug(overlay)
	}
	return g
}

func (g *Grid[T]) Width() int                     { return g.w }
func (g *Grid[T]) Height() int                    { return g.h }
func (g *Grid[T]) CellSize() float64              { return g.cellSize }
func (g *Grid[T]) Origin() Vec3                   { return g.origin }
func (g *Grid[T]) Converter() CoordinateConverter { return g.conv }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *Grid[T]) index(x, y int) int { return y*g.w + x }

// Value returns the value at (x, y), or the zero value when out of bounds.
func (g *Grid[T]) Value(x, y int) T {
	if !g.InBounds(x, y) {
		var zero T
		return zero
	}
	return g.data[g.index(x, y)]
}

// ValueAt returns the value of the cell containing pos.
func (g *Grid[T]) ValueAt(pos Vec3) T {
	x, y := g.XY(pos)
	return g.Value(x, y)
}

// SetValue stores value at (x, y) and notifies observers. Out-of-bounds
// writes are ignored.
func (g *Grid[T]) SetValue(x, y int, value T) {
	if !g.InBounds(x, y) {
		g.log.Debug("set outside grid ignored", zap.Int("x", x), zap.Int("y", y))
		return
	}
	g.data[g.index(x, y)] = value
	g.notify(x, y, value)
}

// SetValueAt stores value in the cell containing pos.
func (g *Grid[T]) SetValueAt(pos Vec3, value T) {
	x, y := g.XY(pos)
	g.SetValue(x, y, value)
}

// XY converts a world position to grid coordinates without a bounds check.
func (g *Grid[T]) XY(pos Vec3) (int, int) {
	c := g.conv.WorldToGrid(pos, g.cellSize, g.origin)
	return c.X, c.Y
}

// WorldPosition returns the world position of the corner of cell (x, y).
func (g *Grid[T]) WorldPosition(x, y int) Vec3 {
	return g.conv.GridToWorld(x, y, g.cellSize, g.origin)
}

// WorldPositionCenter returns the world position of the center of cell (x, y).
func (g *Grid[T]) WorldPositionCenter(x, y int) Vec3 {
	return g.conv.GridToWorldCenter(x, y, g.cellSize, g.origin)
}

// WorldPositionAt returns the world position at fractional grid coordinates
// (fx, fy), measured from the corner of cell (0,0).
func (g *Grid[T]) WorldPositionAt(fx, fy float64) Vec3 {
	corner := g.WorldPosition(0, 0)
	axisX := g.WorldPosition(1, 0).Sub(corner)
	axisY := g.WorldPosition(0, 1).Sub(corner)
	return corner.Add(axisX.Scale(fx)).Add(axisY.Scale(fy))
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(x, y int, value T)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			fn(x, y, g.data[g.index(x, y)])
		}
	}
}

// Clear resets every cell to the zero value. Observers are not notified.
func (g *Grid[T]) Clear() {
	clear(g.data)
}
