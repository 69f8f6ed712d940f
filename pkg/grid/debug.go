package grid

import "go.uber.org/zap"

// DebugOverlay receives the primitives a grid emits when built with Debug.
type DebugOverlay interface {
	DrawLine(from, to Vec3)
	DrawLabel(text string, pos, facing Vec3)
}

// LogOverlay writes debug primitives to a zap logger at debug level.
type LogOverlay struct {
	log *zap.Logger
}

// NewLogOverlay wraps logger. A nil logger discards everything.
func NewLogOverlay(logger *zap.Logger) *LogOverlay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogOverlay{log: logger.Named("overlay")}
}

func (o *LogOverlay) DrawLine(from, to Vec3) {
	o.log.Debug("grid line", zap.Stringer("from", from), zap.Stringer("to", to))
}

func (o *LogOverlay) DrawLabel(text string, pos, facing Vec3) {
	o.log.Debug("grid label",
		zap.String("text", text),
		zap.Stringer("pos", pos),
		zap.Stringer("facing", facing),
	)
}

func (g *Grid[T]) drawDebug(overlay DebugOverlay) {
	forward := g.conv.Forward()
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			overlay.DrawLabel(Vec2i{X: x, Y: y}.String(), g.WorldPositionCenter(x, y), forward)
			overlay.DrawLine(g.WorldPosition(x, y), g.WorldPosition(x, y+1))
			overlay.DrawLine(g.WorldPosition(x, y), g.WorldPosition(x+1, y))
		}
	}
	overlay.DrawLine(g.WorldPosition(0, g.h), g.WorldPosition(g.w, g.h))
	overlay.DrawLine(g.WorldPosition(g.w, 0), g.WorldPosition(g.w, g.h))
}
