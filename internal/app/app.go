//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"gridsys/internal/config"
	"gridsys/internal/render"
	"gridsys/internal/ui"
	"gridsys/pkg/grid"
)

const hudWidth = 260

// Game adapts a Board to the ebiten.Game interface.
type Game struct {
	board   *Board
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	shade   render.Shade[Cell]
	scale   int
}

// New constructs a Game for cfg.
func New(cfg config.Config, logger *zap.Logger) *Game {
	gc := cfg.GridConfig(nil, nil)
	conv := gc.Converter
	if conv == nil {
		conv = grid.VerticalConverter{}
	}
	overlay := ui.NewOverlay(ui.NewProjector(conv, gc.CellSize, gc.Origin, gc.Height, cfg.Scale))

	board := NewBoard(cfg, logger, overlay)
	return &Game{
		board:   board,
		painter: render.NewGridPainter(board.Grid().Width(), board.Grid().Height()),
		overlay: overlay,
		hud:     ui.NewHUD(board.Status(), hudWidth),
		shade:   board.Shade(),
		scale:   cfg.Scale,
	}
}

// Update handles per-frame input and the timed scatter.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.board.Scatter(1)
	}

	cx, cy := ebiten.CursorPosition()
	pos := g.board.ScreenToWorld(float64(cx)+0.5, float64(cy)+0.5)
	g.board.Hover(pos)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.board.Cycle(pos)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.board.Mark(pos, 0)
	}

	g.board.Tick(time.Now())
	return nil
}

// Draw renders the board, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	render.FillGridRGBA(g.painter.Pixels(), g.board.Grid(), g.shade)
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

// Title returns the window title.
func (g *Game) Title() string { return g.board.Title() }
