//go:build ebiten

package app

import (
	"autocell/internal/core"
	"autocell/internal/render"
	"autocell/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// display adapts the ebiten window to the engine's Surface contract.
// New seeds it from the configured window size; Layout keeps it current
// once the game is running.
type display struct {
	w, h   int
	sx, sy float64
}

func (d *display) Size() (int, int) { return d.w, d.h }
func (d *display) Scale() (float64, float64) { return d.sx, d.sy }

// cursor adapts ebiten's mouse query to the engine's Pointer contract.
type cursor struct{}

func (cursor) Position() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// Game adapts the grid engine to the ebiten.Game interface.
type Game struct {
	grid    *core.Grid
	surface *display
	painter *render.CellPainter
	hud     *ui.HUD
	clock   *core.StepClock
}

// New constructs a Game and its grid engine from the configuration.
func New(cfg *Config) (*Game, error) {
	scale := ebiten.DeviceScaleFactor()
	surface := &display{
		w:  int(float64(cfg.Width) * scale),
		h:  int(float64(cfg.Height) * scale),
		sx: scale,
		sy: scale,
	}
	grid, err := core.New(cfg.Side, cfg.Columns, cfg.Rows, cfg.Seed, surface, cursor{})
	if err != nil {
		return nil, err
	}
	return &Game{
		grid:    grid,
		surface: surface,
		painter: render.NewCellPainter(),
		hud:     ui.NewHUD("Auto Cell"),
		clock:   core.NewStepClock(cfg.Steps),
	}, nil
}

// Update forwards this frame's input to the engine and advances it.
// Running-mode generations are paced by the step clock so the board
// stays readable while rendering continues at full rate; editing-mode
// jitter animates every frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.grid.HandleInput(core.Event{Kind: core.EventPointerMoved})
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.grid.HandleInput(core.Event{Kind: core.EventButtonDown, Button: core.ButtonLeft})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.grid.HandleInput(core.Event{Kind: core.EventKeyDown, Key: core.KeyCommit})
	}

	if g.grid.Running() && !g.clock.Due() {
		return nil
	}
	return g.grid.Advance()
}

// Draw renders every cell and the HUD status line.
func (g *Game) Draw(screen *ebiten.Image) {
	sx, sy := g.surface.Scale()
	g.painter.Draw(screen, g.grid, sx, sy)
	g.hud.Draw(screen, g.grid.Running(), g.grid.Ready())
}

// Layout reports the screen size in physical pixels and keeps the
// engine's view of the display current. The engine re-derives its cell
// layout when the scale factor drifts.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	g.surface.w = int(float64(outsideWidth) * scale)
	g.surface.h = int(float64(outsideHeight) * scale)
	g.surface.sx = scale
	g.surface.sy = scale
	return g.surface.w, g.surface.h
}
