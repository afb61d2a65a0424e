//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sparse-life/internal/render"
	"sparse-life/internal/ui"
)

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	painter *render.Painter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	keys []ebiten.Key
}

// New constructs a Game drawing onto a surface described by s. The surface
// image is owned by the Game until Close.
func New(d *Driver, s render.Screen) *Game {
	return &Game{
		driver:   d,
		painter:  render.NewPainter(s),
		hud:      ui.NewHUD(),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update polls the keys pressed this tick and advances the simulation. Any
// key ends the loop.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	done, err := g.driver.Frame(len(g.keys) > 0)
	if err != nil {
		return err
	}
	if done {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.driver.Grid()
	g.painter.Draw(screen, grid.LiveCells(), g.onColor, g.offColor)
	g.hud.Draw(screen, grid)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.painter.Screen()
	return s.Width, s.Height
}

// Close releases the surface image.
func (g *Game) Close() {
	g.painter.Dispose()
}
