//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"sparse-life/pkg/sims/life"
)

// Painter draws live cells as squares through a single surface-sized image.
// The image is allocated once and must be released with Dispose.
type Painter struct {
	screen Screen
	img    *ebiten.Image
	buf    []byte
	rects  []image.Rectangle
}

// NewPainter allocates a painter for the given surface.
func NewPainter(s Screen) *Painter {
	return &Painter{
		screen: s,
		img:    ebiten.NewImage(s.Width, s.Height),
		buf:    make([]byte, 4*s.Width*s.Height),
	}
}

// Draw rasterises cells and draws the result onto dst.
func (p *Painter) Draw(dst *ebiten.Image, cells []life.Cell, on, off color.Color) {
	p.rects = p.screen.Rects(p.rects, cells)
	FillSquares(p.buf, p.screen.Width, p.screen.Height, p.rects, on, off)
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Screen returns the surface geometry.
func (p *Painter) Screen() Screen { return p.screen }

// Dispose releases the backing image.
func (p *Painter) Dispose() {
	if p.img != nil {
		p.img.Dispose()
		p.img = nil
	}
}
