//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"sparse-life/pkg/sims/life"
)

const (
	hudMarginX = 8
	hudMarginY = 16
)

// HUD renders the generation and population in the top-left corner.
type HUD struct {
	face  font.Face
	color color.Color
}

// NewHUD constructs a HUD using the built-in bitmap face.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13, color: color.RGBA{R: 120, G: 220, B: 120, A: 255}}
}

// Draw paints the status line for g onto screen.
func (h *HUD) Draw(screen *ebiten.Image, g *life.Grid) {
	if h == nil {
		return
	}
	text.Draw(screen, Label(g), h.face, hudMarginX, hudMarginY, h.color)
}
