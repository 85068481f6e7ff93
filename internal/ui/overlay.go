//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	gridLineColor = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	hoverColor    = color.RGBA{R: 90, G: 160, B: 230, A: 255}
)

// Overlay draws optional grid lines and an outline around the hovered cell.
type Overlay struct {
	n, scale int
	showGrid bool
	hoverRow int
	hoverCol int
	hoverOK  bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay for an n×n board drawn at scale.
func NewOverlay(n, scale int) *Overlay {
	o := &Overlay{n: n, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.hoverRow, o.hoverCol, o.hoverOK = hoveredCell(mx, my, o.n, o.scale)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.scale < 3 {
		return
	}
	px := float64(o.n * o.scale)
	if o.showGrid {
		for i := 1; i < o.n; i++ {
			p := float64(i * o.scale)
			o.fillRect(screen, p, 0, 1, px, gridLineColor)
			o.fillRect(screen, 0, p, px, 1, gridLineColor)
		}
	}
	if o.hoverOK {
		x := float64(o.hoverCol * o.scale)
		y := float64(o.hoverRow * o.scale)
		s := float64(o.scale)
		o.fillRect(screen, x, y, s, 1, hoverColor)
		o.fillRect(screen, x, y+s-1, s, 1, hoverColor)
		o.fillRect(screen, x, y, 1, s, hoverColor)
		o.fillRect(screen, x+s-1, y, 1, s, hoverColor)
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
