//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads frames into a single w×h image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), img: ebiten.NewImage(w, h)}
}

// Blit uploads the provided frame into the painter image and draws it. Frames
// of the wrong length are dropped.
func (gp *GridPainter) Blit(dst *ebiten.Image, frame []uint32, on, off color.Color, scale int) {
	if len(frame) != gp.w*gp.h {
		return
	}
	FillFrameRGBA(gp.buf, frame, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
