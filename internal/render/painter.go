//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"termlife/internal/core"
)

// GridPainter uploads a grid into a single image, one pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads g into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	if g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	fillRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
