//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image from palette-indexed cell data and
// draws it stretched across the canvas.
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

// Blit uploads the provided cells into the painter image and draws it scaled
// and offset onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale, offsetX, offsetY float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// MaskPainter draws a translucent tint over marked cells, aligned with the
// grid image drawn by GridPainter.
type MaskPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewMaskPainter allocates a mask painter for a grid of size w*h.
func NewMaskPainter(w, h int) *MaskPainter {
	mp := &MaskPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	mp.img = ebiten.NewImage(w, h)
	return mp
}

// Blit uploads the mask and draws it over dst with the same transform as the
// base grid.
func (mp *MaskPainter) Blit(dst *ebiten.Image, mask []uint8, tint color.RGBA, scale, offsetX, offsetY float64) {
	if len(mask) != mp.w*mp.h {
		return
	}
	fillMaskRGBA(mp.buf, mask, tint)
	mp.img.ReplacePixels(mp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	dst.DrawImage(mp.img, op)
}

// DotPainter draws each occupied cell as a filled circle laid out by a
// DotLayout. Empty cells are left to the background.
type DotPainter struct {
	layout DotLayout
	side   int
}

// NewDotPainter builds a painter for a square grid of the given side.
func NewDotPainter(layout DotLayout, side int) *DotPainter {
	return &DotPainter{layout: layout, side: side}
}

// Blit draws one antialiased dot per occupied cell, colored by the palette.
func (dp *DotPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA) {
	if len(cells) != dp.side*dp.side || len(palette) == 0 {
		return
	}
	size := dp.layout.DotSize()
	radius := float32(size / 2)
	last := len(palette) - 1
	for y := 0; y < dp.side; y++ {
		cy := float32(size*float64(y) + dp.layout.Margin + size/2)
		for x := 0; x < dp.side; x++ {
			c := int(cells[y*dp.side+x])
			if c == 0 {
				continue
			}
			if c > last {
				c = last
			}
			cx := float32(size*float64(x) + dp.layout.Margin + size/2)
			vector.DrawFilledCircle(dst, cx, cy, radius, palette[c], true)
		}
	}
}

// Ghost draws a single fading dot at (x, y). Alpha is in [0, 1]; the color
// components are premultiplied before drawing.
func (dp *DotPainter) Ghost(dst *ebiten.Image, x, y int, col color.RGBA, alpha float32) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	faded := color.RGBA{
		R: uint8(float32(col.R) * alpha),
		G: uint8(float32(col.G) * alpha),
		B: uint8(float32(col.B) * alpha),
		A: uint8(float32(col.A) * alpha),
	}
	cx, cy := dp.layout.CellCenter(x, y)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(dp.layout.DotSize()/2), faded, true)
}
