package render

import "math"

// DotLayout maps grid coordinates onto a square canvas: a fixed margin on
// every edge, dots sized so the whole population fits inside it.
type DotLayout struct {
	Canvas    float64
	Margin    float64
	Locations int
}

// Span returns the usable drawing width inside the margins.
func (l DotLayout) Span() float64 { return l.Canvas - 2*l.Margin }

// DotSize returns the dot diameter in pixels. Grids too dense for a full
// pixel per dot draw two-pixel dots that overlap their neighbors.
func (l DotLayout) DotSize() float64 {
	size := l.rawDotSize()
	if size < 1 {
		return 2
	}
	return size
}

// Crowded reports whether the grid is dense enough that dots overlap.
func (l DotLayout) Crowded() bool { return l.rawDotSize() < 1 }

func (l DotLayout) rawDotSize() float64 {
	if l.Locations <= 0 {
		return 0
	}
	return l.Span() / math.Sqrt(float64(l.Locations))
}

// CellOrigin returns the top-left corner of the cell at grid position (x, y).
func (l DotLayout) CellOrigin(x, y int) (float64, float64) {
	size := l.DotSize()
	return size*float64(x) + l.Margin, size*float64(y) + l.Margin
}

// CellCenter returns the center of the dot drawn for the cell at (x, y).
func (l DotLayout) CellCenter(x, y int) (float64, float64) {
	size := l.DotSize()
	ox, oy := l.CellOrigin(x, y)
	return ox + size/2, oy + size/2
}

// PixelScale returns the scale factor that stretches a side-length grid
// image across the span between the margins.
func (l DotLayout) PixelScale(side int) float64 {
	if side <= 0 {
		return 1
	}
	return l.Span() / float64(side)
}
