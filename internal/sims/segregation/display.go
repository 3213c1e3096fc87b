package segregation

import "image/color"

// Indexed by Kind: empty cells render as the white background.
var segregationPalette = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
}

// Palette exposes the color palette used for rendering the world.
func (w *World) Palette() []color.RGBA {
	return segregationPalette
}
