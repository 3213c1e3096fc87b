package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, A: 255},
		{B: 255, A: 255},
	}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		255, 255, 255, 255,
		255, 0, 0, 255,
		0, 0, 255, 255,
		0, 0, 255, 255, // out-of-range values clamp to the last entry
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	cells := []uint8{1, 2}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}

	fillPaletteRGBA(buf, cells, nil)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("expected cleared buffer, buf[%d] = %d", i, b)
		}
	}
}

func TestFillMaskRGBA(t *testing.T) {
	tint := color.RGBA{R: 255, G: 215, B: 0, A: 90}
	mask := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(mask))
	for i := range buf {
		buf[i] = 7
	}

	fillMaskRGBA(buf, mask, tint)

	for i, m := range mask {
		base := i * 4
		if m != 0 {
			if buf[base] != tint.R || buf[base+1] != tint.G || buf[base+2] != tint.B || buf[base+3] != tint.A {
				t.Fatalf("marked cell %d not tinted: %v", i, buf[base:base+4])
			}
			continue
		}
		for j := 0; j < 4; j++ {
			if buf[base+j] != 0 {
				t.Fatalf("unmarked cell %d not transparent: %v", i, buf[base:base+4])
			}
		}
	}
}
