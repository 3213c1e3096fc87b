package render

import (
	"math"
	"testing"
)

func TestDotSizeClassicGeometry(t *testing.T) {
	layout := DotLayout{Canvas: 400, Margin: 50, Locations: 90000}

	if got := layout.Span(); got != 300 {
		t.Fatalf("expected span 300, got %v", got)
	}
	// 300 usable pixels over sqrt(90000)=300 columns leaves exactly one
	// pixel per dot.
	if got := layout.DotSize(); got != 1 {
		t.Fatalf("expected dot size 1, got %v", got)
	}
	if layout.Crowded() {
		t.Fatal("one pixel per dot is not crowded")
	}
}

func TestDotSizeBumpsSubPixelDots(t *testing.T) {
	layout := DotLayout{Canvas: 400, Margin: 50, Locations: 160000}

	// sqrt(160000)=400 columns over 300 pixels is 0.75 per dot; sub-pixel
	// dots are drawn at two pixels and overlap.
	if got := layout.DotSize(); got != 2 {
		t.Fatalf("expected bumped dot size 2, got %v", got)
	}
	if !layout.Crowded() {
		t.Fatal("sub-pixel dots should report crowded")
	}
}

func TestCellGeometry(t *testing.T) {
	layout := DotLayout{Canvas: 400, Margin: 50, Locations: 900}

	size := layout.DotSize()
	if math.Abs(size-10) > 1e-9 {
		t.Fatalf("expected dot size 10, got %v", size)
	}

	ox, oy := layout.CellOrigin(0, 0)
	if ox != 50 || oy != 50 {
		t.Fatalf("expected first cell at the margin, got (%v, %v)", ox, oy)
	}

	cx, cy := layout.CellCenter(2, 1)
	if math.Abs(cx-75) > 1e-9 || math.Abs(cy-65) > 1e-9 {
		t.Fatalf("expected center (75, 65), got (%v, %v)", cx, cy)
	}

	// The last row of dots must stay inside the far margin.
	_, lastY := layout.CellOrigin(29, 29)
	if lastY+size > layout.Canvas-layout.Margin+1e-9 {
		t.Fatalf("last dot overflows the margin: %v + %v", lastY, size)
	}
}

func TestPixelScale(t *testing.T) {
	layout := DotLayout{Canvas: 400, Margin: 50, Locations: 90000}

	if got := layout.PixelScale(300); got != 1 {
		t.Fatalf("expected scale 1 for a 300-cell side, got %v", got)
	}
	if got := layout.PixelScale(150); got != 2 {
		t.Fatalf("expected scale 2 for a 150-cell side, got %v", got)
	}
	if got := layout.PixelScale(0); got != 1 {
		t.Fatalf("degenerate side should fall back to scale 1, got %v", got)
	}
}
