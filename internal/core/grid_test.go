package core

import "testing"

func TestByteGridIndexing(t *testing.T) {
	g := NewByteGrid(4, 3)

	if got := g.Index(0, 0); got != 0 {
		t.Fatalf("Index(0,0) = %d, want 0", got)
	}
	if got := g.Index(3, 2); got != 11 {
		t.Fatalf("Index(3,2) = %d, want 11", got)
	}
	if got := g.Index(1, 2); got != 9 {
		t.Fatalf("Index(1,2) = %d, want 9", got)
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
}

func TestByteGridInBounds(t *testing.T) {
	g := NewByteGrid(4, 3)

	inside := [][2]int{{0, 0}, {3, 0}, {0, 2}, {3, 2}, {1, 1}}
	for _, p := range inside {
		if !g.InBounds(p[0], p[1]) {
			t.Fatalf("(%d,%d) should be in bounds", p[0], p[1])
		}
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-1, -1}, {4, 3}}
	for _, p := range outside {
		if g.InBounds(p[0], p[1]) {
			t.Fatalf("(%d,%d) should be out of bounds", p[0], p[1])
		}
	}
}

func TestByteGridClear(t *testing.T) {
	g := NewByteGrid(2, 2)
	cells := g.Cells()
	for i := range cells {
		cells[i] = uint8(i + 1)
	}

	g.Clear()

	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d not cleared, got %d", i, c)
		}
	}
}

func TestNewByteGridClampsDegenerateSizes(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 fallback grid, got %dx%d", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("expected a single cell, got %d", len(g.Cells()))
	}
}
