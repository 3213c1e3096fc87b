package core

import "testing"

func TestRNGDeterministicPerSeed(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if got, want := a.IntN(1000), b.IntN(1000); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}

	c := NewRNG(43)
	d := NewRNG(42)
	same := true
	for i := 0; i < 100; i++ {
		if c.IntN(1000) != d.IntN(1000) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds should produce different sequences")
	}
}

func TestRNGIntNBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.IntN(10)
		if v < 0 || v >= 10 {
			t.Fatalf("IntN(10) out of range: %d", v)
		}
	}
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) should return 0, got %d", got)
	}
	if got := r.IntN(-5); got != 0 {
		t.Fatalf("IntN(-5) should return 0, got %d", got)
	}
}
