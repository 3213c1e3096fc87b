package ui

import "testing"

func TestFormatCounts(t *testing.T) {
	got := FormatCounts(22500, 22500, 45000)
	want := "red 22500  blue 22500  empty 45000"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatStatus(t *testing.T) {
	got := FormatStatus(42, 17, 0.7)
	want := "step 42  moved 17  threshold 0.70"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatThreshold(t *testing.T) {
	if got := FormatThreshold(0.05); got != "0.05" {
		t.Fatalf("got %q, want %q", got, "0.05")
	}
	if got := FormatThreshold(0.955); got != "0.95" {
		t.Fatalf("expected rounding to two decimals, got %q", got)
	}
}

func TestFormatSatisfaction(t *testing.T) {
	got := FormatSatisfaction(123, 0.683)
	want := "dissatisfied 123  same-kind 0.683"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStateLabel(t *testing.T) {
	if got := StateLabel(true); got != "stable" {
		t.Fatalf("got %q, want %q", got, "stable")
	}
	if got := StateLabel(false); got != "active" {
		t.Fatalf("got %q, want %q", got, "active")
	}
}
