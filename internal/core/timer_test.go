package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresImmediatelyThenWaits(t *testing.T) {
	fs := NewFixedStep(time.Hour)

	if !fs.ShouldStep() {
		t.Fatal("first poll should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll should wait for the interval")
	}
}

func TestFixedStepIntervalFallback(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("expected 1/60s fallback, got %v", got)
	}

	fs.SetInterval(250 * time.Millisecond)
	if got := fs.Interval(); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}

	fs.SetInterval(-1)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("negative interval should fall back, got %v", got)
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := NewFixedStep(time.Second)

	fs.SetTPS(20)
	if got := fs.Interval(); got != 50*time.Millisecond {
		t.Fatalf("20 tps should mean 50ms, got %v", got)
	}

	fs.SetTPS(0)
	if got := fs.Interval(); got != time.Second/60 {
		t.Fatalf("degenerate tps should fall back, got %v", got)
	}
}
