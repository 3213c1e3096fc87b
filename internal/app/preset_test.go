package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePreset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadPresetAppliesValues(t *testing.T) {
	path := writePreset(t, `
locations: 2500
red: 0.4
threshold: 0.6
interval: 100ms
view: pixels
`)

	preset, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}

	cfg := NewConfig()
	if err := preset.Apply(cfg, nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if cfg.Locations != 2500 {
		t.Fatalf("expected locations 2500, got %d", cfg.Locations)
	}
	if cfg.Red != 0.4 {
		t.Fatalf("expected red 0.4, got %v", cfg.Red)
	}
	if cfg.Blue != 0.25 {
		t.Fatalf("omitted blue should keep its default, got %v", cfg.Blue)
	}
	if cfg.Threshold != 0.6 {
		t.Fatalf("expected threshold 0.6, got %v", cfg.Threshold)
	}
	if cfg.Interval != 100*time.Millisecond {
		t.Fatalf("expected interval 100ms, got %v", cfg.Interval)
	}
	if cfg.View != ViewPixels {
		t.Fatalf("expected pixels view, got %q", cfg.View)
	}
}

func TestPresetLosesToExplicitFlags(t *testing.T) {
	path := writePreset(t, `
threshold: 0.6
seed: 4242
`)

	preset, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-threshold", "0.8"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if err := preset.Apply(cfg, ExplicitFlags(fs)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if cfg.Threshold != 0.8 {
		t.Fatalf("explicit flag should win over preset, got %v", cfg.Threshold)
	}
	if cfg.Seed != 4242 {
		t.Fatalf("preset should fill unset flags, got seed %d", cfg.Seed)
	}
}

func TestLoadPresetErrors(t *testing.T) {
	if _, err := LoadPreset(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := writePreset(t, "locations: [nonsense")
	if _, err := LoadPreset(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}

	path = writePreset(t, "interval: soon")
	preset, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if err := preset.Apply(NewConfig(), nil); err == nil {
		t.Fatal("expected error for unparsable interval")
	}
}
