package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Preset mirrors Config for YAML preset files. Pointer fields distinguish
// omitted keys from zero values; omitted keys leave the current value alone.
type Preset struct {
	Locations *int     `yaml:"locations"`
	Red       *float64 `yaml:"red"`
	Blue      *float64 `yaml:"blue"`
	Threshold *float64 `yaml:"threshold"`
	Seed      *int64   `yaml:"seed"`
	Interval  *string  `yaml:"interval"`
	Canvas    *int     `yaml:"canvas"`
	Margin    *int     `yaml:"margin"`
	View      *string  `yaml:"view"`
}

// LoadPreset reads and parses a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}
	preset := &Preset{}
	if err := yaml.Unmarshal(data, preset); err != nil {
		return nil, fmt.Errorf("parsing preset file: %w", err)
	}
	return preset, nil
}

// Apply copies preset values into cfg. Flags the user set explicitly on the
// command line win over the preset.
func (p *Preset) Apply(cfg *Config, explicit map[string]bool) error {
	if p.Locations != nil && !explicit["locations"] {
		cfg.Locations = *p.Locations
	}
	if p.Red != nil && !explicit["red"] {
		cfg.Red = *p.Red
	}
	if p.Blue != nil && !explicit["blue"] {
		cfg.Blue = *p.Blue
	}
	if p.Threshold != nil && !explicit["threshold"] {
		cfg.Threshold = *p.Threshold
	}
	if p.Seed != nil && !explicit["seed"] {
		cfg.Seed = *p.Seed
	}
	if p.Interval != nil && !explicit["interval"] {
		d, err := time.ParseDuration(*p.Interval)
		if err != nil {
			return fmt.Errorf("parsing preset interval: %w", err)
		}
		cfg.Interval = d
	}
	if p.Canvas != nil && !explicit["canvas"] {
		cfg.Canvas = *p.Canvas
	}
	if p.Margin != nil && !explicit["margin"] {
		cfg.Margin = *p.Margin
	}
	if p.View != nil && !explicit["view"] {
		cfg.View = *p.View
	}
	return nil
}
