package app

import (
	"flag"
	"time"

	"github.com/Pautrik/neighbours/internal/sims/segregation"
)

// View modes for the simulation window.
const (
	ViewAuto   = "auto"
	ViewDots   = "dots"
	ViewPixels = "pixels"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Locations int
	Red       float64
	Blue      float64
	Threshold float64
	Seed      int64

	Interval time.Duration
	Canvas   int
	Margin   int
	View     string
	HUDWidth int
	Preset   string
}

// NewConfig returns a Config populated with the classic defaults.
func NewConfig() *Config {
	return &Config{
		Locations: 90000,
		Red:       0.25,
		Blue:      0.25,
		Threshold: 0.7,
		Seed:      1337,
		Interval:  450 * time.Millisecond,
		Canvas:    400,
		Margin:    50,
		View:      ViewAuto,
		HUDWidth:  210,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Locations, "locations", c.Locations, "number of candidate locations (side is the square root, rounded down)")
	fs.Float64Var(&c.Red, "red", c.Red, "fraction of locations occupied by red agents")
	fs.Float64Var(&c.Blue, "blue", c.Blue, "fraction of locations occupied by blue agents")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "minimum same-kind neighbor ratio an agent tolerates")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for placement and relocation draws")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "wall-clock delay between steps")
	fs.IntVar(&c.Canvas, "canvas", c.Canvas, "window side length in pixels")
	fs.IntVar(&c.Margin, "margin", c.Margin, "margin around the grid in pixels")
	fs.StringVar(&c.View, "view", c.View, "view mode: auto, dots or pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 disables)")
	fs.StringVar(&c.Preset, "preset", c.Preset, "path to a YAML preset file")
}

// ExplicitFlags reports which flags were set on the command line. The
// FlagSet must already be parsed.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// SimConfig converts the application flags into an engine configuration.
func (c *Config) SimConfig() segregation.Config {
	return segregation.Config{
		Locations: c.Locations,
		Red:       c.Red,
		Blue:      c.Blue,
		Threshold: c.Threshold,
		Seed:      c.Seed,
	}
}
