package segregation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Validation errors reported by Config.Validate. They are wrapped with
// detail; match with errors.Is.
var (
	ErrLocations = errors.New("segregation: locations must be positive")
	ErrFraction  = errors.New("segregation: population fraction outside [0,1]")
	ErrThreshold = errors.New("segregation: threshold outside (0,1)")
	ErrCapacity  = errors.New("segregation: requested occupants exceed grid capacity")
)

// Runtime threshold adjustments clamp into this range; Validate accepts the
// full open interval for initial configuration.
const (
	thresholdFloor = 0.05
	thresholdCeil  = 0.95
)

// Config controls the segregation world.
//
// The grid side length is floor(sqrt(Locations)), so the usable cell count
// is side² and may fall short of Locations when it is not a perfect square.
// The target populations are floor(Red·Locations) and floor(Blue·Locations)
// regardless; the remainder of the grid stays empty.
type Config struct {
	Locations int
	Red       float64
	Blue      float64

	// Threshold is the minimum same-kind neighbor ratio an agent tolerates.
	Threshold float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Locations: 90000,
		Red:       0.25,
		Blue:      0.25,
		Threshold: 0.7,
		Seed:      1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparsable or out-of-range values keep their defaults; cross-field
// feasibility is left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["locations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Locations = parsed
		}
	}
	if v, ok := cfg["red"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Red = parsed
		}
	}
	if v, ok := cfg["blue"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Blue = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports the first configuration problem it finds. The capacity
// check is what keeps placement from searching forever for vacancies that do
// not exist.
func (c Config) Validate() error {
	if c.Locations < 1 {
		return fmt.Errorf("%w: got %d", ErrLocations, c.Locations)
	}
	if c.Red < 0 || c.Red > 1 {
		return fmt.Errorf("%w: red=%v", ErrFraction, c.Red)
	}
	if c.Blue < 0 || c.Blue > 1 {
		return fmt.Errorf("%w: blue=%v", ErrFraction, c.Blue)
	}
	if c.Threshold <= 0 || c.Threshold >= 1 {
		return fmt.Errorf("%w: got %v", ErrThreshold, c.Threshold)
	}
	side := c.side()
	if want := c.redCount() + c.blueCount(); want > side*side {
		return fmt.Errorf("%w: %d occupants, %d cells", ErrCapacity, want, side*side)
	}
	return nil
}

func (c Config) side() int { return int(math.Sqrt(float64(c.Locations))) }

func (c Config) redCount() int { return int(c.Red * float64(c.Locations)) }

func (c Config) blueCount() int { return int(c.Blue * float64(c.Locations)) }
