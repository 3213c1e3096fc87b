package segregation

import (
	"math/rand/v2"

	"github.com/Pautrik/neighbours/internal/core"
)

// Kind enumerates the occupancy of a grid cell. The zero value is Empty and
// the numeric value doubles as the palette index.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindRed
	KindBlue
)

// World stores the grid state for the segregation model. The grid is square;
// cells are indexed row-major as y*side+x.
type World struct {
	cfg  Config
	side int

	nRed  int
	nBlue int

	cells   []Kind
	display *core.ByteGrid

	// Scan scratch, reused across steps.
	empties      []int
	dissatisfied []int

	rng *rand.Rand

	steps     int
	lastMoves int
}

// New returns a world with the default configuration and the given number of
// candidate locations.
func New(locations int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Locations = locations
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and allocates a world for it. The returned
// world is empty until Reset places the population.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	side := cfg.side()
	return &World{
		cfg:     cfg,
		side:    side,
		nRed:    cfg.redCount(),
		nBlue:   cfg.blueCount(),
		cells:   make([]Kind, side*side),
		display: core.NewByteGrid(side, side),
		rng:     core.NewRNG(cfg.Seed).Source(),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "segregation" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.side, H: w.side} }

// Side returns the side length of the square grid.
func (w *World) Side() int { return w.side }

// Cells exposes the display buffer: one byte per cell holding the Kind value.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Kinds exposes the live typed cell buffer.
func (w *World) Kinds() []Kind { return w.cells }

// Threshold returns the satisfaction threshold currently in effect.
func (w *World) Threshold() float64 { return w.cfg.Threshold }

// Steps returns the number of Step calls since the last Reset.
func (w *World) Steps() int { return w.steps }

// Moves returns the number of relocations performed by the most recent Step.
func (w *World) Moves() int { return w.lastMoves }

// Counts tallies the current cell population by kind.
func (w *World) Counts() (red, blue, empty int) {
	for _, k := range w.cells {
		switch k {
		case KindRed:
			red++
		case KindBlue:
			blue++
		default:
			empty++
		}
	}
	return red, blue, empty
}

// Reset repopulates the grid using deterministic randomness. A zero seed
// falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective).Source()
	for i := range w.cells {
		w.cells[i] = KindEmpty
	}
	// One color is placed fully before the next begins, red first. The
	// draw order is part of the seeded behavior.
	w.place(KindRed, w.nRed)
	w.place(KindBlue, w.nBlue)
	w.rebuildDisplay()
	w.steps = 0
	w.lastMoves = 0
}

// place assigns kind to count cells drawn uniformly at random among all
// cells, rejecting occupied ones. Termination is guaranteed by the capacity
// check in Config.Validate.
func (w *World) place(kind Kind, count int) {
	for count > 0 {
		x := w.rng.IntN(w.side)
		y := w.rng.IntN(w.side)
		idx := y*w.side + x
		if w.cells[idx] != KindEmpty {
			continue
		}
		w.cells[idx] = kind
		count--
	}
}

// Step advances the model by one tick: classify every cell in a single
// row-major scan, then relocate dissatisfied agents into random vacancies.
// At most min(dissatisfied, vacancies) agents move; positions vacated during
// the step only become available starting the next scan.
func (w *World) Step() {
	w.steps++
	w.lastMoves = 0

	w.empties = w.empties[:0]
	w.dissatisfied = w.dissatisfied[:0]
	for y := 0; y < w.side; y++ {
		for x := 0; x < w.side; x++ {
			idx := y*w.side + x
			if w.cells[idx] == KindEmpty {
				w.empties = append(w.empties, idx)
				continue
			}
			if w.dissatisfiedAt(x, y) {
				w.dissatisfied = append(w.dissatisfied, idx)
			}
		}
	}
	if len(w.dissatisfied) == 0 {
		return
	}

	display := w.display.Cells()
	empties := w.empties
	for _, from := range w.dissatisfied {
		if len(empties) == 0 {
			break
		}
		j := w.rng.IntN(len(empties))
		to := empties[j]
		w.cells[to] = w.cells[from]
		w.cells[from] = KindEmpty
		display[to] = uint8(w.cells[to])
		display[from] = uint8(KindEmpty)
		empties[j] = empties[len(empties)-1]
		empties = empties[:len(empties)-1]
		w.lastMoves++
	}
}

// Stable reports whether no agent is currently dissatisfied. Step is a no-op
// exactly while this holds.
func (w *World) Stable() bool {
	for y := 0; y < w.side; y++ {
		for x := 0; x < w.side; x++ {
			if w.cells[y*w.side+x] == KindEmpty {
				continue
			}
			if w.dissatisfiedAt(x, y) {
				return false
			}
		}
	}
	return true
}

// FillDissatisfied marks currently dissatisfied cells in mask (1 marks a
// dissatisfied agent) and returns their count. A nil mask just counts.
func (w *World) FillDissatisfied(mask []uint8) int {
	for i := range mask {
		mask[i] = 0
	}
	count := 0
	for y := 0; y < w.side; y++ {
		for x := 0; x < w.side; x++ {
			idx := y*w.side + x
			if w.cells[idx] == KindEmpty {
				continue
			}
			if !w.dissatisfiedAt(x, y) {
				continue
			}
			count++
			if idx < len(mask) {
				mask[idx] = 1
			}
		}
	}
	return count
}

// MeanSameKindRatio averages same/(same+other) over all agents that have at
// least one occupied neighbor. It returns 0 when no agent qualifies.
func (w *World) MeanSameKindRatio() float64 {
	sum := 0.0
	agents := 0
	for y := 0; y < w.side; y++ {
		for x := 0; x < w.side; x++ {
			if w.cells[y*w.side+x] == KindEmpty {
				continue
			}
			same, other := w.neighborCounts(x, y)
			if same+other == 0 {
				continue
			}
			sum += float64(same) / float64(same+other)
			agents++
		}
	}
	if agents == 0 {
		return 0
	}
	return sum / float64(agents)
}

// neighborCounts tallies the occupied Moore neighbors of (x, y) by kind.
// Out-of-bounds coordinates are excluded, not wrapped; empty neighbors count
// toward neither side.
func (w *World) neighborCounts(x, y int) (same, other int) {
	k := w.cells[y*w.side+x]
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= w.side {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w.side {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			n := w.cells[ny*w.side+nx]
			if n == KindEmpty {
				continue
			}
			if n == k {
				same++
			} else {
				other++
			}
		}
	}
	return same, other
}

// dissatisfiedAt reports whether the agent at (x, y) wants to move. An agent
// with no occupied neighbors at all is always dissatisfied; otherwise it is
// dissatisfied when its same-kind neighbor ratio falls below the threshold.
// Only meaningful for non-empty cells.
func (w *World) dissatisfiedAt(x, y int) bool {
	same, other := w.neighborCounts(x, y)
	if same+other == 0 {
		return true
	}
	return float64(same)/float64(same+other) < w.cfg.Threshold
}

func (w *World) rebuildDisplay() {
	display := w.display.Cells()
	for i, k := range w.cells {
		display[i] = uint8(k)
	}
}
