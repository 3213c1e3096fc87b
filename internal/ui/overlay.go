//go:build ebiten

package ui

import (
	"image/color"

	"github.com/Pautrik/neighbours/internal/core"
	"github.com/Pautrik/neighbours/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Counts() (red, blue, empty int)
	Steps() int
	Moves() int
	Threshold() float64
	Stable() bool
}

type dissatisfiedFiller interface {
	FillDissatisfied(mask []uint8) int
}

type ratioProvider interface {
	MeanSameKindRatio() float64
}

// Overlay draws the status lines and optional diagnostic layers on top of the
// simulation view.
type Overlay struct {
	sim core.Sim

	showDissatisfied bool
	mask             *core.ByteGrid
	maskPainter      *render.MaskPainter

	haveStats     bool
	lastSteps     int
	lastThreshold float64
	dissatisfied  int
	meanSameKind  float64
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDissatisfied = !o.showDissatisfied
	}
}

// Draw renders the overlay onto the provided screen. The scale and offsets
// must match the transform of the base grid so the highlight layer lines up.
func (o *Overlay) Draw(screen *ebiten.Image, scale, offsetX, offsetY float64) {
	face := basicfont.Face7x13

	if provider, ok := o.sim.(statsProvider); ok {
		red, blue, empty := provider.Counts()
		line := FormatCounts(red, blue, empty) + "  " + FormatStatus(provider.Steps(), provider.Moves(), provider.Threshold())
		text.Draw(screen, line, face, 8, 16, color.RGBA{R: 40, G: 40, B: 48, A: 255})

		o.refreshStats(provider)
		stable := provider.Stable()
		if o.haveStats {
			stable = o.dissatisfied == 0
		}
		stateColor := color.RGBA{R: 120, G: 120, B: 130, A: 255}
		if stable {
			stateColor = color.RGBA{R: 0, G: 140, B: 60, A: 255}
		}
		line = StateLabel(stable)
		if o.haveStats {
			line += "  " + FormatSatisfaction(o.dissatisfied, o.meanSameKind)
		}
		text.Draw(screen, line, face, 8, 32, stateColor)
	}

	if !o.showDissatisfied {
		return
	}
	filler, ok := o.sim.(dissatisfiedFiller)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.mask == nil || o.mask.W != size.W || o.mask.H != size.H {
		o.mask = core.NewByteGrid(size.W, size.H)
		o.maskPainter = render.NewMaskPainter(size.W, size.H)
	}
	filler.FillDissatisfied(o.mask.Cells())
	o.maskPainter.Blit(screen, o.mask.Cells(), color.RGBA{R: 255, G: 215, B: 0, A: 90}, scale, offsetX, offsetY)
}

// refreshStats recomputes the full-grid diagnostics only when the world
// advanced or the threshold moved; between steps they cannot change. A
// freshly reset world reports zero steps, so that state recomputes every
// frame until the first step lands.
func (o *Overlay) refreshStats(provider statsProvider) {
	steps := provider.Steps()
	th := provider.Threshold()
	if o.haveStats && steps == o.lastSteps && steps != 0 && th == o.lastThreshold {
		return
	}
	filler, ok := o.sim.(dissatisfiedFiller)
	if !ok {
		return
	}
	o.dissatisfied = filler.FillDissatisfied(nil)
	if rp, ok := o.sim.(ratioProvider); ok {
		o.meanSameKind = rp.MeanSameKindRatio()
	}
	o.haveStats = true
	o.lastSteps = steps
	o.lastThreshold = th
}
