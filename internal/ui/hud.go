//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/Pautrik/neighbours/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// floatAdjustStep is the increment applied by the panel buttons; the
// simulation's setter clamps the resulting value.
const floatAdjustStep = 0.05

// HUD renders the parameter panel to the right of the simulation view.
// P shows and hides it.
type HUD struct {
	sim        core.Sim
	width      int
	visible    bool
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
	rows  []hudRow
}

type hudRow struct {
	label      string
	value      string
	floatValue float64
	key        string
	header     bool
	adjustable bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, visible: true}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot from the simulation and
// handles panel interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.visible = !h.visible
	}
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		h.rows = h.rows[:0]
		return
	}
	h.snapshot = provider.Parameters()
	h.rebuildRows()
	if h.visible {
		h.handleInput()
	}
}

// Draw paints the panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || !h.visible {
		return
	}
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawRows()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil {
		return "Controls"
	}
	name := sim.Name()
	if name == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s Controls", strings.Title(name))
}

func (h *HUD) rebuildRows() {
	h.rows = h.rows[:0]
	top := controlsTop
	for _, group := range h.snapshot.Groups {
		h.rows = append(h.rows, hudRow{label: group.Name, header: true, top: top})
		top += headerHeight
		for _, param := range group.Params {
			row := hudRow{label: param.Label, value: param.Value, key: param.Key, top: top}
			if param.Type == core.ParamTypeFloat && h.floatSetter != nil {
				if parsed, err := strconv.ParseFloat(param.Value, 64); err == nil {
					row.floatValue = parsed
					row.adjustable = true
				}
			}
			if row.adjustable {
				buttonY := top + (lineHeight-buttonSize)/2
				row.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
				row.minusRect = image.Rect(row.plusRect.Min.X-buttonGap-buttonSize, buttonY, row.plusRect.Min.X-buttonGap, buttonY+buttonSize)
			}
			h.rows = append(h.rows, row)
			top += lineHeight
		}
	}
}

func (h *HUD) handleInput() {
	if h.floatSetter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.rows {
		row := &h.rows[i]
		if !row.adjustable {
			continue
		}
		if pointInRect(px, my, row.minusRect) {
			h.floatSetter.SetFloatParameter(row.key, row.floatValue-floatAdjustStep)
			return
		}
		if pointInRect(px, my, row.plusRect) {
			h.floatSetter.SetFloatParameter(row.key, row.floatValue+floatAdjustStep)
			return
		}
	}
}

func (h *HUD) drawRows() {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.rows {
		row := &h.rows[i]
		if row.header {
			text.Draw(h.panel, row.label, face, panelPadding, row.top+labelBaseline, color.RGBA{R: 150, G: 150, B: 165, A: 255})
			continue
		}
		labelY := row.top + labelBaseline
		text.Draw(h.panel, row.label, face, panelPadding+indent, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueRight := h.width - panelPadding
		if row.adjustable {
			valueRight = row.minusRect.Min.X - buttonGap
		}
		bounds := text.BoundString(face, row.value)
		text.Draw(h.panel, row.value, face, valueRight-bounds.Dx(), labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		if row.adjustable {
			h.drawButton(row.minusRect, "-")
			h.drawButton(row.plusRect, "+")
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	headerHeight   = 26
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	indent         = 8
	controlsTop    = panelPadding + headerBaseline + 14
)
