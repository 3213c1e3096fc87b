//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/Pautrik/neighbours/internal/core"
	"github.com/Pautrik/neighbours/internal/render"
	"github.com/Pautrik/neighbours/internal/sims/segregation"
	"github.com/Pautrik/neighbours/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	ghostStart = 0.9
	ghostFade  = 0.35 // seconds
	tweenDT    = 1.0 / 60

	thresholdStep = 0.05
)

// Game adapts the segregation world to the ebiten.Game interface.
type Game struct {
	world   *segregation.World
	cfg     *Config
	layout  render.DotLayout
	dots    *render.DotPainter
	grid    *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	timer *core.FixedStep

	useDots  bool
	paused   bool
	tickOnce bool
	halted   bool
	seed     int64

	lastThreshold float64

	prev   []uint8
	ghosts map[int]*ghost
}

type ghost struct {
	kind  uint8
	tween *gween.Tween
	alpha float32
}

// New constructs a Game for the provided world.
func New(world *segregation.World, cfg *Config) *Game {
	if cfg.HUDWidth < 0 {
		cfg.HUDWidth = 0
	}
	side := world.Side()
	layout := render.DotLayout{
		Canvas:    float64(cfg.Canvas),
		Margin:    float64(cfg.Margin),
		Locations: cfg.Locations,
	}
	g := &Game{
		world:         world,
		cfg:           cfg,
		layout:        layout,
		dots:          render.NewDotPainter(layout, side),
		grid:          render.NewGridPainter(side, side),
		overlay:       ui.NewOverlay(world),
		hud:           ui.NewHUD(world, cfg.HUDWidth),
		timer:         core.NewFixedStep(cfg.Interval),
		seed:          cfg.Seed,
		lastThreshold: world.Threshold(),
		prev:          make([]uint8, side*side),
		ghosts:        map[int]*ghost{},
	}
	g.useDots = resolveView(cfg.View, layout)
	copy(g.prev, world.Cells())
	return g
}

func resolveView(mode string, layout render.DotLayout) bool {
	switch mode {
	case ViewDots:
		return true
	case ViewPixels:
		return false
	default:
		// Dense grids fall back to the pixel view where dots would
		// overlap into a smear.
		return !layout.Crowded()
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.halted = false
	g.tickOnce = false
	copy(g.prev, g.world.Cells())
	for idx := range g.ghosts {
		delete(g.ghosts, idx)
	}
}

// Update handles per-frame input and advances the world on its interval.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.useDots = !g.useDots
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.world.SetFloatParameter("threshold", g.world.Threshold()+thresholdStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.world.SetFloatParameter("threshold", g.world.Threshold()-thresholdStep)
	}

	g.overlay.Update()
	g.hud.Update(g.cfg.Canvas)

	// A threshold change can wake a settled world, whether it came from
	// the arrow keys or the panel buttons.
	if th := g.world.Threshold(); th != g.lastThreshold {
		g.lastThreshold = th
		g.halted = false
	}

	g.updateGhosts()

	// Poll the timer every frame so pauses drain fires instead of
	// stockpiling them for a burst on resume.
	fire := g.timer.ShouldStep()
	step := g.tickOnce
	if fire && !g.paused && !g.halted {
		step = true
	}
	if step {
		g.stepWorld()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) stepWorld() {
	copy(g.prev, g.world.Cells())
	g.world.Step()
	g.spawnGhosts()
	if !g.halted && g.world.Moves() == 0 && g.world.Stable() {
		g.halted = true
		log.WithFields(log.Fields{
			"steps":           g.world.Steps(),
			"mean_same_ratio": g.world.MeanSameKindRatio(),
		}).Info("world is stable, pausing steps")
	}
}

// spawnGhosts starts a fade-out on every cell vacated by the last step.
func (g *Game) spawnGhosts() {
	cells := g.world.Cells()
	for i, was := range g.prev {
		if was == 0 || cells[i] != 0 {
			continue
		}
		g.ghosts[i] = &ghost{
			kind:  was,
			tween: gween.New(ghostStart, 0, ghostFade, ease.Linear),
			alpha: ghostStart,
		}
	}
}

func (g *Game) updateGhosts() {
	for idx, gh := range g.ghosts {
		alpha, done := gh.tween.Update(tweenDT)
		gh.alpha = alpha
		if done {
			delete(g.ghosts, idx)
		}
	}
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	palette := g.world.Palette()
	side := g.world.Side()
	var scale float64
	if g.useDots {
		scale = g.layout.DotSize()
		g.dots.Blit(screen, g.world.Cells(), palette)
		for idx, gh := range g.ghosts {
			kind := int(gh.kind)
			if kind >= len(palette) {
				continue
			}
			g.dots.Ghost(screen, idx%side, idx/side, palette[kind], gh.alpha)
		}
	} else {
		scale = g.layout.PixelScale(side)
		g.grid.Blit(screen, g.world.Cells(), palette, scale, g.layout.Margin, g.layout.Margin)
	}

	g.overlay.Draw(screen, scale, g.layout.Margin, g.layout.Margin)
	g.hud.Draw(screen, g.cfg.Canvas, g.cfg.Canvas)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Canvas + g.cfg.HUDWidth, g.cfg.Canvas
}
