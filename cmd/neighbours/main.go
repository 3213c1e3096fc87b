//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/Pautrik/neighbours/internal/app"
	"github.com/Pautrik/neighbours/internal/sims/segregation"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Preset != "" {
		preset, err := app.LoadPreset(cfg.Preset)
		if err != nil {
			log.WithError(err).Fatal("could not load preset")
		}
		if err := preset.Apply(cfg, app.ExplicitFlags(flag.CommandLine)); err != nil {
			log.WithError(err).Fatal("could not apply preset")
		}
	}
	if cfg.Canvas <= 2*cfg.Margin {
		log.Fatalf("canvas %dpx leaves no room inside %dpx margins", cfg.Canvas, cfg.Margin)
	}

	world, err := segregation.NewWithConfig(cfg.SimConfig())
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	world.Reset(cfg.Seed)

	red, blue, empty := world.Counts()
	log.WithFields(log.Fields{
		"side":      world.Side(),
		"red":       red,
		"blue":      blue,
		"empty":     empty,
		"threshold": cfg.Threshold,
	}).Info("world initialized")

	game := app.New(world, cfg)

	ebiten.SetWindowTitle("neighbours — " + world.Name())
	ebiten.SetWindowSize(cfg.Canvas+cfg.HUDWidth, cfg.Canvas)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
