package main

import (
	"context"
	"flag"
	"log"

	"github.com/plus3/carryloop/internal/config"
	"github.com/plus3/carryloop/internal/eventbus"
	"github.com/plus3/carryloop/internal/logging"
	"github.com/plus3/carryloop/internal/render"
	"github.com/plus3/carryloop/internal/scene"
	"github.com/plus3/carryloop/internal/shell"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	layout, err := cfg.Layout()
	if err != nil {
		log.Fatalf("Failed to load layout: %v", err)
	}

	logger := logging.New()
	bus := eventbus.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.ShellAddr != "" {
		hub := shell.NewHub(logger)
		defer hub.Relay(bus, eventbus.SceneReady)()
		go func() {
			if err := shell.Serve(ctx, cfg.ShellAddr, hub); err != nil {
				logger.Errorf("shell bridge stopped: %v", err)
			}
		}()
	}

	game, err := render.New(render.Options{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		TPS:    cfg.TPS,
		Debug:  cfg.Debug,
		Logger: logger,
	}, scene.Options{
		Layout:         layout,
		Bus:            bus,
		Logger:         logger,
		Speed:          cfg.Speed,
		ActionInterval: cfg.ActionInterval,
		ProcessDelay:   cfg.ProcessDelay,
	})
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	if err := render.Run(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
