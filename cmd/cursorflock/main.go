package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/app"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/assets"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/config"
	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/render"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

var (
	configFile = flag.String("config", "", "JSON configuration file (defaults are used when empty)")
	schemaFile = flag.String("schema", "config/config.schema.json", "JSON schema the configuration is validated against")
	debug      = flag.Bool("debug", false, "Log at debug level (one line per spawned boid)")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	cfg := config.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Sprites load through short-lived actors; the game never starts on a partial set.
	system, err := actor.NewActorSystem("CursorFlock", actor.WithLogger(logger))
	if err != nil {
		log.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("failed to start actor system: %v", err)
	}
	set := assets.LoadAll(ctx, system, cfg.SpriteSources(), cfg.SpriteTimeout())
	if err := system.Stop(ctx); err != nil {
		logger.Warnf("actor system stop: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := app.NewGame(cfg, render.NewSprites(set), logger)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
