package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/chasearena/internal/application/audio"
	"github.com/younwookim/chasearena/internal/application/bootstrap"
	"github.com/younwookim/chasearena/internal/application/game"
	"github.com/younwookim/chasearena/internal/application/scene/playing"
	"github.com/younwookim/chasearena/internal/application/system"
	"github.com/younwookim/chasearena/internal/infrastructure/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	seed := flag.Int64("seed", 0, "Seed for frightened pursuers (0: from config, then time)")
	mute := flag.Bool("mute", false, "Disable audio")
	flag.Parse()

	cfg, err := bootstrap.Load(*configDir)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Settings.Seed = *seed
	}
	if *mute {
		cfg.Settings.Audio.Enabled = false
	}

	logger := logging.Setup(cfg.Settings.Log, os.Stderr)

	sounds := audio.NewSoundManager(cfg.Settings.Audio, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sounds.Cleanup()

	sess, err := bootstrap.NewSession(cfg, logger, sounds)
	if err != nil {
		return err
	}

	display := cfg.Settings.Display
	arena := playing.New(sess, system.NewInputSystem(system.DefaultBindings()), display, logger)
	screenW, screenH := arena.ScreenSize()
	g := game.New(arena, screenW, screenH)
	defer g.Close()

	ebiten.SetWindowSize(screenW*display.Scale, screenH*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	// The arena runs its own fixed-step loop, so ebiten updates once per frame
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}
