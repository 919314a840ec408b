package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/chasearena/internal/application/audio"
	"github.com/younwookim/chasearena/internal/application/bootstrap"
	"github.com/younwookim/chasearena/internal/application/loop"
	"github.com/younwookim/chasearena/internal/application/system"
	"github.com/younwookim/chasearena/internal/application/terminal"
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
	logPath := flag.String("log", "", "Write logs to this file (default: discard)")
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

	// The screen owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := logging.Setup(cfg.Settings.Log, logOut)

	sounds := audio.NewSoundManager(cfg.Settings.Audio, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sounds.Cleanup()

	sess, err := bootstrap.NewSession(cfg, logger, sounds)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	latch := system.NewKeyLatch()
	restart := make(chan struct{}, 1)

	// Key events arrive on their own goroutine and only touch the latch and the channels
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			action, dir := terminal.Translate(key)
			switch action {
			case terminal.ActionMove:
				latch.Press(dir)
			case terminal.ActionStop:
				latch.Clear()
			case terminal.ActionRestart:
				select {
				case restart <- struct{}{}:
				default:
				}
			case terminal.ActionQuit:
				cancel()
				return
			}
		}
	}()

	w := sess.World()
	renderer := terminal.NewRenderer(screen, w.Width, w.Height)

	update := func() error {
		select {
		case <-restart:
			if sess.GameOver() {
				latch.Clear()
				sess.Restart()
			}
		default:
		}
		sess.Step(latch.Input())
		return nil
	}
	render := func() {
		renderer.Draw(sess.Snapshot())
	}

	l := loop.New(loop.SystemClock{}, update, render)
	err = l.Run(ctx)
	logger.Info("terminal session ended",
		"ticks", sess.Tick(), "score", sess.Scoreboard().Score, "frames", l.Stats().Frames)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
