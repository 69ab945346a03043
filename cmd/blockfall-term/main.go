package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/applog"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/term"
)

func main() {
	cfg := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &cfg)
	debug := flag.Bool("debug", false, "Write logs to -logdir.")
	logDir := flag.String("logdir", "logs", "Directory for debug logs.")
	mute := flag.Bool("mute", false, "Disable sound.")
	fps := flag.Int("fps", 60, "Frames per second.")
	flag.Parse()

	// The terminal owns stdout, so logs go to a file or nowhere
	logFile, err := applog.Setup(*debug, *logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, *mute, *fps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, mute bool, fps int) error {
	var opts []game.Option
	if !mute {
		player := audio.NewPlayer(audio.DefaultConfig())
		if err := player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, game.WithListener(player.Listener()))
		}
	}

	session, err := game.New(cfg, opts...)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 100)
	go term.Poll(ctx, screen, events)

	renderer := term.NewRenderer(screen)
	renderer.Left, renderer.Top = 2, 1

	scheduler := engine.NewScheduler(session)
	scheduler.Register(&term.InputSystem{Events: events, Quit: cancel, Resize: screen.Sync})
	scheduler.Register(&engine.GravitySystem{})
	scheduler.Register(&term.RenderSystem{Renderer: renderer})

	renderer.Draw(session)
	scheduler.Run(ctx, time.Second/time.Duration(max(fps, 1)))

	log.Printf("final score %d, %d lines", session.Score(), session.Lines())
	return nil
}
