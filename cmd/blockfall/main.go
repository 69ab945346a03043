package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/applog"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/desktop"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

const (
	title          = "blockfall"
	inspectorWidth = 360
)

func main() {
	cfg := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &cfg)
	debug := flag.Bool("debug", false, "Show the session inspector and write logs to -logdir.")
	logDir := flag.String("logdir", "logs", "Directory for debug logs.")
	mute := flag.Bool("mute", false, "Disable sound.")
	flag.Parse()

	logFile, err := applog.Setup(*debug, *logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var opts []game.Option
	if !*mute {
		player := audio.NewPlayer(audio.DefaultConfig())
		if err := player.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, game.WithListener(player.Listener()))
		}
	}

	session, err := game.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	session.Subscribe(func(e game.Event) {
		if e.Type != game.EventSpawned {
			log.Printf("event %v: kind=%v rows=%d score=%d", e.Type, e.Kind, e.Rows, e.Score)
		}
	})

	scheduler := engine.NewScheduler(session)
	g := desktop.NewGame(scheduler, desktop.EbitenKeys{})
	width, height := g.WindowSize()

	if *debug {
		g.Overlay = debugui_ebiten.New(title, width+inspectorWidth, height)

		ui := &debugui.System{Items: []debugui.Item{
			debugui.NewInspector(scheduler, 120).Item(),
		}}
		scheduler.Register(ui)
		g.Input.Suspended = ui.CapturingKeyboard
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}

	log.Printf("starting %dx%d session, drop interval %v", cfg.Width, cfg.Height, cfg.DropInterval)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
	log.Printf("final score %d, %d lines", session.Score(), session.Lines())
}
