package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/star-defense/audio"
	"github.com/lixenwraith/star-defense/config"
	"github.com/lixenwraith/star-defense/parameter"
)

var (
	configFlag = flag.String("config", "", "YAML balance file")
	debugFlag  = flag.Bool("debug", false, "Write a JSON debug log under logs/ and show the metrics line")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

// screen is kept for emergency reset from any goroutine
var screen tcell.Screen

// crash restores the terminal, prints the panic and exits
func crash(where string, r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash("STAR-DEFENSE", r)
		}
	}()

	flag.Parse()

	log, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if *muteFlag {
		cfg.Mute = true
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen = s
	// Normal exit terminal cleanup
	defer s.Fini()
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault)

	player := audio.New(cfg.Mute, parameter.MasterVolume, log)
	defer player.Close()

	a := newApp(s, cfg, *seedFlag, *debugFlag, player, log)

	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	g, ctx := errgroup.WithContext(context.Background())

	// Input polling only forwards events; the loop goroutine owns the game
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		s.ChannelEvents(events, quit)
		return nil
	})

	g.Go(func() error {
		defer close(quit)
		defer func() {
			if r := recover(); r != nil {
				crash("GAME LOOP", r)
			}
		}()
		return a.loop(ctx, events)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("loop exited")
	}
}
