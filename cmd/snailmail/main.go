package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/olsujabu/snailgame/audio"
	"github.com/olsujabu/snailgame/config"
	"github.com/olsujabu/snailgame/core"
	"github.com/olsujabu/snailgame/engine"
	"github.com/olsujabu/snailgame/events"
	"github.com/olsujabu/snailgame/highscore"
	"github.com/olsujabu/snailgame/input"
	"github.com/olsujabu/snailgame/network"
	"github.com/olsujabu/snailgame/render"
	"github.com/olsujabu/snailgame/status"
	"github.com/olsujabu/snailgame/vmath"
)

var (
	configFlag   = flag.String("config", config.DefaultPath, "TOML config file")
	envFlag      = flag.String("env", config.DefaultEnvFile, ".env file with SNAILMAIL_* overrides")
	debugFlag    = flag.Bool("debug", false, "log to logs/snailmail.log and show the metrics line")
	seedFlag     = flag.Uint64("seed", 0, "spawn seed, 0 uses the config value or the clock")
	noAudioFlag  = flag.Bool("no-audio", false, "disable sound effects")
	handAddrFlag = flag.String("hand-addr", "", "listen address for the hand tracking bridge, enables it")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	// Hold early log lines until the log destination is known
	var early bytes.Buffer
	log.SetOutput(&early)

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snailmail: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logDir = cfg.Log.Dir
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
		logFile.Write(early.Bytes())
	}

	result, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snailmail: %v\n", err)
		os.Exit(1)
	}
	printSummary(os.Stdout, result.snapshot, result.best, result.newBest, result.saveFailures)
}

// applyFlags lets explicitly set flags win over file and environment
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "no-audio":
			cfg.Audio.Enabled = !*noAudioFlag
		case "hand-addr":
			cfg.Network.Enabled = *handAddrFlag != ""
			cfg.Network.Listen = *handAddrFlag
		}
	})
}

var errNotTerminal = errors.New("an interactive terminal is required")

type runResult struct {
	snapshot     *engine.Snapshot
	best         int
	newBest      bool
	saveFailures int64
}

// run wires every collaborator, drives the UI loop and releases the terminal before returning
func run(cfg *config.Config) (runResult, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed=%d", seed)

	queue := events.NewEventQueue()
	sim, err := engine.NewSimulation(cfg.Game, vmath.NewFastRand(seed), queue)
	if err != nil {
		return runResult{}, err
	}

	keys := input.DefaultKeyTable()
	if len(cfg.Input.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Input.Keys)
		if err != nil {
			return runResult{}, fmt.Errorf("[input.keys]: %w", err)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	normalizer := input.NewNormalizer()
	normalizer.SetHandControl(cfg.Input.HandControl)

	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	tracker := highscore.NewTracker(highscore.NewFileStore(cfg.Storage.HighScoreFile))

	scheduler := engine.NewClockScheduler(engine.SchedulerConfig{
		Sim:       sim,
		Input:     normalizer,
		Queue:     queue,
		Status:    status.NewRegistry(),
		BestScore: tracker.Best,
	})
	scheduler.RegisterEventHandler(events.NewFeedbackHandler(sound))
	scheduler.RegisterEventHandler(tracker)

	if cfg.Network.Enabled {
		bridge := network.NewBridge(network.WithAddress(cfg.Network.Listen), normalizer)
		if err := bridge.Start(); err != nil {
			log.Printf("hand bridge disabled: %v", err)
		} else {
			defer bridge.Stop()
		}
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runResult{}, errNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return runResult{}, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return runResult{}, fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen)
	renderer.SetDebug(cfg.Log.Debug)

	machine := input.NewMachine(keys)
	width, _ := screen.Size()
	machine.SetWidth(width)

	a := &app{
		scheduler:  scheduler,
		normalizer: normalizer,
		machine:    machine,
		renderer:   renderer,
		sound:      sound,
	}

	scheduler.Start()
	loop(screen, a)
	scheduler.Stop()

	screen.Fini()
	core.SetCrashTerminal(nil)

	return runResult{
		snapshot:     scheduler.Snapshot(),
		best:         tracker.Best(),
		newBest:      tracker.NewBest(),
		saveFailures: tracker.SaveFailures(),
	}, nil
}

// loop polls terminal events on a separate goroutine and redraws on every published snapshot
func loop(screen tcell.Screen, a *app) {
	eventCh := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	// Input polling interacts directly with the terminal
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	})

	a.renderer.Draw(a.scheduler.Snapshot())
	for {
		select {
		case ev := <-eventCh:
			if !a.handle(ev) {
				return
			}
		case <-a.scheduler.Updates():
			a.renderer.Draw(a.scheduler.Snapshot())
		}
	}
}
