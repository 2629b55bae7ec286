package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/lixenwraith/meteor-fighter/audio"
	"github.com/lixenwraith/meteor-fighter/config"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/input"
	"github.com/lixenwraith/meteor-fighter/manifest"
	"github.com/lixenwraith/meteor-fighter/render"
)

var (
	configFlag   = flag.String("config", "", "TOML config file, empty for built-in defaults")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/meteor-fighter.log")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal and print stats")
	ticksFlag    = flag.Int("ticks", 3600, "Ticks to simulate in headless mode")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed, 0 keeps the config value")
	profileFlag  = flag.String("profile", "", "Write a cpu or mem profile to the working directory")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(logToFile(*debugFlag, *headlessFlag))
	if logFile != nil {
		defer logFile.Close()
	}

	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Engine.Seed = *seedFlag
	}

	if *headlessFlag {
		if err := runHeadless(cfg, *ticksFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// logToFile reports whether logs go to disk, headless runs always keep a record
func logToFile(debug, headless bool) bool {
	return debug || headless
}

// runHeadless steps the simulation synchronously and prints the final status
func runHeadless(cfg *config.Config, ticks int) error {
	cfg.Engine.AutoStart = true
	sim, err := manifest.NewSimulation(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	sim.Step(ticks)
	elapsed := time.Since(start)

	snap := sim.World.Resource.Status.Snapshot()
	log.Printf("[headless] %d ticks in %v: %s", ticks, elapsed, snap)
	fmt.Printf("ticks=%d wall=%v phase=%s %s\n", ticks, elapsed.Round(time.Millisecond), sim.Phase(), snap)
	return nil
}

// runTerminal drives the scheduler in real time and renders after every tick
func runTerminal(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	defer screen.Fini()
	screen.HideCursor()
	core.SetCrashHook(screen.Fini)

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)

	sim, err := manifest.NewSimulation(cfg, sound)
	if err != nil {
		return err
	}
	world := sim.World

	keys := input.NewHandler(nil, input.DefaultHoldWindow)
	renderer := render.NewRenderer(screen, 0, 0)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	sim.Scheduler.Start()
	defer sim.Scheduler.Stop()

	for {
		select {
		case ev := <-events:
			switch keys.Process(ev, time.Now()) {
			case input.ActionQuit:
				log.Printf("[main] quit")
				return nil
			case input.ActionStart:
				sim.RequestStart()
			case input.ActionToggleHitBoxes:
				world.RunSafe(func() {
					world.Resource.Input.ShowHitBoxes = !world.Resource.Input.ShowHitBoxes
				})
			case input.ActionToggleMute:
				muted := sound.ToggleMute()
				log.Printf("[audio] muted=%v", muted)
			case input.ActionResize:
				screen.Sync()
				renderer.Resize(screen.Size())
			}

		case <-sim.UpdateDone:
			now := time.Now()
			world.RunSafe(func() { keys.Apply(world.Resource.Input, now) })
			renderer.Frame(world)
		}
	}
}
