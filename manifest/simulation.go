package manifest

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/meteor-fighter/asset"
	"github.com/lixenwraith/meteor-fighter/config"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
)

// Simulation bundles a fully wired world and the scheduler that drives it
type Simulation struct {
	World     *engine.World
	Scheduler *engine.ClockScheduler
	Systems   []engine.System

	// UpdateDone receives after every scheduler-driven tick
	UpdateDone <-chan struct{}
}

// NewSimulation builds the world, registers systems and enters the initial phase
// Extra handlers (audio, presentation) are registered after the systems
func NewSimulation(cfg *config.Config, handlers ...event.Handler) (*Simulation, error) {
	event.InitRegistry()

	world := engine.NewWorld(cfg)
	scheduler, updateDone := engine.NewClockScheduler(world, cfg.Engine.TickInterval.Std())

	systems := RegisterSystems(world, scheduler)
	for _, h := range handlers {
		scheduler.RegisterEventHandler(h)
	}
	scheduler.InitSystems()

	if err := scheduler.LoadFSM(cfg.PhaseGraph, asset.DefaultPhaseGraph, RegisterFSMComponents); err != nil {
		return nil, errors.Wrap(err, "phase graph")
	}

	sim := &Simulation{
		World:      world,
		Scheduler:  scheduler,
		Systems:    systems,
		UpdateDone: updateDone,
	}

	if cfg.Engine.AutoStart {
		sim.RequestStart()
	}
	log.Printf("[sim] ready, %d systems, phase=%s", len(systems), scheduler.Phase())
	return sim, nil
}

// RequestStart asks the phase machine to leave Menu, ignored in other phases
func (s *Simulation) RequestStart() {
	s.Scheduler.Submit(event.EventGameStartRequest, nil)
}

// Step runs n ticks synchronously, for headless runs and tests
func (s *Simulation) Step(n int) {
	for i := 0; i < n; i++ {
		s.Scheduler.Step()
	}
}

// Phase returns the current game phase
func (s *Simulation) Phase() core.Phase {
	return s.Scheduler.Phase()
}
