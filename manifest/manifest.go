package manifest

import (
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/system"
)

// SystemFactory builds one system for a world
type SystemFactory func(*engine.World) engine.System

// Systems lists every simulation system in registration order
// Execution order comes from Priority, event-only systems declare no phases
var Systems = []SystemFactory{
	system.NewPlayerSystem,
	system.NewProjectileSystem,
	system.NewEntrySystem,
	system.NewKinematicsSystem,
	system.NewCollisionSystem,
	system.NewDamageSystem,
	system.NewSplitSystem,
	system.NewSpawnSystem,
	system.NewLifecycleSystem,
	system.NewCleanupSystem,
	system.NewScoreSystem,
	system.NewCullSystem,
}

// RegisterSystems adds every system to the world and its event handlers to the scheduler
func RegisterSystems(w *engine.World, scheduler *engine.ClockScheduler) []engine.System {
	systems := make([]engine.System, 0, len(Systems))
	for _, factory := range Systems {
		s := factory(w)
		w.AddSystem(s)
		if h, ok := s.(event.Handler); ok {
			scheduler.RegisterEventHandler(h)
		}
		systems = append(systems, s)
	}
	return systems
}
