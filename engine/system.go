package engine

import "github.com/lixenwraith/meteor-fighter/core"

// System is a unit of per-tick simulation logic
type System interface {
	// Init resets internal state, called once before the first tick
	Init()
	// Name identifies the system in logs and metrics
	Name() string
	// Priority orders execution, lower runs first
	Priority() int
	// Phases gates execution to the listed game phases
	Phases() core.PhaseMask
	// Update runs one tick, never fails; missing data degrades to a no-op
	Update()
}

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component *ComponentStore
}

// NewSystemBase initializes base dependency from world
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resource,
		Component: &w.Components,
	}
}
