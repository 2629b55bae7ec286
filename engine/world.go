package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/meteor-fighter/config"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Components ComponentStore
	Resource   *Resource

	eventQueue *event.EventQueue

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with all stores and resources initialized from cfg
func NewWorld(cfg *config.Config) *World {
	q := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
		Resource:     NewResource(cfg),
		eventQueue:   q,
		systems:      make([]System, 0),
	}
	return w
}

// CreateEntity reserves a new entity handle, handles are never reused
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity removes all components associated with an entity
// Destroying an already destroyed entity is a no-op
func (w *World) DestroyEntity(e core.Entity) bool {
	w.mu.Lock()
	_, ok := w.alive[e]
	delete(w.alive, e)
	w.mu.Unlock()

	if !ok {
		return false
	}
	for _, s := range w.Components.all {
		s.Remove(e)
	}
	return true
}

// IsAlive reports whether the handle refers to a live entity
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// Clear removes all entities and components, handles keep counting up
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.alive = make(map[core.Entity]struct{})
	for _, s := range w.Components.all {
		s.Clear()
	}
}

// AddSystem adds a system and keeps the list sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs every system gated for the phase, caller holds the update lock
func (w *World) UpdateLocked(phase core.Phase) {
	for _, system := range w.Systems() {
		if system.Phases().Has(phase) {
			system.Update()
		}
	}
}

// EventQueue exposes the queue to the scheduler and external producers
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}

// PushEvent emits a game event stamped with the current frame, caller holds the update lock
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resource.Time.FrameNumber,
	})
}
