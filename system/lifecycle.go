package system

import (
	"log"

	"github.com/lixenwraith/meteor-fighter/component"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
)

// LifecycleSystem owns the player entity across runs
// Event-driven only: spawn on request, reset life, turn the player into a husk on death
type LifecycleSystem struct {
	engine.SystemBase
}

func NewLifecycleSystem(world *engine.World) engine.System {
	return &LifecycleSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *LifecycleSystem) Init() {}

func (s *LifecycleSystem) Name() string { return "lifecycle" }

func (s *LifecycleSystem) Priority() int { return 0 }

// Phases is empty, the system never runs per tick
func (s *LifecycleSystem) Phases() core.PhaseMask { return 0 }

func (s *LifecycleSystem) Update() {}

func (s *LifecycleSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerSpawnRequest,
		event.EventLifeResetRequest,
		event.EventPlayerDead,
	}
}

func (s *LifecycleSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayerSpawnRequest:
		s.removePlayers()
		e := spawnPlayer(s.World)
		log.Printf("[lifecycle] player spawned entity=%d run=%d", e, s.Resource.Run.Number)

	case event.EventLifeResetRequest:
		s.Resource.Life.Reset()
		s.Resource.Score.ResetCurrent()

	case event.EventPlayerDead:
		s.haltPlayers()
	}
}

// removePlayers destroys the previous run's player or husk
func (s *LifecycleSystem) removePlayers() {
	for _, e := range s.Component.Category.All() {
		if c, ok := s.Component.Category.Get(e); ok && c.Kind == component.KindPlayer {
			s.World.DestroyEntity(e)
		}
	}
}

// haltPlayers strips gameplay components, the husk keeps its transform for presentation
func (s *LifecycleSystem) haltPlayers() {
	for _, e := range s.Component.Player.All() {
		s.Component.Velocity.Remove(e)
		s.Component.HitBox.Remove(e)
		s.Component.Entry.Remove(e)
		s.Component.Player.Remove(e)
		log.Printf("[lifecycle] player halted entity=%d", e)
	}
}

// CleanupSystem despawns every end-of-run entity when EndGame is entered
type CleanupSystem struct {
	engine.SystemBase
}

func NewCleanupSystem(world *engine.World) engine.System {
	return &CleanupSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *CleanupSystem) Init() {}

func (s *CleanupSystem) Name() string { return "cleanup" }

func (s *CleanupSystem) Priority() int { return 0 }

func (s *CleanupSystem) Phases() core.PhaseMask { return 0 }

func (s *CleanupSystem) Update() {}

func (s *CleanupSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventCleanupRequest}
}

func (s *CleanupSystem) HandleEvent(ev event.GameEvent) {
	n := 0
	for _, e := range s.Component.Cleanup.All() {
		if s.World.DestroyEntity(e) {
			n++
		}
	}
	log.Printf("[cleanup] despawned %d entities", n)
}

// ScoreSystem awards points per destroyed meteor tier
type ScoreSystem struct {
	engine.SystemBase
}

func NewScoreSystem(world *engine.World) engine.System {
	return &ScoreSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ScoreSystem) Init() {}

func (s *ScoreSystem) Name() string { return "score" }

func (s *ScoreSystem) Priority() int { return 0 }

func (s *ScoreSystem) Phases() core.PhaseMask { return 0 }

func (s *ScoreSystem) Update() {}

func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventMeteorDestroyed}
}

func (s *ScoreSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.MeteorDestroyedPayload); ok {
		s.Resource.Score.Add(s.Resource.Config.Score.Points(p.Size))
	}
}
