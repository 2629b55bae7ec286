package system

import (
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// EntrySystem glides the freshly spawned player into view during StartGame
type EntrySystem struct {
	engine.SystemBase
}

func NewEntrySystem(world *engine.World) engine.System {
	return &EntrySystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *EntrySystem) Init() {}

func (s *EntrySystem) Name() string { return "entry" }

func (s *EntrySystem) Priority() int { return parameter.PriorityEntry }

func (s *EntrySystem) Phases() core.PhaseMask { return core.MaskOf(core.PhaseStartGame) }

func (s *EntrySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPhaseEnded}
}

// HandleEvent snaps any unfinished glide to its target once StartGame ends
func (s *EntrySystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.PhasePayload)
	if !ok || p.Phase != core.PhaseStartGame {
		return
	}
	for _, e := range s.Component.Entry.All() {
		entry, ok := s.Component.Entry.Get(e)
		if !ok {
			continue
		}
		if t, ok := s.Component.Transform.Get(e); ok {
			t.Position = entry.To
			s.Component.Transform.Set(e, t)
		}
		s.Component.Entry.Remove(e)
	}
}

func (s *EntrySystem) Update() {
	dt := s.Resource.Time.DeltaTime
	for _, e := range s.Component.Entry.All() {
		entry, ok := s.Component.Entry.Get(e)
		if !ok {
			continue
		}
		t, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		entry.Elapsed += dt
		t.Position = entry.Position()
		s.Component.Transform.Set(e, t)
		s.Component.Entry.Set(e, entry)
	}
}
