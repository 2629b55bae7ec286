package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// DamageSystem applies the tick's collected damage to Life in insertion order
// The first event that empties Life raises PlayerDead, later events are dropped
type DamageSystem struct {
	engine.SystemBase

	statApplied *atomic.Int64
	statDeaths  *atomic.Int64
}

func NewDamageSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	return &DamageSystem{
		SystemBase:  engine.NewSystemBase(world),
		statApplied: reg.Ints.Get(parameter.StatDamageApplied),
		statDeaths:  reg.Ints.Get(parameter.StatPlayerDeaths),
	}
}

func (s *DamageSystem) Init() {}

func (s *DamageSystem) Name() string { return "damage" }

func (s *DamageSystem) Priority() int { return parameter.PriorityDamage }

func (s *DamageSystem) Phases() core.PhaseMask { return core.MaskOf(core.PhaseInGame) }

func (s *DamageSystem) Update() {
	tr := s.Resource.Transient
	if len(tr.Damage) == 0 {
		return
	}
	defer func() { tr.Damage = tr.Damage[:0] }()

	life := s.Resource.Life
	if life.Current <= 0 {
		return
	}

	for _, d := range tr.Damage {
		died := life.Apply(d.Amount)
		s.World.PushEvent(event.EventDamageApplied, &event.DamageAppliedPayload{
			Amount:    d.Amount,
			Remaining: life.Current,
		})
		s.statApplied.Add(1)

		if died {
			log.Printf("[damage] player died, frame=%d", s.Resource.Time.FrameNumber)
			s.World.PushEvent(event.EventPlayerDead, nil)
			s.statDeaths.Add(1)
			return
		}
	}
}
