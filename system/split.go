package system

import (
	"sync/atomic"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// SplitSystem drains split events, each consumed exactly once
type SplitSystem struct {
	engine.SystemBase

	statSplit *atomic.Int64
}

func NewSplitSystem(world *engine.World) engine.System {
	return &SplitSystem{
		SystemBase: engine.NewSystemBase(world),
		statSplit:  world.Resource.Status.Ints.Get(parameter.StatMeteorSplit),
	}
}

func (s *SplitSystem) Init() {}

func (s *SplitSystem) Name() string { return "split" }

func (s *SplitSystem) Priority() int { return parameter.PrioritySplit }

func (s *SplitSystem) Phases() core.PhaseMask { return core.MaskOf(core.PhaseInGame) }

func (s *SplitSystem) Update() {
	tr := s.Resource.Transient
	if len(tr.Splits) == 0 {
		return
	}

	for _, sp := range tr.Splits {
		n := spawnSplitChildren(s.World, sp.Size, sp.Position)
		if n == 0 {
			continue
		}
		s.World.PushEvent(event.EventMeteorSplit, &event.MeteorSplitPayload{
			Size:     sp.Size,
			Position: sp.Position,
			Children: n,
		})
		s.statSplit.Add(1)
	}
	tr.Splits = tr.Splits[:0]
}
