package system

import (
	"sync/atomic"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// CullSystem destroys entities marked for removal this tick
// It runs last in every phase, then clears the transient state
type CullSystem struct {
	engine.SystemBase

	statCulled *atomic.Int64
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{
		SystemBase: engine.NewSystemBase(world),
		statCulled: world.Resource.Status.Ints.Get(parameter.StatEntityCulled),
	}
}

func (s *CullSystem) Init() {}

func (s *CullSystem) Name() string { return "cull" }

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

func (s *CullSystem) Phases() core.PhaseMask { return core.AllPhases }

func (s *CullSystem) Update() {
	tr := s.Resource.Transient
	for _, e := range tr.Removed() {
		if s.World.DestroyEntity(e) {
			s.statCulled.Add(1)
		}
	}
	tr.Reset()
}
