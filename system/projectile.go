package system

import (
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// ProjectileSystem expires projectiles whose lifetime elapsed
type ProjectileSystem struct {
	engine.SystemBase
}

func NewProjectileSystem(world *engine.World) engine.System {
	return &ProjectileSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ProjectileSystem) Init() {}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) Phases() core.PhaseMask { return core.MaskOf(core.PhaseInGame) }

func (s *ProjectileSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	for _, e := range s.Component.Projectile.All() {
		p, ok := s.Component.Projectile.Get(e)
		if !ok {
			continue
		}
		p.Despawn.Tick(dt)
		s.Component.Projectile.Set(e, p)

		// Collision skips projectiles expiring this tick
		if p.Despawn.JustFinished() {
			s.Resource.Transient.MarkRemoved(e)
		}
	}
}
