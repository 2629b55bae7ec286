package system

import (
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// Overlaps is the strict AABB test on centred half-extents, touching edges do not collide
func Overlaps(posA, halfA, posB, halfB mgl64.Vec2) bool {
	return math.Abs(posA.X()-posB.X()) < halfA.X()+halfB.X() &&
		math.Abs(posA.Y()-posB.Y()) < halfA.Y()+halfB.Y()
}

// collider is a per-tick snapshot of one collidable entity
type collider struct {
	entity core.Entity
	pos    mgl64.Vec2
	half   mgl64.Vec2
}

// CollisionSystem scans category pairs against this tick's transforms
// Removals go to the transient removal set, damage and splits to transient buffers
// Nothing is destroyed here, cull does it at end of tick
type CollisionSystem struct {
	engine.SystemBase

	statCollected *atomic.Int64
	statDestroyed *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	return &CollisionSystem{
		SystemBase:    engine.NewSystemBase(world),
		statCollected: reg.Ints.Get(parameter.StatPowerUpCollected),
		statDestroyed: reg.Ints.Get(parameter.StatMeteorDestroyed),
	}
}

func (s *CollisionSystem) Init() {}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Phases() core.PhaseMask { return core.MaskOf(core.PhaseInGame) }

func (s *CollisionSystem) Update() {
	players := s.gather(s.Component.Player.All())
	if len(players) > 0 {
		s.playerPowerUps(players)
	}
	s.projectileMeteors()
	if len(players) > 0 {
		s.playerHazards(players)
	}
}

// gather snapshots collidable entities not yet removed this tick
func (s *CollisionSystem) gather(entities []core.Entity) []collider {
	tr := s.Resource.Transient
	out := make([]collider, 0, len(entities))
	for _, e := range entities {
		if tr.IsRemoved(e) {
			continue
		}
		t, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		hb, ok := s.Component.HitBox.Get(e)
		if !ok {
			continue
		}
		out = append(out, collider{entity: e, pos: t.Position, half: hb.Scaled(t.Scale)})
	}
	return out
}

func (s *CollisionSystem) playerPowerUps(players []collider) {
	tr := s.Resource.Transient
	powerUps := s.gather(s.Component.PowerUp.All())

	for _, p := range players {
		for _, pu := range powerUps {
			if tr.IsRemoved(pu.entity) || !Overlaps(p.pos, p.half, pu.pos, pu.half) {
				continue
			}
			effect, ok := s.Component.PowerUp.Get(pu.entity)
			if !ok {
				continue
			}
			tr.MarkRemoved(pu.entity)

			player, ok := s.Component.Player.Get(p.entity)
			if !ok {
				continue
			}
			player.Ship = effect.Effect
			s.Component.Player.Set(p.entity, player)

			s.World.PushEvent(event.EventShipChanged, &event.ShipChangedPayload{
				Entity: p.entity,
				Ship:   effect.Effect,
			})
			s.statCollected.Add(1)
		}
	}
}

func (s *CollisionSystem) projectileMeteors() {
	tr := s.Resource.Transient
	projectiles := s.gather(s.Component.Projectile.All())
	if len(projectiles) == 0 {
		return
	}
	meteors := s.gather(s.Component.Meteor.All())

	for _, p := range projectiles {
		if proj, ok := s.Component.Projectile.Get(p.entity); !ok || proj.Despawn.JustFinished() {
			continue
		}
		for _, m := range meteors {
			if tr.IsRemoved(p.entity) {
				break
			}
			if tr.IsRemoved(m.entity) || !Overlaps(p.pos, p.half, m.pos, m.half) {
				continue
			}
			meteor, ok := s.Component.Meteor.Get(m.entity)
			if !ok {
				continue
			}

			tr.MarkRemoved(p.entity)
			tr.MarkRemoved(m.entity)

			if meteor.Size.CanSplit() {
				tr.PushSplit(meteor.Size.Smaller(), m.pos)
			}
			s.World.PushEvent(event.EventMeteorDestroyed, &event.MeteorDestroyedPayload{
				Size:     meteor.Size,
				Position: m.pos,
			})
			s.statDestroyed.Add(1)
		}
	}
}

func (s *CollisionSystem) playerHazards(players []collider) {
	tr := s.Resource.Transient
	hazards := s.gather(s.Component.Hazard.All())

	for _, p := range players {
		for _, h := range hazards {
			if tr.IsRemoved(h.entity) || !Overlaps(p.pos, p.half, h.pos, h.half) {
				continue
			}
			hazard, ok := s.Component.Hazard.Get(h.entity)
			if !ok {
				continue
			}
			tr.MarkRemoved(h.entity)
			if hazard.Inflicts {
				tr.PushDamage(h.entity, hazard.Damage)
			}
		}
	}
}
