package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// PlayerSystem turns input into ship rotation, thrust and fire
// Runs before kinematics so the new velocity applies on the same tick
type PlayerSystem struct {
	engine.SystemBase

	statFired *atomic.Int64
}

func NewPlayerSystem(world *engine.World) engine.System {
	return &PlayerSystem{
		SystemBase: engine.NewSystemBase(world),
		statFired:  world.Resource.Status.Ints.Get(parameter.StatProjectileFired),
	}
}

func (s *PlayerSystem) Init() {}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Phases() core.PhaseMask { return core.MaskOf(core.PhaseInGame) }

func (s *PlayerSystem) Update() {
	cfg := &s.Resource.Config.Player
	input := s.Resource.Input
	dt := s.Resource.Time.DeltaTime

	for _, e := range s.Component.Player.All() {
		player, ok := s.Component.Player.Get(e)
		if !ok {
			continue
		}
		transform, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		velocity, _ := s.Component.Velocity.Get(e)

		player.Cooldown.Tick(dt)

		if input.TurnLeft {
			transform.Rotation += cfg.TurnSpeed
		}
		if input.TurnRight {
			transform.Rotation -= cfg.TurnSpeed
		}
		transform.Rotation = math.Remainder(transform.Rotation, 2*math.Pi)

		facing := Facing(transform.Rotation)
		if input.Thrust {
			velocity.Vec2 = velocity.Add(facing.Mul(cfg.Acceleration))
			if speed := velocity.Len(); speed > cfg.MaxSpeed {
				velocity.Vec2 = velocity.Mul(cfg.MaxSpeed / speed)
			}
		} else {
			velocity.Vec2 = velocity.Mul(1 - cfg.Deceleration)
		}

		if input.Fire && player.Cooldown.Finished() {
			player.Cooldown.Reset()
			p := spawnProjectile(s.World, transform.Position, transform.Rotation)
			s.World.PushEvent(event.EventProjectileFired, &event.ProjectileFiredPayload{
				Entity:   p,
				Position: transform.Position,
			})
			s.statFired.Add(1)
		}

		s.Component.Player.Set(e, player)
		s.Component.Transform.Set(e, transform)
		s.Component.Velocity.Set(e, velocity)
	}
}

// compile-time check
var _ engine.System = (*PlayerSystem)(nil)
