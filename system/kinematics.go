package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/component"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// KinematicsSystem integrates spin and velocity, then applies each entity's bounds policy
// Velocity is displacement per tick, the fixed step keeps motion deterministic
type KinematicsSystem struct {
	engine.SystemBase
}

func NewKinematicsSystem(world *engine.World) engine.System {
	return &KinematicsSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *KinematicsSystem) Init() {}

func (s *KinematicsSystem) Name() string { return "kinematics" }

func (s *KinematicsSystem) Priority() int { return parameter.PriorityKinematics }

func (s *KinematicsSystem) Phases() core.PhaseMask { return core.MaskOf(core.PhaseInGame) }

func (s *KinematicsSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	window := s.Resource.Window
	tr := s.Resource.Transient

	for _, e := range s.Component.Velocity.All() {
		if tr.IsRemoved(e) {
			continue
		}
		t, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		vel, _ := s.Component.Velocity.Get(e)

		if spin, ok := s.Component.Spin.Get(e); ok {
			t.Rotation += spin.Speed
		}

		next := t.Position.Add(vel.Vec2)

		if bounds, ok := s.Component.Bounds.Get(e); ok {
			switch bounds.Policy {
			case component.BoundsWarp:
				next = Warp(next, vel.Vec2, window.HalfExtents(), t.MaxScale())

			case component.BoundsDespawnImmediate:
				if OutOfBounds(next, window.DespawnBorder().Add(bounds.Offset)) {
					tr.MarkRemoved(e)
				}

			case component.BoundsDespawnAfterDelay:
				if s.tickDelayed(&bounds, next, window.DespawnBorder(), dt) {
					tr.MarkRemoved(e)
				}
				s.Component.Bounds.Set(e, bounds)
			}
		}

		t.Position = next
		s.Component.Transform.Set(e, t)
	}
}

// tickDelayed advances grace and despawn timers, returns true when the entity should go
// The pending latch survives re-entry into the window
func (s *KinematicsSystem) tickDelayed(b *component.BoundsComponent, next, border mgl64.Vec2, dt time.Duration) bool {
	b.Grace.Tick(dt)
	if !b.Grace.Finished() {
		return false
	}
	if !b.Pending && OutOfBounds(next, border.Add(b.Offset)) {
		b.Pending = true
		b.Despawn.Reset()
	}
	if !b.Pending {
		return false
	}
	b.Despawn.Tick(dt)
	return b.Despawn.Finished()
}

// OutOfBounds reports whether p lies strictly outside the centred rectangle of the given half-extents
func OutOfBounds(p, half mgl64.Vec2) bool {
	return p.X() > half.X() || p.X() < -half.X() ||
		p.Y() > half.Y() || p.Y() < -half.Y()
}

// Warp mirrors an overshoot past one edge to the same distance beyond the opposite edge
// Edges are the window half-extents widened by margin. An axis only wraps while its velocity
// is not pointing back inward, so a freshly wrapped entity is never bounced straight back
func Warp(p, vel, half mgl64.Vec2, margin float64) mgl64.Vec2 {
	for axis := 0; axis < 2; axis++ {
		edge := half[axis] + margin
		switch {
		case p[axis] > edge && vel[axis] >= 0:
			p[axis] = -edge - (p[axis] - edge)
		case p[axis] < -edge && vel[axis] <= 0:
			p[axis] = edge + (-edge - p[axis])
		}
	}
	return p
}
