package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/component"
	"github.com/lixenwraith/meteor-fighter/config"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
)

const testDT = 16 * time.Millisecond

func newTestWorld(systems ...func(*engine.World) engine.System) *engine.World {
	cfg := config.Default()
	cfg.Engine.Seed = 42
	w := engine.NewWorld(cfg)
	for _, ctor := range systems {
		w.AddSystem(ctor(w))
	}
	return w
}

// tick advances time and runs the InGame systems once
func tick(w *engine.World) {
	w.Resource.Time.Advance(testDT)
	w.UpdateLocked(core.PhaseInGame)
}

func drain(w *engine.World, t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.EventQueue().Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func placePlayer(w *engine.World, pos mgl64.Vec2) core.Entity {
	c := &w.Components
	cfg := &w.Resource.Config.Player
	cooldown := core.NewTimer(cfg.ShootCooldown.Std())
	cooldown.Elapsed = cooldown.Duration

	b := w.NewEntity()
	engine.With(b, c.Transform, component.TransformComponent{Position: pos, Scale: mgl64.Vec2{cfg.Scale, cfg.Scale}})
	engine.With(b, c.Velocity, component.VelocityComponent{})
	engine.With(b, c.HitBox, component.HitBoxComponent{HalfExtents: cfg.HitBox.Vec()})
	engine.With(b, c.Category, component.CategoryComponent{Kind: component.KindPlayer})
	engine.With(b, c.Player, component.PlayerComponent{Cooldown: cooldown})
	engine.With(b, c.Bounds, component.NewWarpBounds())
	return b.Build()
}

func placeMeteor(w *engine.World, size core.MeteorSize, pos mgl64.Vec2) core.Entity {
	return spawnMeteorAt(w, size, pos, mgl64.Vec2{}, 0, 0, component.NewDelayedDespawnBounds(
		mgl64.Vec2{}, core.NewTimer(time.Second), core.NewTimer(time.Second)))
}

func placeProjectile(w *engine.World, pos mgl64.Vec2) core.Entity {
	e := spawnProjectile(w, pos, 0)
	w.Components.Velocity.Set(e, component.VelocityComponent{})
	return e
}

func countMeteors(w *engine.World, size core.MeteorSize) int {
	n := 0
	for _, e := range w.Components.Meteor.All() {
		if m, _ := w.Components.Meteor.Get(e); m.Size == size {
			n++
		}
	}
	return n
}
