package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/component"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// Facing returns the unit vector a rotation points at, zero rotation faces +y
func Facing(rotation float64) mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(rotation + math.Pi/2), math.Sin(rotation + math.Pi/2)}
}

// spawnPlayer creates the player off-screen below the window, gliding to the centre
func spawnPlayer(w *engine.World) core.Entity {
	cfg := &w.Resource.Config.Player
	win := w.Resource.Window
	rng := w.Resource.RNG
	c := &w.Components

	from := mgl64.Vec2{0, -win.Height}
	to := mgl64.Vec2{0, 0}
	scale := mgl64.Vec2{cfg.Scale, cfg.Scale}

	// Ready to fire on the first InGame tick
	cooldown := core.NewTimer(cfg.ShootCooldown.Std())
	cooldown.Elapsed = cooldown.Duration

	b := w.NewEntity()
	engine.With(b, c.Transform, component.TransformComponent{Position: from, Scale: scale})
	engine.With(b, c.Velocity, component.VelocityComponent{})
	engine.With(b, c.HitBox, component.HitBoxComponent{HalfExtents: cfg.HitBox.Vec()})
	engine.With(b, c.Category, component.CategoryComponent{Kind: component.KindPlayer})
	engine.With(b, c.Player, component.PlayerComponent{Ship: core.RandomShipType(rng), Cooldown: cooldown})
	engine.With(b, c.Bounds, component.NewWarpBounds())
	engine.With(b, c.Entry, component.EntryComponent{
		From:     from,
		To:       to,
		Duration: cfg.EntryDuration.Std(),
	})
	return b.Build()
}

// spawnProjectile fires along the shooter's facing from its position
func spawnProjectile(w *engine.World, origin mgl64.Vec2, rotation float64) core.Entity {
	cfg := &w.Resource.Config.Projectile
	c := &w.Components

	b := w.NewEntity()
	engine.With(b, c.Transform, component.TransformComponent{
		Position: origin,
		Rotation: rotation,
		Scale:    mgl64.Vec2{cfg.Scale, cfg.Scale},
	})
	engine.With(b, c.Velocity, component.VelocityComponent{Vec2: Facing(rotation).Mul(cfg.Speed)})
	engine.With(b, c.HitBox, component.HitBoxComponent{HalfExtents: cfg.HitBox.Vec()})
	engine.With(b, c.Category, component.CategoryComponent{Kind: component.KindProjectile})
	engine.With(b, c.Projectile, component.ProjectileComponent{Despawn: core.NewTimer(cfg.Despawn.Std())})
	engine.With(b, c.Bounds, component.NewDespawnBounds(mgl64.Vec2{cfg.BoundsOffset, cfg.BoundsOffset}))
	engine.With(b, c.Cleanup, component.CleanupComponent{})
	return b.Build()
}

// spawnMeteorAt creates a meteor with explicit motion and bounds
func spawnMeteorAt(w *engine.World, size core.MeteorSize, pos, vel mgl64.Vec2, rotation, spin float64, bounds component.BoundsComponent) core.Entity {
	cfg := &w.Resource.Config.Meteor
	c := &w.Components
	half := cfg.HalfExtent(size)

	b := w.NewEntity()
	engine.With(b, c.Transform, component.TransformComponent{Position: pos, Rotation: rotation, Scale: mgl64.Vec2{1, 1}})
	engine.With(b, c.Velocity, component.VelocityComponent{Vec2: vel})
	engine.With(b, c.Spin, component.SpinComponent{Speed: spin})
	engine.With(b, c.HitBox, component.HitBoxComponent{HalfExtents: mgl64.Vec2{half, half}})
	engine.With(b, c.Category, component.CategoryComponent{Kind: component.KindMeteor})
	engine.With(b, c.Meteor, component.MeteorComponent{Size: size})
	engine.With(b, c.Hazard, component.HazardComponent{Damage: cfg.Damage(size), Inflicts: true})
	engine.With(b, c.Bounds, bounds)
	engine.With(b, c.Cleanup, component.CleanupComponent{})
	return b.Build()
}

// spawnBearing picks a cardinal direction plus a continuous jitter in [0, 359) degrees
func spawnBearing(rng *core.FastRand) float64 {
	cardinals := [...]float64{0, 90, 180, 270}
	return cardinals[rng.Intn(len(cardinals))] + rng.Range(0, 359)
}

// spawnFreshMeteor places a Large meteor on a jittered cardinal ray, aimed at target
// Aim is fixed at spawn, meteors do not home
func spawnFreshMeteor(w *engine.World, target mgl64.Vec2) core.Entity {
	cfg := &w.Resource.Config.Meteor
	rng := w.Resource.RNG

	angle := core.Radians(spawnBearing(rng))
	dist := w.Resource.Window.Width / 2

	pos := mgl64.Vec2{math.Sin(angle) * dist, math.Cos(angle) * dist}

	var vel mgl64.Vec2
	if dir := target.Sub(pos); dir.Len() > 0 {
		vel = dir.Normalize().Mul(cfg.Speed)
	}

	bounds := component.NewDelayedDespawnBounds(
		mgl64.Vec2{dist, dist},
		core.NewTimer(cfg.Grace.Std()),
		core.NewTimer(cfg.DespawnDelay.Std()),
	)

	jitter := cfg.SpinJitter
	return spawnMeteorAt(w, core.MeteorLarge, pos, vel,
		rng.Range(-jitter, jitter), rng.Range(-jitter, jitter), bounds)
}

// spawnSplitChildren spawns the split cascade at the parent's last position
// Child i (1-based) draws each velocity axis from [-i*step, i*step)
func spawnSplitChildren(w *engine.World, size core.MeteorSize, pos mgl64.Vec2) int {
	if size == core.MeteorGone {
		return 0
	}
	cfg := &w.Resource.Config.Meteor
	rng := w.Resource.RNG

	for i := 1; i <= parameter.MeteorSplitChildren; i++ {
		s := float64(i) * cfg.ChildSpeedStep
		vel := mgl64.Vec2{rng.Range(-s, s), rng.Range(-s, s)}
		bounds := component.NewDelayedDespawnBounds(
			mgl64.Vec2{cfg.ChildOffset, cfg.ChildOffset},
			core.NewTimer(cfg.ChildGrace.Std()),
			core.NewTimer(cfg.ChildDelay.Std()),
		)
		spawnMeteorAt(w, size, pos, vel,
			rng.Range(-1, 1), rng.Range(-cfg.SpinJitter, cfg.SpinJitter), bounds)
	}
	return parameter.MeteorSplitChildren
}

// spawnPowerUp places a power-up beyond the top or bottom edge drifting inward
func spawnPowerUp(w *engine.World) core.Entity {
	cfg := &w.Resource.Config.PowerUp
	win := w.Resource.Window
	rng := w.Resource.RNG
	c := &w.Components

	half := win.HalfExtents()
	x := rng.Range(-half.X(), half.X())

	// Above the centre line drifts down, below drifts up
	y := half.Y() + cfg.SpawnMargin
	vy := -rng.Range(cfg.MinSpeedY, cfg.MaxSpeedY)
	if rng.Bool() {
		y = -y
		vy = -vy
	}
	vel := mgl64.Vec2{rng.Range(-cfg.MaxSpeedX, cfg.MaxSpeedX), vy}

	b := w.NewEntity()
	engine.With(b, c.Transform, component.TransformComponent{
		Position: mgl64.Vec2{x, y},
		Rotation: rng.Range(-cfg.SpinJitter, cfg.SpinJitter),
		Scale:    mgl64.Vec2{1, 1},
	})
	engine.With(b, c.Velocity, component.VelocityComponent{Vec2: vel})
	engine.With(b, c.Spin, component.SpinComponent{Speed: rng.Range(-cfg.SpinJitter, cfg.SpinJitter)})
	engine.With(b, c.HitBox, component.HitBoxComponent{HalfExtents: cfg.HitBox.Vec()})
	engine.With(b, c.Category, component.CategoryComponent{Kind: component.KindPowerUp})
	engine.With(b, c.PowerUp, component.PowerUpComponent{Effect: core.RandomShipType(rng)})
	engine.With(b, c.Bounds, component.NewDespawnBounds(mgl64.Vec2{cfg.BoundsOffset, cfg.BoundsOffset}))
	engine.With(b, c.Cleanup, component.CleanupComponent{})
	return b.Build()
}

// liveCount counts entities in store not already marked for removal this tick
func liveCount(entities []core.Entity, tr *engine.TransientResource) int {
	n := 0
	for _, e := range entities {
		if !tr.IsRemoved(e) {
			n++
		}
	}
	return n
}

// findPlayer returns the first controllable player
func findPlayer(w *engine.World) (core.Entity, component.TransformComponent, bool) {
	for _, e := range w.Components.Player.All() {
		if t, ok := w.Components.Transform.Get(e); ok {
			return e, t, true
		}
	}
	return core.NoEntity, component.TransformComponent{}, false
}
