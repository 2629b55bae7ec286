package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/component"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

func TestOverlaps(t *testing.T) {
	half := mgl64.Vec2{1, 1}
	if !Overlaps(mgl64.Vec2{}, half, mgl64.Vec2{1.5, 1.5}, half) {
		t.Error("overlapping boxes reported apart")
	}
	if Overlaps(mgl64.Vec2{}, half, mgl64.Vec2{2, 0}, half) {
		t.Error("touching edges must not collide")
	}
	if Overlaps(mgl64.Vec2{}, half, mgl64.Vec2{0.5, 3}, half) {
		t.Error("overlap on one axis only must not collide")
	}
}

func TestProjectileMeteorAtMostOnce(t *testing.T) {
	w := newTestWorld(NewCollisionSystem)

	meteors := []core.Entity{
		placeMeteor(w, core.MeteorLarge, mgl64.Vec2{}),
		placeMeteor(w, core.MeteorLarge, mgl64.Vec2{1, 0}),
	}
	projectiles := []core.Entity{
		placeProjectile(w, mgl64.Vec2{}),
		placeProjectile(w, mgl64.Vec2{0, 1}),
		placeProjectile(w, mgl64.Vec2{1, 1}),
	}

	tick(w)
	tr := w.Resource.Transient

	removedMeteors, removedProjectiles := 0, 0
	for _, e := range meteors {
		if tr.IsRemoved(e) {
			removedMeteors++
		}
	}
	for _, e := range projectiles {
		if tr.IsRemoved(e) {
			removedProjectiles++
		}
	}
	if removedMeteors != 2 || removedProjectiles != 2 {
		t.Errorf("removed meteors=%d projectiles=%d, want 2 and 2", removedMeteors, removedProjectiles)
	}
	if len(tr.Splits) != removedMeteors {
		t.Errorf("splits=%d, want one per destroyed meteor", len(tr.Splits))
	}
	for _, sp := range tr.Splits {
		if sp.Size != core.MeteorMedium {
			t.Errorf("split size %v, want Medium", sp.Size)
		}
	}
	if got := len(drain(w, event.EventMeteorDestroyed)); got != 2 {
		t.Errorf("destroyed events=%d, want 2", got)
	}
}

func TestSmallMeteorDoesNotSplit(t *testing.T) {
	w := newTestWorld(NewCollisionSystem)
	m := placeMeteor(w, core.MeteorSmall, mgl64.Vec2{})
	placeProjectile(w, mgl64.Vec2{})

	tick(w)
	if !w.Resource.Transient.IsRemoved(m) {
		t.Fatal("small meteor not removed")
	}
	if n := len(w.Resource.Transient.Splits); n != 0 {
		t.Errorf("small meteor recorded %d splits", n)
	}
}

func TestExpiringProjectileIsIgnored(t *testing.T) {
	w := newTestWorld(NewCollisionSystem)
	m := placeMeteor(w, core.MeteorLarge, mgl64.Vec2{})
	p := placeProjectile(w, mgl64.Vec2{})

	proj, _ := w.Components.Projectile.Get(p)
	proj.Despawn.Elapsed = proj.Despawn.Duration - 1
	proj.Despawn.Tick(testDT)
	w.Components.Projectile.Set(p, proj)

	tick(w)
	if w.Resource.Transient.IsRemoved(m) {
		t.Error("projectile expiring this tick destroyed a meteor")
	}
}

func TestPlayerCollectsPowerUp(t *testing.T) {
	w := newTestWorld(NewCollisionSystem)
	player := placePlayer(w, mgl64.Vec2{})
	pu := spawnPowerUp(w)
	w.Components.Transform.Set(pu, component.TransformComponent{Scale: mgl64.Vec2{1, 1}})
	w.Components.PowerUp.Set(pu, component.PowerUpComponent{Effect: core.ShipAttack})

	tick(w)
	if !w.Resource.Transient.IsRemoved(pu) {
		t.Fatal("power-up not removed")
	}
	pc, _ := w.Components.Player.Get(player)
	if pc.Ship != core.ShipAttack {
		t.Errorf("ship = %v, want Attack", pc.Ship)
	}
	evs := drain(w, event.EventShipChanged)
	if len(evs) != 1 {
		t.Fatalf("ship changed events=%d, want 1", len(evs))
	}
	if p := evs[0].Payload.(*event.ShipChangedPayload); p.Entity != player || p.Ship != core.ShipAttack {
		t.Errorf("payload = %+v", p)
	}
}

func TestPowerUpGoesToOnePlayer(t *testing.T) {
	w := newTestWorld(NewCollisionSystem)
	first := placePlayer(w, mgl64.Vec2{})
	second := placePlayer(w, mgl64.Vec2{1, 0})
	pu := spawnPowerUp(w)
	w.Components.Transform.Set(pu, component.TransformComponent{Scale: mgl64.Vec2{1, 1}})
	w.Components.PowerUp.Set(pu, component.PowerUpComponent{Effect: core.ShipShield})

	tick(w)
	evs := drain(w, event.EventShipChanged)
	if len(evs) != 1 {
		t.Fatalf("ship changed events=%d, want 1", len(evs))
	}
	if n := w.Resource.Status.Int(parameter.StatPowerUpCollected); n != 1 {
		t.Errorf("collected=%d, want 1", n)
	}

	shielded := 0
	for _, e := range []core.Entity{first, second} {
		if pc, _ := w.Components.Player.Get(e); pc.Ship == core.ShipShield {
			shielded++
		}
	}
	if shielded != 1 {
		t.Errorf("%d players took the power-up, want 1", shielded)
	}
}

func TestPlayerHazardRecordsDamage(t *testing.T) {
	w := newTestWorld(NewCollisionSystem)
	placePlayer(w, mgl64.Vec2{})
	large := placeMeteor(w, core.MeteorLarge, mgl64.Vec2{10, 0})
	small := placeMeteor(w, core.MeteorSmall, mgl64.Vec2{-10, 0})
	far := placeMeteor(w, core.MeteorSmall, mgl64.Vec2{300, 0})

	tick(w)
	tr := w.Resource.Transient
	if !tr.IsRemoved(large) || !tr.IsRemoved(small) || tr.IsRemoved(far) {
		t.Fatal("hazard removal wrong")
	}
	if len(tr.Damage) != 2 {
		t.Fatalf("damage events=%d, want 2", len(tr.Damage))
	}
	if tr.Damage[0].Amount+tr.Damage[1].Amount != 3 {
		t.Errorf("damage total=%d, want 3", tr.Damage[0].Amount+tr.Damage[1].Amount)
	}
	if w.Resource.Life.Current != w.Resource.Life.Max {
		t.Error("collision must not touch life directly")
	}
}

func TestShotMeteorDoesNotHurtPlayer(t *testing.T) {
	w := newTestWorld(NewCollisionSystem)
	placePlayer(w, mgl64.Vec2{})
	placeMeteor(w, core.MeteorLarge, mgl64.Vec2{})
	placeProjectile(w, mgl64.Vec2{})

	tick(w)
	if n := len(w.Resource.Transient.Damage); n != 0 {
		t.Errorf("damage recorded for a meteor already destroyed, n=%d", n)
	}
}
