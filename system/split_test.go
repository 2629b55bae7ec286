package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/component"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/event"
)

func TestSplitChildCounts(t *testing.T) {
	tests := []struct {
		parent core.MeteorSize
		want   int
	}{
		{core.MeteorLarge, 3},
		{core.MeteorMedium, 3},
		{core.MeteorSmall, 0},
	}
	for _, tt := range tests {
		t.Run(tt.parent.String(), func(t *testing.T) {
			w := newTestWorld(NewSplitSystem)
			w.Resource.Transient.PushSplit(tt.parent.Smaller(), mgl64.Vec2{7, -3})

			tick(w)
			child := tt.parent.Smaller()
			if got := w.Components.Meteor.Count(); got != tt.want {
				t.Fatalf("children=%d, want %d", got, tt.want)
			}
			if tt.want > 0 && countMeteors(w, child) != tt.want {
				t.Errorf("children not all %v", child)
			}
			if len(w.Resource.Transient.Splits) != 0 {
				t.Error("split event not consumed")
			}
		})
	}
}

func TestSplitChildrenState(t *testing.T) {
	w := newTestWorld(NewSplitSystem)
	origin := mgl64.Vec2{12, 34}
	w.Resource.Transient.PushSplit(core.MeteorSmall, origin)

	tick(w)
	seen := make(map[mgl64.Vec2]bool)
	for _, e := range w.Components.Meteor.All() {
		tr, _ := w.Components.Transform.Get(e)
		if !tr.Position.ApproxEqual(origin) {
			t.Errorf("child at %v, want %v", tr.Position, origin)
		}
		b, _ := w.Components.Bounds.Get(e)
		if b.Policy != component.BoundsDespawnAfterDelay || b.Grace.Duration <= 0 {
			t.Errorf("child bounds = %+v", b)
		}
		if !w.Components.Cleanup.Has(e) || !w.Components.Hazard.Has(e) {
			t.Error("child missing cleanup or hazard tag")
		}
		v, _ := w.Components.Velocity.Get(e)
		if seen[v.Vec2] {
			t.Errorf("duplicate child velocity %v", v.Vec2)
		}
		seen[v.Vec2] = true
	}

	evs := drain(w, event.EventMeteorSplit)
	if len(evs) != 1 {
		t.Fatalf("split events=%d", len(evs))
	}
	if p := evs[0].Payload.(*event.MeteorSplitPayload); p.Children != 3 || p.Size != core.MeteorSmall {
		t.Errorf("payload = %+v", p)
	}
}

func TestChildSpeedScalesWithIndex(t *testing.T) {
	w := newTestWorld()
	step := w.Resource.Config.Meteor.ChildSpeedStep

	// Child i draws each axis from [-i*step, i*step)
	for round := 0; round < 20; round++ {
		before := w.Components.Meteor.All()
		spawnSplitChildren(w, core.MeteorMedium, mgl64.Vec2{})
		after := w.Components.Meteor.All()[len(before):]
		for i, e := range after {
			limit := float64(i+1) * step
			v, _ := w.Components.Velocity.Get(e)
			if v.X() < -limit || v.X() >= limit || v.Y() < -limit || v.Y() >= limit {
				t.Fatalf("child %d velocity %v outside ±%v", i+1, v.Vec2, limit)
			}
		}
	}
}

// Large meteor and projectile overlapping the player at the origin
func TestSplitScenarioEndToEnd(t *testing.T) {
	w := newTestWorld(NewKinematicsSystem, NewCollisionSystem, NewDamageSystem, NewSplitSystem, NewCullSystem)
	placePlayer(w, mgl64.Vec2{})
	parent := placeMeteor(w, core.MeteorLarge, mgl64.Vec2{5, 5})
	shot := placeProjectile(w, mgl64.Vec2{5, 5})

	tick(w)

	if w.IsAlive(parent) || w.IsAlive(shot) {
		t.Fatal("parent or projectile survived")
	}
	if got := countMeteors(w, core.MeteorMedium); got != 3 {
		t.Fatalf("medium children=%d, want 3", got)
	}
	if countMeteors(w, core.MeteorLarge) != 0 {
		t.Error("large meteor still present")
	}
	if w.Resource.Life.Current != w.Resource.Life.Max {
		t.Error("destroyed meteor damaged the player")
	}

	evs := w.EventQueue().Consume()
	splits := 0
	for _, ev := range evs {
		if ev.Type != event.EventMeteorSplit {
			continue
		}
		splits++
		p := ev.Payload.(*event.MeteorSplitPayload)
		if p.Size != core.MeteorMedium || !p.Position.ApproxEqual(mgl64.Vec2{5, 5}) {
			t.Errorf("split payload = %+v", p)
		}
	}
	if splits != 1 {
		t.Errorf("split events=%d, want 1", splits)
	}
	if len(w.Resource.Transient.Removed()) != 0 {
		t.Error("transient state survived cull")
	}
}
