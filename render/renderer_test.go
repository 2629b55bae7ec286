package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/component"
	"github.com/lixenwraith/meteor-fighter/config"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
)

// newTestWorld returns an 80x40 world that maps one unit to one cell on an 80x41 buffer
func newTestWorld() *engine.World {
	cfg := config.Default()
	cfg.Engine.Seed = 7
	w := engine.NewWorld(cfg)
	w.Resource.Window.Resize(80, 40)
	return w
}

func place(w *engine.World, kind component.Kind, pos mgl64.Vec2, rot float64) *engine.EntityBuilder {
	c := &w.Components
	b := w.NewEntity()
	engine.With(b, c.Transform, component.TransformComponent{Position: pos, Rotation: rot, Scale: mgl64.Vec2{1, 1}})
	engine.With(b, c.Category, component.CategoryComponent{Kind: kind})
	return b
}

func TestProjectionFlipsY(t *testing.T) {
	p := NewProjection(80, 41, mgl64.Vec2{80, 40})

	tests := []struct {
		name  string
		pos   mgl64.Vec2
		x, y  int
		valid bool
	}{
		{"origin", mgl64.Vec2{0, 0}, 40, 21, true},
		{"top left", mgl64.Vec2{-40, 19.5}, 0, 1, true},
		{"bottom right", mgl64.Vec2{39.5, -19.5}, 79, 40, true},
		{"above", mgl64.Vec2{0, 21}, 0, 0, false},
		{"right of", mgl64.Vec2{41, 0}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := p.ToCell(tt.pos)
			if ok != tt.valid {
				t.Fatalf("ok = %v, want %v", ok, tt.valid)
			}
			if ok && (x != tt.x || y != tt.y) {
				t.Errorf("cell = (%d,%d), want (%d,%d)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestProjectionSpanAtLeastOne(t *testing.T) {
	p := NewProjection(80, 41, mgl64.Vec2{80, 40})
	if w, h := p.Span(mgl64.Vec2{0.1, 0.1}); w != 1 || h != 1 {
		t.Errorf("Span small = %d,%d, want 1,1", w, h)
	}
	if w, h := p.Span(mgl64.Vec2{2, 3}); w != 4 || h != 6 {
		t.Errorf("Span = %d,%d, want 4,6", w, h)
	}
}

func TestShipArrowFollowsRotation(t *testing.T) {
	st := NewSpriteTable()
	tests := []struct {
		rot  float64
		want string
	}{
		{0, "↑"},
		{math.Pi / 2, "←"},
		{-math.Pi / 2, "→"},
		{math.Pi, "↓"},
		{-math.Pi / 4, "↗"},
	}
	for _, tt := range tests {
		if got := st.Ship(core.ShipNormal, tt.rot).Rows[0]; got != tt.want {
			t.Errorf("Ship(%v) = %q, want %q", tt.rot, got, tt.want)
		}
	}
}

func TestFrameDrawsEntities(t *testing.T) {
	w := newTestWorld()
	c := &w.Components
	w.Resource.Phase.Set(core.PhaseInGame, 0)

	pb := place(w, component.KindPlayer, mgl64.Vec2{0, 0}, 0)
	engine.With(pb, c.Player, component.PlayerComponent{Ship: core.ShipAttack})
	pb.Build()

	mb := place(w, component.KindMeteor, mgl64.Vec2{-20, 10}, 0)
	engine.With(mb, c.Meteor, component.MeteorComponent{Size: core.MeteorSmall})
	mb.Build()

	ub := place(w, component.KindPowerUp, mgl64.Vec2{20, -10}, 0)
	engine.With(ub, c.PowerUp, component.PowerUpComponent{Effect: core.ShipShield})
	ub.Build()

	place(w, component.KindProjectile, mgl64.Vec2{0, 5}, 0).Build()

	r := NewRenderer(nil, 80, 41)
	r.Frame(w)
	buf := r.Buffer()

	checks := []struct {
		name string
		x, y int
		want rune
	}{
		{"player", 40, 21, '↑'},
		{"meteor", 20, 11, 'o'},
		{"power-up", 60, 31, 'S'},
		{"projectile", 40, 16, '•'},
	}
	for _, ck := range checks {
		if got := buf.Get(ck.x, ck.y).Rune; got != ck.want {
			t.Errorf("%s at (%d,%d) = %q, want %q", ck.name, ck.x, ck.y, got, ck.want)
		}
	}

	fg, _, _ := buf.Get(40, 21).Style.Decompose()
	if fg != tcell.ColorRed {
		t.Errorf("attack ship colour = %v, want red", fg)
	}
}

func TestFrameDrawsHuskAfterDeath(t *testing.T) {
	w := newTestWorld()
	w.Resource.Phase.Set(core.PhaseInGame, 0)
	place(w, component.KindPlayer, mgl64.Vec2{0, 0}, 0).Build()

	r := NewRenderer(nil, 80, 41)
	r.Frame(w)
	if got := r.Buffer().Get(40, 21).Rune; got != 'x' {
		t.Errorf("husk = %q, want 'x'", got)
	}
}

func TestHUDAndOverlays(t *testing.T) {
	w := newTestWorld()
	w.Resource.Score.Add(120)
	w.Resource.Life.Apply(1)

	r := NewRenderer(nil, 80, 41)
	r.Frame(w)
	hud := r.Buffer().Row(0)
	for _, want := range []string{"SCORE 120", "HIGH 120", "MENU"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(hud, "·") {
		t.Errorf("HUD %q should show a lost life", hud)
	}
	if !screenContains(r.Buffer(), "METEOR FIGHTER") {
		t.Error("menu overlay missing")
	}

	w.Resource.Phase.Set(core.PhaseEndGame, 0)
	r.Frame(w)
	if !screenContains(r.Buffer(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	w.Resource.Phase.Set(core.PhaseInGame, 0)
	r.Frame(w)
	if screenContains(r.Buffer(), "GAME OVER") {
		t.Error("overlay should clear in game")
	}
}

func TestHitBoxToggle(t *testing.T) {
	w := newTestWorld()
	c := &w.Components
	w.Resource.Phase.Set(core.PhaseInGame, 0)
	mb := place(w, component.KindMeteor, mgl64.Vec2{0, 0}, 0)
	engine.With(mb, c.Meteor, component.MeteorComponent{Size: core.MeteorSmall})
	engine.With(mb, c.HitBox, component.HitBoxComponent{HalfExtents: mgl64.Vec2{3, 3}})
	mb.Build()

	r := NewRenderer(nil, 80, 41)
	r.Frame(w)
	if screenContains(r.Buffer(), "·") {
		t.Fatal("hitboxes drawn while toggle is off")
	}

	w.Resource.Input.ShowHitBoxes = true
	r.Frame(w)
	if got := r.Buffer().Get(37, 18).Rune; got != '·' {
		t.Errorf("hitbox corner = %q, want '·'", got)
	}
	if got := r.Buffer().Get(40, 21).Rune; got != 'o' {
		t.Errorf("sprite should draw over hitbox, got %q", got)
	}
}

func TestFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 41)

	w := newTestWorld()
	r := NewRenderer(screen, 0, 0)
	cols, rows := r.Buffer().Bounds()
	if cols != 80 || rows != 41 {
		t.Fatalf("buffer = %dx%d, want screen size", cols, rows)
	}
	r.Frame(w)
}

func screenContains(b *RenderBuffer, s string) bool {
	_, rows := b.Bounds()
	for y := 0; y < rows; y++ {
		if strings.Contains(b.Row(y), s) {
			return true
		}
	}
	return false
}
