package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/component"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
)

// Renderer draws the world to a tcell screen
// It only reads simulation state, snapshotting it under the world lock
type Renderer struct {
	screen  tcell.Screen
	buf     *RenderBuffer
	sprites *SpriteTable
}

// NewRenderer creates a renderer sized to the screen, screen may be nil for off-screen use
func NewRenderer(screen tcell.Screen, cols, rows int) *Renderer {
	if screen != nil {
		cols, rows = screen.Size()
	}
	return &Renderer{
		screen:  screen,
		buf:     NewRenderBuffer(cols, rows),
		sprites: NewSpriteTable(),
	}
}

// Resize follows a terminal resize
func (r *Renderer) Resize(cols, rows int) {
	r.buf.Resize(cols, rows)
}

// Buffer exposes the composed frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// drawable is one entity's render state captured under the lock
type drawable struct {
	kind   component.Kind
	pos    mgl64.Vec2
	rot    float64
	half   mgl64.Vec2
	ship   core.ShipType
	size   core.MeteorSize
	husk   bool
	hitbox bool
}

type frame struct {
	items    []drawable
	phase    core.Phase
	life     int
	maxLife  int
	score    int
	high     int
	run      int
	hitboxes bool
	world    mgl64.Vec2
}

// Frame composes and shows one frame
func (r *Renderer) Frame(w *engine.World) {
	var f frame
	w.RunSafe(func() { f = snapshot(w) })

	r.buf.Clear()
	r.compose(f)
	if r.screen != nil {
		r.buf.Flush(r.screen)
	}
}

func snapshot(w *engine.World) frame {
	res := w.Resource
	c := &w.Components
	f := frame{
		phase:    res.Phase.Current,
		life:     res.Life.Current,
		maxLife:  res.Life.Max,
		score:    res.Score.Current,
		high:     res.Score.High,
		run:      res.Run.Number,
		hitboxes: res.Input.ShowHitBoxes,
		world:    mgl64.Vec2{res.Window.Width, res.Window.Height},
	}

	for _, e := range c.Category.All() {
		cat, ok := c.Category.Get(e)
		if !ok {
			continue
		}
		t, ok := c.Transform.Get(e)
		if !ok {
			continue
		}
		d := drawable{kind: cat.Kind, pos: t.Position, rot: t.Rotation}
		if hb, ok := c.HitBox.Get(e); ok {
			d.half = hb.Scaled(t.Scale)
			d.hitbox = true
		}
		switch cat.Kind {
		case component.KindPlayer:
			p, ok := c.Player.Get(e)
			d.ship = p.Ship
			d.husk = !ok
		case component.KindMeteor:
			m, _ := c.Meteor.Get(e)
			d.size = m.Size
		case component.KindPowerUp:
			pu, _ := c.PowerUp.Get(e)
			d.ship = pu.Effect
		}
		f.items = append(f.items, d)
	}
	return f
}

// drawOrder puts the player on top
var drawOrder = [...]component.Kind{
	component.KindPowerUp,
	component.KindMeteor,
	component.KindProjectile,
	component.KindPlayer,
}

func (r *Renderer) compose(f frame) {
	cols, rows := r.buf.Bounds()
	proj := NewProjection(cols, rows, f.world)

	for _, kind := range drawOrder {
		for _, d := range f.items {
			if d.kind != kind {
				continue
			}
			x, y, ok := proj.ToCell(d.pos)
			if !ok {
				continue
			}
			if f.hitboxes && d.hitbox {
				r.drawHitBox(proj, d)
			}
			r.sprite(d).draw(r.buf, x, y)
		}
	}

	r.drawHUD(f)
	r.drawOverlay(f)
}

func (r *Renderer) sprite(d drawable) Sprite {
	switch d.kind {
	case component.KindPlayer:
		if d.husk {
			return r.sprites.Husk()
		}
		return r.sprites.Ship(d.ship, d.rot)
	case component.KindMeteor:
		return r.sprites.Meteor(d.size)
	case component.KindPowerUp:
		return r.sprites.PowerUp(d.ship)
	}
	return r.sprites.Projectile()
}

// drawHitBox outlines the AABB with dim dots
func (r *Renderer) drawHitBox(proj Projection, d drawable) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Dim(true)
	cx, cy, _ := proj.ToCell(d.pos)
	w, h := proj.Span(d.half)
	x0, y0 := cx-w/2, cy-h/2
	x1, y1 := x0+w-1, y0+h-1
	for x := x0; x <= x1; x++ {
		r.buf.Set(x, y0, '·', style)
		r.buf.Set(x, y1, '·', style)
	}
	for y := y0; y <= y1; y++ {
		r.buf.Set(x0, y, '·', style)
		r.buf.Set(x1, y, '·', style)
	}
}

func (r *Renderer) drawHUD(f frame) {
	cols, _ := r.buf.Bounds()
	bar := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		r.buf.Set(x, 0, ' ', bar)
	}

	hearts := strings.Repeat("♥", f.life) + strings.Repeat("·", max(f.maxLife-f.life, 0))
	left := fmt.Sprintf(" LIFE %s  SCORE %d  HIGH %d", hearts, f.score, f.high)
	r.buf.SetString(0, 0, left, bar)

	right := fmt.Sprintf("RUN %d  %s ", f.run, strings.ToUpper(f.phase.String()))
	r.buf.SetString(cols-len([]rune(right)), 0, right, bar)
}

func (r *Renderer) drawOverlay(f frame) {
	var lines []string
	switch f.phase {
	case core.PhaseMenu:
		lines = []string{"METEOR FIGHTER", "", "ENTER start   Q quit", "A/D turn  W thrust  SPACE fire"}
	case core.PhaseEndGame:
		lines = []string{"GAME OVER", fmt.Sprintf("SCORE %d", f.score)}
	default:
		return
	}

	cols, rows := r.buf.Bounds()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	top := rows/2 - len(lines)/2
	for i, line := range lines {
		x := (cols - len([]rune(line))) / 2
		r.buf.SetString(x, top+i, line, style)
	}
}
