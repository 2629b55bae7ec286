package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/meteor-fighter/core"
)

// Sprite is a small glyph block centred on the entity position
type Sprite struct {
	Rows  []string
	Style tcell.Style
}

// SpriteTable resolves simulation enums to sprites, the simulation never sees these
type SpriteTable struct {
	ships      map[core.ShipType]tcell.Style
	meteors    map[core.MeteorSize]Sprite
	powerUps   map[core.ShipType]Sprite
	projectile Sprite
	husk       Sprite
}

// shipArrows are indexed by facing octant, counter-clockwise from up
var shipArrows = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

// NewSpriteTable builds the default terminal sprites
func NewSpriteTable() *SpriteTable {
	base := tcell.StyleDefault
	rock := base.Foreground(tcell.ColorSaddleBrown)
	return &SpriteTable{
		ships: map[core.ShipType]tcell.Style{
			core.ShipNormal: base.Foreground(tcell.ColorWhite).Bold(true),
			core.ShipShield: base.Foreground(tcell.ColorAqua).Bold(true),
			core.ShipAttack: base.Foreground(tcell.ColorRed).Bold(true),
		},
		meteors: map[core.MeteorSize]Sprite{
			core.MeteorLarge:  {Rows: []string{"/^\\", "< >", "\\_/"}, Style: rock},
			core.MeteorMedium: {Rows: []string{"()"}, Style: rock},
			core.MeteorSmall:  {Rows: []string{"o"}, Style: rock},
		},
		powerUps: map[core.ShipType]Sprite{
			core.ShipNormal: {Rows: []string{"N"}, Style: base.Foreground(tcell.ColorWhite).Reverse(true)},
			core.ShipShield: {Rows: []string{"S"}, Style: base.Foreground(tcell.ColorAqua).Reverse(true)},
			core.ShipAttack: {Rows: []string{"A"}, Style: base.Foreground(tcell.ColorRed).Reverse(true)},
		},
		projectile: Sprite{Rows: []string{"•"}, Style: base.Foreground(tcell.ColorYellow)},
		husk:       Sprite{Rows: []string{"x"}, Style: base.Foreground(tcell.ColorGray)},
	}
}

// Ship returns the arrow sprite for a ship type and facing
func (st *SpriteTable) Ship(ship core.ShipType, rotation float64) Sprite {
	octant := int(math.Round(rotation/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	style, ok := st.ships[ship]
	if !ok {
		style = st.ships[core.ShipNormal]
	}
	return Sprite{Rows: []string{string(shipArrows[octant])}, Style: style}
}

// Meteor returns the sprite for a size tier
func (st *SpriteTable) Meteor(size core.MeteorSize) Sprite {
	if s, ok := st.meteors[size]; ok {
		return s
	}
	return st.meteors[core.MeteorSmall]
}

// PowerUp returns the sprite for a power-up reward
func (st *SpriteTable) PowerUp(effect core.ShipType) Sprite {
	if s, ok := st.powerUps[effect]; ok {
		return s
	}
	return st.powerUps[core.ShipNormal]
}

func (st *SpriteTable) Projectile() Sprite { return st.projectile }

func (st *SpriteTable) Husk() Sprite { return st.husk }

// draw blits s centred on x, y, spaces are transparent
func (s Sprite) draw(buf *RenderBuffer, x, y int) {
	top := y - len(s.Rows)/2
	for dy, row := range s.Rows {
		rs := []rune(row)
		left := x - len(rs)/2
		for dx, r := range rs {
			if r != ' ' {
				buf.Set(left+dx, top+dy, r, s.Style)
			}
		}
	}
}
