package component

import "github.com/lixenwraith/meteor-fighter/core"

// PowerUpComponent carries the ship type granted on pickup, fixed at spawn
type PowerUpComponent struct {
	Effect core.ShipType
}
