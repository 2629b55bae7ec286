package component

import "github.com/lixenwraith/meteor-fighter/core"

// PlayerComponent marks the controllable ship
// Removed on death, leaving the entity as a husk
type PlayerComponent struct {
	Ship     core.ShipType
	Cooldown core.Timer // Shoot cooldown, fires only when Finished
}
