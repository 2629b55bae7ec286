package component

import "github.com/lixenwraith/meteor-fighter/core"

// ProjectileComponent expires when Despawn finishes
type ProjectileComponent struct {
	Despawn core.Timer
}
