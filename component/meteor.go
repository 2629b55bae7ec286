package component

import "github.com/lixenwraith/meteor-fighter/core"

// MeteorComponent carries the split tier
type MeteorComponent struct {
	Size core.MeteorSize
}
