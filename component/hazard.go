package component

// HazardComponent makes an entity damage-capable against the player
type HazardComponent struct {
	Damage   int
	Inflicts bool
}
