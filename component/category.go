package component

// Kind routes an entity to its collision pair rules
type Kind uint8

const (
	KindPlayer Kind = iota
	KindProjectile
	KindMeteor
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindProjectile:
		return "Projectile"
	case KindMeteor:
		return "Meteor"
	case KindPowerUp:
		return "PowerUp"
	}
	return "Unknown"
}

// CategoryComponent is required on every entity carrying a Transform and HitBox
type CategoryComponent struct {
	Kind Kind
}
