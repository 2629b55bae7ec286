package engine

import (
	"github.com/lixenwraith/meteor-fighter/component"
)

// ComponentStore holds a typed store per component
// Pointers are stable for the lifetime of the World
type ComponentStore struct {
	// Spatial
	Transform *Store[component.TransformComponent]
	Velocity  *Store[component.VelocityComponent]
	Spin      *Store[component.SpinComponent]
	HitBox    *Store[component.HitBoxComponent]
	Bounds    *Store[component.BoundsComponent]

	// Identity
	Category   *Store[component.CategoryComponent]
	Player     *Store[component.PlayerComponent]
	Meteor     *Store[component.MeteorComponent]
	PowerUp    *Store[component.PowerUpComponent]
	Projectile *Store[component.ProjectileComponent]
	Hazard     *Store[component.HazardComponent]

	// Lifecycle
	Cleanup *Store[component.CleanupComponent]
	Entry   *Store[component.EntryComponent]

	all []AnyStore
}

func newComponentStore() ComponentStore {
	c := ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Velocity:  NewStore[component.VelocityComponent](),
		Spin:      NewStore[component.SpinComponent](),
		HitBox:    NewStore[component.HitBoxComponent](),
		Bounds:    NewStore[component.BoundsComponent](),

		Category:   NewStore[component.CategoryComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Meteor:     NewStore[component.MeteorComponent](),
		PowerUp:    NewStore[component.PowerUpComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Hazard:     NewStore[component.HazardComponent](),

		Cleanup: NewStore[component.CleanupComponent](),
		Entry:   NewStore[component.EntryComponent](),
	}
	c.all = []AnyStore{
		c.Transform, c.Velocity, c.Spin, c.HitBox, c.Bounds,
		c.Category, c.Player, c.Meteor, c.PowerUp, c.Projectile, c.Hazard,
		c.Cleanup, c.Entry,
	}
	return c
}
