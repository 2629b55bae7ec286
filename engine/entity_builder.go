package engine

import (
	"fmt"

	"github.com/lixenwraith/meteor-fighter/core"
)

// EntityBuilder reserves an entity handle and collects components before Build
//
//	e := engine.With(
//	    engine.With(w.NewEntity(), w.Components.Transform, t),
//	    w.Components.Category, c,
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a builder with a reserved handle
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Entity returns the reserved handle, valid before Build
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes construction and returns the handle
// Panics if the entity is collidable but has no Category, collision routing depends on it
func (eb *EntityBuilder) Build() core.Entity {
	c := &eb.world.Components
	if c.Transform.Has(eb.entity) && c.HitBox.Has(eb.entity) && !c.Category.Has(eb.entity) {
		panic(fmt.Sprintf("entity %d has Transform and HitBox but no Category", eb.entity))
	}
	eb.built = true
	return eb.entity
}
