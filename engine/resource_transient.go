package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/core"
)

// DamageEvent is a pending hit on the player, applied by the damage step
type DamageEvent struct {
	Source core.Entity
	Amount int
}

// SplitEvent is a pending split cascade at the parent's last position
type SplitEvent struct {
	Size     core.MeteorSize // Child tier
	Position mgl64.Vec2
}

// TransientResource holds per-tick collision output
// Collision writes, Damage and Split drain their buffers, Cull destroys the removed set
// Nothing here survives past the end of a tick
type TransientResource struct {
	Damage []DamageEvent
	Splits []SplitEvent

	removed map[core.Entity]struct{}
	order   []core.Entity
}

// NewTransientResource creates initialized resource
func NewTransientResource() *TransientResource {
	return &TransientResource{
		Damage:  make([]DamageEvent, 0, 8),
		Splits:  make([]SplitEvent, 0, 8),
		removed: make(map[core.Entity]struct{}),
		order:   make([]core.Entity, 0, 16),
	}
}

// MarkRemoved schedules e for destruction at end of tick
// Returns false if e was already marked this tick
func (r *TransientResource) MarkRemoved(e core.Entity) bool {
	if _, ok := r.removed[e]; ok {
		return false
	}
	r.removed[e] = struct{}{}
	r.order = append(r.order, e)
	return true
}

// IsRemoved reports whether e is marked for removal this tick
func (r *TransientResource) IsRemoved(e core.Entity) bool {
	_, ok := r.removed[e]
	return ok
}

// Removed returns marked entities in marking order, valid until Reset
func (r *TransientResource) Removed() []core.Entity {
	return r.order
}

// PushDamage records a damage event
func (r *TransientResource) PushDamage(source core.Entity, amount int) {
	r.Damage = append(r.Damage, DamageEvent{Source: source, Amount: amount})
}

// PushSplit records a split event
func (r *TransientResource) PushSplit(size core.MeteorSize, pos mgl64.Vec2) {
	r.Splits = append(r.Splits, SplitEvent{Size: size, Position: pos})
}

// Reset clears all transient state
func (r *TransientResource) Reset() {
	r.Damage = r.Damage[:0]
	r.Splits = r.Splits[:0]
	clear(r.removed)
	r.order = r.order[:0]
}
