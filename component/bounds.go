package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/meteor-fighter/core"
)

// BoundsPolicy selects the reaction to leaving the play area
type BoundsPolicy uint8

const (
	// BoundsWarp wraps the entity to the opposite edge of the window
	BoundsWarp BoundsPolicy = iota
	// BoundsDespawnImmediate removes the entity on the tick it crosses the despawn border
	BoundsDespawnImmediate
	// BoundsDespawnAfterDelay waits for Grace, then starts Despawn once out of bounds
	BoundsDespawnAfterDelay
)

func (p BoundsPolicy) String() string {
	switch p {
	case BoundsWarp:
		return "Warp"
	case BoundsDespawnImmediate:
		return "DespawnImmediate"
	case BoundsDespawnAfterDelay:
		return "DespawnAfterDelay"
	}
	return "Unknown"
}

// BoundsComponent governs window-edge behaviour for a moving entity
type BoundsComponent struct {
	Policy BoundsPolicy

	// Offset widens the despawn border for this entity, per axis
	Offset mgl64.Vec2

	// Grace must finish before any bounds evaluation (DespawnAfterDelay only)
	Grace core.Timer
	// Despawn runs once Pending is set and removes the entity on finish
	Despawn core.Timer
	// Pending latches on the first out-of-bounds observation, re-entry does not cancel
	Pending bool
}

// NewWarpBounds creates a warp policy
func NewWarpBounds() BoundsComponent {
	return BoundsComponent{Policy: BoundsWarp}
}

// NewDespawnBounds creates an immediate-despawn policy widened by offset
func NewDespawnBounds(offset mgl64.Vec2) BoundsComponent {
	return BoundsComponent{Policy: BoundsDespawnImmediate, Offset: offset}
}

// NewDelayedDespawnBounds creates a grace-then-delay despawn policy
func NewDelayedDespawnBounds(offset mgl64.Vec2, grace, delay core.Timer) BoundsComponent {
	return BoundsComponent{
		Policy:  BoundsDespawnAfterDelay,
		Offset:  offset,
		Grace:   grace,
		Despawn: delay,
	}
}
