package component

import "github.com/go-gl/mathgl/mgl64"

// HitBoxComponent holds unscaled AABB half-extents, multiplied by Transform.Scale at check time
type HitBoxComponent struct {
	HalfExtents mgl64.Vec2
}

// Scaled returns the effective half-extents for the given scale
func (h HitBoxComponent) Scaled(scale mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{h.HalfExtents.X() * scale.X(), h.HalfExtents.Y() * scale.Y()}
}
