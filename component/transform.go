package component

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent is the authoritative world placement of an entity
// World space is y-up with the origin at the window centre
type TransformComponent struct {
	Position mgl64.Vec2
	Rotation float64 // Radians
	Scale    mgl64.Vec2
}

// MaxScale returns the larger scale axis, used as the warp margin
func (t TransformComponent) MaxScale() float64 {
	if t.Scale.X() > t.Scale.Y() {
		return t.Scale.X()
	}
	return t.Scale.Y()
}
