package component

import "github.com/go-gl/mathgl/mgl64"

// VelocityComponent is displacement per tick in world units
type VelocityComponent struct {
	mgl64.Vec2
}

// SpinComponent adds Speed radians to the transform rotation every tick
type SpinComponent struct {
	Speed float64
}
