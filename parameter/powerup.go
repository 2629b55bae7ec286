package parameter

import "time"

// Power-up spawning
const (
	PowerUpSpawnInterval = 5 * time.Second
	PowerUpMaxCount      = 2

	// PowerUpSpawnMargin places power-ups beyond the vertical half-extent
	PowerUpSpawnMargin  = 50.0
	PowerUpBoundsOffset = 10.0

	PowerUpMaxSpeedX  = 1.5
	PowerUpMinSpeedY  = 1.0
	PowerUpMaxSpeedY  = 1.5
	PowerUpSpinJitter = 0.1

	PowerUpHalfWidth  = 17.0
	PowerUpHalfHeight = 16.0
)
