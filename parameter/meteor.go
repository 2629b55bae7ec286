package parameter

import "time"

// Meteor spawning
const (
	MeteorSpawnInterval = 1 * time.Second
	MeteorMaxCount      = 10
	MeteorSpeed         = 1.0

	// MeteorSpinJitter bounds the symmetric random rotation speed of fresh meteors
	MeteorSpinJitter = 0.05

	// MeteorGrace delays bounds evaluation for meteors spawned off-screen
	MeteorGrace = 1 * time.Second
	// MeteorDespawnDelay is the countdown after a meteor is first seen out of bounds
	MeteorDespawnDelay = 3 * time.Second
)

// Split cascade
const (
	MeteorSplitChildren = 3

	// MeteorChildSpeedStep scales child i (1-based) velocity range to i*step
	MeteorChildSpeedStep = 0.75
	MeteorChildGrace     = 500 * time.Millisecond
	MeteorChildDelay     = 1500 * time.Millisecond
	MeteorChildOffset    = 50.0
)

// Meteor damage per tier
const (
	MeteorDamageLarge  = 2
	MeteorDamageMedium = 1
	MeteorDamageSmall  = 1
)

// Meteor hitbox half-extents per tier
const (
	MeteorHalfLarge  = 45.0
	MeteorHalfMedium = 22.0
	MeteorHalfSmall  = 14.0
)
