package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.5

	ShootSoundDuration = 60 * time.Millisecond
	ShootSoundAttack   = 2 * time.Millisecond
	ShootSoundRelease  = 40 * time.Millisecond

	ExplosionSoundDuration = 250 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 200 * time.Millisecond

	PowerUpSoundDuration = 180 * time.Millisecond
	PowerUpSoundAttack   = 5 * time.Millisecond
	PowerUpSoundRelease  = 60 * time.Millisecond

	HitSoundDuration = 150 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 80 * time.Millisecond

	JingleNoteDuration = 120 * time.Millisecond
)
