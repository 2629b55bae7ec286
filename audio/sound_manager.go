package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// Cue names a sound effect
type Cue string

const (
	CueShoot     Cue = "shoot"
	CueExplosion Cue = "explosion"
	CuePowerUp   Cue = "powerup"
	CueHit       Cue = "hit"
	CueStart     Cue = "start"
	CueGameOver  Cue = "game_over"
)

// CueFor maps a game event to its sound, false for silent events
func CueFor(ev event.GameEvent) (Cue, core.MeteorSize, bool) {
	switch ev.Type {
	case event.EventProjectileFired:
		return CueShoot, 0, true
	case event.EventMeteorDestroyed:
		size := core.MeteorLarge
		if p, ok := ev.Payload.(*event.MeteorDestroyedPayload); ok {
			size = p.Size
		}
		return CueExplosion, size, true
	case event.EventShipChanged:
		return CuePowerUp, 0, true
	case event.EventDamageApplied:
		return CueHit, 0, true
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok && p.Cue != "" {
			return Cue(p.Cue), 0, true
		}
	}
	return "", 0, false
}

// SoundManager plays cues for simulation events through one mixer
// All operations are no-ops until Initialize succeeds, the game runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool

	// played counts cues accepted while muted or uninitialized too
	played map[Cue]int
}

// NewSoundManager creates a silent manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: parameter.AudioMasterVolume,
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferLength)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", sm.rate)
	return nil
}

// Cleanup silences the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output, cues are still counted
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Played returns how many times cue was requested
func (sm *SoundManager) Played(cue Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[cue]
}

func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileFired,
		event.EventMeteorDestroyed,
		event.EventShipChanged,
		event.EventDamageApplied,
		event.EventSoundRequest,
	}
}

// HandleEvent is called on the scheduler goroutine, mixing happens on the speaker's
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	cue, size, ok := CueFor(ev)
	if !ok {
		return
	}
	sm.Play(cue, size)
}

// Play queues a cue, size only affects explosions
func (sm *SoundManager) Play(cue Cue, size core.MeteorSize) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played[cue]++
	if !sm.initialized || sm.muted {
		return
	}

	s := sm.build(cue, size)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) build(cue Cue, size core.MeteorSize) beep.Streamer {
	switch cue {
	case CueShoot:
		return CreateShootSound(sm.rate, sm.volume)
	case CueExplosion:
		// Larger meteors rumble lower
		return CreateExplosionSound(sm.rate, sm.volume, 40+30*float64(core.MeteorLarge-size))
	case CuePowerUp:
		return CreatePowerUpSound(sm.rate, sm.volume)
	case CueHit:
		return CreateHitSound(sm.rate, sm.volume)
	case CueStart:
		return CreateJingle(sm.rate, sm.volume, 523.25, 659.25, 783.99)
	case CueGameOver:
		return CreateJingle(sm.rate, sm.volume, 392, 311.13, 261.63)
	}
	return nil
}
