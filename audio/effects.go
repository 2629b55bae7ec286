package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/meteor-fighter/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveform maps a phase in [0, 1) to a sample in [-1, 1]
type waveform func(phase float64, noise *uint32) float64

var waveforms = [...]waveform{
	WaveSine: func(phase float64, _ *uint32) float64 {
		return math.Sin(2 * math.Pi * phase)
	},
	WaveSquare: func(phase float64, _ *uint32) float64 {
		if phase < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw: func(phase float64, _ *uint32) float64 {
		return 2*phase - 1
	},
	WaveNoise: func(_ float64, x *uint32) float64 {
		*x ^= *x << 13
		*x ^= *x >> 17
		*x ^= *x << 5
		return float64(*x)/math.MaxUint32*2 - 1
	},
}

// oscillator is an endless mono wave duplicated to both channels
type oscillator struct {
	shape waveform
	step  float64 // Phase advance per sample
	phase float64
	noise uint32
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := o.shape(o.phase, &o.noise)
		samples[i] = [2]float64{v, v}
		o.phase += o.step
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// NewOscillator returns duration worth of the given wave
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := &oscillator{
		shape: waveforms[wave],
		step:  freq / float64(rate),
		noise: 0x2545F491,
	}
	return beep.Take(rate.N(duration), osc)
}

// envelope is a linear attack/release gain over a fixed sample count
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope shapes s and cuts it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		total:   rate.N(duration),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) gain() float64 {
	g := 1.0
	if e.pos < e.attack {
		g = float64(e.pos) / float64(e.attack)
	}
	if left := e.total - e.pos; left < e.release {
		g = min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	remaining := e.total - e.pos
	if remaining <= 0 {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), remaining)])
	for i := range samples[:n] {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume scales linearly, zero volume is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateShootSound is a short high blip
func CreateShootSound(rate beep.SampleRate, vol float64) beep.Streamer {
	s := tone(1320, WaveSquare, parameter.ShootSoundDuration,
		parameter.ShootSoundAttack, parameter.ShootSoundRelease, rate)
	return newVolume(s, vol*0.3)
}

// CreateExplosionSound is filtered noise over a low rumble, pitch drops with meteor size
func CreateExplosionSound(rate beep.SampleRate, vol float64, rumble float64) beep.Streamer {
	d := parameter.ExplosionSoundDuration
	noise := tone(0, WaveNoise, d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	low := tone(rumble, WaveSine, d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.5), newVolume(low, 0.5)), vol)
}

// CreatePowerUpSound is a rising two-note chime
func CreatePowerUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.PowerUpSoundDuration
	return newVolume(beep.Seq(
		tone(660, WaveSine, d/2, parameter.PowerUpSoundAttack, parameter.PowerUpSoundRelease/2, rate),
		tone(990, WaveSine, d, parameter.PowerUpSoundAttack, parameter.PowerUpSoundRelease, rate),
	), vol*0.6)
}

// CreateHitSound is a harsh low buzz for player damage
func CreateHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	s := tone(90, WaveSaw, parameter.HitSoundDuration,
		parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	return newVolume(s, vol*0.5)
}

// CreateJingle plays freqs in sequence, one note each
func CreateJingle(rate beep.SampleRate, vol float64, freqs ...float64) beep.Streamer {
	d := parameter.JingleNoteDuration
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, tone(f, WaveSine, d, d/10, d/2, rate))
	}
	return newVolume(beep.Seq(notes...), vol*0.5)
}
