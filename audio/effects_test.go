package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drainStreamer(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

// TestOscillatorLength verifies the oscillator stops after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drainStreamer(NewOscillator(440, 50*time.Millisecond, wave, rate))
		if want := rate.N(50 * time.Millisecond); len(samples) != want {
			t.Errorf("wave %d: %d samples, want %d", wave, len(samples), want)
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d out of range: %v", wave, i, s)
			}
		}
	}
}

// TestOscillatorSquare verifies square wave values
func TestOscillatorSquare(t *testing.T) {
	samples := drainStreamer(NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100)))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %d = %f", i, s[0])
		}
	}
}

// TestEnvelopeRamps verifies silence at the start and the end
func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)
	samples := drainStreamer(env)

	if len(samples) != rate.N(d) {
		t.Fatalf("%d samples", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample %f, want 0", samples[0][0])
	}
	if mid := samples[len(samples)/2][0]; mid != 1 {
		t.Errorf("sustain sample %f, want 1", mid)
	}
	if last := samples[len(samples)-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample %f, want near 0", last)
	}
}

// TestCueSoundsTerminate verifies every cue is finite
func TestCueSoundsTerminate(t *testing.T) {
	sm := NewSoundManager()
	for _, cue := range []Cue{CueShoot, CueExplosion, CuePowerUp, CueHit, CueStart, CueGameOver} {
		s := sm.build(cue, 0)
		if s == nil {
			t.Errorf("cue %s has no sound", cue)
			continue
		}
		if n := len(drainStreamer(s)); n == 0 || n > sm.rate.N(time.Second) {
			t.Errorf("cue %s length %d", cue, n)
		}
	}
	if sm.build("unknown", 0) != nil {
		t.Error("unknown cue built a sound")
	}
}
