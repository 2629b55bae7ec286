package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// EntryComponent drives the linear glide of a freshly spawned player into view
type EntryComponent struct {
	From     mgl64.Vec2
	To       mgl64.Vec2
	Duration time.Duration
	Elapsed  time.Duration
}

// Progress returns the glide fraction in [0, 1]
func (e EntryComponent) Progress() float64 {
	if e.Duration <= 0 || e.Elapsed >= e.Duration {
		return 1
	}
	if e.Elapsed <= 0 {
		return 0
	}
	return float64(e.Elapsed) / float64(e.Duration)
}

// Position returns the interpolated position at the current progress
func (e EntryComponent) Position() mgl64.Vec2 {
	t := e.Progress()
	return e.From.Add(e.To.Sub(e.From).Mul(t))
}
