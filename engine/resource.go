package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/meteor-fighter/config"
	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/parameter"
	"github.com/lixenwraith/meteor-fighter/status"
)

// Resource holds the singleton simulation context, owned by the scheduler and borrowed by systems per tick
type Resource struct {
	Time      *TimeResource
	Window    *WindowResource
	Life      *LifeResource
	Score     *ScoreResource
	Input     *InputResource
	Phase     *PhaseResource
	Run       *RunResource
	Transient *TransientResource

	Config *config.Config
	RNG    *core.FastRand

	// Telemetry
	Status *status.Registry
}

// NewResource builds every resource from cfg
// A zero Engine.Seed seeds from the wall clock
func NewResource(cfg *config.Config) *Resource {
	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	reg := status.NewRegistry()
	return &Resource{
		Time: &TimeResource{DeltaTime: cfg.Engine.TickInterval.Std()},
		Window: &WindowResource{
			Width:         cfg.Window.Width,
			Height:        cfg.Window.Height,
			DespawnMargin: cfg.Window.DespawnMargin,
		},
		Life:      &LifeResource{Current: cfg.Player.MaxLife, Max: cfg.Player.MaxLife},
		Score:     &ScoreResource{},
		Input:     NewInputResource(),
		Phase:     &PhaseResource{Current: core.PhaseMenu, label: reg.Strings.Get(parameter.StatPhase)},
		Run:       &RunResource{},
		Transient: NewTransientResource(),
		Config:    cfg,
		RNG:       core.NewFastRand(seed),
		Status:    reg,
	}
}

// TimeResource is updated by the ClockScheduler at the start of every tick
type TimeResource struct {
	// DeltaTime is the fixed step of the current tick
	DeltaTime time.Duration

	// Elapsed is simulated time since the scheduler started
	Elapsed time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Advance moves time forward by one tick, must be called under the world lock
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// WindowResource is the play area in world units, origin at the centre
type WindowResource struct {
	Width         float64
	Height        float64
	DespawnMargin float64
}

// HalfExtents returns half the window size per axis
func (wr *WindowResource) HalfExtents() mgl64.Vec2 {
	return mgl64.Vec2{wr.Width / 2, wr.Height / 2}
}

// DespawnBorder returns the half-extents of the despawn rectangle
func (wr *WindowResource) DespawnBorder() mgl64.Vec2 {
	return mgl64.Vec2{wr.Width/2 + wr.DespawnMargin, wr.Height/2 + wr.DespawnMargin}
}

// Resize replaces the window extents, re-read by systems every tick
func (wr *WindowResource) Resize(width, height float64) {
	if width > 0 {
		wr.Width = width
	}
	if height > 0 {
		wr.Height = height
	}
}

// LifeResource is the player's hit points for the current run, never negative
type LifeResource struct {
	Current int
	Max     int
}

// Reset restores full life
func (lr *LifeResource) Reset() {
	lr.Current = lr.Max
}

// Apply subtracts damage clamping at zero, reports whether life just reached zero
func (lr *LifeResource) Apply(amount int) (died bool) {
	if lr.Current <= 0 {
		return false
	}
	lr.Current -= amount
	if lr.Current > lr.Max {
		lr.Current = lr.Max
	}
	if lr.Current <= 0 {
		lr.Current = 0
		return true
	}
	return false
}

// ScoreResource tracks the current run score and the best score of the process
type ScoreResource struct {
	Current int
	High    int
}

// Add awards points and raises the high score
func (sr *ScoreResource) Add(points int) {
	sr.Current += points
	if sr.Current > sr.High {
		sr.High = sr.Current
	}
}

// ResetCurrent clears the run score, high score survives
func (sr *ScoreResource) ResetCurrent() {
	sr.Current = 0
}

// InputResource is the per-tick input snapshot written by the input layer
type InputResource struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Fire      bool

	// ShowHitBoxes is a debug toggle read by the presentation layer
	ShowHitBoxes bool

	// Keys holds raw key state for debug toggles
	Keys map[rune]bool
}

func NewInputResource() *InputResource {
	return &InputResource{Keys: make(map[rune]bool)}
}

// PhaseResource mirrors the FSM state for system gating
type PhaseResource struct {
	Current core.Phase
	// Frame is the tick on which Current was entered
	Frame int64

	label *status.AtomicString
}

// Set records a phase change and publishes it to status
func (pr *PhaseResource) Set(p core.Phase, frame int64) {
	pr.Current = p
	pr.Frame = frame
	if pr.label != nil {
		pr.label.Store(p.String())
	}
}

// RunResource identifies the current run, rotated on every StartGame entry
type RunResource struct {
	ID     uuid.UUID
	Number int
}

// Rotate starts a new run
func (rr *RunResource) Rotate() {
	rr.ID = uuid.New()
	rr.Number++
}
