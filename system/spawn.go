package system

import (
	"sync/atomic"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/engine"
	"github.com/lixenwraith/meteor-fighter/event"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// SpawnSystem runs the time-gated meteor and power-up spawners
// A tick at or above a population cap silently skips that spawn
type SpawnSystem struct {
	engine.SystemBase

	meteorTimer  core.Timer
	powerUpTimer core.Timer

	statMeteor  *atomic.Int64
	statPowerUp *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	s := &SpawnSystem{
		SystemBase:  engine.NewSystemBase(world),
		statMeteor:  reg.Ints.Get(parameter.StatMeteorSpawned),
		statPowerUp: reg.Ints.Get(parameter.StatPowerUpSpawned),
	}
	s.Init()
	return s
}

// Init restarts both spawn clocks
func (s *SpawnSystem) Init() {
	cfg := s.Resource.Config
	s.meteorTimer = core.NewRepeatingTimer(cfg.Meteor.SpawnInterval.Std())
	s.powerUpTimer = core.NewRepeatingTimer(cfg.PowerUp.SpawnInterval.Std())
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) Phases() core.PhaseMask { return core.MaskOf(core.PhaseInGame) }

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPhaseStarted}
}

// HandleEvent restarts the spawn clocks on every InGame entry
func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.PhasePayload); ok && p.Phase == core.PhaseInGame {
		s.Init()
	}
}

func (s *SpawnSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	cfg := s.Resource.Config
	tr := s.Resource.Transient

	s.meteorTimer.Tick(dt)
	s.powerUpTimer.Tick(dt)

	if s.meteorTimer.JustFinished() {
		// Meteors aim at the player, no player means nothing to aim at
		if _, t, ok := findPlayer(s.World); ok &&
			liveCount(s.Component.Meteor.All(), tr) < cfg.Meteor.MaxCount {
			spawnFreshMeteor(s.World, t.Position)
			s.statMeteor.Add(1)
		}
	}

	if s.powerUpTimer.JustFinished() &&
		liveCount(s.Component.PowerUp.All(), tr) < cfg.PowerUp.MaxCount {
		spawnPowerUp(s.World)
		s.statPowerUp.Add(1)
	}
}
