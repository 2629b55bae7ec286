package config

import (
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/lixenwraith/meteor-fighter/core"
	"github.com/lixenwraith/meteor-fighter/parameter"
)

// Config is the full tuning surface of the simulation
// Zero values are never used directly, Load always decodes over Default
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Engine     EngineConfig     `toml:"engine"`
	Player     PlayerConfig     `toml:"player"`
	Projectile ProjectileConfig `toml:"projectile"`
	Meteor     MeteorConfig     `toml:"meteor"`
	PowerUp    PowerUpConfig    `toml:"powerup"`
	Score      ScoreConfig      `toml:"score"`

	// PhaseGraph optionally points at a TOML file replacing the embedded phase graph
	PhaseGraph string `toml:"phase_graph"`
}

type WindowConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	DespawnMargin float64 `toml:"despawn_margin"`
}

type EngineConfig struct {
	TickInterval Duration `toml:"tick_interval"`
	Seed         uint64   `toml:"seed"`
	AutoStart    bool     `toml:"auto_start"`
}

type PlayerConfig struct {
	MaxLife       int      `toml:"max_life"`
	TurnSpeed     float64  `toml:"turn_speed"`
	Acceleration  float64  `toml:"acceleration"`
	Deceleration  float64  `toml:"deceleration"`
	MaxSpeed      float64  `toml:"max_speed"`
	Scale         float64  `toml:"scale"`
	ShootCooldown Duration `toml:"shoot_cooldown"`
	EntryDuration Duration `toml:"entry_duration"`
	HitBox        Vec2     `toml:"hitbox"`
}

type ProjectileConfig struct {
	Speed        float64  `toml:"speed"`
	Despawn      Duration `toml:"despawn"`
	Scale        float64  `toml:"scale"`
	BoundsOffset float64  `toml:"bounds_offset"`
	HitBox       Vec2     `toml:"hitbox"`
}

type MeteorConfig struct {
	SpawnInterval  Duration `toml:"spawn_interval"`
	MaxCount       int      `toml:"max_count"`
	Speed          float64  `toml:"speed"`
	SpinJitter     float64  `toml:"spin_jitter"`
	Grace          Duration `toml:"grace"`
	DespawnDelay   Duration `toml:"despawn_delay"`
	ChildSpeedStep float64  `toml:"child_speed_step"`
	ChildGrace     Duration `toml:"child_grace"`
	ChildDelay     Duration `toml:"child_delay"`
	ChildOffset    float64  `toml:"child_offset"`
	DamageLarge    int      `toml:"damage_large"`
	DamageMedium   int      `toml:"damage_medium"`
	DamageSmall    int      `toml:"damage_small"`
	HalfLarge      float64  `toml:"half_large"`
	HalfMedium     float64  `toml:"half_medium"`
	HalfSmall      float64  `toml:"half_small"`
}

type PowerUpConfig struct {
	SpawnInterval Duration `toml:"spawn_interval"`
	MaxCount      int      `toml:"max_count"`
	SpawnMargin   float64  `toml:"spawn_margin"`
	BoundsOffset  float64  `toml:"bounds_offset"`
	MaxSpeedX     float64  `toml:"max_speed_x"`
	MinSpeedY     float64  `toml:"min_speed_y"`
	MaxSpeedY     float64  `toml:"max_speed_y"`
	SpinJitter    float64  `toml:"spin_jitter"`
	HitBox        Vec2     `toml:"hitbox"`
}

type ScoreConfig struct {
	Large  int `toml:"large"`
	Medium int `toml:"medium"`
	Small  int `toml:"small"`
}

// Default builds a Config from the compile-time parameters
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:         parameter.WindowWidth,
			Height:        parameter.WindowHeight,
			DespawnMargin: parameter.DespawnMargin,
		},
		Engine: EngineConfig{
			TickInterval: Duration(parameter.TickInterval),
		},
		Player: PlayerConfig{
			MaxLife:       parameter.PlayerMaxLife,
			TurnSpeed:     parameter.PlayerTurnSpeed,
			Acceleration:  parameter.PlayerAcceleration,
			Deceleration:  parameter.PlayerDeceleration,
			MaxSpeed:      parameter.PlayerMaxSpeed,
			Scale:         parameter.PlayerScale,
			ShootCooldown: Duration(parameter.PlayerShootCooldown),
			EntryDuration: Duration(parameter.PlayerEntryDuration),
			HitBox:        Vec2{parameter.PlayerHalfWidth, parameter.PlayerHalfHeight},
		},
		Projectile: ProjectileConfig{
			Speed:        parameter.ProjectileSpeed,
			Despawn:      Duration(parameter.ProjectileDespawn),
			Scale:        parameter.ProjectileScale,
			BoundsOffset: parameter.ProjectileBoundsOffset,
			HitBox:       Vec2{parameter.ProjectileHalfWidth, parameter.ProjectileHalfHeight},
		},
		Meteor: MeteorConfig{
			SpawnInterval:  Duration(parameter.MeteorSpawnInterval),
			MaxCount:       parameter.MeteorMaxCount,
			Speed:          parameter.MeteorSpeed,
			SpinJitter:     parameter.MeteorSpinJitter,
			Grace:          Duration(parameter.MeteorGrace),
			DespawnDelay:   Duration(parameter.MeteorDespawnDelay),
			ChildSpeedStep: parameter.MeteorChildSpeedStep,
			ChildGrace:     Duration(parameter.MeteorChildGrace),
			ChildDelay:     Duration(parameter.MeteorChildDelay),
			ChildOffset:    parameter.MeteorChildOffset,
			DamageLarge:    parameter.MeteorDamageLarge,
			DamageMedium:   parameter.MeteorDamageMedium,
			DamageSmall:    parameter.MeteorDamageSmall,
			HalfLarge:      parameter.MeteorHalfLarge,
			HalfMedium:     parameter.MeteorHalfMedium,
			HalfSmall:      parameter.MeteorHalfSmall,
		},
		PowerUp: PowerUpConfig{
			SpawnInterval: Duration(parameter.PowerUpSpawnInterval),
			MaxCount:      parameter.PowerUpMaxCount,
			SpawnMargin:   parameter.PowerUpSpawnMargin,
			BoundsOffset:  parameter.PowerUpBoundsOffset,
			MaxSpeedX:     parameter.PowerUpMaxSpeedX,
			MinSpeedY:     parameter.PowerUpMinSpeedY,
			MaxSpeedY:     parameter.PowerUpMaxSpeedY,
			SpinJitter:    parameter.PowerUpSpinJitter,
			HitBox:        Vec2{parameter.PowerUpHalfWidth, parameter.PowerUpHalfHeight},
		},
		Score: ScoreConfig{
			Large:  parameter.ScoreLarge,
			Medium: parameter.ScoreMedium,
			Small:  parameter.ScoreSmall,
		},
	}
}

// Load decodes the TOML file at path over the defaults and validates the result
// An empty path returns the validated defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		log.Printf("[config] using built-in defaults")
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := Decode(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	log.Printf("[config] loaded %s", path)
	return cfg, nil
}

// Decode applies TOML data over cfg, rejecting unknown keys
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// Validate rejects tunings that break simulation invariants
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window extents must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	case c.Window.DespawnMargin <= c.PowerUp.SpawnMargin:
		// Power-ups spawn beyond the vertical edge, a narrower border would cull them at once
		return errors.Errorf("despawn_margin %v must exceed powerup spawn_margin %v", c.Window.DespawnMargin, c.PowerUp.SpawnMargin)
	case c.Engine.TickInterval <= 0:
		return errors.New("tick_interval must be positive")
	case c.Meteor.SpawnInterval <= 0 || c.PowerUp.SpawnInterval <= 0:
		return errors.New("spawn intervals must be positive")
	case c.Meteor.MaxCount < 0 || c.PowerUp.MaxCount < 0:
		return errors.New("population caps must not be negative")
	case c.Player.MaxLife <= 0:
		return errors.Errorf("max_life must be positive, got %d", c.Player.MaxLife)
	case c.Meteor.DamageLarge < 0 || c.Meteor.DamageMedium < 0 || c.Meteor.DamageSmall < 0:
		return errors.New("meteor damage must not be negative")
	case c.Player.Scale <= 0 || c.Projectile.Scale <= 0:
		return errors.New("scales must be positive")
	case c.Player.ShootCooldown < 0 || c.Projectile.Despawn <= 0:
		return errors.New("shoot_cooldown must not be negative and projectile despawn must be positive")
	case c.PowerUp.MinSpeedY > c.PowerUp.MaxSpeedY:
		return errors.Errorf("powerup min_speed_y %v exceeds max_speed_y %v", c.PowerUp.MinSpeedY, c.PowerUp.MaxSpeedY)
	}
	return nil
}

// Duration is a time.Duration written as a Go duration string
type Duration time.Duration

// UnmarshalText parses values like "150ms" or "1.5s"
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "duration %q", string(text))
	}
	*d = Duration(v)
	return nil
}

// MarshalText writes the Go duration string form
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the standard library duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Vec2 is a two-element TOML array
type Vec2 [2]float64

// Vec returns the mathgl vector
func (v Vec2) Vec() mgl64.Vec2 {
	return mgl64.Vec2{v[0], v[1]}
}

// HalfExtent returns the square hitbox half-extent for a meteor tier
func (c *MeteorConfig) HalfExtent(size core.MeteorSize) float64 {
	switch size {
	case core.MeteorLarge:
		return c.HalfLarge
	case core.MeteorMedium:
		return c.HalfMedium
	}
	return c.HalfSmall
}

// Damage returns the damage a meteor tier inflicts on the player
func (c *MeteorConfig) Damage(size core.MeteorSize) int {
	switch size {
	case core.MeteorLarge:
		return c.DamageLarge
	case core.MeteorMedium:
		return c.DamageMedium
	case core.MeteorSmall:
		return c.DamageSmall
	}
	return 0
}

// Points returns the score awarded for destroying a meteor tier
func (c *ScoreConfig) Points(size core.MeteorSize) int {
	switch size {
	case core.MeteorLarge:
		return c.Large
	case core.MeteorMedium:
		return c.Medium
	case core.MeteorSmall:
		return c.Small
	}
	return 0
}
