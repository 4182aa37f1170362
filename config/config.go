package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/love-tap/constants"
)

type Config struct {
	Game       GameConfig        `toml:"game"`
	Projectile ProjectileConfig  `toml:"projectile"`
	Particles  ParticleConfig    `toml:"particles"`
	Layout     LayoutConfig      `toml:"layout"`
	Frame      FrameConfig       `toml:"frame"`
	Audio      AudioConfig       `toml:"audio"`
	Logging    LoggingConfig     `toml:"logging"`
	Keys       map[string]string `toml:"keys"` // key name → action overrides
	CastPath   string            `toml:"cast"` // optional YAML cast file
}

type GameConfig struct {
	TargetHits          int      `toml:"target_hits"`
	Cooldown            Duration `toml:"cooldown"`
	ComboWindow         Duration `toml:"combo_window"`
	ComboBurstThreshold int      `toml:"combo_burst_threshold"`
}

type ProjectileConfig struct {
	Speed      float64 `toml:"speed"`       // logical px per reference frame
	HitRadius  float64 `toml:"hit_radius"`  // logical px
	ExitMargin float64 `toml:"exit_margin"` // logical px past the right edge
}

type ParticleConfig struct {
	BurstSize      int     `toml:"burst_size"`
	ComboBurstSize int     `toml:"combo_burst_size"`
	SpeedMin       float64 `toml:"speed_min"`
	SpeedMax       float64 `toml:"speed_max"`
	ComboSpeedMin  float64 `toml:"combo_speed_min"`
	ComboSpeedMax  float64 `toml:"combo_speed_max"`
	UpwardBias     float64 `toml:"upward_bias"`
	Gravity        float64 `toml:"gravity"`
	Decay          float64 `toml:"decay"` // life lost per reference frame
}

type LayoutConfig struct {
	EmitterX   float64 `toml:"emitter_x"` // fractions of the play area
	EmitterY   float64 `toml:"emitter_y"`
	TargetX    float64 `toml:"target_x"`
	TargetY    float64 `toml:"target_y"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

type FrameConfig struct {
	Interval Duration `toml:"interval"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // base-2 exponent, 0 = unity
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty disables logging; the terminal belongs to the game
}

// Duration is a time.Duration that decodes from TOML strings such as "800ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads a TOML config on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			TargetHits:          constants.TargetHits,
			Cooldown:            Duration{constants.HitCooldown},
			ComboWindow:         Duration{constants.ComboWindow},
			ComboBurstThreshold: constants.ComboBurstThreshold,
		},
		Projectile: ProjectileConfig{
			Speed:      constants.ProjectileSpeed,
			HitRadius:  constants.HitRadius,
			ExitMargin: constants.ExitMargin,
		},
		Particles: ParticleConfig{
			BurstSize:      constants.BurstSize,
			ComboBurstSize: constants.ComboBurstSize,
			SpeedMin:       constants.ParticleSpeedMin,
			SpeedMax:       constants.ParticleSpeedMax,
			ComboSpeedMin:  constants.ComboParticleSpeedMin,
			ComboSpeedMax:  constants.ComboParticleSpeedMax,
			UpwardBias:     constants.ParticleUpwardBias,
			Gravity:        constants.ParticleGravity,
			Decay:          constants.ParticleDecay,
		},
		Layout: LayoutConfig{
			EmitterX:   constants.EmitterAnchorX,
			EmitterY:   constants.EmitterAnchorY,
			TargetX:    constants.TargetAnchorX,
			TargetY:    constants.TargetAnchorY,
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
		},
		Frame: FrameConfig{
			Interval: Duration{constants.FrameUpdateInterval},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.AudioDefaultVolume,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "love-tap.log",
		},
	}
}

var (
	ErrNonPositive   = errors.New("must be positive")
	ErrInvertedRange = errors.New("min exceeds max")
	ErrFraction      = errors.New("must be within [0, 1]")
)

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	positiveInts := []struct {
		name string
		v    int
	}{
		{"game.target_hits", c.Game.TargetHits},
		{"game.combo_burst_threshold", c.Game.ComboBurstThreshold},
		{"particles.burst_size", c.Particles.BurstSize},
		{"particles.combo_burst_size", c.Particles.ComboBurstSize},
	}
	for _, p := range positiveInts {
		if p.v <= 0 {
			return fmt.Errorf("%s: %w", p.name, ErrNonPositive)
		}
	}

	positiveFloats := []struct {
		name string
		v    float64
	}{
		{"projectile.speed", c.Projectile.Speed},
		{"projectile.hit_radius", c.Projectile.HitRadius},
		{"particles.decay", c.Particles.Decay},
		{"layout.cell_width", c.Layout.CellWidth},
		{"layout.cell_height", c.Layout.CellHeight},
	}
	for _, p := range positiveFloats {
		if p.v <= 0 {
			return fmt.Errorf("%s: %w", p.name, ErrNonPositive)
		}
	}

	if c.Game.Cooldown.Duration < 0 {
		return fmt.Errorf("game.cooldown: %w", ErrNonPositive)
	}
	if c.Game.ComboWindow.Duration <= 0 {
		return fmt.Errorf("game.combo_window: %w", ErrNonPositive)
	}
	if c.Frame.Interval.Duration <= 0 {
		return fmt.Errorf("frame.interval: %w", ErrNonPositive)
	}

	if c.Particles.SpeedMin > c.Particles.SpeedMax {
		return fmt.Errorf("particles.speed_min: %w", ErrInvertedRange)
	}
	if c.Particles.ComboSpeedMin > c.Particles.ComboSpeedMax {
		return fmt.Errorf("particles.combo_speed_min: %w", ErrInvertedRange)
	}

	fractions := []struct {
		name string
		v    float64
	}{
		{"layout.emitter_x", c.Layout.EmitterX},
		{"layout.emitter_y", c.Layout.EmitterY},
		{"layout.target_x", c.Layout.TargetX},
		{"layout.target_y", c.Layout.TargetY},
	}
	for _, f := range fractions {
		if f.v < 0 || f.v > 1 {
			return fmt.Errorf("%s: %w", f.name, ErrFraction)
		}
	}
	return nil
}
