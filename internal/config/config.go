// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains the host-level knobs for the wave shooter.
// Stage tuning tables are fixed in the game itself; this only covers the
// world, the player's base stats and the four skills.
type ShooterConfig struct {
	World  ShooterWorld  `yaml:"world"`
	Player ShooterPlayer `yaml:"player"`
	Skills ShooterSkills `yaml:"skills"`
	Debug  bool          `yaml:"debug"` // enables the grant-upgrade action
}

// ShooterWorld defines the playfield size in world units.
type ShooterWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShooterPlayer defines the player's starting stats.
type ShooterPlayer struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`           // base units/s
	SpeedPerLevel float64 `yaml:"speed_per_level"` // added per move-speed upgrade
	StartY        float64 `yaml:"start_y"`         // fraction of world height
	Hearts        int     `yaml:"hearts"`
	MaxHearts     int     `yaml:"max_hearts"`
	Attack        int     `yaml:"attack"`
	FireRate      float64 `yaml:"fire_rate"` // shots per second
	BulletSpeed   float64 `yaml:"bullet_speed"`
	HitIFrames    float64 `yaml:"hit_iframes"` // seconds of invulnerability after a hit
}

// ShooterSkills groups the four timed abilities.
type ShooterSkills struct {
	Q SkillConfig `yaml:"q"`
	W SkillConfig `yaml:"w"`
	E SkillConfig `yaml:"e"`
	R SkillConfig `yaml:"r"`
}

// SkillConfig defines when a skill unlocks and how long it lasts.
type SkillConfig struct {
	UnlockStage int     `yaml:"unlock_stage"`
	Cooldown    float64 `yaml:"cooldown"` // seconds
	Duration    float64 `yaml:"duration"` // seconds, 0 for instant skills
}

// Validate reports every problem with the config at once.
func (c ShooterConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player.radius must be positive, got %g", c.Player.Radius))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %g", c.Player.Speed))
	}
	if c.Player.StartY < 0 || c.Player.StartY > 1 {
		errs = append(errs, fmt.Errorf("player.start_y must be in [0, 1], got %g", c.Player.StartY))
	}
	if c.Player.Hearts <= 0 {
		errs = append(errs, fmt.Errorf("player.hearts must be positive, got %d", c.Player.Hearts))
	}
	if c.Player.MaxHearts < c.Player.Hearts {
		errs = append(errs, fmt.Errorf("player.max_hearts (%d) is below player.hearts (%d)", c.Player.MaxHearts, c.Player.Hearts))
	}
	if c.Player.Attack <= 0 {
		errs = append(errs, fmt.Errorf("player.attack must be positive, got %d", c.Player.Attack))
	}
	if c.Player.FireRate <= 0 {
		errs = append(errs, fmt.Errorf("player.fire_rate must be positive, got %g", c.Player.FireRate))
	}
	if c.Player.BulletSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.bullet_speed must be positive, got %g", c.Player.BulletSpeed))
	}
	if c.Player.HitIFrames < 0 {
		errs = append(errs, fmt.Errorf("player.hit_iframes must not be negative, got %g", c.Player.HitIFrames))
	}

	for _, s := range []struct {
		key string
		cfg SkillConfig
	}{{"q", c.Skills.Q}, {"w", c.Skills.W}, {"e", c.Skills.E}, {"r", c.Skills.R}} {
		if s.cfg.UnlockStage < 1 {
			errs = append(errs, fmt.Errorf("skills.%s.unlock_stage must be at least 1, got %d", s.key, s.cfg.UnlockStage))
		}
		if s.cfg.Cooldown < 0 || s.cfg.Duration < 0 {
			errs = append(errs, fmt.Errorf("skills.%s timings must not be negative", s.key))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid shooter config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
