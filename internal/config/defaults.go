package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default wave shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: ShooterWorld{
			Width:  1280,
			Height: 720,
		},
		Player: ShooterPlayer{
			Radius:        18,
			Speed:         360,
			SpeedPerLevel: 20,
			StartY:        0.15,
			Hearts:        4,
			MaxHearts:     6,
			Attack:        1,
			FireRate:      4.2,
			BulletSpeed:   780,
			HitIFrames:    1.5,
		},
		Skills: ShooterSkills{
			Q: SkillConfig{UnlockStage: 5, Cooldown: 30, Duration: 10},
			W: SkillConfig{UnlockStage: 10, Cooldown: 50, Duration: 4},
			E: SkillConfig{UnlockStage: 15, Cooldown: 75, Duration: 8},
			R: SkillConfig{UnlockStage: 20, Cooldown: 120},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter", "shooter_daily":
		return defaultShooterYAML
	default:
		return nil
	}
}
