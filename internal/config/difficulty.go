package config

// ApplyShooterPreset adjusts the starting stats for a difficulty preset.
// Normal and fixed keep whatever the config file says.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Hearts = clampInt(cfg.Player.Hearts+2, 1, cfg.Player.MaxHearts)
		cfg.Player.Attack++
		cfg.Player.HitIFrames *= 1.5
	case DifficultyHard:
		cfg.Player.Hearts = clampInt(cfg.Player.Hearts-2, 1, cfg.Player.MaxHearts)
		cfg.Player.HitIFrames *= 0.75
	}
}

// clampInt restricts an int to [min, max].
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
