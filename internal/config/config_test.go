package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML ShooterConfig
	if err := yaml.Unmarshal(GetDefaultYAML("shooter"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultShooterConfig() {
		t.Errorf("embedded YAML %+v differs from DefaultShooterConfig %+v", fromYAML, DefaultShooterConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("embedded default should validate: %v", err)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	data := "player:\n  hearts: 2\n  attack: 3\ndebug: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter failed: %v", err)
	}
	if cfg.Player.Hearts != 2 || cfg.Player.Attack != 3 || !cfg.Debug {
		t.Errorf("overrides not applied: %+v", cfg.Player)
	}
	// Untouched fields keep their defaults
	if cfg.World.Width != 1280 || cfg.Skills.R.Cooldown != 120 {
		t.Errorf("defaults lost: world=%+v r=%+v", cfg.World, cfg.Skills.R)
	}
}

func TestLoadShooterMissingFile(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadShooterInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "world:\n  width: -1\nplayer:\n  hearts: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadShooter(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"world size", "player.hearts"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyShooterPreset(t *testing.T) {
	easy := DefaultShooterConfig()
	ApplyShooterPreset(&easy, DifficultyEasy)
	if easy.Player.Hearts != 6 || easy.Player.Attack != 2 {
		t.Errorf("easy preset: hearts=%d attack=%d", easy.Player.Hearts, easy.Player.Attack)
	}

	hard := DefaultShooterConfig()
	ApplyShooterPreset(&hard, DifficultyHard)
	if hard.Player.Hearts != 2 {
		t.Errorf("hard preset: hearts=%d, expected 2", hard.Player.Hearts)
	}

	fixed := DefaultShooterConfig()
	ApplyShooterPreset(&fixed, DifficultyFixed)
	if fixed != DefaultShooterConfig() {
		t.Error("fixed preset should not change the config")
	}
}
