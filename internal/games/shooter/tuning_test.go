package shooter

import (
	"math"
	"testing"
)

func TestRequiredKills(t *testing.T) {
	tests := []struct {
		stage int
		want  int
	}{
		{1, 20},
		{2, 28},
		{4, 44},
		{5, 60},
		{10, 108},
	}
	for _, tt := range tests {
		if got := requiredKills(tt.stage); got != tt.want {
			t.Errorf("requiredKills(%d) = %d, want %d", tt.stage, got, tt.want)
		}
	}
}

func TestHPForStage(t *testing.T) {
	tests := []struct {
		stage int
		want  int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 5},
		{6, 7},
		{10, 15},
		{11, 18},
	}
	for _, tt := range tests {
		if got := hpForStage(tt.stage); got != tt.want {
			t.Errorf("hpForStage(%d) = %d, want %d", tt.stage, got, tt.want)
		}
	}

	// Stage 15 carries the +6 bump.
	if d := hpForStage(15) - hpForStage(14); d != (14/4+1)+6 {
		t.Errorf("Expected stage 15 bump of %d, got %d", 14/4+1+6, d)
	}
	for n := 2; n < 100; n++ {
		if hpForStage(n) <= hpForStage(n-1) {
			t.Fatalf("hp did not grow at stage %d", n)
		}
	}
}

func TestTargetSpawnInterval(t *testing.T) {
	tests := []struct {
		stage int
		want  float64
	}{
		{1, 1.02 * 1.4},
		{4, 0.93 * 1.25},
		{10, 0.75 * 1.1},
		{11, 0.72},
		{40, 0.45},
	}
	for _, tt := range tests {
		if got := targetSpawnInterval(tt.stage); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("targetSpawnInterval(%d) = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestKitChance(t *testing.T) {
	if got := kitChance(1); got != kitBaseChance {
		t.Errorf("Expected base chance at stage 1, got %v", got)
	}
	if got := kitChance(100); math.Abs(got-kitTargetChance) > 1e-12 {
		t.Errorf("Expected target chance at stage 100, got %v", got)
	}
	if got := kitChance(500); math.Abs(got-kitTargetChance) > 1e-12 {
		t.Errorf("Expected chance capped at %v, got %v", kitTargetChance, got)
	}
	prev := 0.0
	for n := 1; n <= 120; n++ {
		c := kitChance(n)
		if c < prev {
			t.Fatalf("kit chance decreased at stage %d", n)
		}
		prev = c
	}
}

func TestSpecialChance(t *testing.T) {
	if got := specialChance(1); got != specialBaseProb {
		t.Errorf("Expected %v at stage 1, got %v", specialBaseProb, got)
	}
	if got := specialChance(1000); got != specialMaxProb {
		t.Errorf("Expected cap %v, got %v", specialMaxProb, got)
	}
}

func TestAtkBonusForStage(t *testing.T) {
	tests := []struct {
		stage int
		want  int
	}{
		{1, 1},
		{13, 1},
		{15, 2},
		{35, 3},
		{55, 4},
		{75, 5},
		{99, 5},
	}
	for _, tt := range tests {
		if got := atkBonusForStage(tt.stage); got != tt.want {
			t.Errorf("atkBonusForStage(%d) = %d, want %d", tt.stage, got, tt.want)
		}
	}
}

func TestEnemyBulletCapTable(t *testing.T) {
	tests := []struct {
		kind  EnemyBulletKind
		stage int
		want  int
	}{
		{EnemyBulletStraight, 1, 10},
		{EnemyBulletStraight, 11, 14},
		{EnemyBulletStraight, 25, 18},
		{EnemyBulletStraight, 31, 20},
		{EnemyBulletDiagonal, 9, 0},
		{EnemyBulletDiagonal, 10, 4},
		{EnemyBulletDiagonal, 30, 8},
		{EnemyBulletDiagonal, 31, 10},
		{EnemyBulletHoming, 40, 0},
		{EnemyBulletHoming, 41, 5},
	}
	for _, tt := range tests {
		if got := enemyBulletCap(tt.kind, tt.stage); got != tt.want {
			t.Errorf("enemyBulletCap(%d, %d) = %d, want %d", tt.kind, tt.stage, got, tt.want)
		}
	}
}

func TestWeaponLevelTables(t *testing.T) {
	tests := []struct {
		level                  int
		drones, missiles       int
		droneDmg, missileBonus int
	}{
		{1, 1, 1, 1, 1},
		{4, 2, 2, 3, 3},
		{6, 2, 3, 6, 5},
		{10, 3, 3, 11, 10},
		{11, 3, 4, 16, 15},
		{15, 3, 5, 51, 50},
		{99, 3, 5, 51, 50},
	}
	for _, tt := range tests {
		if got := droneCount(tt.level); got != tt.drones {
			t.Errorf("droneCount(%d) = %d, want %d", tt.level, got, tt.drones)
		}
		if got := missileCount(tt.level); got != tt.missiles {
			t.Errorf("missileCount(%d) = %d, want %d", tt.level, got, tt.missiles)
		}
		if got := droneDamage(1, tt.level); got != tt.droneDmg {
			t.Errorf("droneDamage(1, %d) = %d, want %d", tt.level, got, tt.droneDmg)
		}
		if got := missileDamageOffset(tt.level); got != tt.missileBonus {
			t.Errorf("missileDamageOffset(%d) = %d, want %d", tt.level, got, tt.missileBonus)
		}
	}

	if laserTickInterval(1) != 0.5 || laserTickInterval(8) != 0.3 || laserTickInterval(15) != 0.2 {
		t.Error("Unexpected laser tick intervals")
	}
	if laserCooldown(0) != laserCooldown(1) || laserDuration(20) != 2 {
		t.Error("Expected out of range levels to clamp")
	}
}
