package shooter

import "math"

// Fixed simulation constants. Stage-indexed values are pure functions below.
const (
	maxStep = 1.0 / 30.0

	straightLaneSpacing = 26.0
	muzzleOffset        = 6.0
	baseBulletRadius    = 8.0
	bulletRadiusPerSize = 2.0
	diagonalSlowFactor  = 0.85
	diagonalFullStage   = 20
	bulletMargin        = 12.0

	enemyBulletRadius  = 5.0
	homingBulletRadius = 6.0
	homingSpeed        = 160.0
	homingLife         = 5.0
	homingLerp         = 0.06
	homingUnlockStage  = 41
	homingChance       = 0.06
	homingCap          = 5

	aimedUnlockStage    = 21
	aimedDiagonalChance = 0.30
	aimedSpreadDeg      = 20.0
	tripleSpreadDeg     = 12.0
	bomberRingCount     = 8
	bomberBulletSpeed   = 420.0
	healRadius          = 160.0
	healMaxAllies       = 3

	enemyEdgeDwell   = 2.0
	enemyExitMargin  = 8.0
	spawnSmoothing   = 0.2
	specialBaseProb  = 0.001
	specialMaxProb   = 0.05
	specialRampStage = 200.0

	kitFallSpeed    = 70.0
	kitRadius       = 10.0
	kitLife         = 14.0
	kitBaseChance   = 0.0002
	kitTargetChance = 0.012
	kitRampStages   = 100.0
	kitCurve        = 1.5

	barrierPushGap   = 6.0
	barrierIFrames   = 0.5
	beamHalfWidth    = 24.0
	beamTickInterval = 1.0 / 18.0
	beamMaxTicks     = 12
	beamDamageFactor = 5

	announceDuration = 2.5
	stageClearBonus  = 10
	fullHeartBonus   = 50
)

// requiredKills returns the kill target for stage n.
func requiredKills(n int) int {
	if n == 1 {
		return 20
	}
	return 12 + 8*(n+n/5)
}

// hpForStage returns the hp of a plain enemy spawned during stage n.
func hpForStage(n int) int {
	if n <= 1 {
		return 1
	}
	hp := 1
	for s := 2; s <= n; s++ {
		if s <= 10 {
			hp += (s-1)/5 + 1
		} else {
			hp += (s-1)/4 + 1
		}
		if s%15 == 0 {
			hp += 6
		}
	}
	return hp
}

// targetSpawnInterval returns the spawn interval the spawner eases toward.
func targetSpawnInterval(n int) float64 {
	base := math.Max(0.45, 1.02-0.03*float64(n-1))
	boost := 1.0
	switch {
	case n <= 3:
		boost = 1.4
	case n <= 6:
		boost = 1.25
	case n <= 10:
		boost = 1.1
	}
	return clamp(base*boost, 0.45, 1.8)
}

// baseDescent returns the deterministic part of a fresh enemy's downward speed.
func baseDescent(n int) float64 {
	steps := (n - 1) / 5
	return -120 * (1 + 0.02*float64(steps))
}

// specialChance returns the probability a single spawn is a special role.
func specialChance(n int) float64 {
	s := math.Max(0, float64(n-1))
	return math.Min(specialBaseProb+(specialMaxProb-specialBaseProb)*(s/specialRampStage), specialMaxProb)
}

// atkBonusForStage returns the attack granted when an odd stage is cleared.
func atkBonusForStage(stage int) int {
	switch {
	case stage < 15:
		return 1
	case stage < 35:
		return 2
	case stage < 55:
		return 3
	case stage < 75:
		return 4
	default:
		return 5
	}
}

// kitChance returns the probability a kill drops an upgrade kit.
func kitChance(n int) float64 {
	s := math.Max(0, float64(n-1))
	progress := clamp(s/(kitRampStages-1), 0, 1)
	t := math.Pow(progress, kitCurve)
	return math.Min(kitBaseChance+(kitTargetChance-kitBaseChance)*t, kitTargetChance)
}

// aimedShotChance returns the probability a plain enemy fires when its timer expires.
func aimedShotChance(n int) float64 {
	return math.Min(0.24, 0.045+0.009*float64(n-1))
}

// enemyBulletCap returns how many live enemy bullets of a kind stage n allows.
func enemyBulletCap(kind EnemyBulletKind, n int) int {
	switch kind {
	case EnemyBulletStraight:
		switch {
		case n <= 10:
			return 10
		case n <= 20:
			return 14
		case n <= 30:
			return 18
		default:
			return 20
		}
	case EnemyBulletDiagonal:
		switch {
		case n < 10:
			return 0
		case n <= 20:
			return 4
		case n <= 30:
			return 8
		default:
			return 10
		}
	default:
		if n >= homingUnlockStage {
			return homingCap
		}
		return 0
	}
}

// enemyStraightSpeed returns the speed of straight enemy shots.
func enemyStraightSpeed(n int) float64 {
	switch {
	case n <= 10:
		return 480
	case n <= 20:
		return 500
	case n <= 30:
		return 520
	default:
		return 540
	}
}

// enemyDiagonalSpeed returns the speed of diagonal enemy shots, 0 when locked.
func enemyDiagonalSpeed(n int) float64 {
	switch {
	case n < 10:
		return 0
	case n <= 20:
		return 340
	case n <= 30:
		return 380
	default:
		return 400
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
