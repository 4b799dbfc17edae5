package shooter

// Per-level stat tables for the levelled weapons. Levels run 1..15; out of
// range levels are clamped.

const maxWeaponLevel = 15

func weaponLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > maxWeaponLevel {
		return maxWeaponLevel
	}
	return level
}

// diagonalAngle returns the lane angle added by the given diagonal level.
func diagonalAngle(level int) float64 {
	switch level {
	case 1:
		return 10
	case 2:
		return -10
	case 3:
		return 18
	case 4:
		return -18
	default:
		return 0
	}
}

// Drones

const (
	droneOrbitRadius   = 80.0
	droneAngularDegSec = 120.0
	droneBulletSpeed   = 780.0
)

var (
	droneFireIntervals = [maxWeaponLevel]float64{4, 3.75, 3.5, 3.5, 3.25, 3, 2.75, 2.5, 2.25, 2.25, 2, 1.75, 1.5, 1.25, 1}
	droneDamageOffsets = [maxWeaponLevel]int{0, 1, 2, 2, 3, 5, 7, 7, 10, 10, 15, 20, 30, 30, 50}
)

func droneCount(level int) int {
	switch {
	case level >= 10:
		return 3
	case level >= 4:
		return 2
	case level >= 1:
		return 1
	default:
		return 0
	}
}

func droneFireInterval(level int) float64 {
	return droneFireIntervals[weaponLevel(level)-1]
}

func droneDamage(totalAtk, level int) int {
	return totalAtk + droneDamageOffsets[weaponLevel(level)-1]
}

// Missiles

const (
	missileSpeed      = 650.0
	missileRadius     = 8.0
	missileLife       = 3.0
	missileTurnDegSec = 360.0
	missileStartDeg   = 90.0
	missileSpawnGap   = 12.0
	missileMargin     = 16.0
)

var missileIntervals = [maxWeaponLevel]float64{10, 9.5, 9, 9, 8.5, 8.5, 8, 7.5, 7, 6.5, 6.5, 6, 5.5, 5, 5}

func missileInterval(level int) float64 {
	return missileIntervals[weaponLevel(level)-1]
}

func missileCount(level int) int {
	switch {
	case level >= 15:
		return 5
	case level >= 11:
		return 4
	case level >= 6:
		return 3
	case level >= 4:
		return 2
	case level >= 1:
		return 1
	default:
		return 0
	}
}

func missileDamageOffset(level int) int {
	switch {
	case level >= 15:
		return 50
	case level >= 14:
		return 30
	case level >= 13:
		return 20
	case level >= 11:
		return 15
	case level >= 8:
		return 10
	case level >= 7:
		return 7
	case level >= 5:
		return 5
	case level >= 3:
		return 3
	case level >= 2:
		return 2
	case level >= 1:
		return 1
	default:
		return 0
	}
}

// Laser drone

const (
	laserOrbitGap      = 46.0
	laserAngularRadSec = 2.6
	laserBeamLength    = 1600.0
	laserHalfWidth     = 6.0
	laserMaxTicks      = 10
)

var (
	laserDurations    = [maxWeaponLevel]float64{1, 1, 1, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.8, 1.8, 1.8, 2}
	laserExtraDamages = [maxWeaponLevel]int{0, 2, 5, 5, 7, 10, 12, 15, 20, 25, 30, 30, 30, 40, 50}
	laserCooldowns    = [maxWeaponLevel]float64{10, 9.5, 9, 9, 8.5, 8, 7.5, 7, 6.5, 6.5, 6, 6, 5.5, 5, 5}
)

func laserDuration(level int) float64 {
	return laserDurations[weaponLevel(level)-1]
}

func laserTickInterval(level int) float64 {
	switch {
	case level >= 15:
		return 0.2
	case level >= 8:
		return 0.3
	default:
		return 0.5
	}
}

func laserExtraDamage(level int) int {
	return laserExtraDamages[weaponLevel(level)-1]
}

func laserCooldown(level int) float64 {
	return laserCooldowns[weaponLevel(level)-1]
}
