package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// updateEnemies moves every enemy by its pattern, applies edge dwell and
// runs enemy fire.
func (g *Game) updateEnemies(step float64) {
	n := len(g.enemies)
	for i := 0; i < n; i++ {
		e := g.enemies[i]
		if !e.Alive {
			continue
		}
		e.Time += step
		g.moveEnemy(e, step)

		if g.nearEdge(e) {
			e.EdgeTime += step
		} else {
			e.EdgeTime = 0
		}
		if e.EdgeTime >= enemyEdgeDwell {
			e.Alive = false
			continue
		}

		e.ShootTimer -= step
		if e.ShootTimer <= 0 {
			g.tryEnemyShoot(e)
		}

		if e.Pos.Y+e.Radius < -enemyExitMargin {
			e.Alive = false
		}
	}
	g.enemies = compact(g.enemies, enemyAlive)
}

func (g *Game) moveEnemy(e *Enemy, step float64) {
	switch e.Pattern {
	case PatternSweep:
		e.Pos = e.Pos.MulAdd(e.Vel, step)
		if e.Pos.X <= e.Radius || e.Pos.X >= g.worldW-e.Radius {
			e.Vel.X = -e.Vel.X
		}
	case PatternSnake:
		e.Pos.Y += e.Vel.Y * step
		e.Pos.X = e.BaseX + math.Sin(e.Time*e.Omega)*e.Amp
	default:
		e.Pos = e.Pos.MulAdd(e.Vel, step)
	}
}

// nearEdge reports whether the enemy touches any world boundary.
func (g *Game) nearEdge(e *Enemy) bool {
	return e.Pos.X <= e.Radius || e.Pos.X >= g.worldW-e.Radius ||
		e.Pos.Y <= e.Radius || e.Pos.Y >= g.worldH-e.Radius
}

// tryEnemyShoot runs the enemy's role action and rearms its timer.
func (g *Game) tryEnemyShoot(e *Enemy) {
	if g.enemyFireSuppressed() {
		e.ShootTimer = g.rng.Range(0.6, 1.2)
		return
	}
	e.ShootTimer = g.rng.Range(1.0, 1.6)

	speed := enemyStraightSpeed(g.stage)
	muzzle := core.V(e.Pos.X, e.Pos.Y-e.Radius-4)

	switch e.Role {
	case RoleHealer:
		g.healAllies(e)
		return
	case RoleTripleShooter:
		if g.stage < aimedUnlockStage {
			for range 3 {
				g.spawnEnemyBullet(muzzle, 0, speed, EnemyBulletStraight)
			}
		} else {
			for _, ang := range [...]float64{0, -tripleSpreadDeg, tripleSpreadDeg} {
				g.spawnEnemyBulletAuto(muzzle, ang, speed)
			}
		}
		return
	case RoleBomber:
		base := core.V(e.Pos.X, e.Pos.Y-e.Radius-2)
		for k := 0; k < bomberRingCount; k++ {
			g.spawnEnemyBulletAuto(base, float64(k)*360/bomberRingCount, bomberBulletSpeed)
		}
		return
	}

	if g.stage >= homingUnlockStage && g.enemyBulletCount(EnemyBulletHoming) < enemyBulletCap(EnemyBulletHoming, g.stage) &&
		g.rng.Chance(homingChance) {
		g.spawnHomingBullet(muzzle)
		return
	}

	if !g.rng.Chance(aimedShotChance(g.stage)) {
		return
	}
	dir := g.player.Pos.Sub(e.Pos).Norm()
	aimDeg := dir.AngleDeg() - 270
	diagonal := g.stage >= aimedUnlockStage && g.rng.Chance(aimedDiagonalChance)
	switch {
	case !diagonal && g.stage < aimedUnlockStage:
		g.spawnEnemyBullet(muzzle, 0, speed, EnemyBulletStraight)
	case !diagonal:
		g.spawnEnemyBullet(muzzle, aimDeg, speed, EnemyBulletStraight)
	default:
		diagDeg := aimDeg + g.rng.Range(-aimedSpreadDeg, aimedSpreadDeg)
		if ds := enemyDiagonalSpeed(g.stage); ds > 0 {
			g.spawnEnemyBullet(muzzle, diagDeg, ds, EnemyBulletDiagonal)
		} else {
			g.spawnEnemyBullet(muzzle, 0, speed, EnemyBulletStraight)
		}
	}
}

// healAllies gives +1 hp to the first few live allies within range.
func (g *Game) healAllies(e *Enemy) {
	healed := 0
	for _, ally := range g.enemies {
		if !ally.Alive || ally == e {
			continue
		}
		if ally.Pos.Sub(e.Pos).Len2() <= healRadius*healRadius {
			ally.HP++
			healed++
			if healed >= healMaxAllies {
				return
			}
		}
	}
}

func (g *Game) enemyBulletCount(kind EnemyBulletKind) int {
	n := 0
	for _, b := range g.enemyBullets {
		if b.Alive && b.Kind == kind {
			n++
		}
	}
	return n
}

// canSpawnEnemyBullet reports whether the kind is below its stage cap.
func (g *Game) canSpawnEnemyBullet(kind EnemyBulletKind) bool {
	return g.enemyBulletCount(kind) < enemyBulletCap(kind, g.stage)
}

// spawnEnemyBulletAuto classifies the shot from its angle: exact vertical
// shots count as straight, everything else as diagonal.
func (g *Game) spawnEnemyBulletAuto(pos core.Vec2, angleDeg, speed float64) bool {
	norm := math.Mod(math.Mod(angleDeg, 360)+360, 360)
	kind := EnemyBulletDiagonal
	if math.Abs(math.Mod(norm, 180)) < 0.001 {
		kind = EnemyBulletStraight
	}
	return g.spawnEnemyBullet(pos, angleDeg, speed, kind)
}

// spawnEnemyBullet fires a shot rotated angleDeg from straight down. At the
// kind's cap it does nothing and returns false.
func (g *Game) spawnEnemyBullet(pos core.Vec2, angleDeg, speed float64, kind EnemyBulletKind) bool {
	if !g.canSpawnEnemyBullet(kind) {
		return false
	}
	dir := core.V(0, -1).RotateDeg(angleDeg)
	g.enemyBullets = append(g.enemyBullets, &EnemyBullet{
		Pos:    pos,
		Vel:    dir.Scale(speed),
		Radius: enemyBulletRadius,
		Kind:   kind,
		Alive:  true,
	})
	return true
}

func (g *Game) spawnHomingBullet(pos core.Vec2) bool {
	if !g.canSpawnEnemyBullet(EnemyBulletHoming) {
		return false
	}
	dir := g.player.Pos.Sub(pos).Norm()
	g.enemyBullets = append(g.enemyBullets, &EnemyBullet{
		Pos:    pos,
		Vel:    dir.Scale(homingSpeed),
		Radius: homingBulletRadius,
		Kind:   EnemyBulletHoming,
		Life:   homingLife,
		Alive:  true,
	})
	return true
}

// updateEnemyBullets steers homing shots, moves all shots and drops
// expired or departed ones.
func (g *Game) updateEnemyBullets(step float64) {
	for _, b := range g.enemyBullets {
		if !b.Alive {
			continue
		}
		if b.Homing() {
			desired := g.player.Pos.Sub(b.Pos)
			if desired.Len2() > 1 {
				desired = desired.Norm()
			}
			speed := math.Max(b.Vel.Len(), homingSpeed)
			b.Vel = b.Vel.Lerp(desired.Scale(speed), homingLerp)
			b.Life -= step
			if b.Life <= 0 {
				b.Alive = false
				continue
			}
		}
		b.Pos = b.Pos.MulAdd(b.Vel, step)
		if g.outOfWorld(b.Pos, b.Radius, bulletMargin) {
			b.Alive = false
		}
	}
	g.enemyBullets = compact(g.enemyBullets, enemyBulletAlive)
}
