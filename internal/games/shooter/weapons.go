package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// bulletRadius is the radius of player and drone bullets at the current size level.
func (g *Game) bulletRadius() float64 {
	return baseBulletRadius + bulletRadiusPerSize*float64(g.upgrades.BulletSize)
}

// fire emits the straight and diagonal lanes while fire is held.
// Holding focus suppresses the diagonal lanes.
func (g *Game) fire(held, focus bool, step float64) {
	if g.fireCooldown > 0 {
		g.fireCooldown -= step
	}
	if !held || g.fireCooldown > 0 {
		return
	}

	p := g.player
	speed := g.cfg.Player.BulletSpeed
	radius := g.bulletRadius()
	dmg := g.totalAttack()
	pierce := g.upgrades.Pierce
	muzzleY := p.Pos.Y + p.Radius + muzzleOffset

	lanes := 1 + g.upgrades.Straight
	start := -float64(lanes-1) * 0.5
	for i := 0; i < lanes; i++ {
		offset := (start + float64(i)) * straightLaneSpacing
		g.bullets = append(g.bullets, &Bullet{
			Pos:    core.V(p.Pos.X+offset, muzzleY),
			Vel:    core.V(0, speed),
			Radius: radius,
			Damage: dmg,
			Pierce: pierce,
			Alive:  true,
		})
	}

	if g.upgrades.Diagonal > 0 && !focus {
		diagSpeed := speed
		if g.stage < diagonalFullStage {
			diagSpeed *= diagonalSlowFactor
		}
		for lvl := 1; lvl <= min(g.upgrades.Diagonal, 4); lvl++ {
			dir := core.V(0, 1).RotateDeg(diagonalAngle(lvl))
			g.bullets = append(g.bullets, &Bullet{
				Pos:    core.V(p.Pos.X, muzzleY),
				Vel:    dir.Scale(diagSpeed),
				Radius: radius,
				Damage: dmg,
				Pierce: pierce,
				Alive:  true,
			})
		}
	}

	g.fireCooldown = 1 / g.cfg.Player.FireRate
}

// updateMissiles launches missile volleys on the level's interval and
// steers every live missile toward its target.
func (g *Game) updateMissiles(step float64) {
	if g.upgrades.Missile > 0 {
		g.missileTimer -= step
		if g.missileTimer <= 0 {
			lvl := weaponLevel(g.upgrades.Missile)
			g.missileTimer = missileInterval(lvl)
			g.launchMissiles(lvl)
		}
	}

	maxTurn := missileTurnDegSec * step
	for _, m := range g.missiles {
		if !m.Alive {
			continue
		}

		target := g.enemyByID(m.TargetID)
		if target == nil && !m.Retargeted {
			if nt := g.nearestEnemy(m.Pos); nt != nil {
				m.TargetID = nt.ID
				m.Retargeted = true
				target = nt
			}
		}

		desired := m.AngleDeg
		if target != nil {
			d := target.Pos.Sub(m.Pos)
			desired = math.Atan2(d.Y, d.X) * 180 / math.Pi
		}
		delta := math.Mod(desired-m.AngleDeg+540, 360) - 180
		if math.Abs(delta) <= maxTurn {
			m.AngleDeg = desired
		} else {
			m.AngleDeg += clamp(delta, -maxTurn, maxTurn)
		}

		m.Vel = core.FromAngleDeg(m.AngleDeg).Scale(missileSpeed)
		m.Pos = m.Pos.MulAdd(m.Vel, step)

		m.Life -= step
		// Missiles may leave through the bottom edge and turn back.
		if m.Life <= 0 || m.Pos.Y-m.Radius > g.worldH+missileMargin ||
			m.Pos.X+m.Radius < -missileMargin || m.Pos.X-m.Radius > g.worldW+missileMargin {
			m.Alive = false
		}
	}
	g.missiles = compact(g.missiles, missileAlive)
}

func (g *Game) launchMissiles(lvl int) {
	count := missileCount(lvl)
	if count == 0 {
		return
	}
	stepAng := 360.0 / float64(count)
	spawnR := g.player.Radius + missileSpawnGap
	dmg := g.totalAttack() + missileDamageOffset(lvl)

	for i := 0; i < count; i++ {
		ang := missileStartDeg + stepAng*float64(i)
		dir := core.FromAngleDeg(ang)
		pos := g.player.Pos.MulAdd(dir, spawnR)

		var target EnemyID
		if e := g.nearestEnemy(pos); e != nil {
			target = e.ID
		}
		g.missiles = append(g.missiles, &Missile{
			Pos:      pos,
			Vel:      dir.Scale(missileSpeed),
			Radius:   missileRadius,
			AngleDeg: ang,
			Life:     missileLife,
			TargetID: target,
			Damage:   dmg,
			Alive:    true,
		})
	}
}

// dronePos returns the world position of a drone on its orbit.
func (g *Game) dronePos(d *Drone) core.Vec2 {
	ang := d.AngleOffset + g.droneOrbit
	return g.player.Pos.Add(core.V(math.Cos(ang), math.Sin(ang)).Scale(droneOrbitRadius))
}

// updateDrones spins the drone ring and fires aimed shots at the nearest
// enemy, straight up when none is alive.
func (g *Game) updateDrones(step float64) {
	lvl := g.upgrades.Drone
	if lvl <= 0 {
		return
	}
	g.droneOrbit += step * droneAngularDegSec * math.Pi / 180
	interval := droneFireInterval(lvl)

	for _, d := range g.drones {
		d.FireTimer -= step
		if d.FireTimer > 0 {
			continue
		}
		d.FireTimer = interval

		pos := g.dronePos(d)
		dir := core.V(0, 1)
		if t := g.nearestEnemy(pos); t != nil {
			if v := t.Pos.Sub(pos); v.Len2() > 0 {
				dir = v.Norm()
			}
		}
		g.bullets = append(g.bullets, &Bullet{
			Pos:       pos,
			Vel:       dir.Scale(droneBulletSpeed),
			Radius:    g.bulletRadius(),
			Damage:    droneDamage(g.totalAttack(), lvl),
			FromDrone: true,
			Alive:     true,
		})
	}
}

// updateLaserDrones runs the beam cycle of the laser drone: cooldown, then a
// beam that ticks damage along a segment aimed at the nearest enemy.
func (g *Game) updateLaserDrones(step float64) {
	if g.upgrades.Laser <= 0 {
		return
	}
	g.laserOrbit += step * laserAngularRadSec
	if len(g.laserDrones) == 0 {
		return
	}
	d := g.laserDrones[0]
	lvl := weaponLevel(g.upgrades.Laser)

	if d.BeamTime <= 0 {
		if d.Cooldown > 0 {
			d.Cooldown -= step
		} else {
			d.BeamTime = laserDuration(lvl)
			d.TickTimer = 0
			d.TickCount = 0
		}
		return
	}

	ang := d.AngleOffset + g.laserOrbit
	origin := g.player.Pos.Add(core.V(math.Cos(ang), math.Sin(ang)).Scale(g.player.Radius + laserOrbitGap))

	// With no enemy alive the beam points straight up.
	aim := origin.Add(core.V(0, 1))
	if t := g.nearestEnemy(origin); t != nil {
		aim = t.Pos
	}
	dir := aim.Sub(origin)
	dir = dir.Scale(1 / math.Max(1, dir.Len()))
	end := origin.MulAdd(dir, laserBeamLength)
	d.Origin, d.End = origin, end

	d.BeamTime -= step
	d.TickTimer += step
	interval := laserTickInterval(lvl)
	dmg := g.totalAttack() + laserExtraDamage(lvl)
	for n := 0; d.TickTimer >= interval && n < laserMaxTicks; n++ {
		d.TickTimer -= interval
		d.TickCount++
		g.laserTick(origin, end, dmg)
	}

	if d.BeamTime <= 0 {
		d.Cooldown = laserCooldown(lvl)
	}
}

// laserTick damages every enemy whose circle the beam segment crosses.
func (g *Game) laserTick(origin, end core.Vec2, dmg int) {
	n := len(g.enemies)
	for i := 0; i < n; i++ {
		e := g.enemies[i]
		if e.Alive && core.SegmentIntersectsCircle(origin, end, e.Pos, e.Radius+laserHalfWidth) {
			g.damageEnemy(e, dmg)
		}
	}
}
