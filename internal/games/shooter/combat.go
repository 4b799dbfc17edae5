package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// totalAttack is the base attack plus the attack upgrade bonus.
func (g *Game) totalAttack() int {
	return g.player.Attack + g.upgrades.AttackBonus
}

// outOfWorld reports whether a circle has left the world by more than margin.
func (g *Game) outOfWorld(pos core.Vec2, r, margin float64) bool {
	return pos.Y-r > g.worldH+margin || pos.Y+r < -margin ||
		pos.X+r < -margin || pos.X-r > g.worldW+margin
}

// updateBullets moves player bullets and drops dead or departed ones.
func (g *Game) updateBullets(step float64) {
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.Alive {
			continue
		}
		b.Pos = b.Pos.MulAdd(b.Vel, step)
		if g.outOfWorld(b.Pos, b.Radius, bulletMargin) {
			continue
		}
		alive = append(alive, b)
	}
	clearTail(g.bullets, len(alive))
	g.bullets = alive
}

// nearestEnemy returns the closest live enemy to pos, or nil when none is alive.
func (g *Game) nearestEnemy(pos core.Vec2) *Enemy {
	var best *Enemy
	bestD2 := math.MaxFloat64
	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		if d2 := e.Pos.Sub(pos).Len2(); d2 < bestD2 {
			bestD2 = d2
			best = e
		}
	}
	return best
}

// enemyByID returns the live enemy with the given ID, or nil.
func (g *Game) enemyByID(id EnemyID) *Enemy {
	if id == 0 {
		return nil
	}
	for _, e := range g.enemies {
		if e.Alive && e.ID == id {
			return e
		}
	}
	return nil
}

// damageEnemy applies damage and runs the death sequence at hp <= 0.
func (g *Game) damageEnemy(e *Enemy, dmg int) {
	if !e.Alive {
		return
	}
	e.HP -= dmg
	if e.HP <= 0 {
		g.killEnemy(e)
	}
}

// killEnemy runs the death sequence once per enemy: score, kill count,
// splitter children and a possible upgrade kit drop.
func (g *Game) killEnemy(e *Enemy) {
	if !e.Alive {
		return
	}
	e.Alive = false

	if e.Role == RoleSplitter {
		g.spawnSplitChildren(e)
	}
	g.score += e.ScoreValue
	g.stageKills++
	g.totalKills++

	if g.rng.Chance(kitChance(g.stage)) {
		g.spawnKit(e.Pos)
	}
}

// resolveCollisions tests bullets, missiles, enemy contact and enemy bullets.
func (g *Game) resolveCollisions() {
	g.collideBullets()
	g.collideMissiles()
	g.collidePlayerEnemies()
	g.collidePlayerBullets()
	g.enemies = compact(g.enemies, enemyAlive)
}

// collideBullets damages each enemy at most once per bullet and honours pierce.
func (g *Game) collideBullets() {
	n := len(g.enemies)
	for _, b := range g.bullets {
		if !b.Alive {
			continue
		}
		for i := 0; i < n && b.Alive; i++ {
			e := g.enemies[i]
			if !e.Alive || b.hasHit(e.ID) {
				continue
			}
			if !core.CirclesOverlap(b.Pos, b.Radius, e.Pos, e.Radius) {
				continue
			}
			b.hits = append(b.hits, e.ID)
			g.damageEnemy(e, b.Damage)
			if b.Pierce > 0 {
				b.Pierce--
			} else {
				b.Alive = false
			}
		}
	}
	g.bullets = compact(g.bullets, bulletAlive)
}

// collideMissiles consumes a missile on its first overlap.
func (g *Game) collideMissiles() {
	n := len(g.enemies)
	for _, m := range g.missiles {
		if !m.Alive {
			continue
		}
		for i := 0; i < n; i++ {
			e := g.enemies[i]
			if !e.Alive || !core.CirclesOverlap(m.Pos, m.Radius, e.Pos, e.Radius) {
				continue
			}
			g.damageEnemy(e, m.Damage)
			m.Alive = false
			break
		}
	}
	g.missiles = compact(g.missiles, missileAlive)
}

// collidePlayerEnemies handles the first enemy touching the player this tick.
func (g *Game) collidePlayerEnemies() {
	p := &g.player
	if p.Invulnerable() || g.state != RunPlaying {
		return
	}
	for _, e := range g.enemies {
		if !e.Alive || !core.CirclesOverlap(p.Pos, p.Radius, e.Pos, e.Radius) {
			continue
		}
		if g.barrierActive() {
			g.absorbContact()
			// Push the enemy out along the contact normal.
			d := e.Pos.Sub(p.Pos)
			l := math.Max(1, d.Len())
			push := p.Radius + e.Radius + barrierPushGap
			e.Pos = p.Pos.MulAdd(d.Scale(1/l), push)
		} else {
			// Rammed enemies vanish without awarding score.
			e.Alive = false
			g.loseHeart()
		}
		return
	}
}

// collidePlayerBullets handles the first enemy bullet touching the player this tick.
func (g *Game) collidePlayerBullets() {
	p := &g.player
	if p.Invulnerable() || g.state != RunPlaying {
		return
	}
	for _, b := range g.enemyBullets {
		if !b.Alive || !core.CirclesOverlap(p.Pos, p.Radius, b.Pos, b.Radius) {
			continue
		}
		b.Alive = false
		if g.barrierActive() {
			g.absorbContact()
		} else {
			g.loseHeart()
		}
		break
	}
	g.enemyBullets = compact(g.enemyBullets, enemyBulletAlive)
}

// absorbContact ends the barrier in place of a heart.
func (g *Game) absorbContact() {
	g.endBarrier()
	g.player.IFrames = barrierIFrames
}

// loseHeart costs one heart and ends the run at zero.
func (g *Game) loseHeart() {
	p := &g.player
	p.Hearts--
	p.IFrames = g.cfg.Player.HitIFrames
	g.emit(core.EventHeartLost, "")
	if p.Hearts <= 0 {
		p.Hearts = 0
		g.endRun()
	}
}

// compact keeps the entities for which keep returns true, preserving order.
func compact[T any](s []*T, keep func(*T) bool) []*T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clearTail(s, len(out))
	return out
}

func bulletAlive(b *Bullet) bool           { return b.Alive }
func enemyAlive(e *Enemy) bool             { return e.Alive }
func enemyBulletAlive(b *EnemyBullet) bool { return b.Alive }
func missileAlive(m *Missile) bool         { return m.Alive }
func kitAlive(k *UpgradeKit) bool          { return k.Alive }

// clearTail nils out the slots past n so dropped entities can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
