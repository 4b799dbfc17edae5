package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Upgrades holds the level of every upgrade kind for the current run.
type Upgrades struct {
	Straight    int // extra straight lanes
	Diagonal    int // diagonal lanes, one angle per level
	BulletSize  int
	Pierce      int
	MoveSpeed   int
	Missile     int
	Drone       int
	Laser       int
	AttackBonus int // flat attack, unbounded
}

// UpgradeKind identifies one entry of the upgrade pool.
type UpgradeKind int

const (
	UpgradeStraight UpgradeKind = iota + 1
	UpgradeDiagonal
	UpgradeBulletSize
	UpgradePierce
	UpgradeMoveSpeed
	UpgradeMissile
	UpgradeDrone
	UpgradeLaser
	UpgradeAttack
)

// String returns the announcement name of the upgrade kind.
func (k UpgradeKind) String() string {
	switch k {
	case UpgradeStraight:
		return "Straight shot +1"
	case UpgradeDiagonal:
		return "Diagonal lane"
	case UpgradeBulletSize:
		return "Bullet size"
	case UpgradePierce:
		return "Pierce +1"
	case UpgradeMoveSpeed:
		return "Move speed"
	case UpgradeMissile:
		return "Homing missiles"
	case UpgradeDrone:
		return "Support drones"
	case UpgradeLaser:
		return "Laser drone"
	case UpgradeAttack:
		return "Attack"
	default:
		return "Unknown"
	}
}

// upgradeSpec is the level cap and selection weight of a kind.
// maxLevel 0 means unbounded.
type upgradeSpec struct {
	kind     UpgradeKind
	maxLevel int
	weight   int
}

var upgradePool = []upgradeSpec{
	{UpgradeStraight, 4, 9},
	{UpgradeDiagonal, 4, 9},
	{UpgradeBulletSize, 2, 8},
	{UpgradePierce, 2, 7},
	{UpgradeMoveSpeed, 4, 8},
	{UpgradeMissile, maxWeaponLevel, 8},
	{UpgradeDrone, maxWeaponLevel, 7},
	{UpgradeLaser, maxWeaponLevel, 7},
	{UpgradeAttack, 0, 6},
}

// Stage-clear milestones that bias the draw toward a curated subset.
var preferredUpgrades = map[int][]UpgradeKind{
	2: {UpgradeStraight, UpgradeDiagonal},
	4: {UpgradeMissile, UpgradeDrone, UpgradeLaser},
}

// MaxLevel returns the level cap of a kind, 0 when unbounded.
func (k UpgradeKind) MaxLevel() int {
	for _, s := range upgradePool {
		if s.kind == k {
			return s.maxLevel
		}
	}
	return 0
}

// Level returns the current level of a kind.
func (u *Upgrades) Level(k UpgradeKind) int {
	if p := u.field(k); p != nil {
		return *p
	}
	return 0
}

func (u *Upgrades) field(k UpgradeKind) *int {
	switch k {
	case UpgradeStraight:
		return &u.Straight
	case UpgradeDiagonal:
		return &u.Diagonal
	case UpgradeBulletSize:
		return &u.BulletSize
	case UpgradePierce:
		return &u.Pierce
	case UpgradeMoveSpeed:
		return &u.MoveSpeed
	case UpgradeMissile:
		return &u.Missile
	case UpgradeDrone:
		return &u.Drone
	case UpgradeLaser:
		return &u.Laser
	case UpgradeAttack:
		return &u.AttackBonus
	default:
		return nil
	}
}

// eligible reports whether a kind is below its cap.
func (u *Upgrades) eligible(s upgradeSpec) bool {
	return s.maxLevel == 0 || u.Level(s.kind) < s.maxLevel
}

// upgradeCandidates returns the eligible pool for a draw made in the
// context of the given stage.
func (g *Game) upgradeCandidates(stageContext int) []upgradeSpec {
	var all, preferred []upgradeSpec
	prefer := preferredUpgrades[stageContext]
	for _, s := range upgradePool {
		if !g.upgrades.eligible(s) {
			continue
		}
		all = append(all, s)
		for _, k := range prefer {
			if k == s.kind {
				preferred = append(preferred, s)
			}
		}
	}
	if len(preferred) > 0 {
		return preferred
	}
	return all
}

// applyRandomUpgrade draws one upgrade by cumulative weight and applies it.
// It returns the announcement text, or false when nothing was eligible.
func (g *Game) applyRandomUpgrade(stageContext int) (string, bool) {
	pool := g.upgradeCandidates(stageContext)
	if len(pool) == 0 {
		return "", false
	}

	weights := make([]int, len(pool))
	for i, s := range pool {
		weights[i] = s.weight
	}
	chosen := pool[max(0, g.rng.Weighted(weights))]

	name := g.applyUpgrade(chosen.kind)
	g.logger.Debug("upgrade", "kind", chosen.kind.String(), "level", g.upgrades.Level(chosen.kind), "stage", g.stage)
	return name, true
}

// applyUpgrade raises one kind by a level, clamped to its cap, and
// rebuilds derived entities.
func (g *Game) applyUpgrade(k UpgradeKind) string {
	p := g.upgrades.field(k)
	if p == nil {
		return ""
	}
	if k == UpgradeAttack {
		inc := g.rng.IntRange(1, 3)
		*p += inc
		return fmt.Sprintf("Attack +%d", inc)
	}
	if limit := k.MaxLevel(); limit == 0 || *p < limit {
		*p++
	}

	switch k {
	case UpgradeDrone:
		g.syncDrones()
	case UpgradeLaser:
		g.syncLaserDrones()
	}
	return k.String()
}

// syncDrones rebuilds the drone ring for the current drone level.
func (g *Game) syncDrones() {
	clearTail(g.drones, 0)
	g.drones = g.drones[:0]
	count := droneCount(g.upgrades.Drone)
	for i := 0; i < count; i++ {
		g.drones = append(g.drones, &Drone{
			AngleOffset: 2 * math.Pi * float64(i) / float64(max(1, count)),
		})
	}
}

// syncLaserDrones keeps a single laser drone once the level is above zero.
func (g *Game) syncLaserDrones() {
	clearTail(g.laserDrones, 0)
	g.laserDrones = g.laserDrones[:0]
	if g.upgrades.Laser > 0 {
		g.laserDrones = append(g.laserDrones, &LaserDrone{})
	}
}

// kitDropChance is the per-kill kit probability at the current stage.
func (g *Game) kitDropChance() float64 {
	return kitChance(g.stage)
}

func (g *Game) spawnKit(pos core.Vec2) {
	g.kits = append(g.kits, &UpgradeKit{
		Pos:    pos,
		Vel:    core.V(0, -kitFallSpeed),
		Radius: kitRadius,
		Life:   kitLife,
		Alive:  true,
	})
}

// updateKits drifts kits down and grants an upgrade on player contact.
func (g *Game) updateKits(step float64) {
	p := &g.player
	for _, k := range g.kits {
		if !k.Alive {
			continue
		}
		k.Pos = k.Pos.MulAdd(k.Vel, step)
		k.Life -= step
		if k.Pos.Y+k.Radius < -bulletMargin || k.Life <= 0 {
			k.Alive = false
			continue
		}
		if core.CirclesOverlap(p.Pos, p.Radius, k.Pos, k.Radius) {
			k.Alive = false
			if name, ok := g.applyRandomUpgrade(g.stage); ok {
				g.setAnnouncement("Upgrade: " + name)
				g.emit(core.EventUpgrade, name)
			}
		}
	}
	g.kits = compact(g.kits, kitAlive)
}
