package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SkillView is the HUD state of one skill.
type SkillView struct {
	ID          SkillID
	Unlocked    bool
	UnlockStage int
	Cooldown    float64
	CooldownMax float64
	Active      bool
	Remaining   float64
}

// Ready reports whether the skill can be activated now.
func (s SkillView) Ready() bool {
	return s.Unlocked && s.Cooldown <= 0 && !s.Active
}

// PlayerView is the HUD state of the player.
type PlayerView struct {
	Pos          core.Vec2
	Radius       float64
	Hearts       int
	MaxHearts    int
	Attack       int // base plus upgrade bonus
	Invulnerable bool
	Visible      bool
}

// View is the read-only state handed to the host after each tick.
// Entity slices are copies; mutating them does not affect the game.
type View struct {
	State RunState

	Player PlayerView

	Bullets      []Bullet
	EnemyBullets []EnemyBullet
	Enemies      []Enemy
	Missiles     []Missile
	Drones       []core.Vec2 // world positions
	LaserDrones  []LaserDrone
	Kits         []UpgradeKit

	Stage       int
	Score       int
	StageKills  int
	StageTarget int
	EnemyHP     int
	TotalKills  int
	KitChance   float64

	Skills   [skillCount]SkillView
	Barrier  bool
	Beam     bool
	Upgrades Upgrades

	Announcement      string
	AnnouncementTimer float64

	Buttons []Button

	World core.Vec2
}

// View returns a copy of everything the host needs to draw a frame.
func (g *Game) View() View {
	v := View{
		State: g.state,
		Player: PlayerView{
			Pos:          g.player.Pos,
			Radius:       g.player.Radius,
			Hearts:       g.player.Hearts,
			MaxHearts:    g.player.MaxHearts,
			Attack:       g.totalAttack(),
			Invulnerable: g.player.Invulnerable(),
			Visible:      g.player.Visible(),
		},
		Bullets:      copyEntities(g.bullets),
		EnemyBullets: copyEntities(g.enemyBullets),
		Enemies:      copyEntities(g.enemies),
		Missiles:     copyEntities(g.missiles),
		LaserDrones:  copyEntities(g.laserDrones),
		Kits:         copyEntities(g.kits),

		Stage:       g.stage,
		Score:       g.score,
		StageKills:  g.stageKills,
		StageTarget: g.stageTarget,
		EnemyHP:     hpForStage(g.stage),
		TotalKills:  g.totalKills,
		KitChance:   g.kitDropChance(),

		Barrier:  g.barrierActive(),
		Beam:     g.skills[SkillW].active,
		Upgrades: g.upgrades,

		Buttons: g.Buttons(),
		World:   core.V(g.worldW, g.worldH),
	}

	for _, d := range g.drones {
		v.Drones = append(v.Drones, g.dronePos(d))
	}
	for id := SkillQ; id < skillCount; id++ {
		s := g.skills[id]
		cfg := g.skillConfig(id)
		v.Skills[id] = SkillView{
			ID:          id,
			Unlocked:    g.skillUnlocked(id),
			UnlockStage: cfg.UnlockStage,
			Cooldown:    math.Max(0, s.cooldown),
			CooldownMax: cfg.Cooldown,
			Active:      s.active,
			Remaining:   math.Max(0, s.remaining),
		}
	}
	if g.announceTimer > 0 {
		v.Announcement = g.announce
		v.AnnouncementTimer = g.announceTimer
	}
	return v
}

func copyEntities[T any](s []*T) []T {
	out := make([]T, 0, len(s))
	for _, e := range s {
		out = append(out, *e)
	}
	return out
}

// Snapshot contains the run state in primitive form for determinism tests.
// Floats are stored as their IEEE bits.
type Snapshot struct {
	Tick        uint64
	State       int
	Score       int
	Stage       int
	StageKills  int
	StageTarget int
	TotalKills  int
	Hearts      int
	Attack      int
	NextEnemyID uint32

	PlayerX uint64
	PlayerY uint64

	// Upgrade levels in pool order
	UpgradeData []int

	// Each enemy is 5 values: ID, HP, Role, X bits, Y bits
	EnemyCount int
	EnemyData  []uint64

	// Each bullet is 3 values: X bits, Y bits, Pierce
	BulletCount int
	BulletData  []uint64

	EnemyBulletCount int
	MissileCount     int
	KitCount         int

	// Each skill is 2 values: cooldown bits, remaining bits
	SkillData []uint64

	RNGState uint64
}

// Snapshot returns the current run state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:             g.tick,
		State:            int(g.state),
		Score:            g.score,
		Stage:            g.stage,
		StageKills:       g.stageKills,
		StageTarget:      g.stageTarget,
		TotalKills:       g.totalKills,
		Hearts:           g.player.Hearts,
		Attack:           g.totalAttack(),
		NextEnemyID:      uint32(g.nextEnemyID),
		PlayerX:          math.Float64bits(g.player.Pos.X),
		PlayerY:          math.Float64bits(g.player.Pos.Y),
		EnemyCount:       len(g.enemies),
		BulletCount:      len(g.bullets),
		EnemyBulletCount: len(g.enemyBullets),
		MissileCount:     len(g.missiles),
		KitCount:         len(g.kits),
		RNGState:         g.rng.State(),
	}

	for _, s := range upgradePool {
		snap.UpgradeData = append(snap.UpgradeData, g.upgrades.Level(s.kind))
	}
	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData,
			uint64(e.ID), uint64(e.HP), uint64(e.Role), //#nosec G115 -- hash computation
			math.Float64bits(e.Pos.X), math.Float64bits(e.Pos.Y))
	}
	for _, b := range g.bullets {
		snap.BulletData = append(snap.BulletData,
			math.Float64bits(b.Pos.X), math.Float64bits(b.Pos.Y), uint64(b.Pierce)) //#nosec G115 -- hash computation
	}
	for _, s := range g.skills {
		snap.SkillData = append(snap.SkillData, math.Float64bits(s.cooldown), math.Float64bits(s.remaining))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StageKills)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StageTarget) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TotalKills)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hearts)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Attack)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextEnemyID)
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyBulletCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MissileCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.KitCount)         //#nosec G115 -- hash computation

	for _, v := range snap.UpgradeData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.BulletData {
		h = h*31 + v
	}
	for _, v := range snap.SkillData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
