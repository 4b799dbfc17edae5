package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// EnemyID identifies an enemy for the whole run. Zero means "no target".
type EnemyID uint32

// EnemyRole is the behavior kind chosen when an enemy spawns.
// Roles are exclusive: an enemy has exactly one.
type EnemyRole int

const (
	RolePlain EnemyRole = iota
	RoleTank
	RoleTripleShooter
	RoleFast
	RoleHealer
	RoleBomber
	RoleSplitter
	RoleSplitChild
)

// String returns the role name used in logs and the debug HUD.
func (r EnemyRole) String() string {
	switch r {
	case RolePlain:
		return "plain"
	case RoleTank:
		return "tank"
	case RoleTripleShooter:
		return "triple"
	case RoleFast:
		return "fast"
	case RoleHealer:
		return "healer"
	case RoleBomber:
		return "bomber"
	case RoleSplitter:
		return "splitter"
	case RoleSplitChild:
		return "split-child"
	default:
		return "unknown"
	}
}

// Pattern selects how an enemy moves.
type Pattern int

const (
	PatternStraight Pattern = iota // integrate velocity
	PatternFan                     // angled descent
	PatternSweep                   // horizontal sweep, bounces off side walls
	PatternSnake                   // sine wave about BaseX
	PatternDiamond                 // formation descent
	PatternRing                    // formation descent
)

// Player is the ship controlled by the input frame.
type Player struct {
	Pos       core.Vec2
	Radius    float64
	Hearts    int
	MaxHearts int
	Attack    int     // base attack, raised by stage clears
	IFrames   float64 // invulnerability remaining
	Blink     float64 // time spent invulnerable, drives the blink effect
}

// Invulnerable reports whether contacts are currently ignored.
func (p Player) Invulnerable() bool {
	return p.IFrames > 0
}

// Visible reports whether the player should be drawn this frame.
func (p Player) Visible() bool {
	return p.IFrames <= 0 || int(p.Blink*20)%2 == 0
}

// Bullet is a player-side projectile.
type Bullet struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Radius    float64
	Damage    int
	Pierce    int // extra enemies this bullet may still pass through
	FromDrone bool
	Alive     bool

	hits []EnemyID
}

// hasHit reports whether this bullet already damaged the enemy.
func (b *Bullet) hasHit(id EnemyID) bool {
	for _, h := range b.hits {
		if h == id {
			return true
		}
	}
	return false
}

// HitCount returns the number of distinct enemies this bullet damaged.
func (b *Bullet) HitCount() int {
	return len(b.hits)
}

// EnemyBulletKind is counted against a per-stage cap.
type EnemyBulletKind int

const (
	EnemyBulletStraight EnemyBulletKind = iota
	EnemyBulletDiagonal
	EnemyBulletHoming
)

// EnemyBullet is an enemy-side projectile.
type EnemyBullet struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Kind   EnemyBulletKind
	Life   float64 // homing only
	Alive  bool
}

// Homing reports whether the bullet steers toward the player.
func (b *EnemyBullet) Homing() bool {
	return b.Kind == EnemyBulletHoming
}

// Enemy is a hostile ship.
type Enemy struct {
	ID         EnemyID
	Pos        core.Vec2
	Vel        core.Vec2
	Radius     float64
	HP         int
	ScoreValue int
	Role       EnemyRole
	Pattern    Pattern
	Time       float64 // seconds since spawn
	BaseX      float64 // snake baseline
	Amp        float64 // snake amplitude
	Omega      float64 // snake angular frequency
	ShootTimer float64
	EdgeTime   float64 // time spent touching a world edge
	Alive      bool
}

// Missile is a homing player-side projectile with a turn-rate limit.
type Missile struct {
	Pos        core.Vec2
	Vel        core.Vec2
	Radius     float64
	AngleDeg   float64
	Life       float64
	TargetID   EnemyID
	Retargeted bool
	Damage     int
	Alive      bool
}

// Drone orbits the player and fires aimed shots.
type Drone struct {
	AngleOffset float64 // radians
	FireTimer   float64
}

// LaserDrone orbits the player and fires a periodic beam.
type LaserDrone struct {
	AngleOffset float64 // radians
	Cooldown    float64
	BeamTime    float64
	TickTimer   float64
	TickCount   int

	// Beam geometry from the last tick it fired, for drawing.
	Origin core.Vec2
	End    core.Vec2
}

// Firing reports whether the beam is currently on.
func (d *LaserDrone) Firing() bool {
	return d.BeamTime > 0
}

// UpgradeKit is a pickup that grants one random upgrade.
type UpgradeKit struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Life   float64
	Alive  bool
}
