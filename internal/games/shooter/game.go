// Package shooter implements a wave shooter: survive descending enemy
// formations, reach each stage's kill target, and collect upgrades.
// All gameplay rules run inside Step; the package has no I/O.
package shooter

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// RunState is the run state machine. The three states are exclusive.
type RunState int

const (
	RunPlaying RunState = iota
	RunPaused
	RunGameOver
)

// String returns a display name for the state.
func (s RunState) String() string {
	switch s {
	case RunPlaying:
		return "playing"
	case RunPaused:
		return "paused"
	case RunGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements the wave shooter.
type Game struct {
	daily    bool
	override *config.ShooterConfig // bypasses file loading when set
	logger   *log.Logger

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
	worldW  float64
	worldH  float64

	// Screen size the overlay buttons are laid out for
	layoutW, layoutH int

	rng   *core.RNG
	state RunState
	exit  bool

	// Entity stores, compacted in place each tick
	player       Player
	bullets      []*Bullet
	enemyBullets []*EnemyBullet
	enemies      []*Enemy
	missiles     []*Missile
	drones       []*Drone
	laserDrones  []*LaserDrone
	kits         []*UpgradeKit
	nextEnemyID  EnemyID

	upgrades Upgrades
	skills   [skillCount]skillState

	// Stage and run progress
	score         int
	stage         int
	stageKills    int
	stageTarget   int
	totalKills    int
	spawnTimer    float64
	spawnInterval float64

	// Weapon timers
	fireCooldown float64
	missileTimer float64
	droneOrbit   float64 // radians
	laserOrbit   float64 // radians

	announce      string
	announceTimer float64

	tick    uint64
	elapsed float64
	events  []core.Event
}

// New creates a new shooter instance.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewDaily creates a shooter whose seed comes from today's date.
func NewDaily() *Game {
	g := New()
	g.daily = true
	return g
}

// NewWithConfig creates a shooter that uses cfg instead of loading files.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	g := New()
	g.override = &cfg
	return g
}

// SetConfig replaces the configuration used by the next Reset.
func (g *Game) SetConfig(cfg config.ShooterConfig) {
	g.override = &cfg
}

// SetLogger routes run events (stage clears, upgrades, game over) to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.daily {
		return "shooter_daily"
	}
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.daily {
		return "Wave Shooter (Daily)"
	}
	return "Wave Shooter"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.daily {
		runtime.Seed = core.DailySeed(time.Now())
	}
	g.runtime = runtime
	g.layoutW, g.layoutH = runtime.ScreenW, runtime.ScreenH
	g.cfg = g.loadConfig()
	g.restart()

	g.logger.Debug("run started", "game", g.ID(), "seed", runtime.Seed)
}

// loadConfig resolves the shooter config: explicit override, then files.
func (g *Game) loadConfig() config.ShooterConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		g.logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// restart rebuilds every piece of run state from the stored config and seed.
func (g *Game) restart() {
	cfg := g.cfg
	g.worldW = cfg.World.Width
	g.worldH = cfg.World.Height
	g.rng = core.NewRNG(g.runtime.Seed)
	g.state = RunPlaying
	g.exit = false

	g.player = Player{
		Pos:       core.V(g.worldW*0.5, g.worldH*cfg.Player.StartY),
		Radius:    cfg.Player.Radius,
		Hearts:    cfg.Player.Hearts,
		MaxHearts: cfg.Player.MaxHearts,
		Attack:    cfg.Player.Attack,
	}

	g.bullets = g.bullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.enemies = g.enemies[:0]
	g.missiles = g.missiles[:0]
	g.drones = g.drones[:0]
	g.laserDrones = g.laserDrones[:0]
	g.kits = g.kits[:0]
	g.nextEnemyID = 1

	g.upgrades = Upgrades{}
	g.skills = [skillCount]skillState{}

	g.score = 0
	g.stage = 1
	g.stageKills = 0
	g.stageTarget = requiredKills(g.stage)
	g.totalKills = 0
	g.spawnTimer = 0
	g.spawnInterval = targetSpawnInterval(g.stage)

	g.fireCooldown = 0
	g.missileTimer = 0
	g.droneOrbit = 0
	g.laserOrbit = 0

	g.announce = ""
	g.announceTimer = 0

	g.tick = 0
	g.elapsed = 0
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.state {
	case RunGameOver:
		g.stepGameOver(in)
	case RunPaused:
		g.stepPaused(in)
	default:
		if in.Has(core.ActionPause) {
			g.state = RunPaused
			break
		}
		g.stepPlaying(in)
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.events,
	}
}

// stepPlaying runs one simulation tick in a fixed subsystem order.
func (g *Game) stepPlaying(in core.InputFrame) {
	dt := in.Dt
	if dt <= 0 {
		dt = g.runtime.FrameDelta()
	}
	step := min(dt, maxStep)

	g.tick++
	g.elapsed += step

	g.movePlayer(in.MoveAxes(), step)
	g.decayTimers(step)

	g.handleSkillInput(in)
	g.updateSkills(step)

	g.fire(in.Has(core.ActionFire), in.Has(core.ActionFocus), step)

	g.updateBullets(step)
	g.updateEnemyBullets(step)
	g.updateMissiles(step)
	g.updateDrones(step)
	g.updateLaserDrones(step)
	g.updateSpawner(step)
	g.updateEnemies(step)
	g.updateKits(step)
	g.resolveCollisions()

	g.checkStageClear()
}

// movePlayer applies the movement intent and clamps to the world.
func (g *Game) movePlayer(move core.Vec2, step float64) {
	if move.Len2() > 0 {
		move = move.Norm()
	}
	speed := g.cfg.Player.Speed + g.cfg.Player.SpeedPerLevel*float64(g.upgrades.MoveSpeed)
	p := &g.player
	p.Pos = p.Pos.MulAdd(move, speed*step)
	p.Pos.X = clamp(p.Pos.X, p.Radius, g.worldW-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y, p.Radius, g.worldH-p.Radius)
}

// decayTimers counts down cooldowns, invulnerability and the announcement.
func (g *Game) decayTimers(step float64) {
	for i := range g.skills {
		if g.skills[i].cooldown > 0 {
			g.skills[i].cooldown -= step
		}
	}

	p := &g.player
	if p.IFrames > 0 {
		p.IFrames -= step
	}
	if p.IFrames > 0 {
		p.Blink += step
	} else {
		p.Blink = 0
	}

	if g.announceTimer > 0 {
		g.announceTimer -= step
	}

	suppress := &g.skills[SkillE]
	if suppress.remaining > 0 {
		suppress.remaining -= step
		if suppress.remaining <= 0 {
			suppress.active = false
		}
	}
}

// setAnnouncement shows a transient message on the HUD.
func (g *Game) setAnnouncement(text string) {
	g.announce = text
	g.announceTimer = announceDuration
}

func (g *Game) emit(kind core.EventKind, text string) {
	g.events = append(g.events, core.Event{Kind: kind, Stage: g.stage, Text: text})
}

// endRun moves to GameOver.
func (g *Game) endRun() {
	if g.state == RunGameOver {
		return
	}
	g.state = RunGameOver
	g.emit(core.EventGameOver, fmt.Sprintf("score %d", g.score))
	g.logger.Info("game over", "stage", g.stage, "score", g.score, "kills", g.totalKills, "ticks", g.tick)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		GameOver:      g.state == RunGameOver,
		Paused:        g.state == RunPaused,
		ExitRequested: g.exit,
	}
}

// RunState returns the current run state.
func (g *Game) RunState() RunState {
	return g.state
}

// Summary describes the current run for persistence.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Seed:     g.runtime.Seed,
		Stage:    g.stage,
		Score:    g.score,
		Kills:    g.totalKills,
		Duration: g.elapsed,
	}
}

// Register the game with the registry
func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
	registry.Register("shooter_daily", func() registry.Game {
		return NewDaily()
	})
}
