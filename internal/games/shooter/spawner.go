package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Formation is one of the wave shapes the spawner can emit.
type Formation int

const (
	FormationSingle Formation = iota
	FormationFan
	FormationHLine
	FormationSnake
	FormationDiamond
	FormationWideFan
	FormationGrid
	FormationRing
	FormationPerimeter
	FormationLongFan
)

// String returns the formation name used in logs.
func (f Formation) String() string {
	switch f {
	case FormationSingle:
		return "single"
	case FormationFan:
		return "fan"
	case FormationHLine:
		return "hline"
	case FormationSnake:
		return "snake"
	case FormationDiamond:
		return "diamond"
	case FormationWideFan:
		return "wide-fan"
	case FormationGrid:
		return "grid"
	case FormationRing:
		return "ring"
	case FormationPerimeter:
		return "perimeter"
	case FormationLongFan:
		return "long-fan"
	default:
		return "unknown"
	}
}

// formationsForStage returns the candidate formations unlocked at stage n,
// in a fixed order so a uniform draw is reproducible.
func formationsForStage(n int) []Formation {
	out := []Formation{FormationSingle, FormationFan}
	if n >= 5 {
		out = append(out, FormationHLine, FormationSnake)
	}
	if n >= 10 {
		out = append(out, FormationDiamond)
	}
	if n >= 15 {
		out = append(out, FormationWideFan)
	}
	if n >= 25 {
		out = append(out, FormationGrid)
	}
	if n >= 35 {
		out = append(out, FormationRing)
	}
	if n >= 20 {
		out = append(out, FormationPerimeter)
	}
	if n >= 30 {
		out = append(out, FormationLongFan)
	}
	return out
}

// updateSpawner eases the spawn interval toward the stage target and emits
// a formation whenever the timer crosses it.
func (g *Game) updateSpawner(step float64) {
	g.spawnTimer += step
	target := targetSpawnInterval(g.stage)
	g.spawnInterval += (target - g.spawnInterval) * spawnSmoothing
	if g.spawnTimer < g.spawnInterval {
		return
	}
	g.spawnTimer -= g.spawnInterval

	options := formationsForStage(g.stage)
	g.spawnFormation(options[g.rng.Intn(len(options))])
}

func (g *Game) spawnFormation(f Formation) {
	switch f {
	case FormationSingle:
		g.spawnSingle()
	case FormationFan:
		count := 5 + g.rng.IntRange(0, 2)
		if g.stage < 5 {
			count = 3 + g.rng.IntRange(0, 1)
		}
		g.spawnFan(count, 200, 25, 150)
	case FormationHLine:
		g.spawnHLine()
	case FormationSnake:
		g.spawnSnake()
	case FormationDiamond:
		g.spawnDiamond()
	case FormationWideFan:
		g.spawnFan(7+g.rng.IntRange(1, 3), 260, 45, 140)
	case FormationGrid:
		g.spawnGrid()
	case FormationRing:
		g.spawnRing()
	case FormationPerimeter:
		g.spawnPerimeter()
	case FormationLongFan:
		g.spawnFan(11+g.rng.IntRange(0, 4), 300, 60, 150)
	}
}

// newEnemy allocates the next enemy ID and appends the enemy to the store.
func (g *Game) newEnemy(e Enemy) *Enemy {
	e.ID = g.nextEnemyID
	g.nextEnemyID++
	e.Alive = true
	if e.ScoreValue == 0 {
		e.ScoreValue = 1
	}
	if e.ShootTimer == 0 {
		e.ShootTimer = g.rng.Range(0.8, 1.4)
	}
	p := &e
	g.enemies = append(g.enemies, p)
	return p
}

// baseDownVel is the stage descent speed with a small jitter.
func (g *Game) baseDownVel() core.Vec2 {
	return core.V(0, baseDescent(g.stage)+g.rng.Range(-8, 8))
}

func (g *Game) spawnSingle() {
	r := 18 + g.rng.Range(-2, 6)
	pos := core.V(g.rng.Range(r, g.worldW-r), g.worldH+r+6)
	hp := hpForStage(g.stage)

	if !g.rng.Chance(specialChance(g.stage)) {
		g.newEnemy(Enemy{Pos: pos, Vel: g.baseDownVel(), Radius: r, HP: hp})
		return
	}

	e := Enemy{Pos: pos, Vel: g.baseDownVel(), Radius: r, HP: hp}
	switch g.rng.IntRange(0, 5) {
	case 0:
		e.Role = RoleTank
		e.Vel = e.Vel.Scale(0.75)
		e.Radius = r + 4
		e.HP = hp * 3
		e.ScoreValue = 4
	case 1:
		e.Role = RoleTripleShooter
		e.HP = hp + 1
		e.ScoreValue = 3
		e.ShootTimer = 1.2
	case 2:
		e.Role = RoleFast
		e.Vel = e.Vel.Scale(1.6)
		e.ScoreValue = 2
	case 3:
		e.Role = RoleHealer
		e.HP = hp + 2
		e.ScoreValue = 5
		e.ShootTimer = 1.2
	case 4:
		e.Role = RoleBomber
		e.HP = hp + 1
		e.ScoreValue = 4
		e.ShootTimer = 1.0
	default:
		e.Role = RoleSplitter
		e.HP = hp + 1
		e.ScoreValue = 3
	}
	g.newEnemy(e)
	g.logger.Debug("special enemy", "role", e.Role.String(), "stage", g.stage)
}

// spawnFan emits count enemies from one point, spread over ±spreadDeg.
func (g *Game) spawnFan(count int, jitterX, spreadDeg, speed float64) {
	cx := g.worldW*0.5 + g.rng.Range(-jitterX, jitterX)
	y := g.worldH + 24
	hp := hpForStage(g.stage)
	half := float64(count-1) * 0.5
	for i := 0; i < count; i++ {
		t := 0.0
		if count > 1 {
			t = (float64(i) - half) / half
		}
		dir := core.V(0, -1).RotateDeg(t * spreadDeg)
		g.newEnemy(Enemy{
			Pos:     core.V(cx, y),
			Vel:     dir.Scale(speed),
			Radius:  18,
			HP:      hp,
			Pattern: PatternFan,
		})
	}
}

func (g *Game) spawnHLine() {
	const count = 6
	fromLeft := g.rng.Bool()
	y := g.worldH + 20
	hp := hpForStage(g.stage)
	vx, startX, gap := -180.0, g.worldW+40, -40.0
	if fromLeft {
		vx, startX, gap = 180, -40, 40
	}
	for i := 0; i < count; i++ {
		g.newEnemy(Enemy{
			Pos:     core.V(startX+float64(i)*gap, y+float64(i)*4),
			Vel:     core.V(vx, -60),
			Radius:  18,
			HP:      hp,
			Pattern: PatternSweep,
		})
	}
}

func (g *Game) spawnSnake() {
	const count = 5
	baseX := g.rng.Range(120, g.worldW-120)
	y := g.worldH + 20
	hp := hpForStage(g.stage)
	for i := 0; i < count; i++ {
		amp := g.rng.Range(60, 120)
		omega := g.rng.Range(2.5, 3.5)
		g.newEnemy(Enemy{
			Pos:     core.V(baseX, y+float64(i)*24),
			Vel:     core.V(0, -100),
			Radius:  18,
			HP:      hp,
			Pattern: PatternSnake,
			BaseX:   baseX,
			Amp:     amp,
			Omega:   omega,
		})
	}
}

var diamondOffsets = [...]core.Vec2{
	{X: 0, Y: 0},
	{X: -26, Y: -18},
	{X: 26, Y: -18},
	{X: -14, Y: -42},
	{X: 14, Y: -42},
}

func (g *Game) spawnDiamond() {
	hp := hpForStage(g.stage)
	c := core.V(g.rng.Range(200, g.worldW-200), g.worldH+40)
	for _, off := range diamondOffsets {
		g.newEnemy(Enemy{
			Pos:     c.Add(off),
			Vel:     core.V(0, -110),
			Radius:  18,
			HP:      hp,
			Pattern: PatternDiamond,
		})
	}
}

func (g *Game) spawnGrid() {
	const (
		cols = 4
		rows = 3
		cell = 48.0
	)
	hp := hpForStage(g.stage)
	startX := g.rng.Range(200, g.worldW-200)
	startY := g.worldH + 40
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := startX - (cols-1)*0.5*cell + float64(c)*cell
			y := startY + float64(rows-1-r)*24
			g.newEnemy(Enemy{Pos: core.V(x, y), Vel: core.V(0, -110), Radius: 18, HP: hp})
		}
	}
}

func (g *Game) spawnRing() {
	const radius = 60.0
	hp := hpForStage(g.stage)
	c := core.V(g.rng.Range(260, g.worldW-260), g.worldH+80)
	n := 8 + g.rng.IntRange(0, 2)
	for k := 0; k < n; k++ {
		ang := float64(k) * 360 / float64(n)
		g.newEnemy(Enemy{
			Pos:     c.MulAdd(core.FromAngleDeg(ang), radius),
			Vel:     core.V(0, -120),
			Radius:  16,
			HP:      hp,
			Pattern: PatternRing,
		})
	}
}

func (g *Game) spawnPerimeter() {
	const (
		halfW = 120.0
		halfH = 80.0
		gap   = 32.0
	)
	hp := hpForStage(g.stage)
	cx := g.rng.Range(220, g.worldW-220)
	cy := g.worldH + 90
	add := func(x, y float64) {
		g.newEnemy(Enemy{Pos: core.V(x, y), Vel: core.V(0, -110), Radius: 18, HP: hp})
	}
	for x := -halfW; x <= halfW; x += gap {
		add(cx+x, cy+halfH)
		add(cx+x, cy-halfH)
	}
	for y := -halfH + gap; y < halfH; y += gap {
		add(cx-halfW, cy+y)
		add(cx+halfW, cy+y)
	}
}

// spawnSplitChildren releases two small enemies from a dying splitter.
func (g *Game) spawnSplitChildren(parent *Enemy) {
	const speed = 160.0
	r := math.Max(parent.Radius*0.7, 10)
	for _, ang := range [...]float64{-20, 20} {
		g.newEnemy(Enemy{
			Pos:     parent.Pos,
			Vel:     core.V(0, -1).RotateDeg(ang).Scale(speed),
			Radius:  r,
			HP:      1,
			Role:    RoleSplitChild,
			Pattern: PatternFan,
		})
	}
}
