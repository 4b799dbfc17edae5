package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const (
	hudRows    = 2 // score line and progress line
	footerRows = 1 // skill bar
	minScreenW = 40
	minScreenH = 14
)

// Glyphs used for world entities.
const (
	glyphPlayer      = 'A'
	glyphBarrier     = 'O'
	glyphBullet      = '|'
	glyphDroneBullet = '.'
	glyphEnemyBullet = '*'
	glyphHoming      = '@'
	glyphMissile     = '^'
	glyphDrone       = 'o'
	glyphLaserDrone  = '+'
	glyphBeam        = ':'
	glyphSkillBeam   = '!'
	glyphKit         = '$'
)

// viewport maps world coordinates (y up) onto the play area of a screen.
type viewport struct {
	worldW, worldH float64
	x, y, w, h     int // play area in cells
}

func newViewport(worldW, worldH float64, screenW, screenH int) viewport {
	return viewport{
		worldW: worldW,
		worldH: worldH,
		x:      0,
		y:      hudRows,
		w:      max(1, screenW),
		h:      max(1, screenH-hudRows-footerRows),
	}
}

// toCell converts a world position to a screen cell.
func (v viewport) toCell(p core.Vec2) (int, int) {
	cx := v.x + int(math.Floor(p.X/v.worldW*float64(v.w)))
	cy := v.y + int(math.Floor((v.worldH-p.Y)/v.worldH*float64(v.h)))
	return cx, cy
}

// inside reports whether a cell lies in the play area.
func (v viewport) inside(cx, cy int) bool {
	return cx >= v.x && cx < v.x+v.w && cy >= v.y && cy < v.y+v.h
}

// toWorld converts the centre of a screen cell to world coordinates.
func (v viewport) toWorld(cx, cy int) core.Vec2 {
	x := (float64(cx-v.x) + 0.5) / float64(v.w) * v.worldW
	y := v.worldH - (float64(cy-v.y)+0.5)/float64(v.h)*v.worldH
	return core.V(x, y)
}

// rectToWorld converts a cell rectangle to the world rectangle it covers.
func (v viewport) rectToWorld(r core.Rect) core.RectF {
	x0 := float64(r.X-v.x) / float64(v.w) * v.worldW
	x1 := float64(r.Right()-v.x) / float64(v.w) * v.worldW
	top := v.worldH - float64(r.Y-v.y)/float64(v.h)*v.worldH
	bottom := v.worldH - float64(r.Bottom()-v.y)/float64(v.h)*v.worldH
	return core.RectF{X: x0, Y: bottom, W: x1 - x0, H: top - bottom}
}

// ScreenToWorld maps a terminal cell to world coordinates for pointer input.
// The screen size is kept so overlay hit tests use the layout that was drawn.
func (g *Game) ScreenToWorld(x, y, screenW, screenH int) core.Vec2 {
	g.layoutW, g.layoutH = screenW, screenH
	return newViewport(g.worldW, g.worldH, screenW, screenH).toWorld(x, y)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.layoutW, g.layoutH = dst.Width(), dst.Height()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := g.View()
	vp := newViewport(v.World.X, v.World.Y, dst.Width(), dst.Height())

	g.renderHUD(dst, v)
	renderWorld(dst, vp, v)
	renderSkillBar(dst, v)

	switch v.State {
	case RunPaused:
		renderOverlay(dst, vp, "PAUSED", "", v.Buttons)
	case RunGameOver:
		renderOverlay(dst, vp, "GAME OVER", fmt.Sprintf("Score: %d", v.Score), v.Buttons)
	}
}

func (g *Game) renderHUD(dst *core.Screen, v View) {
	hearts := strings.Repeat("♥", v.Player.Hearts) + strings.Repeat("♡", max(0, v.Player.MaxHearts-v.Player.Hearts))
	dst.DrawTextColored(1, 0, hearts, core.ColorBrightRed)

	info := fmt.Sprintf("Score %d  ATK %d", v.Score, v.Player.Attack)
	dst.DrawTextCentered(0, info)

	stage := fmt.Sprintf("Stage %d", v.Stage)
	dst.DrawTextColored(dst.Width()-len(stage)-1, 0, stage, core.ColorBrightCyan)

	progress := fmt.Sprintf("Kills %d/%d  Enemy HP %d", v.StageKills, v.StageTarget, v.EnemyHP)
	dst.DrawText(1, 1, progress)

	if v.Announcement != "" {
		x := dst.Width() - len([]rune(v.Announcement)) - 1
		dst.DrawTextColored(max(len(progress)+3, x), 1, v.Announcement, core.ColorBrightYellow)
	}
}

func renderWorld(dst *core.Screen, vp viewport, v View) {
	put := func(p core.Vec2, r rune, c core.Color) {
		if cx, cy := vp.toCell(p); vp.inside(cx, cy) {
			dst.SetColored(cx, cy, r, c)
		}
	}

	// Skill beam column above the player
	if v.Beam {
		cx, cy := vp.toCell(v.Player.Pos)
		for y := vp.y; y < cy; y++ {
			if vp.inside(cx, y) {
				dst.SetColored(cx, y, glyphSkillBeam, core.ColorBrightMagenta)
			}
		}
	}

	for _, d := range v.LaserDrones {
		if d.Firing() {
			drawSegment(dst, vp, d.Origin, d.End, glyphBeam, core.ColorBrightGreen)
		}
	}

	for _, k := range v.Kits {
		put(k.Pos, glyphKit, core.ColorBrightGreen)
	}
	for _, e := range v.Enemies {
		put(e.Pos, enemyGlyph(e.Role), enemyColor(e.Role))
	}
	for _, b := range v.EnemyBullets {
		if b.Homing() {
			put(b.Pos, glyphHoming, core.ColorMagenta)
		} else {
			put(b.Pos, glyphEnemyBullet, core.ColorRed)
		}
	}
	for _, b := range v.Bullets {
		if b.FromDrone {
			put(b.Pos, glyphDroneBullet, core.ColorCyan)
		} else {
			put(b.Pos, glyphBullet, core.ColorBrightWhite)
		}
	}
	for _, m := range v.Missiles {
		put(m.Pos, glyphMissile, core.ColorOrange)
	}
	for _, p := range v.Drones {
		put(p, glyphDrone, core.ColorCyan)
	}

	if v.Player.Visible {
		glyph, color := rune(glyphPlayer), core.ColorBrightGreen
		if v.Barrier {
			glyph, color = glyphBarrier, core.ColorBrightBlue
		}
		put(v.Player.Pos, glyph, color)
	}
}

// drawSegment plots a beam by sampling the segment at cell resolution.
func drawSegment(dst *core.Screen, vp viewport, a, b core.Vec2, r rune, c core.Color) {
	ax, ay := vp.toCell(a)
	bx, by := vp.toCell(b)
	n := max(core.Abs(bx-ax), core.Abs(by-ay), 1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		cx := ax + int(math.Round(float64(bx-ax)*t))
		cy := ay + int(math.Round(float64(by-ay)*t))
		if !vp.inside(cx, cy) {
			continue
		}
		if dst.Get(cx, cy) == ' ' {
			dst.SetColored(cx, cy, r, c)
		}
	}
}

func enemyGlyph(r EnemyRole) rune {
	switch r {
	case RoleTank:
		return 'T'
	case RoleTripleShooter:
		return 'W'
	case RoleFast:
		return 'F'
	case RoleHealer:
		return 'H'
	case RoleBomber:
		return 'B'
	case RoleSplitter:
		return 'S'
	case RoleSplitChild:
		return 's'
	default:
		return 'V'
	}
}

func enemyColor(r EnemyRole) core.Color {
	switch r {
	case RoleTank:
		return core.ColorGray
	case RoleHealer:
		return core.ColorGreen
	case RoleBomber:
		return core.ColorOrange
	case RoleFast:
		return core.ColorBrightYellow
	case RolePlain:
		return core.ColorBrightRed
	default:
		return core.ColorYellow
	}
}

func renderSkillBar(dst *core.Screen, v View) {
	y := dst.Height() - 1
	x := 1
	for _, s := range v.Skills {
		var label string
		color := core.ColorGray
		switch {
		case !s.Unlocked:
			label = fmt.Sprintf("[%s lv%d]", s.ID.Key(), s.UnlockStage)
		case s.Active:
			label = fmt.Sprintf("[%s %s %.0fs]", s.ID.Key(), s.ID, math.Ceil(s.Remaining))
			color = core.ColorBrightMagenta
		case s.Cooldown > 0:
			label = fmt.Sprintf("[%s %.0fs]", s.ID.Key(), math.Ceil(s.Cooldown))
			color = core.ColorYellow
		default:
			label = fmt.Sprintf("[%s %s]", s.ID.Key(), s.ID)
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(x, y, label, color)
		x += len(label) + 1
	}

	u := v.Upgrades
	levels := fmt.Sprintf("M%d D%d L%d P%d", u.Missile, u.Drone, u.Laser, u.Pierce)
	dst.DrawTextColored(dst.Width()-len(levels)-1, y, levels, core.ColorCyan)
}

func renderOverlay(dst *core.Screen, vp viewport, title, subtitle string, buttons []Button) {
	top, _ := overlayLayout(vp, subtitle != "", len(buttons))
	dst.DrawTextCenteredColored(top, title, core.ColorBrightWhite)
	if subtitle != "" {
		dst.DrawTextCentered(top+1, subtitle)
	}
	for _, b := range buttons {
		r := b.Cell
		dst.DrawRect(r, ' ')
		dst.DrawBox(r)
		label := b.ID.Label()
		dst.DrawText(r.X+(r.W-len(label))/2, r.Y+r.H/2, label)
	}
}
