package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Autopilot tuning, in world units.
const (
	autopilotDeadZone   = 12.0  // no horizontal input when this close to the target x
	autopilotDodgeRange = 160.0 // enemy bullets closer than this are dodged
	autopilotDodgeWidth = 48.0  // horizontal half-width of the danger lane
)

// Autopilot picks the input for one tick from the current view. It always
// fires, uses any skill that is ready, dodges the closest threatening enemy
// bullet, and otherwise lines up under a falling kit or the lowest enemy.
// It reads only the view, so a run driven by it is as deterministic as the
// seed.
func Autopilot(v View) core.InputFrame {
	in := core.NewInputFrame()
	if v.State != RunPlaying {
		return in
	}

	in.Set(core.ActionFire)
	for i, s := range v.Skills {
		if s.Ready() {
			in.Set(skillActions[i])
		}
	}

	p := v.Player.Pos
	if dx, ok := dodge(v, p); ok {
		in.Move.X = dx
		return in
	}

	if target, ok := autopilotTarget(v, p); ok {
		switch diff := target - p.X; {
		case diff > autopilotDeadZone:
			in.Move.X = 1
		case diff < -autopilotDeadZone:
			in.Move.X = -1
		}
	}
	return in
}

// dodge returns a horizontal escape direction when an enemy bullet is about
// to reach the player.
func dodge(v View, p core.Vec2) (float64, bool) {
	best := math.Inf(1)
	dir := 0.0
	for _, b := range v.EnemyBullets {
		if !b.Alive {
			continue
		}
		dy := b.Pos.Y - p.Y
		dx := b.Pos.X - p.X
		if dy < -autopilotDeadZone || dy > autopilotDodgeRange || math.Abs(dx) > autopilotDodgeWidth {
			continue
		}
		if dy < best {
			best = dy
			dir = -1
			if dx < 0 {
				dir = 1
			}
		}
	}
	if dir == 0 {
		return 0, false
	}
	// Walls: flip toward the open side.
	if (dir < 0 && p.X < autopilotDodgeWidth) || (dir > 0 && p.X > v.World.X-autopilotDodgeWidth) {
		dir = -dir
	}
	return dir, true
}

// autopilotTarget picks the x to line up under: the lowest kit, else the
// lowest enemy.
func autopilotTarget(v View, p core.Vec2) (float64, bool) {
	lowest := math.Inf(1)
	x := 0.0
	for _, k := range v.Kits {
		if k.Alive && k.Pos.Y > p.Y && k.Pos.Y < lowest {
			lowest, x = k.Pos.Y, k.Pos.X
		}
	}
	if !math.IsInf(lowest, 1) {
		return x, true
	}
	for _, e := range v.Enemies {
		if e.Alive && e.Pos.Y < lowest {
			lowest, x = e.Pos.Y, e.Pos.X
		}
	}
	return x, !math.IsInf(lowest, 1)
}
