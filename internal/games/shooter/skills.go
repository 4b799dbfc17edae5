package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SkillID names one of the four timed abilities.
type SkillID int

const (
	SkillQ SkillID = iota // barrier
	SkillW                // beam burst
	SkillE                // bullet clear
	SkillR                // nuke
	skillCount
)

// Key returns the key label for the skill.
func (s SkillID) Key() string {
	return [...]string{"Q", "W", "E", "R"}[s]
}

// String returns the skill name.
func (s SkillID) String() string {
	switch s {
	case SkillQ:
		return "barrier"
	case SkillW:
		return "beam"
	case SkillE:
		return "clear"
	case SkillR:
		return "nuke"
	default:
		return "unknown"
	}
}

type skillState struct {
	cooldown  float64
	remaining float64
	active    bool
	tickTimer float64 // beam only
}

var skillActions = [skillCount]core.Action{
	core.ActionSkillQ,
	core.ActionSkillW,
	core.ActionSkillE,
	core.ActionSkillR,
}

func (g *Game) skillConfig(id SkillID) config.SkillConfig {
	switch id {
	case SkillQ:
		return g.cfg.Skills.Q
	case SkillW:
		return g.cfg.Skills.W
	case SkillE:
		return g.cfg.Skills.E
	default:
		return g.cfg.Skills.R
	}
}

func (g *Game) skillUnlocked(id SkillID) bool {
	return g.stage >= g.skillConfig(id).UnlockStage
}

// canActivate checks unlock, cooldown and, for the timed Q and W, that the
// effect is not already running.
func (g *Game) canActivate(id SkillID) bool {
	s := g.skills[id]
	if !g.skillUnlocked(id) || s.cooldown > 0 {
		return false
	}
	if (id == SkillQ || id == SkillW) && s.active {
		return false
	}
	return true
}

// handleSkillInput consumes the skill edges of this tick's input.
func (g *Game) handleSkillInput(in core.InputFrame) {
	if g.cfg.Debug && in.Has(core.ActionDebugUpgrade) {
		if name, ok := g.applyRandomUpgrade(g.stage); ok {
			g.setAnnouncement("Upgrade: " + name)
			g.emit(core.EventUpgrade, name)
		}
	}

	for id := SkillQ; id < skillCount; id++ {
		if in.Has(skillActions[id]) && g.canActivate(id) {
			g.activateSkill(id)
		}
	}
}

// activateIfReady triggers a skill outside of input handling. It reports
// whether the activation conditions held.
func (g *Game) activateIfReady(id SkillID) bool {
	if g.state != RunPlaying || id < 0 || id >= skillCount || !g.canActivate(id) {
		return false
	}
	g.activateSkill(id)
	return true
}

func (g *Game) activateSkill(id SkillID) {
	cfg := g.skillConfig(id)
	s := &g.skills[id]

	switch id {
	case SkillQ:
		// Cooldown starts when the barrier ends.
		s.active = true
		s.remaining = cfg.Duration
	case SkillW:
		s.cooldown = cfg.Cooldown
		s.active = true
		s.remaining = cfg.Duration
		s.tickTimer = 0
	case SkillE:
		g.enemyBullets = g.enemyBullets[:0]
		s.cooldown = cfg.Cooldown
		s.remaining = cfg.Duration
		s.active = s.remaining > 0
	case SkillR:
		s.cooldown = cfg.Cooldown
		g.nuke()
	}

	g.logger.Debug("skill activated", "skill", id.String(), "stage", g.stage)
}

// updateSkills advances the timed effects of Q and W.
func (g *Game) updateSkills(step float64) {
	beam := &g.skills[SkillW]
	if beam.active {
		beam.remaining -= step
		beam.tickTimer += step
		for n := 0; beam.tickTimer >= beamTickInterval && n < beamMaxTicks; n++ {
			beam.tickTimer -= beamTickInterval
			g.beamTick()
		}
		if beam.remaining <= 0 {
			beam.active = false
			beam.remaining = 0
		}
	}

	barrier := &g.skills[SkillQ]
	if barrier.active {
		barrier.remaining -= step
		if barrier.remaining <= 0 {
			g.endBarrier()
		}
	}
}

// endBarrier switches Q off and starts its cooldown.
func (g *Game) endBarrier() {
	barrier := &g.skills[SkillQ]
	barrier.active = false
	barrier.remaining = 0
	barrier.cooldown = g.cfg.Skills.Q.Cooldown
}

// barrierActive reports whether the next contact is absorbed.
func (g *Game) barrierActive() bool {
	return g.skills[SkillQ].active
}

// enemyFireSuppressed reports whether E is holding enemy fire.
func (g *Game) enemyFireSuppressed() bool {
	return g.skills[SkillE].remaining > 0
}

// beamTick damages every enemy in the vertical band above the player.
func (g *Game) beamTick() {
	dmg := max(1, g.totalAttack()*beamDamageFactor)
	p := g.player.Pos
	n := len(g.enemies)
	for i := 0; i < n; i++ {
		e := g.enemies[i]
		if !e.Alive {
			continue
		}
		if e.Pos.Y > p.Y && math.Abs(e.Pos.X-p.X) <= beamHalfWidth+e.Radius {
			g.damageEnemy(e, dmg)
		}
	}
}

// nuke kills every live enemy through the normal death sequence.
func (g *Game) nuke() {
	n := len(g.enemies)
	killed := 0
	for i := 0; i < n; i++ {
		if e := g.enemies[i]; e.Alive {
			g.killEnemy(e)
			killed++
		}
	}
	g.logger.Debug("nuke", "killed", killed, "stage", g.stage)
}
