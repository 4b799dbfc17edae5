package shooter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// checkStageClear advances to the next stage once the kill target is met.
func (g *Game) checkStageClear() {
	if g.state != RunPlaying || g.stageKills < g.stageTarget {
		return
	}
	cleared := g.stage
	p := &g.player

	g.score += stageClearBonus * cleared
	if p.Hearts < p.MaxHearts {
		p.Hearts++
	} else {
		g.score += fullHeartBonus
	}

	if cleared%2 == 1 {
		inc := atkBonusForStage(cleared)
		p.Attack += inc
		g.setAnnouncement(fmt.Sprintf("Attack +%d", inc))
	}

	clearTail(g.enemies, 0)
	g.enemies = g.enemies[:0]

	g.stage++
	g.stageKills = 0
	g.stageTarget = requiredKills(g.stage)
	g.spawnInterval = targetSpawnInterval(g.stage)

	if cleared%2 == 0 {
		var parts []string
		if name, ok := g.applyRandomUpgrade(cleared); ok {
			parts = append(parts, "Upgrade: "+name)
			g.emit(core.EventUpgrade, name)
		}
		if cleared == 2 || cleared == 4 {
			p.Attack += 2
			parts = append(parts, "Attack +2")
		}
		if len(parts) > 0 {
			g.setAnnouncement(strings.Join(parts, " · "))
		}
	}

	g.emit(core.EventStageCleared, fmt.Sprintf("stage %d cleared", cleared))
	g.logger.Info("stage cleared", "stage", cleared, "score", g.score, "attack", g.totalAttack(), "next_target", g.stageTarget)
}
