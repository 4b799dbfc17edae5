package shooter

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

const testDt = 1.0 / 60.0

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultShooterConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Dt = testDt
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// scriptedInput fires constantly and weaves left and right.
func scriptedInput(tick int) core.InputFrame {
	in := frame(core.ActionFire)
	if (tick/90)%2 == 0 {
		in.Move = core.V(-1, 0)
	} else {
		in.Move = core.V(1, 0)
	}
	if tick == 400 {
		in.Set(core.ActionSkillQ)
	}
	return in
}

// ramPlayer drops an enemy right on top of the player.
func ramPlayer(g *Game) {
	g.newEnemy(Enemy{Pos: g.player.Pos, Radius: 18, HP: 1})
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := range 3000 {
		g1.Step(scriptedInput(i))
		g2.Step(scriptedInput(i))

		if i%500 == 0 {
			s1, s2 := g1.Snapshot(), g2.Snapshot()
			if s1.Hash() != s2.Hash() {
				t.Fatalf("Determinism failed at tick %d: hashes differ. Run1=%d, Run2=%d", i, s1.Hash(), s2.Hash())
			}
		}
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", s1.Score, s2.Score)
	}
	if s1.TotalKills == 0 {
		t.Error("Expected the scripted run to kill at least one enemy")
	}
}

func TestEnemyIDsUnique(t *testing.T) {
	g := newTestGame(t, 99)
	spawned := false

	for i := range 2000 {
		g.Step(scriptedInput(i))
		live := make(map[EnemyID]bool, len(g.enemies))
		for _, e := range g.enemies {
			spawned = true
			if e.ID == 0 || e.ID >= g.nextEnemyID {
				t.Fatalf("Enemy has ID %d outside [1,%d)", e.ID, g.nextEnemyID)
			}
			if live[e.ID] {
				t.Fatalf("Enemy ID %d shared by two live enemies", e.ID)
			}
			live[e.ID] = true
		}
	}
	if !spawned {
		t.Error("Expected enemies to spawn")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 1)

	if g.RunState() != RunPlaying {
		t.Errorf("Expected playing after reset, got %v", g.RunState())
	}
	if g.player.Hearts != 4 || g.player.MaxHearts != 6 {
		t.Errorf("Expected 4/6 hearts, got %d/%d", g.player.Hearts, g.player.MaxHearts)
	}
	if g.stage != 1 || g.stageTarget != 20 {
		t.Errorf("Expected stage 1 with target 20, got %d/%d", g.stage, g.stageTarget)
	}
	if g.player.Pos != core.V(640, 108) {
		t.Errorf("Expected player at (640,108), got %v", g.player.Pos)
	}
	if g.nextEnemyID != 1 {
		t.Errorf("Expected enemy IDs to start at 1, got %d", g.nextEnemyID)
	}
}

func TestHeartsMonotonicUntilGameOver(t *testing.T) {
	g := newTestGame(t, 7)
	prev := g.player.Hearts

	for i := 0; i < 5000 && g.RunState() == RunPlaying; i++ {
		ramPlayer(g)
		res := g.Step(frame())

		hearts := g.player.Hearts
		if hearts > prev {
			t.Fatalf("Hearts increased from %d to %d at tick %d", prev, hearts, i)
		}
		if res.State.GameOver != (hearts == 0) {
			t.Fatalf("GameOver=%v with %d hearts at tick %d", res.State.GameOver, hearts, i)
		}
		prev = hearts
	}

	if g.RunState() != RunGameOver {
		t.Fatalf("Expected game over, got %v", g.RunState())
	}
	if g.player.Hearts != 0 {
		t.Errorf("Expected 0 hearts at game over, got %d", g.player.Hearts)
	}
}

func TestHitGrantsInvulnerability(t *testing.T) {
	g := newTestGame(t, 7)
	ramPlayer(g)
	g.Step(frame())

	if g.player.Hearts != 3 {
		t.Fatalf("Expected 3 hearts after contact, got %d", g.player.Hearts)
	}
	if !g.player.Invulnerable() {
		t.Fatal("Expected invulnerability after losing a heart")
	}

	// Contacts during the window are ignored.
	ramPlayer(g)
	g.Step(frame())
	if g.player.Hearts != 3 {
		t.Errorf("Expected contact to be ignored while invulnerable, got %d hearts", g.player.Hearts)
	}
}

func TestRestartEqualsFreshRun(t *testing.T) {
	g := newTestGame(t, 2024)
	for i := 0; i < 3000 && g.RunState() == RunPlaying; i++ {
		in := scriptedInput(i)
		if i > 600 {
			ramPlayer(g)
		}
		g.Step(in)
	}
	if g.RunState() != RunGameOver {
		t.Fatalf("Expected game over before restart, got %v", g.RunState())
	}

	res := g.Step(frame(core.ActionRestart))
	if res.State.GameOver {
		t.Fatal("Expected restart to leave game over")
	}

	fresh := newTestGame(t, 2024)
	got, want := g.Snapshot(), fresh.Snapshot()
	if got.Hash() != want.Hash() {
		t.Errorf("Restarted run differs from fresh run: %d vs %d", got.Hash(), want.Hash())
	}

	if g.player.Hearts != 4 || g.totalAttack() != 1 || g.score != 0 || g.stage != 1 {
		t.Errorf("Unexpected restart state: hearts=%d atk=%d score=%d stage=%d",
			g.player.Hearts, g.totalAttack(), g.score, g.stage)
	}
	if g.player.Pos != fresh.player.Pos {
		t.Errorf("Expected player at %v, got %v", fresh.player.Pos, g.player.Pos)
	}
	v := g.View()
	if len(v.Enemies)+len(v.Bullets)+len(v.EnemyBullets)+len(v.Missiles)+len(v.Kits)+len(v.Drones)+len(v.LaserDrones) != 0 {
		t.Error("Expected every entity store to be empty after restart")
	}
	for id, s := range v.Skills {
		if s.Cooldown != 0 || s.Active {
			t.Errorf("Skill %d not reset: %+v", id, s)
		}
	}
}

func TestRestartEmitsEvent(t *testing.T) {
	g := newTestGame(t, 3)
	g.endRun()

	res := g.Step(frame(core.ActionConfirm))
	found := false
	for _, ev := range res.Events {
		if ev.Kind == core.EventRestart {
			found = true
		}
	}
	if !found {
		t.Error("Expected EventRestart after confirming on game over")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 5)
	g.Step(frame())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused || g.RunState() != RunPaused {
		t.Fatalf("Expected paused, got %v", g.RunState())
	}

	before := g.Snapshot()
	for range 30 {
		g.Step(frame(core.ActionFire, core.ActionSkillQ))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Simulation advanced while paused")
	}

	g.Step(frame(core.ActionConfirm))
	if g.RunState() != RunPlaying {
		t.Fatalf("Expected Enter to resume, got %v", g.RunState())
	}
	tick := g.tick
	g.Step(frame())
	if g.tick != tick+1 {
		t.Errorf("Expected simulation to resume, tick %d -> %d", tick, g.tick)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 5)
	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionPause))
	if g.RunState() != RunPlaying {
		t.Errorf("Expected pause key to toggle back, got %v", g.RunState())
	}
}

func TestStatesExclusive(t *testing.T) {
	g := newTestGame(t, 5)
	g.Step(frame(core.ActionPause))
	st := g.State()
	if st.Paused && st.GameOver {
		t.Fatal("Paused and GameOver both set")
	}

	g.state = RunPlaying
	g.endRun()
	st = g.State()
	if st.Paused || !st.GameOver {
		t.Errorf("Expected only GameOver, got %+v", st)
	}

	// Pause has no effect on a finished run.
	g.Step(frame(core.ActionPause))
	if g.RunState() == RunPaused {
		t.Error("Game over run should not pause")
	}
}

func clickAt(b Button) core.InputFrame {
	in := frame(core.ActionClick)
	in.Pointer = core.V(b.Rect.X+b.Rect.W/2, b.Rect.Y+b.Rect.H/2)
	return in
}

func TestPauseMenuButtons(t *testing.T) {
	tests := []struct {
		name      string
		button    ButtonID
		wantState RunState
		wantExit  bool
		wantReset bool
	}{
		{"continue", ButtonContinue, RunPlaying, false, false},
		{"retry", ButtonRetry, RunPlaying, false, true},
		{"menu", ButtonMenu, RunPaused, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 11)
			for range 30 {
				g.Step(frame(core.ActionFire))
			}
			g.Step(frame(core.ActionPause))

			var target Button
			for _, b := range g.PauseButtons() {
				if b.ID == tt.button {
					target = b
				}
			}
			res := g.Step(clickAt(target))

			if g.RunState() != tt.wantState {
				t.Errorf("Expected state %v, got %v", tt.wantState, g.RunState())
			}
			if res.State.ExitRequested != tt.wantExit {
				t.Errorf("Expected ExitRequested=%v", tt.wantExit)
			}
			if tt.wantReset && g.tick != 0 {
				t.Errorf("Expected retry to reset the run, tick=%d", g.tick)
			}
		})
	}
}

func TestGameOverButtons(t *testing.T) {
	g := newTestGame(t, 11)
	g.endRun()

	buttons := g.GameOverButtons()
	if len(buttons) != 2 || buttons[0].ID != ButtonRetry || buttons[1].ID != ButtonMenu {
		t.Fatalf("Unexpected game over buttons: %+v", buttons)
	}
	if buttons[1].Rect.Y >= buttons[0].Rect.Y {
		t.Error("Expected menu button below retry")
	}

	// A click outside every button does nothing.
	miss := frame(core.ActionClick)
	miss.Pointer = core.V(5, 5)
	g.Step(miss)
	if g.RunState() != RunGameOver {
		t.Fatal("Expected a missed click to keep game over")
	}

	res := g.Step(clickAt(buttons[1]))
	if !res.State.ExitRequested {
		t.Error("Expected menu button to request exit")
	}

	g.Step(clickAt(buttons[0]))
	if g.RunState() != RunPlaying {
		t.Errorf("Expected retry to restart, got %v", g.RunState())
	}
	if g.State().ExitRequested {
		t.Error("Expected restart to clear the exit request")
	}
}

func TestOverlayButtonsMatchDrawnCells(t *testing.T) {
	sizes := []struct{ w, h int }{
		{40, 14}, {60, 19}, {80, 23}, {80, 24}, {160, 48},
	}
	overlays := []struct {
		name  string
		enter func(g *Game)
		count int
	}{
		{"paused", func(g *Game) { g.Step(frame(core.ActionPause)) }, 3},
		{"game over", func(g *Game) { g.endRun() }, 2},
	}

	for _, sz := range sizes {
		for _, ov := range overlays {
			t.Run(fmt.Sprintf("%s %dx%d", ov.name, sz.w, sz.h), func(t *testing.T) {
				g := newTestGame(t, 1)
				ov.enter(g)
				scr := core.NewScreen(sz.w, sz.h)
				g.Render(scr)

				vp := newViewport(g.worldW, g.worldH, sz.w, sz.h)
				buttons := g.Buttons()
				if len(buttons) != ov.count {
					t.Fatalf("Expected %d buttons, got %d", ov.count, len(buttons))
				}

				for i, b := range buttons {
					r := b.Cell
					if r.H != buttonCellH {
						t.Errorf("%s: height %d, expected %d", b.ID.Label(), r.H, buttonCellH)
					}
					if r.Y < vp.y || r.Bottom() > vp.y+vp.h {
						t.Errorf("%s: rows %d..%d leave the play area", b.ID.Label(), r.Y, r.Bottom()-1)
					}
					if i > 0 && r.Y < buttons[i-1].Cell.Bottom() {
						t.Errorf("%s overlaps the button above", b.ID.Label())
					}
					if scr.Get(r.X, r.Y) != '┌' || !strings.Contains(scr.Row(r.Y+1), b.ID.Label()) {
						t.Errorf("%s: box not drawn at %+v", b.ID.Label(), r)
					}

					for y := r.Y; y < r.Bottom(); y++ {
						for x := r.X; x < r.Right(); x++ {
							p := g.ScreenToWorld(x, y, sz.w, sz.h)
							if id, ok := g.hitButton(buttons, p); !ok || id != b.ID {
								t.Fatalf("%s: click on drawn cell (%d, %d) missed", b.ID.Label(), x, y)
							}
							if !b.Rect.Contains(p) {
								t.Fatalf("%s: world rect %+v misses cell (%d, %d)", b.ID.Label(), b.Rect, x, y)
							}
						}
					}

					above := g.ScreenToWorld(r.X+r.W/2, r.Y-1, sz.w, sz.h)
					if id, ok := g.hitButton(buttons, above); ok && id == b.ID {
						t.Errorf("%s: row above the box still hits it", b.ID.Label())
					}
				}
			})
		}
	}
}

func TestPauseClickOnLabelRow(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionPause))
	g.Render(core.NewScreen(60, 19))

	cont := g.PauseButtons()[0]
	in := frame(core.ActionClick)
	in.Pointer = g.ScreenToWorld(cont.Cell.X+1, cont.Cell.Y+1, 60, 19)
	g.Step(in)

	if g.RunState() != RunPlaying {
		t.Errorf("Expected a click on the Continue label to resume, got %v", g.RunState())
	}
}

func TestStepClampsDt(t *testing.T) {
	g := newTestGame(t, 1)
	in := frame()
	in.Dt = 1
	g.Step(in)
	if g.elapsed != maxStep {
		t.Errorf("Expected step clamped to %v, got %v", maxStep, g.elapsed)
	}

	g2 := newTestGame(t, 1)
	in.Dt = 0
	g2.Step(in)
	if g2.elapsed != testDt {
		t.Errorf("Expected zero dt to use the nominal tick, got %v", g2.elapsed)
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := newTestGame(t, 1)
	in := frame()
	in.Move = core.V(-1, -1)
	for range 600 {
		g.enemies = g.enemies[:0]
		g.enemyBullets = g.enemyBullets[:0]
		g.Step(in)
	}
	if g.player.Pos.X != g.player.Radius || g.player.Pos.Y != g.player.Radius {
		t.Errorf("Expected player clamped to the corner, got %v", g.player.Pos)
	}
}

func TestDailyGame(t *testing.T) {
	g := NewDaily()
	if g.ID() != "shooter_daily" {
		t.Errorf("Expected daily ID, got %q", g.ID())
	}
	g.SetConfig(config.DefaultShooterConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	if got, want := g.Summary().Seed, core.DailySeed(time.Now()); got != want {
		t.Errorf("Expected daily seed %d, got %d", want, got)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"shooter", "shooter_daily"} {
		if !registry.Exists(id) {
			t.Errorf("Expected %q to be registered", id)
		}
	}
	g, err := registry.Create("shooter")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, ok := g.(registry.PointerMapper); !ok {
		t.Error("Expected shooter to map pointer input")
	}
	if _, ok := g.(registry.Summarizer); !ok {
		t.Error("Expected shooter to summarize runs")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 3)
	for i := range 200 {
		g.Step(scriptedInput(i))
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Stage 1") {
		t.Errorf("Expected stage in HUD:\n%s", out)
	}
	if !strings.Contains(out, "[Q lv5]") {
		t.Errorf("Expected locked Q in skill bar:\n%s", out)
	}

	g.Step(frame(core.ActionPause))
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("Expected pause overlay")
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("Expected too-small message")
	}
}

func TestScreenToWorld(t *testing.T) {
	g := newTestGame(t, 1)
	vp := newViewport(g.worldW, g.worldH, 80, 24)

	p := core.V(640, 360)
	cx, cy := vp.toCell(p)
	back := g.ScreenToWorld(cx, cy, 80, 24)
	bx, by := vp.toCell(back)
	if bx != cx || by != cy {
		t.Errorf("Round trip moved cell (%d,%d) -> (%d,%d)", cx, cy, bx, by)
	}

	top := g.ScreenToWorld(0, hudRows, 80, 24)
	if top.Y < g.worldH*0.9 {
		t.Errorf("Expected first play row near the top of the world, got %v", top)
	}
}
