package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// fakeGame records its inputs and plays back a scripted state.
type fakeGame struct {
	state  core.GameState
	events []core.Event
	inputs []core.InputFrame
	resets int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) Summary() core.RunSummary { return core.RunSummary{Seed: 9, Stage: 3, Score: g.state.Score, Kills: 12} }
func (g *fakeGame) ScreenToWorld(x, y, _, _ int) core.Vec2 { return core.V(float64(x), float64(y)) }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	ev := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: ev}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Now()))
	return next.(Model), cmd
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{}
	m := NewModel(g, store, testRuntime(), nil)
	m.Init()
	if g.resets != 1 {
		t.Errorf("Expected Init to reset the game once, got %d", g.resets)
	}

	g.state = core.GameState{Score: 250, GameOver: true}
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	scores, _ := store.TopScores("fake", 10)
	runs, _ := store.RecentRuns("fake", 10)
	if len(scores) != 1 || scores[0].Score != 250 {
		t.Errorf("Expected one score of 250, got %v", scores)
	}
	if len(runs) != 1 || runs[0].Stage != 3 || runs[0].Kills != 12 {
		t.Errorf("Expected one stored run, got %v", runs)
	}

	// A restart arms recording for the next game over.
	g.events = []core.Event{{Kind: core.EventRestart}}
	g.state = core.GameState{}
	m, _ = tick(t, m)
	g.state = core.GameState{Score: 40, GameOver: true}
	tick(t, m)

	runs, _ = store.RecentRuns("fake", 10)
	if len(runs) != 2 {
		t.Errorf("Expected a second run after restart, got %d", len(runs))
	}
}

func TestModelExitRequested(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime(), nil)

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Fatal("Expected the tick loop to continue")
	}

	g.state.ExitRequested = true
	m, cmd = tick(t, m)
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("Expected back to menu without quitting")
	}
	if cmd != nil {
		t.Error("Expected the tick loop to stop")
	}

	m.standalone = true
	m, cmd = tick(t, m)
	if !m.IsQuitting() || cmd == nil {
		t.Error("Expected a standalone run to quit on exit")
	}
}

func TestModelKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime(), nil)

	next, _ := m.Update(runeKey('e'))
	m = next.(Model)
	tick(t, m)

	if len(g.inputs) != 1 || !g.inputs[0].Has(core.ActionSkillE) {
		t.Fatalf("Expected skill E in the next frame, got %v", g.inputs)
	}
	if g.inputs[0].Dt <= 0 {
		t.Error("Expected a positive frame delta")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("Expected ctrl+c to quit")
	}
}

func TestModelMouseClick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime(), nil)

	next, _ := m.Update(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	next, _ = m.Update(tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion})
	m = next.(Model)
	tick(t, m)

	in := g.inputs[0]
	if !in.Has(core.ActionClick) || in.Pointer != core.V(3, 4) {
		t.Errorf("Expected click at (3, 4), got %+v", in)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("Expected resize not to reset the run, got %d resets", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("Expected 120x%d screen, got %dx%d", 40-helpRows, m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testRuntime(), nil)

	view := m.View()
	if !strings.HasPrefix(view, "fake") {
		t.Errorf("Expected the game frame first, got %q", view[:min(20, len(view))])
	}
	if !strings.Contains(view, "fire") {
		t.Error("Expected the key help line")
	}
}
