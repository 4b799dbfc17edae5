package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyHoldTicks(t *testing.T) {
	tests := []struct {
		tickRate, want int
	}{
		{60, 12},
		{30, 6},
		{0, 12},
		{3, 1},
	}
	for _, tt := range tests {
		if got := keyHoldTicks(tt.tickRate); got != tt.want {
			t.Errorf("keyHoldTicks(%d) = %d, want %d", tt.tickRate, got, tt.want)
		}
	}
}

func TestLatchHoldsMovement(t *testing.T) {
	keys := DefaultGameKeyMap()
	l := newInputLatch(60)

	l.HandleKey(keys, tea.KeyMsg{Type: tea.KeyLeft})
	for i := range 12 {
		if in := l.Frame(1.0 / 60); in.Move.X != -1 {
			t.Fatalf("Expected left held on frame %d, got %v", i, in.Move)
		}
	}
	if in := l.Frame(1.0 / 60); in.Move.X != 0 {
		t.Errorf("Expected movement released after the hold window, got %v", in.Move)
	}

	l.HandleKey(keys, runeKey('k'))
	if in := l.Frame(1.0 / 60); in.Move.Y != 1 {
		t.Errorf("Expected up to move +Y, got %v", in.Move)
	}
}

func TestLatchEdgesConsumedOnce(t *testing.T) {
	keys := DefaultGameKeyMap()
	l := newInputLatch(60)

	for _, r := range []rune{'q', 'w', 'e', 'r', 'p', 'n', 'b'} {
		l.HandleKey(keys, runeKey(r))
	}

	in := l.Frame(1.0 / 60)
	for _, a := range []core.Action{
		core.ActionSkillQ, core.ActionSkillW, core.ActionSkillE, core.ActionSkillR,
		core.ActionPause, core.ActionRestart, core.ActionBack,
	} {
		if !in.Has(a) {
			t.Errorf("Expected %v on the first frame", a)
		}
	}

	next := l.Frame(1.0 / 60)
	if len(next.Actions) != 0 {
		t.Errorf("Expected edge actions to be consumed, got %v", next.Actions)
	}
}

func TestLatchFireAndToggles(t *testing.T) {
	keys := DefaultGameKeyMap()
	l := newInputLatch(60)

	l.HandleKey(keys, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !l.Frame(1.0 / 60).Has(core.ActionFire) {
		t.Error("Expected space to fire")
	}

	l = newInputLatch(60)
	l.HandleKey(keys, runeKey('f'))
	l.HandleKey(keys, runeKey('x'))
	for range 100 {
		in := l.Frame(1.0 / 60)
		if !in.Has(core.ActionFire) || !in.Has(core.ActionFocus) {
			t.Fatal("Expected autofire and focus to stay on")
		}
	}

	l.HandleKey(keys, runeKey('x'))
	if l.Frame(1.0 / 60).Has(core.ActionFocus) {
		t.Error("Expected focus toggled off")
	}
}

func TestLatchClickAndReset(t *testing.T) {
	keys := DefaultGameKeyMap()
	l := newInputLatch(60)

	l.HandleClick(core.V(100, 200))
	in := l.Frame(1.0 / 60)
	if !in.Has(core.ActionClick) || in.Pointer != core.V(100, 200) {
		t.Errorf("Expected click at (100, 200), got %+v", in)
	}
	if l.Frame(1.0 / 60).Has(core.ActionClick) {
		t.Error("Expected click to be consumed")
	}

	l.HandleKey(keys, runeKey('f'))
	l.HandleKey(keys, tea.KeyMsg{Type: tea.KeyRight})
	l.HandleKey(keys, runeKey('q'))
	l.Reset()

	in = l.Frame(1.0 / 60)
	if in.Move.X != 0 || in.Has(core.ActionSkillQ) {
		t.Errorf("Expected reset to drop latched input, got %+v", in)
	}
	if !in.Has(core.ActionFire) {
		t.Error("Expected autofire to survive a reset")
	}
}

func TestLatchQuit(t *testing.T) {
	keys := DefaultGameKeyMap()
	l := newInputLatch(60)

	if l.HandleKey(keys, runeKey('q')) {
		t.Error("q is a skill, not quit")
	}
	if !l.HandleKey(keys, tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("Expected ctrl+c to quit")
	}
}

func TestTickDelta(t *testing.T) {
	nominal := 1.0 / 60
	now := time.Now()

	tests := []struct {
		name string
		prev time.Time
		want float64
	}{
		{"first tick", time.Time{}, nominal},
		{"measured", now.Add(-20 * time.Millisecond), 0.02},
		{"clock went back", now.Add(time.Second), nominal},
		{"long stall", now.Add(-time.Second), nominal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tickDelta(tt.prev, now, nominal)
			if d := got - tt.want; d > 1e-9 || d < -1e-9 {
				t.Errorf("tickDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}
