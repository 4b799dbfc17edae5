package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// GameKeyMap holds the in-game key bindings.
// Q/W/E/R are skills, so quit is ctrl+c only.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	AutoFire   key.Binding
	Focus      key.Binding
	SkillQ     key.Binding
	SkillW     key.Binding
	SkillE     key.Binding
	SkillR     key.Binding
	Pause      key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Back       key.Binding
	Debug      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the one-line help under the playfield.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Fire, k.AutoFire, k.Focus, k.SkillQ, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.AutoFire, k.Focus},
		{k.SkillQ, k.SkillW, k.SkillE, k.SkillR},
		{k.Pause, k.Confirm, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←↑↓→", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		AutoFire: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "autofire"),
		),
		Focus: key.NewBinding(
			key.WithKeys("x", "shift+left", "shift+right"),
			key.WithHelp("x", "focus"),
		),
		SkillQ: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("qwer", "skills"),
		),
		SkillW: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "beam"),
		),
		SkillE: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "clear"),
		),
		SkillR: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "nuke"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resume/retry"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new run"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Debug: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "debug upgrade"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// keyHoldTicks is how long a key press counts as held. Terminals only
// report presses and auto-repeats, so a held key is a press that keeps
// being refreshed by repeats.
func keyHoldTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(1, tickRate/5)
}

// inputLatch turns discrete key and mouse messages into per-tick input frames.
type inputLatch struct {
	holdTicks int

	moveX, moveY     float64
	moveXTTL         int
	moveYTTL         int
	fireTTL          int
	autoFire, focus  bool
	edges            []core.Action
	pointer          core.Vec2
	hasPointerAction bool
}

func newInputLatch(tickRate int) *inputLatch {
	return &inputLatch{holdTicks: keyHoldTicks(tickRate)}
}

// HandleKey records a key press. It reports whether the key was a quit request.
func (l *inputLatch) HandleKey(keys GameKeyMap, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.Quit):
		return true
	case key.Matches(msg, keys.Left):
		l.moveX, l.moveXTTL = -1, l.holdTicks
	case key.Matches(msg, keys.Right):
		l.moveX, l.moveXTTL = 1, l.holdTicks
	case key.Matches(msg, keys.Up):
		l.moveY, l.moveYTTL = 1, l.holdTicks
	case key.Matches(msg, keys.Down):
		l.moveY, l.moveYTTL = -1, l.holdTicks
	case key.Matches(msg, keys.Fire):
		l.fireTTL = l.holdTicks
	case key.Matches(msg, keys.AutoFire):
		l.autoFire = !l.autoFire
	case key.Matches(msg, keys.Focus):
		l.focus = !l.focus
	case key.Matches(msg, keys.SkillQ):
		l.edges = append(l.edges, core.ActionSkillQ)
	case key.Matches(msg, keys.SkillW):
		l.edges = append(l.edges, core.ActionSkillW)
	case key.Matches(msg, keys.SkillE):
		l.edges = append(l.edges, core.ActionSkillE)
	case key.Matches(msg, keys.SkillR):
		l.edges = append(l.edges, core.ActionSkillR)
	case key.Matches(msg, keys.Pause):
		l.edges = append(l.edges, core.ActionPause)
	case key.Matches(msg, keys.Confirm):
		l.edges = append(l.edges, core.ActionConfirm)
	case key.Matches(msg, keys.Restart):
		l.edges = append(l.edges, core.ActionRestart)
	case key.Matches(msg, keys.Back):
		l.edges = append(l.edges, core.ActionBack)
	case key.Matches(msg, keys.Debug):
		l.edges = append(l.edges, core.ActionDebugUpgrade)
	}
	return false
}

// HandleClick records a pointer press at a world position.
func (l *inputLatch) HandleClick(p core.Vec2) {
	l.pointer = p
	l.hasPointerAction = true
}

// Frame builds the input for one tick and ages the latched keys.
func (l *inputLatch) Frame(dt float64) core.InputFrame {
	in := core.NewInputFrame()
	in.Dt = dt

	if l.moveXTTL > 0 {
		in.Move.X = l.moveX
		l.moveXTTL--
	}
	if l.moveYTTL > 0 {
		in.Move.Y = l.moveY
		l.moveYTTL--
	}
	if l.fireTTL > 0 || l.autoFire {
		in.Set(core.ActionFire)
	}
	if l.fireTTL > 0 {
		l.fireTTL--
	}
	if l.focus {
		in.Set(core.ActionFocus)
	}

	for _, a := range l.edges {
		in.Set(a)
	}
	l.edges = l.edges[:0]

	if l.hasPointerAction {
		in.Set(core.ActionClick)
		in.Pointer = l.pointer
		l.hasPointerAction = false
	}
	return in
}

// Reset drops everything latched, used when a run restarts.
func (l *inputLatch) Reset() {
	hold, auto := l.holdTicks, l.autoFire
	*l = inputLatch{holdTicks: hold, autoFire: auto}
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
