package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Overlay button size in screen cells.
const (
	buttonCellW = 20
	buttonCellH = 3
)

// ButtonID names an overlay button.
type ButtonID int

const (
	ButtonContinue ButtonID = iota
	ButtonRetry
	ButtonMenu
)

// Label returns the text drawn on the button.
func (b ButtonID) Label() string {
	switch b {
	case ButtonContinue:
		return "Continue"
	case ButtonRetry:
		return "Retry"
	case ButtonMenu:
		return "Main menu"
	default:
		return ""
	}
}

// Button is a hit-test rectangle of the pause or game-over overlay. Cell is
// the box drawn on screen; Rect is the same box in world units.
type Button struct {
	ID   ButtonID
	Rect core.RectF
	Cell core.Rect
}

// overlayLayout places the overlay title and a column of n buttons inside the
// play area. Gaps are dropped before anything overlaps or leaves the area.
func overlayLayout(vp viewport, subtitle bool, n int) (titleY int, cells []core.Rect) {
	header := 1
	if subtitle {
		header = 2
	}
	gap, blank := 1, 1
	need := func() int { return header + blank + n*buttonCellH + max(0, n-1)*gap }
	if need() > vp.h {
		gap = 0
	}
	if need() > vp.h {
		blank = 0
	}

	titleY = vp.y + max(0, min(vp.h/5, vp.h-need()))
	w := min(buttonCellW, vp.w)
	x := vp.x + (vp.w-w)/2
	y := titleY + header + blank

	cells = make([]core.Rect, n)
	for i := range cells {
		cells[i] = core.NewRect(x, y, w, buttonCellH)
		y += buttonCellH + gap
	}
	return titleY, cells
}

// overlayViewport is the play area of the last screen the game was drawn
// on or mapped a pointer for.
func (g *Game) overlayViewport() viewport {
	return newViewport(g.worldW, g.worldH, max(g.layoutW, minScreenW), max(g.layoutH, minScreenH))
}

func (g *Game) buttonColumn(subtitle bool, ids ...ButtonID) []Button {
	vp := g.overlayViewport()
	_, cells := overlayLayout(vp, subtitle, len(ids))
	out := make([]Button, len(ids))
	for i, id := range ids {
		out[i] = Button{ID: id, Rect: vp.rectToWorld(cells[i]), Cell: cells[i]}
	}
	return out
}

// PauseButtons returns the continue/retry/menu buttons.
func (g *Game) PauseButtons() []Button {
	return g.buttonColumn(false, ButtonContinue, ButtonRetry, ButtonMenu)
}

// GameOverButtons returns the retry/menu buttons.
func (g *Game) GameOverButtons() []Button {
	return g.buttonColumn(true, ButtonRetry, ButtonMenu)
}

// Buttons returns the overlay buttons for the current state, nil while playing.
func (g *Game) Buttons() []Button {
	switch g.state {
	case RunPaused:
		return g.PauseButtons()
	case RunGameOver:
		return g.GameOverButtons()
	default:
		return nil
	}
}

// hitButton returns the button drawn on the cell under the pointer.
func (g *Game) hitButton(buttons []Button, p core.Vec2) (ButtonID, bool) {
	cx, cy := g.overlayViewport().toCell(p)
	for _, b := range buttons {
		if b.Cell.Contains(cx, cy) {
			return b.ID, true
		}
	}
	return 0, false
}

// stepPaused handles the pause overlay; the simulation does not advance.
func (g *Game) stepPaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
		g.state = RunPlaying
	case in.Has(core.ActionRestart):
		g.restartRun()
	case in.Has(core.ActionBack):
		g.exit = true
	case in.Has(core.ActionClick):
		if id, ok := g.hitButton(g.PauseButtons(), in.Pointer); ok {
			g.pressButton(id)
		}
	}
}

// stepGameOver accepts only restart and return-to-menu.
func (g *Game) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
		g.restartRun()
	case in.Has(core.ActionPause), in.Has(core.ActionBack):
		g.exit = true
	case in.Has(core.ActionClick):
		if id, ok := g.hitButton(g.GameOverButtons(), in.Pointer); ok {
			g.pressButton(id)
		}
	}
}

func (g *Game) pressButton(id ButtonID) {
	switch id {
	case ButtonContinue:
		g.state = RunPlaying
	case ButtonRetry:
		g.restartRun()
	case ButtonMenu:
		g.exit = true
	}
}

// restartRun performs the full reset and reports it to the host.
func (g *Game) restartRun() {
	g.restart()
	g.emit(core.EventRestart, "")
	g.logger.Debug("run restarted", "game", g.ID(), "seed", g.runtime.Seed)
}
