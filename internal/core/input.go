package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionFire                // Space - held: fire main guns
	ActionFocus               // Shift - held: suppress diagonal lanes
	ActionSkillQ              // Q - barrier
	ActionSkillW              // W - beam burst
	ActionSkillE              // E - bullet clear
	ActionSkillR              // R - nuke
	ActionPause               // P, Escape - pause/unpause game
	ActionConfirm             // Enter - resume when paused, restart after game over
	ActionRestart             // Restart from an overlay
	ActionBack                // B - return to menu from an overlay
	ActionClick               // Pointer pressed this frame
	ActionQuit                // Ctrl+C - exit game/session
	ActionDebugUpgrade        // U - grant an upgrade (debug builds of the config only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionFocus:
		return "Focus"
	case ActionSkillQ:
		return "SkillQ"
	case ActionSkillW:
		return "SkillW"
	case ActionSkillE:
		return "SkillE"
	case ActionSkillR:
		return "SkillR"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionClick:
		return "Click"
	case ActionQuit:
		return "Quit"
	case ActionDebugUpgrade:
		return "DebugUpgrade"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
// The host builds it once per tick; edge actions (skills, pause, click) are
// consumed by the tick that receives them.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Move is the movement intent, each axis in [-1, 1]. +Y is up.
	Move Vec2

	// Pointer is the pointer position in world units, meaningful with ActionClick.
	Pointer Vec2

	// Dt is the frame delta in seconds. Zero means one nominal tick.
	Dt float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MoveAxes returns the movement vector clamped to [-1, 1] on each axis.
func (f InputFrame) MoveAxes() Vec2 {
	return Vec2{ClampF(f.Move.X, -1, 1), ClampF(f.Move.Y, -1, 1)}
}
