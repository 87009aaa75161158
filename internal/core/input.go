package core

// Action represents a semantic UI action, abstracted from physical key
// presses. The platform maps keys to actions; visualizers only see intents.
type Action int

const (
	ActionNone      Action = iota
	ActionFocusNext        // Tab - move focus to the next control
	ActionFocusPrev        // Shift+Tab - move focus to the previous control
	ActionIncrease         // Right arrow - nudge the focused slider up
	ActionDecrease         // Left arrow - nudge the focused slider down
	ActionCalculate        // Enter or C - recompute the statistic
	ActionReset            // R - restore the default dataset
	ActionBack             // Esc - return to the menu
	ActionQuit             // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFocusNext:
		return "FocusNext"
	case ActionFocusPrev:
		return "FocusPrev"
	case ActionIncrease:
		return "Increase"
	case ActionDecrease:
		return "Decrease"
	case ActionCalculate:
		return "Calculate"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes pointer event phases.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
)

// PointerEvent is a mouse event in screen-cell coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}
