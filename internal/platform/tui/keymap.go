package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuroedu/tui-statlab/internal/core"
)

// KeyMapper translates Bubble Tea key messages to screen actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a screen action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "tab":
		return core.ActionFocusNext, false
	case "shift+tab":
		return core.ActionFocusPrev, false
	case "right":
		return core.ActionIncrease, false
	case "left":
		return core.ActionDecrease, false
	case "enter", "c":
		return core.ActionCalculate, false
	case "r":
		return core.ActionReset, false
	case "esc", "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapDigit translates a key message to a cell-editing rune: a decimal
// digit, or '\b' for backspace. ok is false for any other key.
func (km *KeyMapper) MapDigit(msg tea.KeyMsg) (r rune, ok bool) {
	key := msg.String()
	if key == "backspace" {
		return '\b', true
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return rune(key[0]), true
	}
	return 0, false
}

// MapMouse translates a mouse message to a pointer event.
// ok is false for mouse activity the screens don't care about
// (wheel, non-left buttons).
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (ev core.PointerEvent, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerPress, X: msg.X, Y: msg.Y}, true
	case tea.MouseActionMotion:
		return core.PointerEvent{Kind: core.PointerMove, X: msg.X, Y: msg.Y}, true
	case tea.MouseActionRelease:
		return core.PointerEvent{Kind: core.PointerRelease, X: msg.X, Y: msg.Y}, true
	}
	return core.PointerEvent{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
