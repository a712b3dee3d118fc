package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/routeboard/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "esc":
		return core.ActionPause, false
	case "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// BoardKey returns the character code forwarded to the board for msg.
// Only single printable runes and space are forwarded.
func (km *KeyMapper) BoardKey(msg tea.KeyMsg) (code int, ok bool) {
	if msg.Type == tea.KeySpace {
		return ' ', true
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return 0, false
	}
	return int(msg.Runes[0]), true
}

// IsAdvise reports whether msg requests routing advice.
func (km *KeyMapper) IsAdvise(msg tea.KeyMsg) bool {
	s := msg.String()
	return s == "a" || s == "A"
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
		return false
	}
	if code, ok := km.BoardKey(msg); ok {
		frame.AddKey(code, true)
	}
	return false
}

// MapMouse translates a mouse message to a pointer event.
// Wheel events are dropped.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}
	if msg.Shift {
		ev.Mods |= core.ModShift
	}
	if msg.Ctrl {
		ev.Mods |= core.ModCtrl
	}
	if msg.Alt {
		ev.Mods |= core.ModAlt
	}

	switch msg.Action {
	case tea.MouseActionPress:
		b, ok := buttonMask(msg.Button)
		if !ok {
			return core.PointerEvent{}, false
		}
		ev.Kind = core.PointerPress
		ev.Buttons = b
	case tea.MouseActionRelease:
		ev.Kind = core.PointerRelease
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMove
		if b, ok := buttonMask(msg.Button); ok {
			ev.Buttons = b
		}
	default:
		return core.PointerEvent{}, false
	}
	return ev, true
}

func buttonMask(b tea.MouseButton) (int, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return 1, true
	case tea.MouseButtonRight:
		return 2, true
	case tea.MouseButtonMiddle:
		return 4, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if msg.Type == tea.KeySpace {
		return MenuActionSelect
	}

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
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
