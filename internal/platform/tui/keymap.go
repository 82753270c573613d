// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and agent orchestration.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twenty48/internal/agent"
)

// KeyMapper translates Bubble Tea key messages to agent keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an agent key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) agent.Key {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return agent.KeyQuit
	case "w", "up", "k":
		return agent.KeyUp
	case "s", "down", "j":
		return agent.KeyDown
	case "a", "left", "h":
		return agent.KeyLeft
	case "d", "right", "l":
		return agent.KeyRight
	}

	return agent.KeyUnknown
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
	case "t":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
