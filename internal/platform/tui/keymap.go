package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blink-runner/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to engine input actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an input action. The keyboard stands
// in for the blink classifier: space is a raw trigger, p is an already
// disambiguated pause toggle. Returns the action (empty when the key is
// unbound) and whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action engine.InputAction, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return "", true
	case " ", "up", "w", "enter":
		return engine.ActionJump, false
	case "p", "esc":
		return engine.ActionPause, false
	}
	return "", false
}
