package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-scramble/internal/core"
)

// KeyMap defines the key bindings of the board. While the tile count field
// has focus, only Submit, Board and Quit apply; other keys go to the field.
type KeyMap struct {
	Submit     key.Binding
	Start      key.Binding
	Next       key.Binding
	Prev       key.Binding
	Select     key.Binding
	Restart    key.Binding
	EditCount  key.Binding
	Board      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Select, k.Restart, k.EditCount, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Start, k.EditCount, k.Board},
		{k.Next, k.Prev, k.Select},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start round"),
		),
		Start: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "start with count"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "down", "l", "j"),
			key.WithHelp("tab/→", "next tile"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "up", "h", "k"),
			key.WithHelp("S-tab/←", "prev tile"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "click tile"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		EditCount: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "new count"),
		),
		Board: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "to board"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages on the board to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a board key to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Next):
		return core.ActionNext, false
	case key.Matches(msg, km.keys.Prev):
		return core.ActionPrev, false
	case key.Matches(msg, km.keys.Select):
		return core.ActionSelect, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a board key.
// ActionStart needs the count field content, so it is left to the caller.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && action != core.ActionStart && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
