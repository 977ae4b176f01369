package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/roomba-cleanup/internal/core"
	"github.com/vovakirdan/roomba-cleanup/internal/roomba"
)

// ControlHint is the one-line instruction shown under the board.
const ControlHint = "Move: Arrow Keys or WASD | Clean all trash, avoid poop"

// KeyMap holds the bindings shown in the help footer. Game keys come from
// roomba.Keys so the footer and the game can never disagree.
type KeyMap struct {
	Move    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap builds the bindings.
func DefaultKeyMap() KeyMap {
	var move []string
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		move = append(move, roomba.KeysFor(a)...)
	}

	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys(move...),
			key.WithHelp("←↑↓→/wasd", "move"),
		),
		Restart: key.NewBinding(
			key.WithKeys(roomba.KeysFor(core.ActionRestart)...),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// IsQuit reports whether token is a platform quit key.
func (k KeyMap) IsQuit(token string) bool {
	return slices.Contains(k.Quit.Keys(), token)
}
