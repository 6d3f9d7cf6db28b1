// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/anthers/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	ToggleSidebar
	ResetSidebar
	SwitchFocus
	Open
	Back
	Up
	Down
	PrevPage
	NextPage
	FirstPage
	LastPage
	Toggle
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent. Bindings are checked in
// order, so earlier entries win when a key is bound twice.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.ToggleSidebar):
		return Intent{Type: ToggleSidebar}
	case key.Matches(msg, keys.ResetSidebar):
		return Intent{Type: ResetSidebar}
	case key.Matches(msg, keys.SwitchFocus):
		return Intent{Type: SwitchFocus}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Up}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Down}
	case key.Matches(msg, keys.PrevPage):
		return Intent{Type: PrevPage}
	case key.Matches(msg, keys.NextPage):
		return Intent{Type: NextPage}
	case key.Matches(msg, keys.FirstPage):
		return Intent{Type: FirstPage}
	case key.Matches(msg, keys.LastPage):
		return Intent{Type: LastPage}
	case key.Matches(msg, keys.Toggle):
		return Intent{Type: Toggle}
	default:
		return Intent{Type: None}
	}
}
