// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/anthers/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	GalleryView Session = iota
	QuitView
)

// Focus is the panel receiving navigation keys.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusMain
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Open          key.Binding
	Back          key.Binding
	Quit          key.Binding
	ToggleSidebar key.Binding
	SwitchFocus   key.Binding
	PrevPage      key.Binding
	NextPage      key.Binding
	FirstPage     key.Binding
	LastPage      key.Binding
	Toggle        key.Binding
	ResetSidebar  key.Binding
	Help          key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.ToggleSidebar, k.SwitchFocus, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.ToggleSidebar, k.ResetSidebar, k.SwitchFocus, k.Toggle},
		{k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:            binding(cfg.Up, "up"),
		Down:          binding(cfg.Down, "down"),
		Open:          binding(cfg.Open, "open/activate"),
		Back:          binding(cfg.Back, "back/close"),
		Quit:          binding(cfg.Quit, "quit"),
		ToggleSidebar: binding(cfg.ToggleSidebar, "sidebar"),
		SwitchFocus:   binding(cfg.SwitchFocus, "focus"),
		PrevPage:      binding(cfg.PrevPage, "prev page"),
		NextPage:      binding(cfg.NextPage, "next page"),
		FirstPage:     binding(cfg.FirstPage, "first page"),
		LastPage:      binding(cfg.LastPage, "last page"),
		Toggle:        binding(cfg.Toggle, "toggle"),
		ResetSidebar:  binding(cfg.ResetSidebar, "reset sidebar"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, help),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "space":
			out = append(out, " ")
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
