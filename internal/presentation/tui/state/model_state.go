package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/tesso57/anthers/internal/domain/sidebar"
	"github.com/tesso57/anthers/internal/domain/stepper"
)

// DropdownState is the demo dropdown.
type DropdownState struct {
	Items    []string
	Cursor   int
	Open     bool
	Selected string
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session   Session
	Previous  Session
	Focus     Focus
	EntryList list.Model
	Help      help.Model
	Spinner   spinner.Model
	Keys      KeyMap
	Width     int
	Height    int
	Sidebar   sidebar.State

	Page       int
	TotalPages int

	Dropdown      DropdownState
	SwitchOn      bool
	ButtonLoading bool
	Stepper       *stepper.Stepper
	StepCursor    int
	ModalOpen     bool
	Toast         string
	ToastSeq      int

	StatusMessage string
	Err           error
}

// ActiveEntry returns the id of the component shown in the main panel.
func (s *ModelState) ActiveEntry() string {
	return s.Sidebar.ActiveItem
}

// SetFocus moves keyboard focus; a focused sidebar counts as hovered.
func (s *ModelState) SetFocus(f Focus) {
	s.Focus = f
	s.Sidebar.SetHovered(f == FocusSidebar && !s.Sidebar.Mobile)
}
