// Package sidebar models the expand/collapse state of the navigation sidebar.
package sidebar

import "encoding/json"

// Default geometry, in terminal columns.
const (
	DefaultBreakpoint     = 100
	DefaultExpandedWidth  = 28
	DefaultCollapsedWidth = 6
)

// Widths holds the sidebar width for each mode.
type Widths struct {
	Expanded  int
	Collapsed int
}

// State is the sidebar UI state.
type State struct {
	Expanded    bool
	MobileOpen  bool
	Hovered     bool
	Mobile      bool
	ActiveItem  string
	OpenSubmenu string
	Breakpoint  int
	Widths      Widths
}

// Snapshot is the persisted subset of State. An empty ActiveItem is stored
// as null.
type Snapshot struct {
	Expanded   bool   `json:"isExpanded"`
	ActiveItem string `json:"activeItem"`
}

// MarshalJSON encodes the snapshot, writing an empty ActiveItem as null.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var active *string
	if s.ActiveItem != "" {
		active = &s.ActiveItem
	}
	return json.Marshal(struct {
		Expanded   bool    `json:"isExpanded"`
		ActiveItem *string `json:"activeItem"`
	}{s.Expanded, active})
}

// New returns an expanded sidebar with the given geometry. Non-positive
// values fall back to the defaults.
func New(breakpoint int, widths Widths) State {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if widths.Expanded <= 0 {
		widths.Expanded = DefaultExpandedWidth
	}
	if widths.Collapsed <= 0 {
		widths.Collapsed = DefaultCollapsedWidth
	}
	return State{
		Expanded:   true,
		Breakpoint: breakpoint,
		Widths:     widths,
	}
}

// Toggle flips between expanded and collapsed.
func (s *State) Toggle() {
	s.Expanded = !s.Expanded
}

// ToggleMobile opens or closes the drawer used on narrow terminals.
func (s *State) ToggleMobile() {
	s.MobileOpen = !s.MobileOpen
}

// ToggleForViewport toggles the drawer on narrow terminals and the
// expanded state otherwise.
func (s *State) ToggleForViewport() {
	if s.Mobile {
		s.ToggleMobile()
		return
	}
	s.Toggle()
}

// SetHovered records whether the sidebar currently has the pointer (focus).
func (s *State) SetHovered(hovered bool) {
	s.Hovered = hovered
}

// SetActiveItem records the selected navigation item. Empty clears it.
func (s *State) SetActiveItem(item string) {
	s.ActiveItem = item
}

// ToggleSubmenu opens item's submenu, or closes it when it is already open.
func (s *State) ToggleSubmenu(item string) {
	if s.OpenSubmenu == item {
		s.OpenSubmenu = ""
		return
	}
	s.OpenSubmenu = item
}

// Reset restores the default state while keeping geometry and the
// measured viewport.
func (s *State) Reset() {
	mobile := s.Mobile
	*s = New(s.Breakpoint, s.Widths)
	s.Mobile = mobile
}

// Resize updates the mobile flag for a terminal width. Leaving the mobile
// layout closes the drawer.
func (s *State) Resize(width int) {
	s.Mobile = width < s.Breakpoint
	if !s.Mobile && s.MobileOpen {
		s.MobileOpen = false
	}
}

// Visible reports whether the sidebar occupies space in the layout.
func (s State) Visible() bool {
	if s.Mobile {
		return s.MobileOpen
	}
	return true
}

// Width returns the width the sidebar should be drawn at.
func (s State) Width() int {
	if s.Expanded || s.Hovered || s.MobileOpen {
		return s.Widths.Expanded
	}
	return s.Widths.Collapsed
}

// Collapsed reports whether the sidebar is drawn at its narrow width.
func (s State) Collapsed() bool {
	return s.Width() == s.Widths.Collapsed && s.Widths.Collapsed != s.Widths.Expanded
}

// Snapshot returns the persisted subset of the state.
func (s State) Snapshot() Snapshot {
	return Snapshot{Expanded: s.Expanded, ActiveItem: s.ActiveItem}
}

// Restore applies a persisted snapshot.
func (s *State) Restore(snap Snapshot) {
	s.Expanded = snap.Expanded
	s.ActiveItem = snap.ActiveItem
}
