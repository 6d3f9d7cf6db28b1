package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/anthers/internal/presentation/tui/metrics"
	"github.com/tesso57/anthers/internal/presentation/tui/presenter"
	"github.com/tesso57/anthers/internal/presentation/tui/state"
)

type layoutMetrics struct {
	sidebarWidth      int
	mainWidth         int
	sidebarListHeight int
	mainHeight        int
}

// UpdateListSizes resizes the sidebar list to the current layout.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.EntryList.SetSize(layout.sidebarWidth, layout.sidebarListHeight)
}

// MainSize returns the width and height available to the main panel.
func MainSize(s *state.ModelState) (int, int) {
	layout := buildLayoutMetrics(s)
	return layout.mainWidth, layout.mainHeight
}

// SidebarWidth returns the sidebar content width, 0 when hidden.
func SidebarWidth(s *state.ModelState) int {
	return buildLayoutMetrics(s).sidebarWidth
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight, 1)

	sidebarWidth := 0
	if s.Sidebar.Visible() {
		sidebarWidth = min(s.Sidebar.Width(), clampMin(s.Width-metrics.SidebarRightBorderWidth-1, 1))
	}
	mainWidth := s.Width
	if sidebarWidth > 0 {
		mainWidth = s.Width - sidebarWidth - metrics.SidebarRightBorderWidth
	}

	return layoutMetrics{
		sidebarWidth:      sidebarWidth,
		mainWidth:         clampMin(mainWidth, 1),
		sidebarListHeight: clampMin(availableHeight-metrics.SidebarTitleLines-submenuHeight(s), 1),
		mainHeight:        availableHeight,
	}
}

// SubmenuEntry returns the entry whose submenu is open. A collapsed sidebar
// shows no submenu.
func SubmenuEntry(s *state.ModelState) (*presenter.Entry, bool) {
	if s.Sidebar.OpenSubmenu == "" || s.Sidebar.Collapsed() {
		return nil, false
	}
	for _, item := range s.EntryList.Items() {
		if e, ok := item.(*presenter.Entry); ok && e.ID == s.Sidebar.OpenSubmenu {
			return e, true
		}
	}
	return nil, false
}

func submenuHeight(s *state.ModelState) int {
	entry, ok := SubmenuEntry(s)
	if !ok {
		return 0
	}
	// heading plus one row per hint
	return len(entry.Submenu()) + 1
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Session, s.StatusMessage, s.Help.View(&s.Keys)))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
