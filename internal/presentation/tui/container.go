// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/anthers/internal/presentation/tui/components/header"
	main_view "github.com/tesso57/anthers/internal/presentation/tui/components/main"
	"github.com/tesso57/anthers/internal/presentation/tui/components/modal"
	"github.com/tesso57/anthers/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/anthers/internal/presentation/tui/components/toast"
	"github.com/tesso57/anthers/internal/presentation/tui/presenter"
	"github.com/tesso57/anthers/internal/presentation/tui/state"
	"github.com/tesso57/anthers/internal/presentation/tui/textutil"
	"github.com/tesso57/anthers/internal/presentation/tui/update"
	"github.com/tesso57/anthers/internal/presentation/tui/view"
)

const (
	sidebarTitle          = "Components"
	collapsedSidebarTitle = "≡"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Toast:   m.buildToastProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	width := update.SidebarWidth(m.state)
	_, height := update.MainSize(m.state)
	collapsed := m.state.Sidebar.Collapsed()

	title := textutil.Truncate(sidebarTitle, width-2)
	if collapsed {
		title = collapsedSidebarTitle
	}

	props := sidebar.Props{
		Visible:   m.state.Sidebar.Visible() && width > 0,
		View:      m.state.EntryList.View(),
		Width:     width,
		Height:    height,
		Title:     title,
		Active:    m.state.Focus == state.FocusSidebar,
		Collapsed: collapsed,
		Accent:    lipgloss.Color(m.settings.Theme.Accent),
		Border:    lipgloss.Color(m.settings.Theme.Border),
	}
	if entry, ok := update.SubmenuEntry(m.state); ok {
		props.SubmenuTitle = entry.Name
		props.Submenu = entry.Submenu()
	}
	return props
}

func (m *Model) buildHeaderProps() header.Props {
	entry, ok := m.activeEntry()
	if !ok {
		return header.Props{Visible: false}
	}
	width, _ := update.MainSize(m.state)
	available := width - 1

	return header.Props{
		Visible:     true,
		Title:       headerLine(entry.Name, available),
		Description: headerLine(entry.Summary, available),
		Hint:        m.state.Keys.ToggleSidebar.Help().Key + " sidebar",
		Width:       available,
	}
}

func (m *Model) buildMainProps() main_view.Props {
	width, height := update.MainSize(m.state)

	var body string
	if entry, ok := m.activeEntry(); ok {
		body = m.demoBody(entry, width-1)
		if entry.Controls != "" {
			body += "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(m.settings.Theme.Muted)).Render(entry.Controls)
		}
	}
	if m.state.Err != nil {
		body = fmt.Sprintf("Error: %v\n\n%s", m.state.Err, body)
	}

	return main_view.Props{
		Width:  width,
		Height: height,
		Header: "", // Will be filled by Render using HeaderProps
		Body:   body,
	}
}

func (m *Model) buildToastProps() toast.Props {
	width, _ := update.MainSize(m.state)
	return toast.Props{Message: m.state.Toast, Width: width - 1}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Title:   "Key bindings",
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.ModalOpen {
		return modal.Props{
			Visible:   true,
			Kind:      modal.Dialog,
			Title:     "Modal",
			CloseHint: m.state.Keys.Back.Help().Key + " ✕",
			Body:      "This dialog sits above the page.\nPress esc or enter to close it.",
			Width:     m.state.Width,
			Height:    m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Session, m.state.StatusMessage, helpText)
}

func (m *Model) activeEntry() (*presenter.Entry, bool) {
	if e, ok := presenter.SelectedEntry(m.state.EntryList); ok && e.ID == m.state.ActiveEntry() {
		return e, true
	}
	e, _, ok := presenter.FindEntry(presenter.Catalog(), m.state.ActiveEntry())
	return e, ok
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
