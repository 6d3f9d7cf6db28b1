package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/anthers/internal/presentation/tui/components/badge"
	"github.com/tesso57/anthers/internal/presentation/tui/components/button"
	"github.com/tesso57/anthers/internal/presentation/tui/components/card"
	"github.com/tesso57/anthers/internal/presentation/tui/components/dropdown"
	"github.com/tesso57/anthers/internal/presentation/tui/components/pagination"
	stepperview "github.com/tesso57/anthers/internal/presentation/tui/components/stepper"
	"github.com/tesso57/anthers/internal/presentation/tui/components/toggle"
	"github.com/tesso57/anthers/internal/presentation/tui/presenter"
	"github.com/tesso57/anthers/internal/presentation/tui/state"
)

const maxCardWidth = 60

func (m *Model) demoBody(entry *presenter.Entry, width int) string {
	focused := m.state.Focus == state.FocusMain

	switch entry.ID {
	case presenter.EntryBadge:
		return badgeDemo()
	case presenter.EntryButton:
		return m.buttonDemo(focused)
	case presenter.EntryCard:
		return cardDemo(min(width, maxCardWidth))
	case presenter.EntryDropdown:
		d := m.state.Dropdown
		return dropdown.Render(dropdown.Props{
			Label:    "Actions",
			Selected: d.Selected,
			Items:    d.Items,
			Cursor:   d.Cursor,
			Open:     d.Open,
			Focused:  focused,
		})
	case presenter.EntryModal:
		return "A dialog centred over the gallery.\n\n" +
			button.Render(button.Props{Label: "Open modal", Variant: button.Outline, Focused: focused})
	case presenter.EntryPagination:
		return m.paginationDemo()
	case presenter.EntryStepper:
		cursor := -1
		if focused {
			cursor = m.state.StepCursor
		}
		return stepperview.Render(stepperview.Props{Stepper: m.state.Stepper, Cursor: cursor, Width: min(width, maxCardWidth)})
	case presenter.EntrySwitch:
		return strings.Join([]string{
			toggle.Render(toggle.Props{Label: "Notifications", Checked: m.state.SwitchOn, Focused: focused}),
			toggle.Render(toggle.Props{Label: "Default checked", Checked: true}),
			toggle.Render(toggle.Props{Label: "Disabled", Disabled: true}),
			toggle.Render(toggle.Props{Label: "Gray", Checked: true, Color: toggle.Gray}),
		}, "\n\n")
	case presenter.EntryToast:
		return "Toasts appear at the bottom of this panel and hide after three seconds.\n\n" +
			button.Render(button.Props{Label: "Show toast", Focused: focused})
	}
	return ""
}

func badgeDemo() string {
	rows := make([]string, 0, 3)
	for _, v := range []badge.Variant{badge.VariantLight, badge.VariantSolid} {
		cells := make([]string, 0, len(badge.Colors))
		for _, c := range badge.Colors {
			cells = append(cells, badge.Render(badge.Props{Label: capitalize(string(c)), Variant: v, Color: c}))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	rows = append(rows, strings.Join([]string{
		badge.Render(badge.Props{Label: "Small", Size: badge.SizeSM, Color: badge.Info}),
		badge.Render(badge.Props{Label: "Trending", StartIcon: "↑", Color: badge.Success}),
		badge.Render(badge.Props{Label: "Dropped", EndIcon: "↓", Color: badge.Error, Variant: badge.VariantSolid}),
	}, " "))
	return strings.Join(rows, "\n\n")
}

func (m *Model) buttonDemo(focused bool) string {
	static := strings.Join([]string{
		button.Render(button.Props{Label: "Primary"}),
		button.Render(button.Props{Label: "Small", Size: button.SizeSM, StartIcon: "◀"}),
		button.Render(button.Props{Label: "Disabled", Disabled: true}),
	}, "  ")
	outline := button.Render(button.Props{Label: "Outline", Variant: button.Outline, EndIcon: "▶"})
	live := button.Render(button.Props{
		Label:   "Save changes",
		Loading: m.state.ButtonLoading,
		Spinner: m.state.Spinner.View(),
		Focused: focused,
	})
	return lipgloss.JoinVertical(lipgloss.Left, static, "", outline, "", live)
}

func cardDemo(width int) string {
	status := badge.Render(badge.Props{Label: "+11%", Color: badge.Success, Size: badge.SizeSM})
	return card.Render(card.Props{
		Title:       "Monthly target",
		StartIcon:   "▤",
		Description: "Target you have set for each month",
		Status:      status,
		Body:        "Target   $20K\nRevenue  $16K\nToday    $3.2K",
		Width:       width,
	})
}

func (m *Model) paginationDemo() string {
	nav := m.pagination.Nav(m.state.Page, m.state.TotalPages)
	if !nav.Visible() {
		return "There is only one page, so the control is hidden."
	}
	control := pagination.Render(pagination.Props{
		Window: m.pagination.Window(m.state.Page, m.state.TotalPages),
		Nav:    nav,
		Accent: lipgloss.Color(m.settings.Theme.Accent),
	})
	caption := fmt.Sprintf("Page %d of %d  (siblings %d, edges %d)", nav.Current, nav.Total, m.pagination.Siblings, m.pagination.Edges)
	return control + "\n\n" + caption
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
