package listview

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/anthers/internal/presentation/tui/metrics"
	"github.com/tesso57/anthers/internal/presentation/tui/textutil"
)

// entryStyles pads every title variant and paints the selected row with accent.
func entryStyles(accent lipgloss.Color) list.DefaultItemStyles {
	styles := list.NewDefaultItemStyles()
	for _, s := range []*lipgloss.Style{&styles.NormalTitle, &styles.SelectedTitle, &styles.DimmedTitle} {
		*s = s.PaddingRight(metrics.ItemRightPadding)
	}
	styles.SelectedTitle = styles.SelectedTitle.
		Foreground(accent).
		BorderLeftForeground(accent)
	return styles
}

// rowStyle picks the title style for the row at index. Rows are dimmed while
// the filter input is open.
func rowStyle(styles list.DefaultItemStyles, m list.Model, index int) lipgloss.Style {
	switch {
	case m.FilterState() == list.Filtering:
		return styles.DimmedTitle
	case index == m.Index():
		return styles.SelectedTitle
	default:
		return styles.NormalTitle
	}
}

// entryText returns the row label sized to the list width. Narrow lists get
// the icon alone, cut without a tail marker.
func entryText(m list.Model, style lipgloss.Style, item EntryItem) (string, lipgloss.Style) {
	if m.Width() < metrics.CompactSidebarWidth {
		style = style.UnsetPaddingRight()
		return textutil.Fit(item.Icon(), m.Width()-style.GetHorizontalFrameSize()), style
	}
	maxWidth := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding
	return textutil.Truncate(item.Icon()+" "+item.Title(), maxWidth), style
}
