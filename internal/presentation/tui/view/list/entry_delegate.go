package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntryItem interface for items that can be rendered by EntryDelegate.
type EntryItem interface {
	list.Item
	Title() string
	Icon() string
}

// EntryDelegate renders sidebar entries as "icon title", or the icon alone
// when the list is narrower than metrics.CompactSidebarWidth.
type EntryDelegate struct {
	Styles list.DefaultItemStyles
}

// NewEntryDelegate creates a new EntryDelegate using accent for the
// selected row.
func NewEntryDelegate(accent lipgloss.Color) *EntryDelegate {
	return &EntryDelegate{Styles: entryStyles(accent)}
}

// Height returns the height of the item.
func (d EntryDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d EntryDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(EntryItem)
	if !ok {
		return
	}

	text, style := entryText(m, rowStyle(d.Styles, m, index), i)
	_, _ = io.WriteString(w, style.Render(text))
}
