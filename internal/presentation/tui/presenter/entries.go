// Package presenter builds view models for the TUI.
package presenter

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

// Component ids shown in the gallery.
const (
	EntryBadge      = "badge"
	EntryButton     = "button"
	EntryCard       = "card"
	EntryDropdown   = "dropdown"
	EntryModal      = "modal"
	EntryPagination = "pagination"
	EntryStepper    = "stepper"
	EntrySwitch     = "switch"
	EntryToast      = "toast"
)

// Entry is a view model for one gallery item.
type Entry struct {
	ID       string
	Name     string
	Glyph    string
	Summary  string
	Controls string
}

// FilterValue implements list.Item.
func (e *Entry) FilterValue() string { return e.Name }

// Title returns the entry title.
func (e *Entry) Title() string { return e.Name }

// Description returns the one-line summary.
func (e *Entry) Description() string { return e.Summary }

// Icon returns the glyph shown in the collapsed sidebar.
func (e *Entry) Icon() string { return e.Glyph }

// Submenu returns the entry's key hints, one per line.
func (e *Entry) Submenu() []string {
	var lines []string
	for _, hint := range strings.Split(e.Controls, "  ") {
		if hint = strings.TrimSpace(hint); hint != "" {
			lines = append(lines, hint)
		}
	}
	return lines
}

// Catalog returns the gallery entries in sidebar order.
func Catalog() []*Entry {
	return []*Entry{
		{ID: EntryBadge, Name: "Badge", Glyph: "◉", Summary: "Light and solid badges in every color and size."},
		{ID: EntryButton, Name: "Button", Glyph: "▣", Summary: "Primary and outline buttons with icons and a loading state.", Controls: "enter: start loading"},
		{ID: EntryCard, Name: "Card", Glyph: "▤", Summary: "Titled card with description, status and body."},
		{ID: EntryDropdown, Name: "Dropdown", Glyph: "▾", Summary: "Menu that opens below its trigger.", Controls: "enter: open/select  up/down: move  esc: close"},
		{ID: EntryModal, Name: "Modal", Glyph: "◫", Summary: "Centred dialog with a close hint.", Controls: "enter: open  esc: close"},
		{ID: EntryPagination, Name: "Pagination", Glyph: "…", Summary: "Page window with edges, siblings and ellipsis gaps.", Controls: "left/right: page  home/end: first/last"},
		{ID: EntryStepper, Name: "Stepper", Glyph: "✓", Summary: "Checklist with progress and one expandable step.", Controls: "up/down: pick  enter: expand  space: complete"},
		{ID: EntrySwitch, Name: "Switch", Glyph: "◐", Summary: "On/off switches in blue and gray.", Controls: "space: toggle"},
		{ID: EntryToast, Name: "Toast", Glyph: "▭", Summary: "Transient message that hides after three seconds.", Controls: "enter: show toast"},
	}
}

// BuildEntryListItems builds list items for the sidebar.
func BuildEntryListItems(entries []*Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	return items
}

// ApplyEntryList updates the list model with the catalog.
func ApplyEntryList(model *list.Model, entries []*Entry) {
	model.SetItems(BuildEntryListItems(entries))
}

// FindEntry returns the entry with id and its index.
func FindEntry(entries []*Entry, id string) (*Entry, int, bool) {
	for i, e := range entries {
		if e.ID == id {
			return e, i, true
		}
	}
	return nil, -1, false
}

// SelectedEntry returns the list's selected entry.
func SelectedEntry(model list.Model) (*Entry, bool) {
	e, ok := model.SelectedItem().(*Entry)
	return e, ok && e != nil
}
