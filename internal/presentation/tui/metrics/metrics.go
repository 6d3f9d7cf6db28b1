// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	SidebarTitleLines       = 2
	SidebarRightBorderWidth = 1

	// CompactSidebarWidth is the list width below which entries show only
	// their icon.
	CompactSidebarWidth = 12

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
