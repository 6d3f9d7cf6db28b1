// Package pagination computes the page markers a pagination control renders.
package pagination

import (
	"strconv"
	"strings"
)

// EllipsisText is the visual form of an Ellipsis marker.
const EllipsisText = "..."

// Marker is one slot of a pagination strip: either a page number or a gap.
// The zero Marker is Ellipsis.
type Marker struct {
	page int
}

// Ellipsis stands for a run of hidden pages. It carries no page index.
var Ellipsis = Marker{}

// Page returns a marker for page n. Pages are 1-based, so n below 1 is
// raised to 1; Page never produces an Ellipsis.
func Page(n int) Marker {
	return Marker{page: max(n, 1)}
}

// IsEllipsis reports whether the marker is a gap placeholder.
func (m Marker) IsEllipsis() bool {
	return m.page < 1
}

// Page returns the page number and true, or 0 and false for an ellipsis.
func (m Marker) Page() (int, bool) {
	if m.IsEllipsis() {
		return 0, false
	}
	return m.page, true
}

// String renders the marker as a page number or EllipsisText.
func (m Marker) String() string {
	if m.IsEllipsis() {
		return EllipsisText
	}
	return strconv.Itoa(m.page)
}

// Window is the ordered list of markers for one render.
type Window []Marker

// String joins the markers with single spaces, e.g. "1 ... 4 5 6 ... 10".
func (w Window) String() string {
	parts := make([]string, len(w))
	for i, m := range w {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
