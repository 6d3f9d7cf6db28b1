package pagination

// Nav holds the previous/next state of a pagination control.
type Nav struct {
	Current int
	Total   int
}

// NewNav clamps current into [1, total].
func NewNav(current, total int) Nav {
	return Nav{Current: Clamp(current, total), Total: total}
}

// Visible reports whether the control should be rendered at all.
func (n Nav) Visible() bool {
	return n.Total > 1
}

// HasPrevious reports whether the previous control is enabled.
func (n Nav) HasPrevious() bool {
	return n.Current > 1
}

// HasNext reports whether the next control is enabled.
func (n Nav) HasNext() bool {
	return n.Current < n.Total
}

// Previous returns the page before Current, or false on the first page.
func (n Nav) Previous() (int, bool) {
	if !n.HasPrevious() {
		return n.Current, false
	}
	return n.Current - 1, true
}

// Next returns the page after Current, or false on the last page.
func (n Nav) Next() (int, bool) {
	if !n.HasNext() {
		return n.Current, false
	}
	return n.Current + 1, true
}
