package pagination

import (
	"cmp"
	"slices"
)

// Defaults used by NewConfig.
const (
	DefaultSiblings = 1
	DefaultEdges    = 1
)

// Config describes one pagination window request.
type Config struct {
	// Current is the requested page. It is clamped, never trusted.
	Current int
	// Total is the number of pages. Values <= 1 suppress pagination.
	Total int
	// Siblings is how many pages are shown on each side of the current page.
	Siblings int
	// Edges is how many pages are always shown at the start and at the end.
	Edges int
}

// NewConfig returns a Config with the default sibling and edge counts.
func NewConfig(current, total int) Config {
	return Config{
		Current:  current,
		Total:    total,
		Siblings: DefaultSiblings,
		Edges:    DefaultEdges,
	}
}

// Window computes the markers for the config.
func (c Config) Window() Window {
	return Compute(c.Current, c.Total, c.Siblings, c.Edges)
}

// Clamp bounds page to [1, total]. A total below 1 yields 1.
func Clamp(page, total int) int {
	return max(1, min(page, total))
}

// span is an inclusive page interval. lo > hi means empty.
type span struct {
	lo, hi int
}

func (s span) empty() bool { return s.lo > s.hi }

func (s span) len() int { return s.hi - s.lo + 1 }

// Compute returns the markers a pagination control should render.
//
// The result is empty when total <= 1. Otherwise it holds the left edge pages,
// the sibling pages around the clamped current page and the right edge pages,
// with one Ellipsis wherever two of those runs do not touch. Negative counts
// are treated as 0. Compute never fails and never panics.
func Compute(current, total, siblings, edges int) Window {
	if total <= 1 {
		return nil
	}
	siblings = max(siblings, 0)
	edges = max(edges, 0)
	page := Clamp(current, total)

	if fitsWithoutGaps(total, siblings, edges) {
		return materialize([]span{{1, total}})
	}

	edge := min(edges, total)
	zones := []span{
		{1, edge},
		{page - min(siblings, page-1), page + min(siblings, total-page)},
		{total - edge + 1, total},
	}
	return materialize(mergeZones(zones))
}

// fitsWithoutGaps reports whether total <= 2*edges + 2*siblings + 1
// without overflowing on large counts.
func fitsWithoutGaps(total, siblings, edges int) bool {
	budget := total
	for _, n := range [...]int{edges, edges, siblings, siblings} {
		if n >= budget {
			return true
		}
		budget -= n
	}
	return budget <= 1
}

// mergeZones drops empty zones, sorts the rest and joins the ones that
// overlap or touch. The result is ascending with a gap of at least one page
// between neighbours.
func mergeZones(zones []span) []span {
	zones = slices.DeleteFunc(zones, span.empty)
	slices.SortFunc(zones, func(a, b span) int { return cmp.Compare(a.lo, b.lo) })

	merged := make([]span, 0, len(zones))
	for _, z := range zones {
		if n := len(merged); n > 0 && z.lo-1 <= merged[n-1].hi {
			merged[n-1].hi = max(merged[n-1].hi, z.hi)
			continue
		}
		merged = append(merged, z)
	}
	return merged
}

func materialize(runs []span) Window {
	size := max(len(runs)-1, 0)
	for _, r := range runs {
		size += r.len()
	}

	w := make(Window, 0, size)
	for i, r := range runs {
		if i > 0 {
			w = append(w, Ellipsis)
		}
		// Counting down the remaining length keeps hi == math.MaxInt finite.
		for p, left := r.lo, r.len(); left > 0; p, left = p+1, left-1 {
			w = append(w, Page(p))
		}
	}
	return w
}
