package usecase

import (
	"github.com/rs/zerolog"
	"github.com/tesso57/anthers/internal/application/settings"
	"github.com/tesso57/anthers/internal/domain/pagination"
)

// PaginationService computes page windows with the configured neighbourhood
// sizes and drives page changes.
type PaginationService struct {
	Siblings int
	Edges    int
	Log      zerolog.Logger
}

// NewPaginationService constructs a PaginationService from settings.
func NewPaginationService(cfg settings.PaginationConfig, log zerolog.Logger) PaginationService {
	return PaginationService{
		Siblings: cfg.Siblings,
		Edges:    cfg.Edges,
		Log:      log.With().Str("component", "pagination").Logger(),
	}
}

// Window returns the markers to display for current out of total pages.
func (s PaginationService) Window(current, total int) pagination.Window {
	s.logClamp(current, total)
	return pagination.Compute(current, total, s.Siblings, s.Edges)
}

// Nav returns the previous/next state for current out of total pages.
func (s PaginationService) Nav(current, total int) pagination.Nav {
	return pagination.NewNav(current, total)
}

// Previous moves one page back. onPageChange runs only when the move is
// allowed; the returned page is the new current page.
func (s PaginationService) Previous(current, total int, onPageChange func(int)) int {
	page, ok := s.Nav(current, total).Previous()
	if ok && onPageChange != nil {
		onPageChange(page)
	}
	return page
}

// Next moves one page forward. onPageChange runs only when the move is
// allowed; the returned page is the new current page.
func (s PaginationService) Next(current, total int, onPageChange func(int)) int {
	page, ok := s.Nav(current, total).Next()
	if ok && onPageChange != nil {
		onPageChange(page)
	}
	return page
}

// Select jumps to page, clamped into [1, total]. onPageChange runs when the
// resulting page differs from current.
func (s PaginationService) Select(current, page, total int, onPageChange func(int)) int {
	s.logClamp(page, total)
	target := pagination.Clamp(page, total)
	if target != pagination.Clamp(current, total) && onPageChange != nil {
		onPageChange(target)
	}
	return target
}

func (s PaginationService) logClamp(page, total int) {
	if total < 1 {
		return
	}
	if clamped := pagination.Clamp(page, total); clamped != page {
		s.Log.Debug().Int("page", page).Int("total", total).Int("clamped", clamped).Msg("page out of range")
	}
}
