// Package usecase contains application-level services.
package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tesso57/anthers/internal/domain/sidebar"
)

// SidebarStateKey is the storage key for the persisted sidebar snapshot.
const SidebarStateKey = "sidebarState"

// StateStore abstracts persistence for small UI state blobs.
type StateStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// SidebarService loads and saves the sidebar snapshot.
type SidebarService struct {
	Store StateStore
	Log   zerolog.Logger
}

// NewSidebarService constructs a SidebarService.
func NewSidebarService(store StateStore, log zerolog.Logger) SidebarService {
	return SidebarService{Store: store, Log: log.With().Str("component", "sidebar").Logger()}
}

// Load returns the persisted snapshot. The bool is false when nothing usable
// was stored; storage failures and corrupt data are logged, not returned.
func (s SidebarService) Load() (sidebar.Snapshot, bool) {
	if s.Store == nil {
		return sidebar.Snapshot{}, false
	}
	raw, ok, err := s.Store.Get(SidebarStateKey)
	if err != nil {
		s.Log.Warn().Err(err).Msg("failed to load sidebar state")
		return sidebar.Snapshot{}, false
	}
	if !ok {
		return sidebar.Snapshot{}, false
	}

	var snap sidebar.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.Log.Warn().Err(err).Str("value", raw).Msg("ignoring corrupt sidebar state")
		return sidebar.Snapshot{}, false
	}
	return snap, true
}

// Save persists the snapshot of state.
func (s SidebarService) Save(state sidebar.State) error {
	if s.Store == nil {
		return nil
	}
	data, err := json.Marshal(state.Snapshot())
	if err != nil {
		return fmt.Errorf("encode sidebar state: %w", err)
	}
	if err := s.Store.Set(SidebarStateKey, string(data)); err != nil {
		s.Log.Warn().Err(err).Msg("failed to save sidebar state")
		return fmt.Errorf("save sidebar state: %w", err)
	}
	return nil
}
