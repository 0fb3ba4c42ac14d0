package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/five82/foodie/internal/cookbook"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Cookbook            cookbook.Cookbook
	HasCookbook         bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive refresh failures
}

// IsOffline returns true when the backend has been unreachable for multiple refreshes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Source is anything that can produce the current cookbook.
type Source interface {
	Cookbook(ctx context.Context) (cookbook.Cookbook, error)
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored cookbook. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(cb cookbook.Cookbook, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Cookbook = cb.Clone()
	s.snapshot.HasCookbook = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Refresh fetches the cookbook from src and records the outcome.
func (s *Store) Refresh(ctx context.Context, src Source) error {
	cb, err := src.Cookbook(ctx)
	s.Update(cb, err)
	return err
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Cookbook = s.snapshot.Cookbook.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
