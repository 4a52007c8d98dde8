// Package memory implements the grid repository on process memory. The
// engine's single-writer locking serializes writes per grid; the store's own
// lock only protects its maps.
package memory

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"lucidia-engine/domain/core/aggregates"
	pkgerrors "lucidia-engine/pkg/errors"
)

// GridStore keeps all grids in memory, keyed by user and domain. Domain
// first-seen order is tracked per user so listing is stable across calls.
type GridStore struct {
	mu     sync.RWMutex
	grids  map[string]map[string]*aggregates.Grid
	order  map[string][]string
	logger *zap.Logger
}

// NewGridStore creates an empty store.
func NewGridStore(logger *zap.Logger) *GridStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GridStore{
		grids:  make(map[string]map[string]*aggregates.Grid),
		order:  make(map[string][]string),
		logger: logger,
	}
}

// Get retrieves the grid for a (user, domain) pair.
func (s *GridStore) Get(ctx context.Context, userID, domain string) (*aggregates.Grid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grid, ok := s.grids[userID][domain]
	if !ok {
		return nil, pkgerrors.NewNotFoundError(fmt.Sprintf("grid for user %s in domain %s", userID, domain))
	}
	return grid, nil
}

// Save persists a grid, creating or replacing the entry for its key.
func (s *GridStore) Save(ctx context.Context, grid *aggregates.Grid) error {
	if grid == nil {
		return pkgerrors.NewValidationError("grid cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, domain := grid.UserID(), grid.Domain()
	byDomain, ok := s.grids[userID]
	if !ok {
		byDomain = make(map[string]*aggregates.Grid)
		s.grids[userID] = byDomain
	}
	if _, seen := byDomain[domain]; !seen {
		s.order[userID] = append(s.order[userID], domain)
	}
	byDomain[domain] = grid

	return nil
}

// Delete removes the grid for a (user, domain) pair; missing grids are a
// no-op.
func (s *GridStore) Delete(ctx context.Context, userID, domain string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDomain, ok := s.grids[userID]
	if !ok {
		return nil
	}
	if _, seen := byDomain[domain]; !seen {
		return nil
	}

	delete(byDomain, domain)
	domains := s.order[userID]
	for i, d := range domains {
		if d == domain {
			s.order[userID] = append(domains[:i], domains[i+1:]...)
			break
		}
	}
	if len(byDomain) == 0 {
		delete(s.grids, userID)
		delete(s.order, userID)
	}

	return nil
}

// GetByUserID retrieves all of a user's grids in domain first-seen order.
func (s *GridStore) GetByUserID(ctx context.Context, userID string) ([]*aggregates.Grid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	domains := s.order[userID]
	grids := make([]*aggregates.Grid, 0, len(domains))
	for _, domain := range domains {
		if grid, ok := s.grids[userID][domain]; ok {
			grids = append(grids, grid)
		}
	}
	return grids, nil
}
