// Package ports declares the interfaces the engine depends on. They are
// ports in the hexagonal sense: the application layer does not know which
// side of the process boundary an implementation lives on.
package ports

import (
	"context"

	"lucidia-engine/domain/core/aggregates"
	"lucidia-engine/domain/events"
)

// GridRepository stores grids keyed by (user, domain). Implementations must
// preserve per-user domain insertion order: GetByUserID returns grids in
// first-seen order, which the stats aggregator relies on for tie-breaking.
type GridRepository interface {
	// Get retrieves the grid for a (user, domain) pair; a NotFound error
	// means no grid exists yet
	Get(ctx context.Context, userID, domain string) (*aggregates.Grid, error)

	// Save persists a grid (create or replace)
	Save(ctx context.Context, grid *aggregates.Grid) error

	// Delete removes the grid for a (user, domain) pair; deleting a missing
	// grid is a no-op
	Delete(ctx context.Context, userID, domain string) error

	// GetByUserID retrieves all grids for a user in domain first-seen order
	GetByUserID(ctx context.Context, userID string) ([]*aggregates.Grid, error)
}

// GridLocker provides the single-writer discipline per (user, domain) key.
// Acquire blocks until the key is exclusively held and returns the release
// function; operations on different keys proceed in parallel.
type GridLocker interface {
	Acquire(key string) (release func())
}

// EventPublisher receives the domain events drained from a grid after each
// operation
type EventPublisher interface {
	Publish(ctx context.Context, batch []events.DomainEvent) error
}

// InsightGenerator supplies the optional human-readable insight attached to a
// merge event. Implementations live outside the engine's correctness
// contract; the engine works with a nil generator.
type InsightGenerator interface {
	InsightFor(event events.TilesMerged) string
}
