package entities

import (
	"fmt"
	"strings"
	"time"

	"lucidia-engine/domain/core/valueobjects"
	pkgerrors "lucidia-engine/pkg/errors"
)

// Tile is the atomic unit of tracked knowledge: a power-of-two value, a
// concept label, and a cell on its owning grid. A tile's value only ever
// grows, and only by absorbing an equal-valued tile.
type Tile struct {
	// Private fields ensure encapsulation
	id             valueobjects.TileID
	value          int
	concept        string
	domain         string
	position       valueobjects.Position
	mergeCount     int
	sourceConcepts []string
	createdAt      time.Time
	lastMergedAt   time.Time
}

// NewTile creates a tile with full business rule validation. The position is
// validated against grid bounds by the owning grid, not here.
func NewTile(domain, concept string, value int, position valueobjects.Position) (*Tile, error) {
	domain = strings.TrimSpace(domain)
	concept = strings.TrimSpace(concept)

	if domain == "" {
		return nil, pkgerrors.NewValidationError("tile domain cannot be empty")
	}
	if concept == "" {
		return nil, pkgerrors.NewValidationError("tile concept cannot be empty")
	}
	if !IsValidTileValue(value) {
		return nil, pkgerrors.NewValidationError(
			fmt.Sprintf("tile value must be a power of two, minimum 2, got %d", value))
	}

	return &Tile{
		id:             valueobjects.NewTileID(),
		value:          value,
		concept:        concept,
		domain:         domain,
		position:       position,
		sourceConcepts: []string{},
		createdAt:      time.Now(),
	}, nil
}

// IsValidTileValue reports whether v is a power of two no smaller than 2.
func IsValidTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// ID returns the tile's unique identifier
func (t *Tile) ID() valueobjects.TileID {
	return t.id
}

// Value returns the tile's knowledge value
func (t *Tile) Value() int {
	return t.value
}

// Concept returns the tile's concept label
func (t *Tile) Concept() string {
	return t.concept
}

// Domain returns the knowledge domain; immutable after creation
func (t *Tile) Domain() string {
	return t.domain
}

// Position returns the tile's cell on the owning grid
func (t *Tile) Position() valueobjects.Position {
	return t.position
}

// MergeCount returns how many merges this tile has survived
func (t *Tile) MergeCount() int {
	return t.mergeCount
}

// SourceConcepts returns the concepts absorbed into this tile, oldest first
func (t *Tile) SourceConcepts() []string {
	// Return a copy to maintain encapsulation
	concepts := make([]string, len(t.sourceConcepts))
	copy(concepts, t.sourceConcepts)
	return concepts
}

// CreatedAt returns when the tile was spawned
func (t *Tile) CreatedAt() time.Time {
	return t.createdAt
}

// LastMergedAt returns when the tile last survived a merge; zero if never
func (t *Tile) LastMergedAt() time.Time {
	return t.lastMergedAt
}

// Mastery returns the mastery level for the tile's current value
func (t *Tile) Mastery() valueobjects.MasteryLevel {
	return valueobjects.MasteryForValue(t.value)
}

// Color returns the display color for the tile's current value
func (t *Tile) Color() string {
	return valueobjects.ColorForValue(t.value)
}

// MoveTo relocates the tile. Bounds and occupancy are the owning grid's
// responsibility; the entity records the new cell.
func (t *Tile) MoveTo(position valueobjects.Position) {
	t.position = position
}

// Absorb merges another tile into this one: the value doubles, the concept
// becomes the synthesized label, and the other tile's lineage is appended.
// The caller removes the absorbed tile from the grid afterwards.
//
// Calling Absorb with an unequal-valued tile is a programming error in the
// movement algorithm, which must only pair equal tiles; it panics rather than
// returning a recoverable error.
func (t *Tile) Absorb(other *Tile, mergedConcept string, now time.Time) {
	if other == nil {
		panic("entities: absorb of nil tile")
	}
	if t.value != other.value {
		panic(fmt.Sprintf("entities: absorb of unequal tiles: %d vs %d", t.value, other.value))
	}

	t.value += other.value
	t.concept = mergedConcept
	t.mergeCount++
	t.lastMergedAt = now
	t.sourceConcepts = append(t.sourceConcepts, other.concept)
	t.sourceConcepts = append(t.sourceConcepts, other.sourceConcepts...)
}

// TrimLineage truncates the absorbed-concept history to at most max entries,
// dropping the oldest overflow. Max <= 0 means unlimited.
func (t *Tile) TrimLineage(max int) {
	if max <= 0 || len(t.sourceConcepts) <= max {
		return
	}
	t.sourceConcepts = t.sourceConcepts[len(t.sourceConcepts)-max:]
}

// Clone returns a deep copy sharing the tile's identity. Mutating the clone
// never touches the original.
func (t *Tile) Clone() *Tile {
	clone := *t
	clone.sourceConcepts = append([]string(nil), t.sourceConcepts...)
	return &clone
}
