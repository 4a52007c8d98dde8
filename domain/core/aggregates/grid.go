package aggregates

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"lucidia-engine/domain/config"
	"lucidia-engine/domain/core/entities"
	"lucidia-engine/domain/core/valueobjects"
	"lucidia-engine/domain/events"
	pkgerrors "lucidia-engine/pkg/errors"
)

// GridID represents a unique grid identifier
type GridID string

// NewGridID creates a new random GridID
func NewGridID() GridID {
	return GridID(uuid.New().String())
}

// String returns the string representation
func (id GridID) String() string {
	return string(id)
}

// Grid is the aggregate root for one (user, domain) knowledge board.
// It owns its tiles and enforces the occupancy and scoring invariants; the
// movement and merge algorithms live in the engine, which drives the grid
// through the state-transition methods below.
type Grid struct {
	id          GridID
	userID      string
	domain      string
	size        int
	maxLineage  int
	tiles       map[valueobjects.Position]*entities.Tile
	score       int
	highestTile int
	moveCount   int
	gameOver    bool
	won         bool
	createdAt   time.Time
	lastMoveAt  time.Time
	events      []events.DomainEvent
}

// NewGrid creates an empty grid aggregate. Starting tiles are spawned by the
// engine, not here.
func NewGrid(userID, domain string, size int, cfg *config.GridConfig) (*Grid, error) {
	if cfg == nil {
		cfg = config.DefaultGridConfig()
	}

	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if domain == "" {
		return nil, pkgerrors.NewValidationError("domain cannot be empty")
	}
	if size < cfg.MinGridSize || size > cfg.MaxGridSize {
		return nil, pkgerrors.NewValidationError(
			fmt.Sprintf("grid size must be between %d and %d, got %d", cfg.MinGridSize, cfg.MaxGridSize, size))
	}

	now := time.Now()
	grid := &Grid{
		id:         NewGridID(),
		userID:     userID,
		domain:     domain,
		size:       size,
		maxLineage: cfg.MaxSourceConcepts,
		tiles:      make(map[valueobjects.Position]*entities.Tile),
		createdAt:  now,
		events:     []events.DomainEvent{},
	}

	grid.addEvent(events.NewGridCreated(grid.id.String(), userID, domain, size, now))

	return grid, nil
}

// ID returns the grid's unique identifier
func (g *Grid) ID() GridID {
	return g.id
}

// UserID returns the owner's ID
func (g *Grid) UserID() string {
	return g.userID
}

// Domain returns the knowledge domain this grid tracks
func (g *Grid) Domain() string {
	return g.domain
}

// Size returns the board edge length
func (g *Grid) Size() int {
	return g.size
}

// Score returns the accumulated score; monotonically non-decreasing
func (g *Grid) Score() int {
	return g.score
}

// HighestTile returns the highest tile value ever seen on this grid
func (g *Grid) HighestTile() int {
	return g.highestTile
}

// MoveCount returns how many effective moves have been applied
func (g *Grid) MoveCount() int {
	return g.moveCount
}

// IsGameOver reports whether no legal move remains
func (g *Grid) IsGameOver() bool {
	return g.gameOver
}

// HasWon reports whether a tile has ever reached the win value
func (g *Grid) HasWon() bool {
	return g.won
}

// CreatedAt returns when the grid was created
func (g *Grid) CreatedAt() time.Time {
	return g.createdAt
}

// LastMoveAt returns when the last effective move was applied; zero if none
func (g *Grid) LastMoveAt() time.Time {
	return g.lastMoveAt
}

// TileCount returns the number of tiles on the board
func (g *Grid) TileCount() int {
	return len(g.tiles)
}

// IsFull reports whether no empty cell remains
func (g *Grid) IsFull() bool {
	return len(g.tiles) >= g.size*g.size
}

// TileAt returns the tile occupying the given cell, if any
func (g *Grid) TileAt(pos valueobjects.Position) (*entities.Tile, bool) {
	tile, ok := g.tiles[pos]
	return tile, ok
}

// Tiles returns all tiles in row-major order
func (g *Grid) Tiles() []*entities.Tile {
	tiles := make([]*entities.Tile, 0, len(g.tiles))
	for _, tile := range g.tiles {
		tiles = append(tiles, tile)
	}
	sort.Slice(tiles, func(i, j int) bool {
		pi, pj := tiles[i].Position(), tiles[j].Position()
		if pi.Row != pj.Row {
			return pi.Row < pj.Row
		}
		return pi.Col < pj.Col
	})
	return tiles
}

// EmptyCells returns the unoccupied positions in row-major order
func (g *Grid) EmptyCells() []valueobjects.Position {
	empty := make([]valueobjects.Position, 0, g.size*g.size-len(g.tiles))
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			pos := valueobjects.NewPosition(row, col)
			if _, occupied := g.tiles[pos]; !occupied {
				empty = append(empty, pos)
			}
		}
	}
	return empty
}

// Board returns the grid as a size×size array; nil marks an empty cell
func (g *Grid) Board() [][]*entities.Tile {
	board := make([][]*entities.Tile, g.size)
	for row := 0; row < g.size; row++ {
		board[row] = make([]*entities.Tile, g.size)
		for col := 0; col < g.size; col++ {
			board[row][col] = g.tiles[valueobjects.NewPosition(row, col)]
		}
	}
	return board
}

// TotalKnowledge returns the sum of all tile values
func (g *Grid) TotalKnowledge() int {
	total := 0
	for _, tile := range g.tiles {
		total += tile.Value()
	}
	return total
}

// AverageMastery returns the mean tile value; 0 for an empty board
func (g *Grid) AverageMastery() float64 {
	if len(g.tiles) == 0 {
		return 0
	}
	return float64(g.TotalKnowledge()) / float64(len(g.tiles))
}

// State transitions, driven by the engine

// PlaceTile puts a tile on an empty in-bounds cell
func (g *Grid) PlaceTile(tile *entities.Tile) error {
	if tile == nil {
		return pkgerrors.NewValidationError("tile cannot be nil")
	}
	if tile.Domain() != g.domain {
		return pkgerrors.NewValidationError("tile domain does not match grid domain")
	}

	pos := tile.Position()
	if !pos.InBounds(g.size) {
		return pkgerrors.NewValidationError(fmt.Sprintf("position %s out of bounds for size %d", pos, g.size))
	}
	if _, occupied := g.tiles[pos]; occupied {
		return pkgerrors.NewConflictError(fmt.Sprintf("cell %s already occupied", pos))
	}

	g.tiles[pos] = tile
	if tile.Value() > g.highestTile {
		g.highestTile = tile.Value()
	}

	g.addEvent(events.NewTileSpawned(
		g.id.String(), tile.ID(), g.userID, g.domain,
		tile.Concept(), tile.Value(), pos, time.Now(),
	))

	return nil
}

// MoveTile relocates the tile at from to an empty in-bounds cell at to
func (g *Grid) MoveTile(from, to valueobjects.Position) error {
	tile, ok := g.tiles[from]
	if !ok {
		return pkgerrors.NewNotFoundError(fmt.Sprintf("tile at %s", from))
	}
	if from.Equals(to) {
		return nil
	}
	if !to.InBounds(g.size) {
		return pkgerrors.NewValidationError(fmt.Sprintf("position %s out of bounds for size %d", to, g.size))
	}
	if _, occupied := g.tiles[to]; occupied {
		return pkgerrors.NewConflictError(fmt.Sprintf("cell %s already occupied", to))
	}

	delete(g.tiles, from)
	tile.MoveTo(to)
	g.tiles[to] = tile

	return nil
}

// MergeTiles merges the mover tile into the stationary target tile. The
// target survives with doubled value and the merged concept; the mover is
// removed and its identity discarded. Score rises by the post-merge value.
// The returned TilesMerged event reports the pre-merge values and concepts
// of both inputs.
func (g *Grid) MergeTiles(target, mover valueobjects.Position, mergedConcept string) (events.TilesMerged, error) {
	targetTile, ok := g.tiles[target]
	if !ok {
		return events.TilesMerged{}, pkgerrors.NewNotFoundError(fmt.Sprintf("tile at %s", target))
	}
	moverTile, ok := g.tiles[mover]
	if !ok {
		return events.TilesMerged{}, pkgerrors.NewNotFoundError(fmt.Sprintf("tile at %s", mover))
	}
	if target.Equals(mover) {
		return events.TilesMerged{}, pkgerrors.NewConflictError("cannot merge a tile with itself")
	}

	// Capture before the in-place mutation; the event reports both inputs as
	// they were when they collided.
	now := time.Now()
	sourceValue := targetTile.Value()
	firstConcept := targetTile.Concept()
	secondConcept := moverTile.Concept()

	targetTile.Absorb(moverTile, mergedConcept, now)
	targetTile.TrimLineage(g.maxLineage)
	delete(g.tiles, mover)

	g.score += targetTile.Value()
	if targetTile.Value() > g.highestTile {
		g.highestTile = targetTile.Value()
	}

	event := events.NewTilesMerged(
		g.id.String(), g.userID, g.domain,
		firstConcept, secondConcept, sourceValue,
		mergedConcept, targetTile.Value(), target, now,
	)
	g.addEvent(event)

	return event, nil
}

// RecordMove increments the move counter and stamps the move time
func (g *Grid) RecordMove(now time.Time) {
	g.moveCount++
	g.lastMoveAt = now
}

// MarkWon latches the win flag; idempotent and never reset
func (g *Grid) MarkWon() {
	if g.won {
		return
	}
	g.won = true
	g.addEvent(events.NewGridWon(g.id.String(), g.userID, g.domain, g.highestTile, time.Now()))
}

// MarkGameOver latches the terminal flag; idempotent
func (g *Grid) MarkGameOver() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.addEvent(events.NewGridEnded(g.id.String(), g.userID, g.domain, g.score, g.moveCount, time.Now()))
}

// RecordLearned appends a KnowledgeLearned event for a tile placed through a
// learn call
func (g *Grid) RecordLearned(tile *entities.Tile, learnContext, source string) {
	g.addEvent(events.NewKnowledgeLearned(
		g.id.String(), tile.ID(), g.userID, g.domain,
		tile.Concept(), tile.Value(), learnContext, source, time.Now(),
	))
}

// Validate ensures grid invariants
func (g *Grid) Validate() error {
	if len(g.tiles) > g.size*g.size {
		return pkgerrors.NewInternalError("tile count exceeds grid capacity")
	}

	maxValue := 0
	for pos, tile := range g.tiles {
		if !pos.InBounds(g.size) {
			return pkgerrors.NewInternalError(fmt.Sprintf("tile at %s out of bounds", pos))
		}
		if !pos.Equals(tile.Position()) {
			return pkgerrors.NewInternalError(fmt.Sprintf("tile position %s disagrees with cell %s", tile.Position(), pos))
		}
		if tile.Value() > maxValue {
			maxValue = tile.Value()
		}
	}
	if maxValue > g.highestTile {
		return pkgerrors.NewInternalError("highest tile lags behind board state")
	}

	return nil
}

// AttachInsight sets the insight on the uncommitted merge event with the
// given ID, if it is still uncommitted. Insight is presentation data; a
// missing event is not an error.
func (g *Grid) AttachInsight(eventID, insight string) {
	for i, event := range g.events {
		if merged, ok := event.(events.TilesMerged); ok && merged.ID == eventID {
			merged.Insight = insight
			g.events[i] = merged
			return
		}
	}
}

// Clone returns a deep copy of the grid for readers outside the grid's
// single-writer scope. Tiles are duplicated; uncommitted events are not
// carried over.
func (g *Grid) Clone() *Grid {
	clone := *g
	clone.tiles = make(map[valueobjects.Position]*entities.Tile, len(g.tiles))
	for pos, tile := range g.tiles {
		clone.tiles[pos] = tile.Clone()
	}
	clone.events = []events.DomainEvent{}
	return &clone
}

// GetUncommittedEvents returns all uncommitted domain events
func (g *Grid) GetUncommittedEvents() []events.DomainEvent {
	allEvents := make([]events.DomainEvent, len(g.events))
	copy(allEvents, g.events)
	return allEvents
}

// MarkEventsAsCommitted clears all uncommitted events
func (g *Grid) MarkEventsAsCommitted() {
	g.events = []events.DomainEvent{}
}

func (g *Grid) addEvent(event events.DomainEvent) {
	g.events = append(g.events, event)
}
