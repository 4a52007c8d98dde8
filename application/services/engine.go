// Package services implements the application layer: the engine that drives
// grid aggregates through moves, learning, and lifecycle operations, and the
// stats aggregator that summarizes a user's grids.
package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lucidia-engine/application/commands"
	"lucidia-engine/application/ports"
	"lucidia-engine/domain/config"
	"lucidia-engine/domain/core/aggregates"
	"lucidia-engine/domain/core/entities"
	"lucidia-engine/domain/core/valueobjects"
	"lucidia-engine/domain/events"
	"lucidia-engine/domain/naming"
	pkgerrors "lucidia-engine/pkg/errors"
	"lucidia-engine/pkg/observability"
	"lucidia-engine/pkg/random"
)

// Engine orchestrates all grid mutations. Every write path acquires the
// per-(user, domain) lock before touching the grid, so each grid sees a
// single writer at a time while distinct grids progress concurrently.
type Engine struct {
	grids    ports.GridRepository
	locks    ports.GridLocker
	namer    *naming.ConceptNamer
	insights ports.InsightGenerator
	bus      ports.EventPublisher
	stats    *StatsService
	cfg      *config.GridConfig
	rng      random.Source
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewEngine creates the grid engine. The insight generator, publisher, and
// metrics may be nil; the engine degrades to doing without them.
func NewEngine(
	grids ports.GridRepository,
	locks ports.GridLocker,
	namer *naming.ConceptNamer,
	insights ports.InsightGenerator,
	bus ports.EventPublisher,
	stats *StatsService,
	cfg *config.GridConfig,
	rng random.Source,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Engine {
	if cfg == nil {
		cfg = config.DefaultGridConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		grids:    grids,
		locks:    locks,
		namer:    namer,
		insights: insights,
		bus:      bus,
		stats:    stats,
		cfg:      cfg,
		rng:      rng,
		metrics:  metrics,
		logger:   logger,
	}
}

// MoveResult reports everything one move changed: the grid after the move,
// the merges that happened during it, and the tile spawned afterward (nil
// when the move changed nothing).
type MoveResult struct {
	Grid    *aggregates.Grid
	Moved   bool
	Merges  []events.TilesMerged
	Spawned *entities.Tile
}

// LearnResult reports the outcome of a learn call. Tile is nil when the
// grid had no empty cell for the new knowledge.
type LearnResult struct {
	Grid *aggregates.Grid
	Tile *entities.Tile
}

// GetOrCreateGrid returns the user's grid for a domain, creating it with the
// configured number of starting tiles when it does not exist yet.
func (e *Engine) GetOrCreateGrid(ctx context.Context, cmd commands.GetOrCreateGridCommand) (*aggregates.Grid, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release := e.locks.Acquire(gridKey(cmd.UserID, cmd.Domain))
	defer release()

	return e.getOrCreateLocked(ctx, cmd.UserID, cmd.Domain, cmd.Size)
}

// ApplyMove compacts the grid in the given direction, spawns a tile if the
// board changed, and updates the win and terminal flags. Moves on a finished
// grid are no-ops that return the grid unchanged.
func (e *Engine) ApplyMove(ctx context.Context, cmd commands.MoveCommand) (*MoveResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	direction, ok := valueobjects.ParseDirection(cmd.Direction)
	if !ok {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("invalid direction: %q", cmd.Direction))
	}

	release := e.locks.Acquire(gridKey(cmd.UserID, cmd.Domain))
	defer release()

	grid, err := e.getOrCreateLocked(ctx, cmd.UserID, cmd.Domain, 0)
	if err != nil {
		return nil, err
	}

	if grid.IsGameOver() {
		return &MoveResult{Grid: grid}, nil
	}

	before := boardFingerprint(grid)

	merges, err := e.compact(grid, direction)
	if err != nil {
		return nil, err
	}
	for i := range merges {
		if e.insights != nil {
			insight := e.insights.InsightFor(merges[i])
			merges[i].Insight = insight
			grid.AttachInsight(merges[i].ID, insight)
		}
	}

	result := &MoveResult{Grid: grid, Merges: merges}
	result.Moved = len(merges) > 0 || before != boardFingerprint(grid)

	if result.Moved {
		grid.RecordMove(time.Now())
		spawned, spawnErr := e.spawnTile(grid, "", 0)
		if spawnErr != nil {
			return nil, spawnErr
		}
		result.Spawned = spawned
	}

	wonNow := !grid.HasWon() && grid.HighestTile() >= e.cfg.WinTileValue
	if wonNow {
		grid.MarkWon()
	}
	endedNow := !grid.IsGameOver() && !hasValidMoves(grid)
	if endedNow {
		grid.MarkGameOver()
	}

	if err := e.grids.Save(ctx, grid); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to save grid after move")
	}
	e.publishEvents(ctx, grid)

	if e.stats != nil {
		e.stats.RecordMove(cmd.UserID, grid, len(merges))
	}
	if e.metrics != nil {
		if result.Moved {
			e.metrics.MovesApplied.Inc()
		}
		e.metrics.TilesMerged.Add(float64(len(merges)))
		if wonNow {
			e.metrics.GridsWon.Inc()
		}
		if endedNow {
			e.metrics.GridsEnded.Inc()
		}
	}

	e.logger.Debug("move applied",
		zap.String("userId", cmd.UserID),
		zap.String("domain", cmd.Domain),
		zap.String("direction", direction.String()),
		zap.Bool("moved", result.Moved),
		zap.Int("merges", len(merges)),
		zap.Int("score", grid.Score()),
	)

	return result, nil
}

// Learn places a named piece of knowledge on the grid as a new tile. A
// finished grid is discarded and replaced by an empty one first, so learning
// always lands somewhere. A full, still-running grid absorbs nothing and
// returns a nil tile.
func (e *Engine) Learn(ctx context.Context, cmd commands.LearnCommand) (*LearnResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	value := cmd.Value
	if value == 0 {
		value = e.cfg.BaseTileValue
	}
	if !entities.IsValidTileValue(value) {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("tile value must be a power of two >= 2, got %d", value))
	}

	release := e.locks.Acquire(gridKey(cmd.UserID, cmd.Domain))
	defer release()

	grid, err := e.getOrCreateLocked(ctx, cmd.UserID, cmd.Domain, 0)
	if err != nil {
		return nil, err
	}

	if grid.IsGameOver() {
		fresh, err := aggregates.NewGrid(cmd.UserID, cmd.Domain, grid.Size(), e.cfg)
		if err != nil {
			return nil, err
		}
		grid = fresh
		if e.metrics != nil {
			e.metrics.GridsCreated.Inc()
		}
		e.logger.Info("finished grid replaced on learn",
			zap.String("userId", cmd.UserID),
			zap.String("domain", cmd.Domain),
		)
	}

	tile, err := e.spawnTile(grid, cmd.Concept, value)
	if err != nil {
		return nil, err
	}
	if tile != nil {
		grid.RecordLearned(tile, cmd.Context, cmd.Source)
		if e.stats != nil {
			e.stats.RecordLearned(cmd.UserID)
		}
	}

	if err := e.grids.Save(ctx, grid); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to save grid after learn")
	}
	e.publishEvents(ctx, grid)

	return &LearnResult{Grid: grid, Tile: tile}, nil
}

// ResetGrid discards the grid for a (user, domain) pair and recreates it at
// the default size with fresh starting tiles.
func (e *Engine) ResetGrid(ctx context.Context, cmd commands.ResetGridCommand) (*aggregates.Grid, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release := e.locks.Acquire(gridKey(cmd.UserID, cmd.Domain))
	defer release()

	if err := e.grids.Delete(ctx, cmd.UserID, cmd.Domain); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to delete grid for reset")
	}

	return e.getOrCreateLocked(ctx, cmd.UserID, cmd.Domain, 0)
}

// GetAllGrids returns a snapshot of every grid a user has, in domain
// first-seen order. Each clone is taken under the grid's key lock, so the
// returned grids are consistent and safe to read while moves continue.
func (e *Engine) GetAllGrids(ctx context.Context, userID string) ([]*aggregates.Grid, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}

	grids, err := e.grids.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*aggregates.Grid, 0, len(grids))
	for _, grid := range grids {
		release := e.locks.Acquire(gridKey(userID, grid.Domain()))
		snapshots = append(snapshots, grid.Clone())
		release()
	}
	return snapshots, nil
}

// getOrCreateLocked does the fetch-or-create dance; callers hold the key
// lock. Size 0 means the configured default.
func (e *Engine) getOrCreateLocked(ctx context.Context, userID, domain string, size int) (*aggregates.Grid, error) {
	grid, err := e.grids.Get(ctx, userID, domain)
	if err == nil {
		return grid, nil
	}
	if !pkgerrors.IsNotFound(err) {
		return nil, pkgerrors.Wrap(err, "failed to get grid")
	}

	if size == 0 {
		size = e.cfg.DefaultGridSize
	}

	grid, err = aggregates.NewGrid(userID, domain, size, e.cfg)
	if err != nil {
		return nil, err
	}

	for i := 0; i < e.cfg.InitialTileCount; i++ {
		if _, err := e.spawnTile(grid, "", 0); err != nil {
			return nil, err
		}
	}

	if err := e.grids.Save(ctx, grid); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to save new grid")
	}
	e.publishEvents(ctx, grid)

	if e.metrics != nil {
		e.metrics.GridsCreated.Inc()
	}
	e.logger.Info("grid created",
		zap.String("gridId", grid.ID().String()),
		zap.String("userId", userID),
		zap.String("domain", domain),
		zap.Int("size", size),
	)

	return grid, nil
}

// spawnTile places one tile on a uniformly chosen empty cell. Value 0 means
// the weighted base roll (base value with probability 1-SpawnFourProbability,
// double it otherwise); an empty concept means a vocabulary pick. Returns
// nil when the grid is full.
func (e *Engine) spawnTile(grid *aggregates.Grid, concept string, value int) (*entities.Tile, error) {
	empty := grid.EmptyCells()
	if len(empty) == 0 {
		return nil, nil
	}
	pos := empty[e.rng.Intn(len(empty))]

	if value == 0 {
		value = e.cfg.BaseTileValue
		if e.rng.Float64() < e.cfg.SpawnFourProbability {
			value = e.cfg.BaseTileValue * 2
		}
	}
	if concept == "" {
		concept = e.namer.ForSpawn(grid.Domain(), value)
	}

	tile, err := entities.NewTile(grid.Domain(), concept, value, pos)
	if err != nil {
		return nil, err
	}
	if err := grid.PlaceTile(tile); err != nil {
		return nil, err
	}

	if e.metrics != nil {
		e.metrics.TilesSpawned.Inc()
	}

	return tile, nil
}

// publishEvents drains the grid's uncommitted events into the publisher.
// Publishing is best-effort; a failing bus never rolls back a move.
func (e *Engine) publishEvents(ctx context.Context, grid *aggregates.Grid) {
	batch := grid.GetUncommittedEvents()
	grid.MarkEventsAsCommitted()
	if e.bus == nil || len(batch) == 0 {
		return
	}
	if err := e.bus.Publish(ctx, batch); err != nil {
		e.logger.Warn("failed to publish domain events",
			zap.String("gridId", grid.ID().String()),
			zap.Int("batchSize", len(batch)),
			zap.Error(err),
		)
	}
}

// boardFingerprint summarizes tile placement and values for change
// detection. Row-major order makes it stable.
func boardFingerprint(grid *aggregates.Grid) string {
	fp := ""
	for _, tile := range grid.Tiles() {
		fp += fmt.Sprintf("%s=%d;", tile.Position(), tile.Value())
	}
	return fp
}

func gridKey(userID, domain string) string {
	return userID + "/" + domain
}
