package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"lucidia-engine/application/ports"
	"lucidia-engine/domain/core/aggregates"
	pkgerrors "lucidia-engine/pkg/errors"
)

// UserStats is a snapshot of one user's progress across all their grids.
type UserStats struct {
	UserID            string    `json:"user_id"`
	TotalDomains      int       `json:"total_domains"`
	TotalTiles        int       `json:"total_tiles"`
	TotalScore        int       `json:"total_score"`
	TotalMerges       int       `json:"total_merges"`
	HighestTileEver   int       `json:"highest_tile_ever"`
	HighestTileDomain string    `json:"highest_tile_domain"`
	DomainsMastered   []string  `json:"domains_mastered"`
	StrongestDomain   string    `json:"strongest_domain"`
	WeakestDomain     string    `json:"weakest_domain"`
	LastLearnedAt     time.Time `json:"last_learned_at"`
}

// userTally holds the counters that cannot be recomputed from grid state
// alone: merge totals survive grid resets, the mastered list keeps its
// win order, and the high-water tile outlives the grid it appeared on.
type userTally struct {
	totalMerges       int
	highestTileEver   int
	highestTileDomain string
	domainsMastered   []string
	masteredSeen      map[string]bool
	lastLearnedAt     time.Time
}

// StatsService aggregates per-user statistics. Incremental counters are
// updated as the engine reports activity; per-grid figures are recomputed
// from the repository on read. Reads take the same per-(user, domain) lock
// the engine writes under, so a stats read never observes a grid mid-move.
type StatsService struct {
	mu     sync.Mutex
	grids  ports.GridRepository
	locks  ports.GridLocker
	users  map[string]*userTally
	logger *zap.Logger
}

// NewStatsService creates the stats aggregator.
func NewStatsService(grids ports.GridRepository, locks ports.GridLocker, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{
		grids:  grids,
		locks:  locks,
		users:  make(map[string]*userTally),
		logger: logger,
	}
}

// RecordMove folds one move's outcome into the user's running counters.
func (s *StatsService) RecordMove(userID string, grid *aggregates.Grid, mergeCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tally := s.tallyFor(userID)
	tally.totalMerges += mergeCount
	if grid.HighestTile() > tally.highestTileEver {
		tally.highestTileEver = grid.HighestTile()
		tally.highestTileDomain = grid.Domain()
	}
	if grid.HasWon() && !tally.masteredSeen[grid.Domain()] {
		tally.masteredSeen[grid.Domain()] = true
		tally.domainsMastered = append(tally.domainsMastered, grid.Domain())
	}
}

// RecordLearned stamps the user's last learning time.
func (s *StatsService) RecordLearned(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tallyFor(userID).lastLearnedAt = time.Now()
}

// GetStats builds the full snapshot for a user. Grids are scanned in domain
// first-seen order so strongest and weakest ties resolve to the earlier
// domain.
func (s *StatsService) GetStats(ctx context.Context, userID string) (*UserStats, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}

	grids, err := s.grids.GetByUserID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list grids for stats")
	}

	// Read each grid under its own key lock; a move on the same grid cannot
	// interleave with the read. Domain is immutable and safe to key on.
	type gridFigures struct {
		domain  string
		tiles   int
		score   int
		highest int
	}
	figures := make([]gridFigures, 0, len(grids))
	for _, grid := range grids {
		release := s.locks.Acquire(gridKey(userID, grid.Domain()))
		figures = append(figures, gridFigures{
			domain:  grid.Domain(),
			tiles:   grid.TileCount(),
			score:   grid.Score(),
			highest: grid.HighestTile(),
		})
		release()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &UserStats{UserID: userID, DomainsMastered: []string{}}
	if tally, ok := s.users[userID]; ok {
		stats.TotalMerges = tally.totalMerges
		stats.HighestTileEver = tally.highestTileEver
		stats.HighestTileDomain = tally.highestTileDomain
		stats.DomainsMastered = append(stats.DomainsMastered, tally.domainsMastered...)
		stats.LastLearnedAt = tally.lastLearnedAt
	}

	strongest, weakest := 0, 0
	for i, grid := range figures {
		stats.TotalDomains++
		stats.TotalTiles += grid.tiles
		stats.TotalScore += grid.score

		if grid.highest > stats.HighestTileEver {
			stats.HighestTileEver = grid.highest
			stats.HighestTileDomain = grid.domain
		}
		if grid.highest > figures[strongest].highest {
			strongest = i
		}
		if grid.highest < figures[weakest].highest {
			weakest = i
		}
	}
	if len(figures) > 0 {
		stats.StrongestDomain = figures[strongest].domain
		stats.WeakestDomain = figures[weakest].domain
	}

	return stats, nil
}

func (s *StatsService) tallyFor(userID string) *userTally {
	tally, ok := s.users[userID]
	if !ok {
		tally = &userTally{masteredSeen: make(map[string]bool)}
		s.users[userID] = tally
	}
	return tally
}
