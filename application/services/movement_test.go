package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lucidia-engine/domain/config"
	"lucidia-engine/domain/core/aggregates"
	"lucidia-engine/domain/core/entities"
	"lucidia-engine/domain/core/valueobjects"
	"lucidia-engine/domain/naming"
	"lucidia-engine/infrastructure/eventlog"
	"lucidia-engine/infrastructure/locking"
	"lucidia-engine/infrastructure/persistence/memory"
	"lucidia-engine/pkg/random"
)

// scriptSource replays scripted values and falls back to fixed defaults:
// Intn picks the first option, Float64 rolls the common case.
type scriptSource struct {
	ints   []int
	floats []float64
}

func (s *scriptSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newTestEngine(t *testing.T) (*Engine, *memory.GridStore, *eventlog.MemoryLog, *scriptSource) {
	t.Helper()
	store := memory.NewGridStore(zap.NewNop())
	log := eventlog.NewMemoryLog()
	rng := &scriptSource{}
	locks := locking.NewKeyedLock()
	engine := NewEngine(
		store,
		locks,
		naming.NewConceptNamer(random.New(1)),
		nil,
		log,
		NewStatsService(store, locks, zap.NewNop()),
		config.DefaultGridConfig(),
		rng,
		nil,
		zap.NewNop(),
	)
	return engine, store, log, rng
}

func buildGrid(t *testing.T, size int, tiles map[valueobjects.Position]int) *aggregates.Grid {
	t.Helper()
	cfg := config.DefaultGridConfig()
	grid, err := aggregates.NewGrid("user-1", "python", size, cfg)
	require.NoError(t, err)

	concepts := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
		"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi"}
	i := 0
	for _, pos := range sortedPositions(tiles) {
		tile, err := entities.NewTile("python", concepts[i], tiles[pos], pos)
		require.NoError(t, err)
		require.NoError(t, grid.PlaceTile(tile))
		i++
	}
	grid.MarkEventsAsCommitted()
	return grid
}

func sortedPositions(tiles map[valueobjects.Position]int) []valueobjects.Position {
	positions := make([]valueobjects.Position, 0, len(tiles))
	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			pos := valueobjects.NewPosition(row, col)
			if _, ok := tiles[pos]; ok {
				positions = append(positions, pos)
			}
		}
	}
	return positions
}

func valueAt(t *testing.T, grid *aggregates.Grid, row, col int) int {
	t.Helper()
	tile, ok := grid.TileAt(valueobjects.NewPosition(row, col))
	if !ok {
		return 0
	}
	return tile.Value()
}

func TestCompactLeft(t *testing.T) {
	t.Run("pair at the edge merges once and the rest slides", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)
		grid := buildGrid(t, 4, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 2,
			valueobjects.NewPosition(0, 2): 4,
		})

		merges, err := engine.compact(grid, valueobjects.DirectionLeft)

		require.NoError(t, err)
		require.Len(t, merges, 1)
		assert.Equal(t, 4, valueAt(t, grid, 0, 0))
		assert.Equal(t, 4, valueAt(t, grid, 0, 1))
		assert.Equal(t, 0, valueAt(t, grid, 0, 2))
		assert.Equal(t, 4, grid.Score())
		assert.Equal(t, 2, grid.TileCount())
	})

	t.Run("three equal tiles merge near the edge only", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)
		grid := buildGrid(t, 4, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 2,
			valueobjects.NewPosition(0, 2): 2,
		})

		merges, err := engine.compact(grid, valueobjects.DirectionLeft)

		require.NoError(t, err)
		require.Len(t, merges, 1)
		assert.Equal(t, 4, valueAt(t, grid, 0, 0))
		assert.Equal(t, 2, valueAt(t, grid, 0, 1))
		assert.Equal(t, 0, valueAt(t, grid, 0, 2))
	})

	t.Run("merge results never merge again in the same move", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)
		grid := buildGrid(t, 4, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 2,
			valueobjects.NewPosition(0, 2): 2,
			valueobjects.NewPosition(0, 3): 2,
		})

		merges, err := engine.compact(grid, valueobjects.DirectionLeft)

		require.NoError(t, err)
		require.Len(t, merges, 2)
		assert.Equal(t, 4, valueAt(t, grid, 0, 0))
		assert.Equal(t, 4, valueAt(t, grid, 0, 1))
		assert.Equal(t, 2, grid.TileCount())
		assert.Equal(t, 8, grid.Score())
	})
}

func TestCompactRight(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	grid := buildGrid(t, 4, map[valueobjects.Position]int{
		valueobjects.NewPosition(0, 0): 2,
		valueobjects.NewPosition(0, 1): 2,
		valueobjects.NewPosition(0, 2): 4,
	})

	merges, err := engine.compact(grid, valueobjects.DirectionRight)

	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, 4, valueAt(t, grid, 0, 2))
	assert.Equal(t, 4, valueAt(t, grid, 0, 3))
	assert.Equal(t, 2, grid.TileCount())
}

func TestCompactVertical(t *testing.T) {
	t.Run("up merges toward row zero", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)
		grid := buildGrid(t, 4, map[valueobjects.Position]int{
			valueobjects.NewPosition(1, 2): 8,
			valueobjects.NewPosition(3, 2): 8,
		})

		merges, err := engine.compact(grid, valueobjects.DirectionUp)

		require.NoError(t, err)
		require.Len(t, merges, 1)
		assert.Equal(t, 16, valueAt(t, grid, 0, 2))
		assert.Equal(t, 1, grid.TileCount())
	})

	t.Run("down slides columns independently", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)
		grid := buildGrid(t, 4, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 4,
			valueobjects.NewPosition(2, 1): 8,
		})

		merges, err := engine.compact(grid, valueobjects.DirectionDown)

		require.NoError(t, err)
		assert.Empty(t, merges)
		assert.Equal(t, 2, valueAt(t, grid, 3, 0))
		assert.Equal(t, 8, valueAt(t, grid, 3, 1))
		assert.Equal(t, 4, valueAt(t, grid, 2, 1))
	})
}

func TestCompactBlockedByUnequalTile(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	grid := buildGrid(t, 4, map[valueobjects.Position]int{
		valueobjects.NewPosition(0, 0): 4,
		valueobjects.NewPosition(0, 3): 2,
	})

	merges, err := engine.compact(grid, valueobjects.DirectionLeft)

	require.NoError(t, err)
	assert.Empty(t, merges)
	assert.Equal(t, 4, valueAt(t, grid, 0, 0))
	assert.Equal(t, 2, valueAt(t, grid, 0, 1))
}

func TestCompactMergedConceptLabel(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	grid := buildGrid(t, 4, map[valueobjects.Position]int{
		valueobjects.NewPosition(0, 0): 2,
		valueobjects.NewPosition(0, 1): 2,
	})

	merges, err := engine.compact(grid, valueobjects.DirectionLeft)

	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "alpha↔beta", merges[0].ResultConcept)

	survivor, ok := grid.TileAt(valueobjects.NewPosition(0, 0))
	require.True(t, ok)
	assert.Equal(t, "alpha↔beta", survivor.Concept())
	assert.Equal(t, []string{"beta"}, survivor.SourceConcepts())
}

func TestHasValidMoves(t *testing.T) {
	t.Run("empty cell means moves remain", func(t *testing.T) {
		grid := buildGrid(t, 2, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
		})
		assert.True(t, hasValidMoves(grid))
	})

	t.Run("full board with an adjacent pair still has moves", func(t *testing.T) {
		grid := buildGrid(t, 2, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 2,
			valueobjects.NewPosition(1, 0): 4,
			valueobjects.NewPosition(1, 1): 8,
		})
		assert.True(t, hasValidMoves(grid))
	})

	t.Run("full checkerboard is terminal", func(t *testing.T) {
		grid := buildGrid(t, 2, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 4,
			valueobjects.NewPosition(1, 0): 4,
			valueobjects.NewPosition(1, 1): 2,
		})
		assert.False(t, hasValidMoves(grid))
	})

	t.Run("diagonal equals do not count", func(t *testing.T) {
		grid := buildGrid(t, 2, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 4,
			valueobjects.NewPosition(1, 0): 8,
			valueobjects.NewPosition(1, 1): 2,
		})
		assert.False(t, hasValidMoves(grid))
	})
}
