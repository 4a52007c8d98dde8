package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidia-engine/application/commands"
	"lucidia-engine/domain/core/valueobjects"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user gets an empty snapshot", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)

		stats, err := engine.stats.GetStats(ctx, "nobody")

		require.NoError(t, err)
		assert.Equal(t, "nobody", stats.UserID)
		assert.Equal(t, 0, stats.TotalDomains)
		assert.Equal(t, 0, stats.TotalMerges)
		assert.Empty(t, stats.DomainsMastered)
		assert.Empty(t, stats.StrongestDomain)
	})

	t.Run("totals sum across domains", func(t *testing.T) {
		engine, store, _, _ := newTestEngine(t)
		python := buildGrid(t, 4, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 2,
		})
		require.NoError(t, store.Save(ctx, python))
		_, err := engine.ApplyMove(ctx, commands.MoveCommand{
			UserID: "user-1", Domain: "python", Direction: "left",
		})
		require.NoError(t, err)

		_, err = engine.GetOrCreateGrid(ctx, commands.GetOrCreateGridCommand{
			UserID: "user-1", Domain: "algorithms",
		})
		require.NoError(t, err)

		stats, err := engine.stats.GetStats(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalDomains)
		assert.Equal(t, 4, stats.TotalScore)
		assert.Equal(t, 1, stats.TotalMerges)
		assert.Equal(t, 4, stats.HighestTileEver)
		assert.Equal(t, "python", stats.HighestTileDomain)
	})

	t.Run("strongest and weakest resolve score ties to the earlier domain", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)
		for _, domain := range []string{"python", "algorithms"} {
			_, err := engine.GetOrCreateGrid(ctx, commands.GetOrCreateGridCommand{
				UserID: "user-1", Domain: domain,
			})
			require.NoError(t, err)
		}

		stats, err := engine.stats.GetStats(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "python", stats.StrongestDomain)
		assert.Equal(t, "python", stats.WeakestDomain)
	})

	t.Run("merge totals survive a grid reset", func(t *testing.T) {
		engine, store, _, _ := newTestEngine(t)
		grid := buildGrid(t, 4, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 2,
			valueobjects.NewPosition(0, 1): 2,
		})
		require.NoError(t, store.Save(ctx, grid))
		_, err := engine.ApplyMove(ctx, commands.MoveCommand{
			UserID: "user-1", Domain: "python", Direction: "left",
		})
		require.NoError(t, err)

		_, err = engine.ResetGrid(ctx, commands.ResetGridCommand{UserID: "user-1", Domain: "python"})
		require.NoError(t, err)

		stats, err := engine.stats.GetStats(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalMerges)
		assert.Equal(t, 4, stats.HighestTileEver)
	})

	t.Run("winning a domain adds it to the mastered list once", func(t *testing.T) {
		engine, store, _, _ := newTestEngine(t)
		grid := buildGrid(t, 4, map[valueobjects.Position]int{
			valueobjects.NewPosition(0, 0): 1024,
			valueobjects.NewPosition(0, 1): 1024,
		})
		require.NoError(t, store.Save(ctx, grid))
		_, err := engine.ApplyMove(ctx, commands.MoveCommand{
			UserID: "user-1", Domain: "python", Direction: "left",
		})
		require.NoError(t, err)
		_, err = engine.ApplyMove(ctx, commands.MoveCommand{
			UserID: "user-1", Domain: "python", Direction: "down",
		})
		require.NoError(t, err)

		stats, err := engine.stats.GetStats(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"python"}, stats.DomainsMastered)
	})

	t.Run("learning stamps the last learned time", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)

		_, err := engine.Learn(ctx, commands.LearnCommand{
			UserID: "user-1", Domain: "python", Concept: "metaclasses",
		})
		require.NoError(t, err)

		stats, err := engine.stats.GetStats(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, stats.LastLearnedAt.IsZero())
	})

	t.Run("rejects an empty user", func(t *testing.T) {
		engine, _, _, _ := newTestEngine(t)

		_, err := engine.stats.GetStats(ctx, "")

		assert.Error(t, err)
	})
}

// Exercises stats and grid reads against a concurrent writer. Run with the
// race detector to verify readers never touch a live grid without its lock.
func TestStatsReadsAreSafeDuringMoves(t *testing.T) {
	ctx := context.Background()
	engine, _, _, _ := newTestEngine(t)

	_, err := engine.GetOrCreateGrid(ctx, commands.GetOrCreateGridCommand{
		UserID: "user-1", Domain: "python",
	})
	require.NoError(t, err)

	directions := []string{"left", "up", "right", "down"}
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, moveErr := engine.ApplyMove(ctx, commands.MoveCommand{
				UserID: "user-1", Domain: "python", Direction: directions[i%len(directions)],
			})
			assert.NoError(t, moveErr)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, statsErr := engine.stats.GetStats(ctx, "user-1")
			assert.NoError(t, statsErr)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, gridsErr := engine.GetAllGrids(ctx, "user-1")
			assert.NoError(t, gridsErr)
		}
	}()

	wg.Wait()
}
