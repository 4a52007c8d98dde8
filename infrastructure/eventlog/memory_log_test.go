package eventlog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidia-engine/domain/core/valueobjects"
	"lucidia-engine/domain/events"
)

func mergeEvent(userID, domain, result string) events.TilesMerged {
	return events.NewTilesMerged(
		"grid-1", userID, domain,
		"a", "b", 2,
		result, 4, valueobjects.NewPosition(0, 0), time.Now(),
	)
}

func TestMemoryLogPublish(t *testing.T) {
	ctx := context.Background()
	log := NewMemoryLog()

	batch := []events.DomainEvent{
		events.NewGridCreated("grid-1", "user-1", "python", 4, time.Now()),
		mergeEvent("user-1", "python", "a+b"),
	}
	require.NoError(t, log.Publish(ctx, batch))

	assert.Equal(t, 2, log.TotalPublished())

	history := log.MergeHistory("user-1", "python", 0)
	require.Len(t, history, 1)
	assert.Equal(t, "a+b", history[0].ResultConcept)
}

func TestMemoryLogHistoryOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	log := NewMemoryLog()

	for i := 0; i < 5; i++ {
		require.NoError(t, log.Publish(ctx, []events.DomainEvent{
			mergeEvent("user-1", "python", fmt.Sprintf("merge-%d", i)),
		}))
	}

	history := log.MergeHistory("user-1", "python", 2)

	require.Len(t, history, 2)
	assert.Equal(t, "merge-4", history[0].ResultConcept)
	assert.Equal(t, "merge-3", history[1].ResultConcept)
}

func TestMemoryLogKeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	log := NewMemoryLog()

	require.NoError(t, log.Publish(ctx, []events.DomainEvent{
		mergeEvent("user-1", "python", "a+b"),
		mergeEvent("user-1", "algorithms", "c+d"),
		mergeEvent("user-2", "python", "e+f"),
	}))

	assert.Len(t, log.MergeHistory("user-1", "python", 0), 1)
	assert.Len(t, log.MergeHistory("user-1", "algorithms", 0), 1)
	assert.Len(t, log.MergeHistory("user-2", "python", 0), 1)
	assert.Empty(t, log.MergeHistory("user-2", "algorithms", 0))
}

func TestMemoryLogCapacity(t *testing.T) {
	ctx := context.Background()
	log := NewMemoryLog()
	log.capacity = 3

	for i := 0; i < 10; i++ {
		require.NoError(t, log.Publish(ctx, []events.DomainEvent{
			mergeEvent("user-1", "python", fmt.Sprintf("merge-%d", i)),
		}))
	}

	history := log.MergeHistory("user-1", "python", 0)

	require.Len(t, history, 3)
	assert.Equal(t, "merge-9", history[0].ResultConcept)
	assert.Equal(t, "merge-7", history[2].ResultConcept)
}
