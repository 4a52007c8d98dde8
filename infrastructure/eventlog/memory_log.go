// Package eventlog implements the event publisher port as an in-memory log,
// keeping the merge history that callers can query after moves.
package eventlog

import (
	"context"
	"sync"

	"lucidia-engine/domain/events"
)

// defaultCapacity bounds how many merge events are retained per grid key.
const defaultCapacity = 500

// MemoryLog retains published domain events. All events are counted; merge
// events are additionally kept per (user, domain) for history queries, oldest
// evicted first once the capacity is reached.
type MemoryLog struct {
	mu       sync.RWMutex
	capacity int
	total    int
	merges   map[string][]events.TilesMerged
}

// NewMemoryLog creates a log with the default per-key capacity.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		capacity: defaultCapacity,
		merges:   make(map[string][]events.TilesMerged),
	}
}

// Publish records a batch of domain events.
func (l *MemoryLog) Publish(ctx context.Context, batch []events.DomainEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, event := range batch {
		l.total++
		merged, ok := event.(events.TilesMerged)
		if !ok {
			continue
		}
		key := mergeKey(merged.UserID, merged.Domain)
		history := append(l.merges[key], merged)
		if len(history) > l.capacity {
			history = history[len(history)-l.capacity:]
		}
		l.merges[key] = history
	}

	return nil
}

// MergeHistory returns the most recent merge events for a (user, domain)
// pair, newest first. Limit 0 means all retained events.
func (l *MemoryLog) MergeHistory(userID, domain string, limit int) []events.TilesMerged {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := l.merges[mergeKey(userID, domain)]
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}

	out := make([]events.TilesMerged, 0, limit)
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		out = append(out, history[i])
	}
	return out
}

// TotalPublished returns how many events have been published in total.
func (l *MemoryLog) TotalPublished() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.total
}

func mergeKey(userID, domain string) string {
	return userID + ":" + domain
}
