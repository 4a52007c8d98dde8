// Package locking provides the in-process single-writer discipline for
// grids. One process owns all grids here, so a keyed mutex takes the place
// of a distributed lock.
package locking

import "sync"

// KeyedLock hands out one mutex per key. Entries are reference counted and
// removed when the last holder releases, so the map stays bounded by the
// number of keys currently contended.
type KeyedLock struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLock creates an empty keyed lock.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{entries: make(map[string]*lockEntry)}
}

// Acquire blocks until the key is exclusively held and returns the release
// function. Release must be called exactly once.
func (l *KeyedLock) Acquire(key string) (release func()) {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &lockEntry{}
		l.entries[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.entries, key)
		}
		l.mu.Unlock()
	}
}
