// Package random abstracts the engine's randomness so tests can inject a
// seeded source and replay move sequences deterministically.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is all the randomness the engine needs: uniform cell/vocabulary
// selection and the weighted spawn-value draw.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// lockedSource wraps math/rand.Rand with a mutex. A single Source is shared
// by every grid, and grids on different keys mutate in parallel.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded with the given value.
func New(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
