package locking

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLockExclusion(t *testing.T) {
	lock := NewKeyedLock()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := lock.Acquire("user-1/python")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedLockIndependentKeys(t *testing.T) {
	lock := NewKeyedLock()

	releaseA := lock.Acquire("a")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		release := lock.Acquire("b")
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("independent key blocked behind a held lock")
	}
}

func TestKeyedLockReleaseUnblocks(t *testing.T) {
	lock := NewKeyedLock()

	release := lock.Acquire("a")
	acquired := make(chan struct{})
	go func() {
		second := lock.Acquire("a")
		second()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire should block while the lock is held")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("release did not unblock the waiter")
	}
}

func TestKeyedLockCleansUpEntries(t *testing.T) {
	lock := NewKeyedLock()

	release := lock.Acquire("a")
	release()

	lock.mu.Lock()
	defer lock.mu.Unlock()
	assert.Empty(t, lock.entries)
}
