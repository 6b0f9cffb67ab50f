// Package keylock provides per-key locking so operations on one wallet
// serialize without contending with operations on any other wallet.
package keylock

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// maxWeight is the semaphore capacity per key. An exclusive hold takes the
// full weight, a shared hold takes 1, so writers exclude everything while
// readers coexist.
const maxWeight = 1 << 30

// Locker hands out per-key shared/exclusive locks. Entries are created on
// first use and dropped as soon as nobody holds or waits on them, so a
// long-lived process does not accumulate locks for dead wallet ids.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// New creates an empty Locker.
func New() *Locker {
	return &Locker{entries: make(map[string]*entry)}
}

// Lock acquires the exclusive lock for key. The returned release function
// is idempotent. Acquisition respects ctx: a deadline or cancellation
// returns ctx.Err() with no lock held.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	return l.acquire(ctx, key, maxWeight)
}

// RLock acquires a shared lock for key. Shared holders exclude exclusive
// holders but not each other.
func (l *Locker) RLock(ctx context.Context, key string) (func(), error) {
	return l.acquire(ctx, key, 1)
}

func (l *Locker) acquire(ctx context.Context, key string, weight int64) (func(), error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(maxWeight)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	if err := e.sem.Acquire(ctx, weight); err != nil {
		l.unref(key, e)
		return nil, err
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			e.sem.Release(weight)
			l.unref(key, e)
		})
	}
	return release, nil
}

func (l *Locker) unref(key string, e *entry) {
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
	l.mu.Unlock()
}

// Len reports the number of live entries. Used by tests to verify idle
// entries are reclaimed.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
