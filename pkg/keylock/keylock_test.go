package keylock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_ExclusiveSerializesSameKey(t *testing.T) {
	l := New()
	ctx := context.Background()

	var inCritical atomic.Int32
	var maxSeen atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(ctx, "wallet-a")
			require.NoError(t, err)
			defer release()

			n := inCritical.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			inCritical.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load(), "two exclusive holders overlapped")
}

func TestLocker_DifferentKeysDoNotContend(t *testing.T) {
	l := New()
	ctx := context.Background()

	// Hold wallet-a exclusively for the whole test.
	releaseA, err := l.Lock(ctx, "wallet-a")
	require.NoError(t, err)
	defer releaseA()

	// wallet-b must be acquirable immediately.
	acquired := make(chan struct{})
	go func() {
		releaseB, err := l.Lock(ctx, "wallet-b")
		if err == nil {
			releaseB()
			close(acquired)
		}
	}()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("operation on unrelated wallet blocked behind another wallet's lock")
	}
}

func TestLocker_SharedHoldersCoexist(t *testing.T) {
	l := New()
	ctx := context.Background()

	r1, err := l.RLock(ctx, "wallet-a")
	require.NoError(t, err)
	r2, err := l.RLock(ctx, "wallet-a")
	require.NoError(t, err)

	// A writer must wait until both readers are done.
	lockCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = l.Lock(lockCtx, "wallet-a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	r1()
	r2()

	release, err := l.Lock(ctx, "wallet-a")
	require.NoError(t, err)
	release()
}

func TestLocker_AcquireTimesOutUnderContention(t *testing.T) {
	l := New()

	release, err := l.Lock(context.Background(), "wallet-a")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, "wallet-a")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocker_IdleEntriesAreReclaimed(t *testing.T) {
	l := New()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		release, err := l.Lock(ctx, string(rune('a'+i%26))+"-wallet")
		require.NoError(t, err)
		release()
	}

	assert.Equal(t, 0, l.Len(), "released locks should not linger in the map")
}

func TestLocker_ReleaseIsIdempotent(t *testing.T) {
	l := New()
	ctx := context.Background()

	release, err := l.Lock(ctx, "wallet-a")
	require.NoError(t, err)
	release()
	release() // second call must be a no-op, not a semaphore over-release

	again, err := l.Lock(ctx, "wallet-a")
	require.NoError(t, err)
	again()
}
