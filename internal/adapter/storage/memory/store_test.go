package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string) *domain.WalletRecord {
	return &domain.WalletRecord{
		ID:              id,
		SeedEnc:         "enc",
		OnchainAddress:  "bcrt1q" + id,
		OffchainAddress: "tark1q" + id,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestWalletStore_InsertGet(t *testing.T) {
	s := NewWalletStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, record("w1")))

	got, err := s.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", got.ID)
	assert.Equal(t, "enc", got.SeedEnc)
}

func TestWalletStore_DuplicateInsert(t *testing.T) {
	s := NewWalletStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, record("w1")))
	err := s.Insert(ctx, record("w1"))
	assert.ErrorIs(t, err, ports.ErrDuplicateWallet)
}

func TestWalletStore_GetUnknown(t *testing.T) {
	s := NewWalletStore()

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrWalletNotFound)
}

func TestWalletStore_Remove(t *testing.T) {
	s := NewWalletStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, record("w1")))
	require.NoError(t, s.Remove(ctx, "w1"))

	_, err := s.Get(ctx, "w1")
	assert.ErrorIs(t, err, ports.ErrWalletNotFound)

	assert.ErrorIs(t, s.Remove(ctx, "w1"), ports.ErrWalletNotFound)
}

func TestWalletStore_ReturnsCopy(t *testing.T) {
	s := NewWalletStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, record("w1")))

	got, err := s.Get(ctx, "w1")
	require.NoError(t, err)
	got.SeedEnc = "mutated"

	again, err := s.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "enc", again.SeedEnc)
}

func TestWalletStore_ConcurrentInserts(t *testing.T) {
	s := NewWalletStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Insert(ctx, record(fmt.Sprintf("w%d", i))))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
