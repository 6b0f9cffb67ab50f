package ports

import (
	"context"
	"errors"
	"time"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// ErrDuplicateWallet is returned by Insert when the wallet id is already
// registered. Identifier generation makes this practically unreachable, so
// callers treat it as a programming-error class, never as overwrite.
var ErrDuplicateWallet = errors.New("wallet id already registered")

// ErrWalletNotFound is returned by Get/Remove for unknown wallet ids.
var ErrWalletNotFound = errors.New("wallet not found")

// WalletStore is the authoritative wallet_id -> session record mapping.
// Implementations must be safe for concurrent use; serialization of
// mutating wallet operations is the lock manager's job, not the store's.
type WalletStore interface {
	Insert(ctx context.Context, rec *domain.WalletRecord) error
	Get(ctx context.Context, walletID string) (*domain.WalletRecord, error)
	// Remove evicts a session. Unused by the current operation set; kept
	// for session-expiry and logout-and-wipe semantics.
	Remove(ctx context.Context, walletID string) error
}

// BalanceCache holds the advisory per-wallet balance snapshot. It is a
// display cache only: every entry can be recomputed from the protocol
// client at any time, so cache loss is never an inconsistency.
type BalanceCache interface {
	Get(ctx context.Context, walletID string) (*domain.Balance, error) // nil, nil on miss
	Set(ctx context.Context, walletID string, bal domain.Balance, ttl time.Duration) error
	Invalidate(ctx context.Context, walletID string) error
}
