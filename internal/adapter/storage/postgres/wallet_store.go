package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

// WalletStore implements ports.WalletStore on PostgreSQL.
type WalletStore struct {
	pool Pool
}

// NewWalletStore creates a new WalletStore.
func NewWalletStore(pool Pool) *WalletStore {
	return &WalletStore{pool: pool}
}

// Insert registers a new wallet session record.
func (s *WalletStore) Insert(ctx context.Context, rec *domain.WalletRecord) error {
	query := `INSERT INTO wallet_sessions (id, seed_enc, onchain_address, offchain_address, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query,
		rec.ID, rec.SeedEnc, rec.OnchainAddress, rec.OffchainAddress, rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ports.ErrDuplicateWallet
		}
		return fmt.Errorf("insert wallet session: %w", err)
	}
	return nil
}

// Get fetches a wallet session record by id.
func (s *WalletStore) Get(ctx context.Context, walletID string) (*domain.WalletRecord, error) {
	query := `SELECT id, seed_enc, onchain_address, offchain_address, created_at
		FROM wallet_sessions WHERE id = $1`

	rec := &domain.WalletRecord{}
	err := s.pool.QueryRow(ctx, query, walletID).Scan(
		&rec.ID, &rec.SeedEnc, &rec.OnchainAddress, &rec.OffchainAddress, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrWalletNotFound
		}
		return nil, fmt.Errorf("get wallet session: %w", err)
	}
	return rec, nil
}

// Remove deletes a wallet session record.
func (s *WalletStore) Remove(ctx context.Context, walletID string) error {
	query := `DELETE FROM wallet_sessions WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, walletID)
	if err != nil {
		return fmt.Errorf("remove wallet session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrWalletNotFound
	}
	return nil
}
