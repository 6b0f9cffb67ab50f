// Package memory provides an in-process wallet registry. It is the default
// store for development and regtest runs where durability is not required.
package memory

import (
	"context"
	"sync"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"
)

// WalletStore implements ports.WalletStore with a mutex-guarded map.
type WalletStore struct {
	mu      sync.RWMutex
	wallets map[string]domain.WalletRecord
}

// NewWalletStore creates an empty in-memory store.
func NewWalletStore() *WalletStore {
	return &WalletStore{wallets: make(map[string]domain.WalletRecord)}
}

// Insert registers a new wallet record. Existing ids are never overwritten.
func (s *WalletStore) Insert(_ context.Context, rec *domain.WalletRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[rec.ID]; ok {
		return ports.ErrDuplicateWallet
	}
	s.wallets[rec.ID] = *rec
	return nil
}

// Get returns a copy of the stored record.
func (s *WalletStore) Get(_ context.Context, walletID string) (*domain.WalletRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.wallets[walletID]
	if !ok {
		return nil, ports.ErrWalletNotFound
	}
	return &rec, nil
}

// Remove deletes a wallet record.
func (s *WalletStore) Remove(_ context.Context, walletID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[walletID]; !ok {
		return ports.ErrWalletNotFound
	}
	delete(s.wallets, walletID)
	return nil
}

// Len reports the number of stored wallets.
func (s *WalletStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wallets)
}
