package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"
	"github.com/HemantKumar01/ARKane-Wallet/pkg/apperror"
	"github.com/HemantKumar01/ARKane-Wallet/pkg/keylock"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. It owns the per-wallet
// locking discipline: mutating operations (settle, send, faucet) hold the
// wallet's exclusive lock across the full protocol round-trip; reads take
// the shared lock. Unrelated wallets never contend.
type WalletServiceImpl struct {
	ark    ports.ArkClient
	faucet ports.FaucetClient
	store  ports.WalletStore
	cache  ports.BalanceCache // nil disables the advisory cache
	cipher ports.SeedCipher
	locks  *keylock.Locker
	log    zerolog.Logger

	opTimeout   time.Duration
	lockTimeout time.Duration
	balanceTTL  time.Duration
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	ark ports.ArkClient,
	faucet ports.FaucetClient,
	store ports.WalletStore,
	cache ports.BalanceCache,
	cipher ports.SeedCipher,
	opTimeout time.Duration,
	lockTimeout time.Duration,
	balanceTTL time.Duration,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		ark:         ark,
		faucet:      faucet,
		store:       store,
		cache:       cache,
		cipher:      cipher,
		locks:       keylock.New(),
		log:         log,
		opTimeout:   opTimeout,
		lockTimeout: lockTimeout,
		balanceTTL:  balanceTTL,
	}
}

// CreateWallet generates a fresh protocol handle, derives both addresses
// and registers the session under a new wallet id.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context) (*ports.CreateWalletResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	handle, err := s.ark.CreateHandle(ctx)
	if err != nil {
		return nil, s.adapterErr(ctx, err, "create handle")
	}

	addrs, err := s.ark.DeriveAddresses(ctx, handle)
	if err != nil {
		return nil, s.adapterErr(ctx, err, "derive addresses")
	}

	seedEnc, err := s.cipher.Encrypt(handle.Seed())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encrypt seed: %w", err))
	}

	walletID := uuid.New().String()
	rec := &domain.WalletRecord{
		ID:              walletID,
		SeedEnc:         seedEnc,
		OnchainAddress:  addrs.Onchain,
		OffchainAddress: addrs.Offchain,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		if errors.Is(err, ports.ErrDuplicateWallet) {
			// Identifier collision is a defect, not a user error.
			s.log.Error().Str("wallet_id", walletID).Msg("wallet id collision on insert")
			return nil, apperror.ErrDuplicateWalletID(err)
		}
		return nil, apperror.InternalError(fmt.Errorf("insert wallet: %w", err))
	}

	s.log.Info().Str("wallet_id", walletID).Msg("wallet created")

	return &ports.CreateWalletResult{WalletID: walletID, Addresses: addrs}, nil
}

// RestoreWallet rebuilds the session's protocol handle from the stored
// seed and re-derives its addresses. The wallet id alone carries no secret;
// unknown ids fail with NotFound.
func (s *WalletServiceImpl) RestoreWallet(ctx context.Context, walletID string) (*ports.AddressesResult, error) {
	if _, err := uuid.Parse(walletID); err != nil {
		return nil, apperror.ErrInvalidWalletID()
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	release, err := s.acquireShared(ctx, walletID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, err := s.loadSession(ctx, walletID)
	if err != nil {
		return nil, err
	}

	handle, err := s.ark.RestoreHandle(ctx, session.Handle.Seed())
	if err != nil {
		return nil, s.adapterErr(ctx, err, "restore handle")
	}

	// Derivation is deterministic per handle, so this matches the
	// addresses recorded at creation.
	addrs, err := s.ark.DeriveAddresses(ctx, handle)
	if err != nil {
		return nil, s.adapterErr(ctx, err, "derive addresses")
	}

	return &ports.AddressesResult{WalletID: walletID, Addresses: addrs}, nil
}

// GetAddresses returns the addresses cached in the session record.
func (s *WalletServiceImpl) GetAddresses(ctx context.Context, walletID string) (*ports.AddressesResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	release, err := s.acquireShared(ctx, walletID)
	if err != nil {
		return nil, err
	}
	defer release()

	rec, err := s.getRecord(ctx, walletID)
	if err != nil {
		return nil, err
	}

	return &ports.AddressesResult{
		WalletID: walletID,
		Addresses: domain.AddressPair{
			Onchain:  rec.OnchainAddress,
			Offchain: rec.OffchainAddress,
		},
	}, nil
}

// GetBalance queries both settlement domains and aggregates them. The
// advisory cache may serve a recent snapshot; a concurrent mutation means
// the caller sees either the pre- or post-mutation state, never a torn one.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, walletID string) (*domain.Balance, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	release, err := s.acquireShared(ctx, walletID)
	if err != nil {
		return nil, err
	}
	defer release()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, walletID)
		if err != nil {
			s.log.Warn().Err(err).Str("wallet_id", walletID).Msg("balance cache read failed, querying adapter")
		}
		if cached != nil {
			return cached, nil
		}
	}

	session, err := s.loadSession(ctx, walletID)
	if err != nil {
		return nil, err
	}

	bal, err := s.queryAndAggregate(ctx, walletID, session.Handle)
	if err != nil {
		return nil, err
	}
	return bal, nil
}

// RequestFaucet dispenses test funds to an onchain boarding address.
// Concurrent faucet requests for the same address serialize on its key.
func (s *WalletServiceImpl) RequestFaucet(ctx context.Context, req ports.FaucetRequest) (*ports.FaucetResult, error) {
	if req.OnchainAddress == "" {
		return nil, apperror.Validation("empty onchain address provided")
	}
	sats, err := domain.ParseBTC(req.AmountBTC)
	if err != nil || sats == 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	release, err := s.acquireExclusive(ctx, "faucet:"+req.OnchainAddress)
	if err != nil {
		return nil, err
	}
	defer release()

	txid, err := s.faucet.Fund(ctx, req.OnchainAddress, req.AmountBTC)
	if err != nil {
		if ctxErr(ctx, err) {
			return nil, apperror.ErrTimeout(err)
		}
		return nil, apperror.ErrFaucetUnavailable(err)
	}

	s.log.Info().
		Str("address", req.OnchainAddress).
		Int64("sats", sats).
		Str("txid", txid).
		Msg("faucet funds dispensed")

	return &ports.FaucetResult{Txid: txid, Sats: sats}, nil
}

// Settle runs a settlement round merging the wallet's boarding and
// offchain outputs. The exclusive lock is held for the entire round so two
// settlements can never race the same outputs.
func (s *WalletServiceImpl) Settle(ctx context.Context, req ports.SettleRequest) (*ports.SettleResult, error) {
	// Cheap validation before any lock is taken.
	if req.ToAddress != "" && !domain.ValidArkAddress(req.ToAddress) {
		return nil, apperror.ErrInvalidAddress()
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	release, err := s.acquireExclusive(ctx, req.WalletID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, err := s.loadSession(ctx, req.WalletID)
	if err != nil {
		return nil, err
	}

	raw, err := s.ark.QueryBalance(ctx, session.Handle)
	if err != nil {
		return nil, s.adapterErr(ctx, err, "query balance")
	}
	bal, err := domain.AggregateBalance(raw)
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", req.WalletID).Msg("adapter reported malformed balance")
		return nil, apperror.ErrMalformedBalance(err)
	}
	if bal.TotalSpendable() == 0 {
		return nil, apperror.ErrNothingToSettle()
	}

	receipt, err := s.ark.Settle(ctx, session.Handle, req.ToAddress)
	if err != nil {
		if ctxErr(ctx, err) {
			return nil, apperror.ErrTimeout(err)
		}
		return nil, apperror.ErrSettlementFailed(err)
	}

	s.log.Info().
		Str("wallet_id", req.WalletID).
		Str("txid", receipt.Txid).
		Int64("fee", receipt.Fee).
		Int64("settled_sats", bal.TotalSpendable()).
		Msg("settlement round complete")

	s.refreshBalance(ctx, req.WalletID, session.Handle)

	return &ports.SettleResult{
		WalletID: req.WalletID,
		Txid:     receipt.Txid,
		Fee:      receipt.Fee,
	}, nil
}

// SendToAddress transfers satoshis to another party's offchain address.
// The spendable balance is re-checked after the lock is held so a stale
// balance display can never authorize an overspend.
func (s *WalletServiceImpl) SendToAddress(ctx context.Context, req ports.SendRequest) (*ports.SendResult, error) {
	// Cheap validation before any lock is taken.
	if !domain.ValidArkAddress(req.Address) {
		return nil, apperror.ErrInvalidAddress()
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	release, err := s.acquireExclusive(ctx, req.WalletID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, err := s.loadSession(ctx, req.WalletID)
	if err != nil {
		return nil, err
	}

	raw, err := s.ark.QueryBalance(ctx, session.Handle)
	if err != nil {
		return nil, s.adapterErr(ctx, err, "query balance")
	}
	bal, err := domain.AggregateBalance(raw)
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", req.WalletID).Msg("adapter reported malformed balance")
		return nil, apperror.ErrMalformedBalance(err)
	}
	if req.Amount > bal.Offchain.Spendable {
		return nil, apperror.ErrInsufficientFunds()
	}

	txid, err := s.ark.SendOffchain(ctx, session.Handle, req.Address, req.Amount)
	if err != nil {
		if ctxErr(ctx, err) {
			return nil, apperror.ErrTimeout(err)
		}
		return nil, apperror.ErrSendFailed(err)
	}

	s.log.Info().
		Str("wallet_id", req.WalletID).
		Str("to_address", req.Address).
		Int64("amount", req.Amount).
		Str("txid", txid).
		Msg("offchain send complete")

	s.refreshBalance(ctx, req.WalletID, session.Handle)

	return &ports.SendResult{
		WalletID:  req.WalletID,
		ToAddress: req.Address,
		Amount:    req.Amount,
		Txid:      txid,
	}, nil
}

// ---- internals ----

func (s *WalletServiceImpl) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout > 0 {
		return context.WithTimeout(ctx, s.opTimeout)
	}
	return context.WithCancel(ctx)
}

func (s *WalletServiceImpl) acquireExclusive(ctx context.Context, key string) (func(), error) {
	return s.acquire(ctx, key, true)
}

func (s *WalletServiceImpl) acquireShared(ctx context.Context, key string) (func(), error) {
	return s.acquire(ctx, key, false)
}

func (s *WalletServiceImpl) acquire(ctx context.Context, key string, exclusive bool) (func(), error) {
	lockCtx := ctx
	cancel := func() {}
	if s.lockTimeout > 0 {
		lockCtx, cancel = context.WithTimeout(ctx, s.lockTimeout)
	}
	defer cancel()

	var (
		release func()
		err     error
	)
	if exclusive {
		release, err = s.locks.Lock(lockCtx, key)
	} else {
		release, err = s.locks.RLock(lockCtx, key)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, apperror.ErrTimeout(ctx.Err())
		}
		return nil, apperror.ErrBusy(err)
	}
	return release, nil
}

// getRecord fetches the raw session record, mapping store errors.
func (s *WalletServiceImpl) getRecord(ctx context.Context, walletID string) (*domain.WalletRecord, error) {
	rec, err := s.store.Get(ctx, walletID)
	if err != nil {
		if errors.Is(err, ports.ErrWalletNotFound) {
			return nil, apperror.ErrWalletNotFound()
		}
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	return rec, nil
}

// loadSession fetches the record and decrypts the protocol handle.
func (s *WalletServiceImpl) loadSession(ctx context.Context, walletID string) (*domain.WalletSession, error) {
	rec, err := s.getRecord(ctx, walletID)
	if err != nil {
		return nil, err
	}

	seed, err := s.cipher.Decrypt(rec.SeedEnc)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decrypt seed: %w", err))
	}

	return &domain.WalletSession{
		ID:     rec.ID,
		Handle: domain.NewProtocolHandle(seed),
		Addresses: domain.AddressPair{
			Onchain:  rec.OnchainAddress,
			Offchain: rec.OffchainAddress,
		},
		CreatedAt: rec.CreatedAt,
	}, nil
}

// queryAndAggregate queries the adapter, aggregates both domains and
// refreshes the advisory cache.
func (s *WalletServiceImpl) queryAndAggregate(ctx context.Context, walletID string, handle domain.ProtocolHandle) (*domain.Balance, error) {
	raw, err := s.ark.QueryBalance(ctx, handle)
	if err != nil {
		return nil, s.adapterErr(ctx, err, "query balance")
	}

	bal, err := domain.AggregateBalance(raw)
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", walletID).Msg("adapter reported malformed balance")
		return nil, apperror.ErrMalformedBalance(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, walletID, bal, s.balanceTTL); err != nil {
			s.log.Warn().Err(err).Str("wallet_id", walletID).Msg("failed to cache balance")
		}
	}

	return &bal, nil
}

// refreshBalance recomputes the advisory cache after a mutation. Cache
// refresh is best-effort: the operation already took effect on the network.
func (s *WalletServiceImpl) refreshBalance(ctx context.Context, walletID string, handle domain.ProtocolHandle) {
	if s.cache == nil {
		return
	}
	if _, err := s.queryAndAggregate(ctx, walletID, handle); err != nil {
		if invErr := s.cache.Invalidate(ctx, walletID); invErr != nil {
			s.log.Warn().Err(invErr).Str("wallet_id", walletID).Msg("failed to invalidate balance cache")
		}
		s.log.Warn().Err(err).Str("wallet_id", walletID).Msg("post-mutation balance refresh failed")
	}
}

// adapterErr maps a protocol client failure into the error taxonomy.
func (s *WalletServiceImpl) adapterErr(ctx context.Context, err error, op string) error {
	if ctxErr(ctx, err) {
		return apperror.ErrTimeout(fmt.Errorf("%s: %w", op, err))
	}
	return apperror.ErrAdapterUnavailable(fmt.Errorf("%s: %w", op, err))
}

func ctxErr(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		ctx.Err() != nil
}
