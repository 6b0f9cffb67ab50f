package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports/mocks"
	"github.com/HemantKumar01/ARKane-Wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testArkAddr  = "tark1qq0vjwvkkxdl7zmkgqeqywp9dhsdeyrrmdkvm4rtdkv2l70s8x2mk2rflz"
	testDestAddr = "ark1qq0vjwvkkxdl7zmkgqeqywp9dhsdeyrrmdkvm4rt"
)

type walletTestDeps struct {
	svc    *WalletServiceImpl
	ark    *mocks.MockArkClient
	faucet *mocks.MockFaucetClient
	store  *mocks.MockWalletStore
	cache  *mocks.MockBalanceCache
	cipher *mocks.MockSeedCipher
	ctrl   *gomock.Controller
}

func setupWalletService(t *testing.T, withCache bool) *walletTestDeps {
	ctrl := gomock.NewController(t)
	d := &walletTestDeps{
		ark:    mocks.NewMockArkClient(ctrl),
		faucet: mocks.NewMockFaucetClient(ctrl),
		store:  mocks.NewMockWalletStore(ctrl),
		cache:  mocks.NewMockBalanceCache(ctrl),
		cipher: mocks.NewMockSeedCipher(ctrl),
		ctrl:   ctrl,
	}
	var cache ports.BalanceCache
	if withCache {
		cache = d.cache
	}
	d.svc = NewWalletService(
		d.ark, d.faucet, d.store, cache, d.cipher,
		5*time.Second, time.Second, time.Second, zerolog.Nop(),
	)
	return d
}

func storedRecord(id string) *domain.WalletRecord {
	return &domain.WalletRecord{
		ID:              id,
		SeedEnc:         "enc_seed",
		OnchainAddress:  "bcrt1qonchain",
		OffchainAddress: testArkAddr,
		CreatedAt:       time.Now().UTC(),
	}
}

func expectLoadSession(d *walletTestDeps, walletID string) {
	d.store.EXPECT().Get(gomock.Any(), walletID).Return(storedRecord(walletID), nil)
	d.cipher.EXPECT().Decrypt("enc_seed").Return("seed", nil)
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

// ==================== CreateWallet ====================

func TestWalletService_CreateWallet_Success(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	handle := domain.NewProtocolHandle("seed")
	addrs := domain.AddressPair{Onchain: "bcrt1qonchain", Offchain: testArkAddr}

	d.ark.EXPECT().CreateHandle(gomock.Any()).Return(handle, nil)
	d.ark.EXPECT().DeriveAddresses(gomock.Any(), handle).Return(addrs, nil)
	d.cipher.EXPECT().Encrypt("seed").Return("enc_seed", nil)
	d.store.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.WalletRecord) error {
			assert.Equal(t, "enc_seed", rec.SeedEnc)
			assert.Equal(t, addrs.Onchain, rec.OnchainAddress)
			assert.Equal(t, addrs.Offchain, rec.OffchainAddress)
			_, err := uuid.Parse(rec.ID)
			assert.NoError(t, err)
			return nil
		})

	result, err := d.svc.CreateWallet(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, addrs, result.Addresses)
	assert.NotEmpty(t, result.WalletID)
}

func TestWalletService_CreateWallet_AdapterInitFailed(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	d.ark.EXPECT().CreateHandle(gomock.Any()).Return(domain.ProtocolHandle{}, errors.New("connection refused"))

	result, err := d.svc.CreateWallet(context.Background())
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_004")
}

func TestWalletService_CreateWallet_DuplicateIDIsInternal(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	handle := domain.NewProtocolHandle("seed")
	d.ark.EXPECT().CreateHandle(gomock.Any()).Return(handle, nil)
	d.ark.EXPECT().DeriveAddresses(gomock.Any(), handle).Return(domain.AddressPair{}, nil)
	d.cipher.EXPECT().Encrypt("seed").Return("enc_seed", nil)
	d.store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(ports.ErrDuplicateWallet)

	result, err := d.svc.CreateWallet(context.Background())
	assert.Nil(t, result)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_002", appErr.Code)
	// Internal-invariant violations never leak detail to the caller.
	assert.Equal(t, "Internal server error", appErr.Message)
}

// ==================== RestoreWallet / GetAddresses ====================

func TestWalletService_RestoreWallet_ReturnsCreationAddresses(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	handle := domain.NewProtocolHandle("seed")
	addrs := domain.AddressPair{Onchain: "bcrt1qonchain", Offchain: testArkAddr}

	expectLoadSession(d, walletID)
	d.ark.EXPECT().RestoreHandle(gomock.Any(), "seed").Return(handle, nil)
	d.ark.EXPECT().DeriveAddresses(gomock.Any(), handle).Return(addrs, nil)

	restored, err := d.svc.RestoreWallet(context.Background(), walletID)
	require.NoError(t, err)

	// Derivation is deterministic: restore agrees with the stored record.
	d.store.EXPECT().Get(gomock.Any(), walletID).Return(storedRecord(walletID), nil)
	got, err := d.svc.GetAddresses(context.Background(), walletID)
	require.NoError(t, err)
	assert.Equal(t, restored.Addresses, got.Addresses)
}

func TestWalletService_RestoreWallet_InvalidID(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	result, err := d.svc.RestoreWallet(context.Background(), "not-a-uuid")
	assert.Nil(t, result)
	assertAppError(t, err, "WAL_003")
}

func TestWalletService_GetAddresses_NotFound(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	d.store.EXPECT().Get(gomock.Any(), walletID).Return(nil, ports.ErrWalletNotFound)

	result, err := d.svc.GetAddresses(context.Background(), walletID)
	assert.Nil(t, result)
	assertAppError(t, err, "WAL_001")
}

// ==================== GetBalance ====================

func TestWalletService_GetBalance_AggregatesBothDomains(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	expectLoadSession(d, walletID)
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{
		OffchainSpendable: 7_000,
		BoardingSpendable: 3_000,
		BoardingPending:   10_000,
	}, nil)

	bal, err := d.svc.GetBalance(context.Background(), walletID)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), bal.TotalSpendable())
	assert.Equal(t, int64(7_000), bal.Offchain.Spendable)
	assert.Equal(t, int64(10_000), bal.Boarding.Pending)
}

func TestWalletService_GetBalance_CacheHitSkipsAdapter(t *testing.T) {
	d := setupWalletService(t, true)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	cached := &domain.Balance{Offchain: domain.OffchainBalance{Spendable: 42}}
	d.cache.EXPECT().Get(gomock.Any(), walletID).Return(cached, nil)

	bal, err := d.svc.GetBalance(context.Background(), walletID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), bal.Offchain.Spendable)
}

func TestWalletService_GetBalance_CacheMissPopulatesCache(t *testing.T) {
	d := setupWalletService(t, true)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	d.cache.EXPECT().Get(gomock.Any(), walletID).Return(nil, nil)
	expectLoadSession(d, walletID)
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{OffchainSpendable: 5}, nil)
	d.cache.EXPECT().Set(gomock.Any(), walletID, gomock.Any(), time.Second).Return(nil)

	bal, err := d.svc.GetBalance(context.Background(), walletID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), bal.Offchain.Spendable)
}

func TestWalletService_GetBalance_MalformedFailsClosed(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	expectLoadSession(d, walletID)
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{OffchainSpendable: -1}, nil)

	bal, err := d.svc.GetBalance(context.Background(), walletID)
	assert.Nil(t, bal)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BAL_001", appErr.Code)
	assert.Equal(t, "Internal server error", appErr.Message)
}

// ==================== RequestFaucet ====================

func TestWalletService_RequestFaucet_Success(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	d.faucet.EXPECT().Fund(gomock.Any(), "bcrt1qonchain", "0.0001").Return("ab12", nil)

	result, err := d.svc.RequestFaucet(context.Background(), ports.FaucetRequest{
		OnchainAddress: "bcrt1qonchain",
		AmountBTC:      "0.0001",
	})
	require.NoError(t, err)
	assert.Equal(t, "ab12", result.Txid)
	assert.Equal(t, int64(10_000), result.Sats)
}

func TestWalletService_RequestFaucet_InvalidAmount(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	// "92233720369" BTC would wrap past MaxInt64 sats if the parser let
	// it through; the faucet must never see it.
	for _, amount := range []string{"0", "-1", "abc", "", "92233720369"} {
		_, err := d.svc.RequestFaucet(context.Background(), ports.FaucetRequest{
			OnchainAddress: "bcrt1qonchain",
			AmountBTC:      amount,
		})
		assertAppError(t, err, "TXN_003")
	}
}

func TestWalletService_RequestFaucet_Unavailable(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	d.faucet.EXPECT().Fund(gomock.Any(), "bcrt1qonchain", "1").Return("", errors.New("nigiri not running"))

	_, err := d.svc.RequestFaucet(context.Background(), ports.FaucetRequest{
		OnchainAddress: "bcrt1qonchain",
		AmountBTC:      "1",
	})
	assertAppError(t, err, "FCT_001")
}

// ==================== Settle ====================

func TestWalletService_Settle_Success(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	expectLoadSession(d, walletID)
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{BoardingSpendable: 10_000}, nil)
	d.ark.EXPECT().Settle(gomock.Any(), gomock.Any(), "").Return(&ports.SettlementReceipt{Txid: "round123", Fee: 30}, nil)

	result, err := d.svc.Settle(context.Background(), ports.SettleRequest{WalletID: walletID})
	require.NoError(t, err)
	assert.Equal(t, "round123", result.Txid)
	assert.Equal(t, int64(30), result.Fee)
}

func TestWalletService_Settle_NothingToSettle(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	expectLoadSession(d, walletID)
	// Pending funds are not yet eligible.
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{BoardingPending: 5_000}, nil)

	result, err := d.svc.Settle(context.Background(), ports.SettleRequest{WalletID: walletID})
	assert.Nil(t, result)
	assertAppError(t, err, "TXN_006")
}

func TestWalletService_Settle_InvalidDestinationBeforeAnyWork(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	// No store or adapter expectations: validation happens first.
	result, err := d.svc.Settle(context.Background(), ports.SettleRequest{
		WalletID:  uuid.New().String(),
		ToAddress: "definitely-not-an-ark-address",
	})
	assert.Nil(t, result)
	assertAppError(t, err, "TXN_002")
}

func TestWalletService_Settle_SerializesPerWallet(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()

	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	d.store.EXPECT().Get(gomock.Any(), walletID).Return(storedRecord(walletID), nil).Times(2)
	d.cipher.EXPECT().Decrypt("enc_seed").Return("seed", nil).Times(2)
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{BoardingSpendable: 1_000}, nil).Times(2)
	d.ark.EXPECT().Settle(gomock.Any(), gomock.Any(), "").DoAndReturn(
		func(context.Context, domain.ProtocolHandle, string) (*ports.SettlementReceipt, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return &ports.SettlementReceipt{Txid: "round"}, nil
		}).Times(2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.svc.Settle(context.Background(), ports.SettleRequest{WalletID: walletID})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight, "two settlement rounds for one wallet overlapped")
}

// ==================== SendToAddress ====================

func TestWalletService_SendToAddress_Success(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	expectLoadSession(d, walletID)
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{OffchainSpendable: 50_000}, nil)
	d.ark.EXPECT().SendOffchain(gomock.Any(), gomock.Any(), testDestAddr, int64(10_000)).Return("txid456", nil)

	result, err := d.svc.SendToAddress(context.Background(), ports.SendRequest{
		WalletID: walletID,
		Address:  testDestAddr,
		Amount:   10_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "txid456", result.Txid)
	assert.Equal(t, int64(10_000), result.Amount)
	assert.Equal(t, testDestAddr, result.ToAddress)
}

func TestWalletService_SendToAddress_InsufficientFundsIssuesNoSend(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	walletID := uuid.New().String()
	expectLoadSession(d, walletID)
	// Boarding funds do not count toward the offchain spendable check.
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{
		OffchainSpendable: 5_000,
		BoardingSpendable: 100_000,
	}, nil)
	// No SendOffchain expectation: the adapter must never see the call.

	result, err := d.svc.SendToAddress(context.Background(), ports.SendRequest{
		WalletID: walletID,
		Address:  testDestAddr,
		Amount:   10_000,
	})
	assert.Nil(t, result)
	assertAppError(t, err, "TXN_001")
}

func TestWalletService_SendToAddress_InvalidAddressBeforeLock(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	// No expectations at all: the syntactic check runs before lock and store.
	result, err := d.svc.SendToAddress(context.Background(), ports.SendRequest{
		WalletID: uuid.New().String(),
		Address:  "bogus",
		Amount:   10_000,
	})
	assert.Nil(t, result)
	assertAppError(t, err, "TXN_002")
}

func TestWalletService_SendToAddress_NonPositiveAmount(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	for _, amount := range []int64{0, -5} {
		_, err := d.svc.SendToAddress(context.Background(), ports.SendRequest{
			WalletID: uuid.New().String(),
			Address:  testDestAddr,
			Amount:   amount,
		})
		assertAppError(t, err, "TXN_003")
	}
}

// ==================== concurrency isolation ====================

func TestWalletService_UnrelatedWalletsDoNotContend(t *testing.T) {
	d := setupWalletService(t, false)
	defer d.ctrl.Finish()

	slowID := uuid.New().String()
	fastID := uuid.New().String()

	settleStarted := make(chan struct{})
	settleRelease := make(chan struct{})

	d.store.EXPECT().Get(gomock.Any(), slowID).Return(storedRecord(slowID), nil)
	d.store.EXPECT().Get(gomock.Any(), fastID).Return(storedRecord(fastID), nil)
	// Only the settle path decrypts; the address read serves from the record.
	d.cipher.EXPECT().Decrypt("enc_seed").Return("seed", nil)
	d.ark.EXPECT().QueryBalance(gomock.Any(), gomock.Any()).Return(domain.RawBalance{BoardingSpendable: 1_000}, nil)
	d.ark.EXPECT().Settle(gomock.Any(), gomock.Any(), "").DoAndReturn(
		func(context.Context, domain.ProtocolHandle, string) (*ports.SettlementReceipt, error) {
			close(settleStarted)
			<-settleRelease
			return &ports.SettlementReceipt{Txid: "round"}, nil
		})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := d.svc.Settle(context.Background(), ports.SettleRequest{WalletID: slowID})
		assert.NoError(t, err)
	}()
	<-settleStarted

	// With a settlement in flight on slowID, fastID must answer immediately.
	result, err := d.svc.GetAddresses(context.Background(), fastID)
	require.NoError(t, err)
	assert.Equal(t, fastID, result.WalletID)

	close(settleRelease)
	<-done
}
