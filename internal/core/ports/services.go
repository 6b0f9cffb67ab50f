package ports

import (
	"context"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// WalletService is the orchestration facade the transport layer talks to.
// Every method translates collaborator failures into pkg/apperror values;
// no raw adapter error crosses this boundary.
type WalletService interface {
	CreateWallet(ctx context.Context) (*CreateWalletResult, error)
	RestoreWallet(ctx context.Context, walletID string) (*AddressesResult, error)
	GetAddresses(ctx context.Context, walletID string) (*AddressesResult, error)
	GetBalance(ctx context.Context, walletID string) (*domain.Balance, error)
	RequestFaucet(ctx context.Context, req FaucetRequest) (*FaucetResult, error)
	Settle(ctx context.Context, req SettleRequest) (*SettleResult, error)
	SendToAddress(ctx context.Context, req SendRequest) (*SendResult, error)
}

// CreateWalletResult is returned by CreateWallet.
type CreateWalletResult struct {
	WalletID  string
	Addresses domain.AddressPair
}

// AddressesResult is returned by GetAddresses and RestoreWallet.
type AddressesResult struct {
	WalletID  string
	Addresses domain.AddressPair
}

// FaucetRequest funds an onchain address with a decimal BTC amount.
type FaucetRequest struct {
	OnchainAddress string
	AmountBTC      string
}

// FaucetResult acknowledges a faucet dispense.
type FaucetResult struct {
	Txid string
	Sats int64
}

// SettleRequest triggers a settlement round for a wallet. ToAddress is
// optional; empty means settle into the wallet's own offchain address.
type SettleRequest struct {
	WalletID  string
	ToAddress string
}

// SettleResult is the settlement confirmation.
type SettleResult struct {
	WalletID string
	Txid     string
	Fee      int64
}

// SendRequest transfers Amount satoshis to an offchain address.
type SendRequest struct {
	WalletID string
	Address  string
	Amount   int64
}

// SendResult is the offchain transfer confirmation.
type SendResult struct {
	WalletID  string
	ToAddress string
	Amount    int64
	Txid      string
}

// SeedCipher encrypts protocol handle material before it reaches a store.
type SeedCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
