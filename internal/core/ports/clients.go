package ports

import (
	"context"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
)

//go:generate mockgen -source=clients.go -destination=mocks/clients_mock.go -package=mocks

// ArkClient is the capability set consumed from the external Ark protocol
// client. All cryptographic and round-coordination work happens behind it;
// this backend only sequences the calls.
type ArkClient interface {
	// CreateHandle generates fresh credential material for a new wallet.
	CreateHandle(ctx context.Context) (domain.ProtocolHandle, error)
	// RestoreHandle rebuilds a handle from previously stored seed material.
	RestoreHandle(ctx context.Context, seed string) (domain.ProtocolHandle, error)
	// DeriveAddresses derives the boarding (onchain) and Ark (offchain)
	// addresses for a handle. Deterministic per handle.
	DeriveAddresses(ctx context.Context, handle domain.ProtocolHandle) (domain.AddressPair, error)
	// QueryBalance reports the raw sub-balances for both settlement
	// domains in satoshis.
	QueryBalance(ctx context.Context, handle domain.ProtocolHandle) (domain.RawBalance, error)
	// Settle runs a settlement round merging the wallet's boarding and
	// offchain outputs into toAddress (the wallet's own offchain address
	// when empty).
	Settle(ctx context.Context, handle domain.ProtocolHandle, toAddress string) (*SettlementReceipt, error)
	// SendOffchain transfers amount satoshis to an Ark address.
	SendOffchain(ctx context.Context, handle domain.ProtocolHandle, toAddress string, amount int64) (txid string, err error)
}

// SettlementReceipt is the confirmation returned by a completed round.
// Fee is whatever the settlement authority charged; it is reported, never
// silently folded into the balance.
type SettlementReceipt struct {
	Txid string
	Fee  int64
}

// FaucetClient dispenses test funds to an onchain address. amountBTC is a
// decimal BTC string; conversion to base units is the caller's concern.
type FaucetClient interface {
	Fund(ctx context.Context, onchainAddress string, amountBTC string) (txid string, err error)
}
