// Package dto defines the JSON wire shapes of the HTTP API.
package dto

import "encoding/json"

// CreateWalletResponse is returned by POST /create_wallet.
type CreateWalletResponse struct {
	WalletID string `json:"wallet_id"`
}

// RestoreWalletRequest is the body of POST /restore_wallet.
type RestoreWalletRequest struct {
	WalletID string `json:"wallet_id" binding:"required"`
}

// AddressResponse is returned by GET /get_address/{wallet_id} and
// POST /restore_wallet.
type AddressResponse struct {
	WalletID        string `json:"wallet_id"`
	OnchainAddress  string `json:"onchain_address"`
	OffchainAddress string `json:"offchain_address"`
}

// OffchainBalancePart is the offchain side's sub-balances in satoshis.
type OffchainBalancePart struct {
	Spendable int64 `json:"spendable"`
	Expired   int64 `json:"expired"`
}

// BoardingBalancePart is the boarding side's sub-balances in satoshis.
// All three keys are always present, zero or not.
type BoardingBalancePart struct {
	Spendable int64 `json:"spendable"`
	Expired   int64 `json:"expired"`
	Pending   int64 `json:"pending"`
}

// BalanceResponse is returned by GET /get_balance/{wallet_id}.
type BalanceResponse struct {
	WalletID        string              `json:"wallet_id"`
	OffchainBalance OffchainBalancePart `json:"offchain_balance"`
	BoardingBalance BoardingBalancePart `json:"boarding_balance"`
}

// FaucetRequest is the body of POST /faucet. Amount is a decimal BTC
// string; json.Number keeps the literal digits so "0.00000001" survives.
type FaucetRequest struct {
	OnchainAddress string      `json:"onchain_address" binding:"required"`
	Amount         json.Number `json:"amount" binding:"required"`
}

// FaucetResponse is returned by POST /faucet.
type FaucetResponse struct {
	Success bool   `json:"success"`
	Address string `json:"address"`
	Amount  string `json:"amount"`
	Txid    string `json:"txid,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SettleRequest is the body of POST /settle. ToAddress is optional; empty
// settles into the wallet's own offchain address.
type SettleRequest struct {
	WalletID  string `json:"wallet_id" binding:"required"`
	ToAddress string `json:"to_address,omitempty"`
}

// SettleResponse is returned by POST /settle.
type SettleResponse struct {
	WalletID string `json:"wallet_id"`
	Success  bool   `json:"success"`
	Txid     string `json:"txid,omitempty"`
	FeeSats  int64  `json:"fee_sats,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SendRequest is the body of POST /send_to_ark_address. Amount is in
// satoshis.
type SendRequest struct {
	WalletID string `json:"wallet_id" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
}

// SendResponse is returned by POST /send_to_ark_address.
type SendResponse struct {
	WalletID  string `json:"wallet_id"`
	ToAddress string `json:"to_address"`
	Amount    int64  `json:"amount"`
	Txid      string `json:"txid"`
}
