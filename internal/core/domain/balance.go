package domain

import "fmt"

// RawBalance is what the protocol client reports for one wallet: sub-amounts
// for both settlement domains, in satoshis.
type RawBalance struct {
	OffchainSpendable int64
	OffchainExpired   int64
	BoardingSpendable int64
	BoardingExpired   int64
	BoardingPending   int64
}

// OffchainBalance is the offchain (VTXO) side of an aggregated balance.
type OffchainBalance struct {
	Spendable int64 `json:"spendable"`
	Expired   int64 `json:"expired"`
}

// BoardingBalance is the onchain boarding side of an aggregated balance.
type BoardingBalance struct {
	Spendable int64 `json:"spendable"`
	Expired   int64 `json:"expired"`
	Pending   int64 `json:"pending"`
}

// Balance is the unified per-wallet view across both settlement domains.
// It is computed per query and never stored authoritatively.
type Balance struct {
	Offchain OffchainBalance `json:"offchain_balance"`
	Boarding BoardingBalance `json:"boarding_balance"`
}

// TotalSpendable is derived on every call rather than stored, so it cannot
// drift from the two domain amounts.
func (b Balance) TotalSpendable() int64 {
	return b.Offchain.Spendable + b.Boarding.Spendable
}

// AggregateBalance merges the raw domain amounts into the unified view.
// It fails closed on any negative amount: a malformed report must never
// propagate into a balance a caller could act on.
func AggregateBalance(raw RawBalance) (Balance, error) {
	for _, a := range []struct {
		name  string
		value int64
	}{
		{"offchain spendable", raw.OffchainSpendable},
		{"offchain expired", raw.OffchainExpired},
		{"boarding spendable", raw.BoardingSpendable},
		{"boarding expired", raw.BoardingExpired},
		{"boarding pending", raw.BoardingPending},
	} {
		if a.value < 0 {
			return Balance{}, fmt.Errorf("malformed balance: %s is negative (%d)", a.name, a.value)
		}
	}

	return Balance{
		Offchain: OffchainBalance{
			Spendable: raw.OffchainSpendable,
			Expired:   raw.OffchainExpired,
		},
		Boarding: BoardingBalance{
			Spendable: raw.BoardingSpendable,
			Expired:   raw.BoardingExpired,
			Pending:   raw.BoardingPending,
		},
	}, nil
}
