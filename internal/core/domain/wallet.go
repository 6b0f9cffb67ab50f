package domain

import (
	"time"
)

// ProtocolHandle is the opaque credential material the Ark daemon needs to
// act on behalf of one wallet. It is owned exclusively by its WalletSession
// and never leaves the service/adapter boundary. The seed lives in an
// unexported field so the handle can never marshal to JSON by accident.
type ProtocolHandle struct {
	seed string
}

// NewProtocolHandle wraps raw seed material in a handle.
func NewProtocolHandle(seed string) ProtocolHandle {
	return ProtocolHandle{seed: seed}
}

// Seed exposes the raw material to the protocol adapter and the seed
// cipher. Nothing else should call this.
func (h ProtocolHandle) Seed() string {
	return h.seed
}

// IsZero reports whether the handle carries no material.
func (h ProtocolHandle) IsZero() bool {
	return h.seed == ""
}

// AddressPair holds the two addresses derived for a wallet session, one
// per settlement domain.
type AddressPair struct {
	Onchain  string `json:"onchain_address"`
	Offchain string `json:"offchain_address"`
}

// WalletSession is one registered wallet. Addresses are derived once at
// creation and stable for the session's lifetime. The session record itself
// is immutable after insert; only the advisory balance cache changes, and
// that lives outside the record.
type WalletSession struct {
	ID        string
	Handle    ProtocolHandle
	Addresses AddressPair
	CreatedAt time.Time
}

// WalletRecord is the persisted form of a session: same fields, but the
// seed is encrypted before it reaches any store.
type WalletRecord struct {
	ID              string
	SeedEnc         string
	OnchainAddress  string
	OffchainAddress string
	CreatedAt       time.Time
}
