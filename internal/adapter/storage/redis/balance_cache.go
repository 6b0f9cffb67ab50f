package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// BalanceCache implements ports.BalanceCache using Redis. Entries are
// advisory: the protocol adapter remains the source of truth and every
// entry expires on its own.
type BalanceCache struct {
	client *goredis.Client
	prefix string
}

// NewBalanceCache creates a new Redis-backed balance cache.
func NewBalanceCache(client *goredis.Client) *BalanceCache {
	return &BalanceCache{
		client: client,
		prefix: "balance:",
	}
}

// Get retrieves a cached balance snapshot. Returns nil, nil on a miss.
func (c *BalanceCache) Get(ctx context.Context, walletID string) (*domain.Balance, error) {
	val, err := c.client.Get(ctx, c.prefix+walletID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis balance get: %w", err)
	}

	var bal domain.Balance
	if err := json.Unmarshal(val, &bal); err != nil {
		// A corrupt entry is treated as a miss; it expires on its own.
		return nil, fmt.Errorf("redis balance decode: %w", err)
	}
	return &bal, nil
}

// Set stores a balance snapshot with TTL.
func (c *BalanceCache) Set(ctx context.Context, walletID string, bal domain.Balance, ttl time.Duration) error {
	val, err := json.Marshal(bal)
	if err != nil {
		return fmt.Errorf("redis balance encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+walletID, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis balance set: %w", err)
	}
	return nil
}

// Invalidate drops a cached snapshot.
func (c *BalanceCache) Invalidate(ctx context.Context, walletID string) error {
	if err := c.client.Del(ctx, c.prefix+walletID).Err(); err != nil {
		return fmt.Errorf("redis balance invalidate: %w", err)
	}
	return nil
}
