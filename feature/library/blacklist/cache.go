package blacklist

import (
	"context"
	"fmt"
	"sync"

	"gamesync/feature/library/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache is a refreshable in-memory view of the blacklist collection. It is
// refreshed once at the start of every synchronization run, which bounds its
// staleness to one run's duration. Point misses fall back to the store, and
// positive hits are promoted into memory so a freshly blacklisted id becomes
// effective without waiting for the next refresh. Negatives are never
// cached.
type Cache struct {
	store  store.Store
	logger *zap.Logger

	mu  sync.RWMutex
	ids map[uint64]struct{}
	sf  singleflight.Group
}

// NewCache creates an empty cache backed by the store.
func NewCache(s store.Store, logger *zap.Logger) *Cache {
	return &Cache{
		store:  s,
		logger: logger,
		ids:    make(map[uint64]struct{}),
	}
}

// Refresh reloads the full blacklist into memory. Concurrent refreshes are
// collapsed into a single store round-trip.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err, _ := c.sf.Do("refresh", func() (any, error) {
		ids, err := c.store.BlacklistIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("refreshing blacklist cache: %w", err)
		}

		fresh := make(map[uint64]struct{}, len(ids))
		for _, id := range ids {
			fresh[id] = struct{}{}
		}

		c.mu.Lock()
		c.ids = fresh
		c.mu.Unlock()

		c.logger.Debug("Blacklist cache refreshed", zap.Int("entries", len(ids)))
		return nil, nil
	})
	return err
}

// IsBlacklisted checks the in-memory set first and falls back to a store
// point lookup on a miss.
func (c *Cache) IsBlacklisted(ctx context.Context, itemID uint64) (bool, error) {
	c.mu.RLock()
	_, hit := c.ids[itemID]
	c.mu.RUnlock()
	if hit {
		return true, nil
	}

	blacklisted, err := c.store.IsBlacklisted(ctx, itemID)
	if err != nil {
		return false, err
	}

	if blacklisted {
		// Write-through for positives only.
		c.mu.Lock()
		c.ids[itemID] = struct{}{}
		c.mu.Unlock()
	}

	return blacklisted, nil
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}
