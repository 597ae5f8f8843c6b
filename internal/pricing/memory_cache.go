package pricing

import (
	"context"
	"sync"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/domain"
)

type memoryEntry struct {
	prices    domain.MetalPrices
	expiresAt time.Time
}

// MemoryCache keeps readings in process. It is safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache(now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*domain.MetalPrices, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, nil
	}
	prices := entry.prices
	return &prices, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, prices *domain.MetalPrices, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{prices: *prices, expiresAt: c.now().Add(ttl)}
	return nil
}
