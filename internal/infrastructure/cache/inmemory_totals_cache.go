package cache

import (
	"context"
	"sync"
	"time"

	"github.com/gestiserv/backend/internal/domain/billing"
	"github.com/gestiserv/backend/internal/domain/roster"
)

// InMemoryTotalsCache implements billing.TotalsCache with a local map.
// Used in tests and as a fallback when Redis is not configured. Entries
// expire lazily on read.
type InMemoryTotalsCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
}

type inMemoryEntry struct {
	snapshot  billing.TotalsSnapshot
	expiresAt time.Time
}

// NewInMemoryTotalsCache creates an empty in-memory totals cache
func NewInMemoryTotalsCache() *InMemoryTotalsCache {
	return &InMemoryTotalsCache{
		entries: make(map[string]inMemoryEntry),
	}
}

func inMemoryKey(kind roster.Kind, key string) string {
	return kind.String() + ":" + key
}

// Get retrieves a totals snapshot. A miss or expired entry returns (nil, nil).
func (c *InMemoryTotalsCache) Get(_ context.Context, kind roster.Kind, key string) (*billing.TotalsSnapshot, error) {
	c.mu.RLock()
	entry, ok := c.entries[inMemoryKey(kind, key)]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, nil
	}
	snapshot := entry.snapshot
	return &snapshot, nil
}

// Set stores a totals snapshot with the given TTL
func (c *InMemoryTotalsCache) Set(_ context.Context, kind roster.Kind, key string, snapshot *billing.TotalsSnapshot, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[inMemoryKey(kind, key)] = inMemoryEntry{
		snapshot:  *snapshot,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// InvalidateKind drops every cached snapshot for a record kind
func (c *InMemoryTotalsCache) InvalidateKind(_ context.Context, kind roster.Kind) error {
	prefix := kind.String() + ":"
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
	return nil
}

// Ensure InMemoryTotalsCache implements TotalsCache
var _ billing.TotalsCache = (*InMemoryTotalsCache)(nil)
