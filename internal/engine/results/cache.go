// Package results caches the full list of tab entries across all windows.
package results

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/edgetabs/internal/core/domain"
)

// ComputeFunc builds a fresh list of entries.
type ComputeFunc func(ctx context.Context) []domain.TabEntry

// Cache holds at most one snapshot.
//
// The mutex is held while compute runs, so at most one recomputation is in flight
// and concurrent callers wait for its result.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	snapshot domain.Snapshot
	present  bool
}

// NewCache creates a cache whose snapshots live for ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// GetOrCompute returns the current snapshot, computing a new one when it has expired.
func (c *Cache) GetOrCompute(ctx context.Context, compute ComputeFunc) domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.present && c.snapshot.Valid(time.Now()) {
		return c.snapshot
	}

	entries := compute(ctx)
	id := uuid.NewString()
	for i := range entries {
		entries[i].Snapshot = id
	}

	now := time.Now()
	c.snapshot = domain.Snapshot{
		ID:         id,
		Entries:    entries,
		Digest:     domain.DigestEntries(entries),
		ComputedAt: now,
		ExpiresAt:  now.Add(c.ttl),
	}
	c.present = true
	return c.snapshot
}

// Current returns the stored snapshot without computing, even if it has expired.
func (c *Cache) Current() (domain.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot, c.present
}

// Invalidate drops the stored snapshot.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = domain.Snapshot{}
	c.present = false
}
