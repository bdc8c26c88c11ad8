package anchors

import (
	"context"
	"time"
)

// Sweeper drives Cache.Sweep from a fixed-interval tick.
type Sweeper struct {
	cache    *Cache
	interval time.Duration
	onSweep  func(removed int)
}

// NewSweeper creates a sweeper for cache. onSweep, if not nil, is called after every tick.
func NewSweeper(cache *Cache, interval time.Duration, onSweep func(removed int)) *Sweeper {
	return &Sweeper{
		cache:    cache,
		interval: interval,
		onSweep:  onSweep,
	}
}

// Run sweeps once per interval until ctx is done. It always returns nil.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed := s.cache.Sweep()
			if s.onSweep != nil {
				s.onSweep(removed)
			}
		}
	}
}
