package anchors

import (
	"sync"
	"time"

	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
)

// Cache holds one Entry per window.
//
// A single mutex guards the map and is held for the whole lookup-or-create, tree walk
// included, so a window is never resolved twice concurrently.
type Cache struct {
	mu          sync.Mutex
	tree        ports.AccessibilityTree
	entries     map[domain.WindowHandle]Entry
	successTTL  time.Duration
	negativeTTL time.Duration
}

// NewCache creates a cache resolving anchors through tree.
func NewCache(tree ports.AccessibilityTree, successTTL, negativeTTL time.Duration) *Cache {
	return &Cache{
		tree:        tree,
		entries:     make(map[domain.WindowHandle]Entry),
		successTTL:  successTTL,
		negativeTTL: negativeTTL,
	}
}

// GetOrCreate returns the live entry of window, resolving it first if there is none.
// A failed resolution is cached too, under the negative TTL.
func (c *Cache) GetOrCreate(window domain.WindowHandle) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[window]; ok && entry.Live(time.Now()) {
		return entry
	}

	entry := c.resolve(window)
	c.entries[window] = entry
	return entry
}

// resolve walks the tree from the window element down to the browser view and its containers.
func (c *Cache) resolve(window domain.WindowHandle) Entry {
	var entry Entry

	if root, ok := c.tree.Root(window); ok {
		if browser, ok := c.tree.FindChain(root, domain.BrowserViewChain); ok {
			entry.BrowserRoot = browser
			if top, ok := c.tree.FindChain(browser, domain.TopContainerChain); ok {
				entry.TopContainer = top
			}
			if side, ok := c.tree.FindChain(browser, domain.SideContainerChain); ok {
				entry.SideContainer = side
			}
		}
	}

	entry = entry.normalize()
	if entry.Resolved() {
		entry.ExpiresAt = time.Now().Add(c.successTTL)
	} else {
		entry.ExpiresAt = time.Now().Add(c.negativeTTL)
	}
	return entry
}

// Update replaces the anchors of a live, resolved entry in place, keeping its expiry.
// It reports whether the entry was updated.
func (c *Cache) Update(window domain.WindowHandle, entry Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.entries[window]
	if !ok || !current.Resolved() || !current.Live(time.Now()) {
		return false
	}

	entry.ExpiresAt = current.ExpiresAt
	entry = entry.normalize()
	if !entry.Resolved() {
		return false
	}
	c.entries[window] = entry
	return true
}

// Sweep removes every entry that has expired and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for window, entry := range c.entries {
		if !entry.Live(now) {
			delete(c.entries, window)
			removed++
		}
	}
	return removed
}

// Invalidate drops the entry of window.
func (c *Cache) Invalidate(window domain.WindowHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, window)
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Peek returns the stored entry of window without resolving or checking expiry.
func (c *Cache) Peek(window domain.WindowHandle) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[window]
	return entry, ok
}
