// Package anchors caches the structural anchors of each browser window in the accessibility tree.
package anchors

import (
	"time"

	"go.trai.ch/edgetabs/internal/core/ports"
)

// Entry is the cached state of one window.
//
// If BrowserRoot is nil, TopContainer and SideContainer are nil too. An entry with a
// BrowserRoot but no TopContainer is never stored: it is collapsed to the empty state.
type Entry struct {
	BrowserRoot   ports.Node
	TopContainer  ports.Node
	SideContainer ports.Node
	ExpiresAt     time.Time
}

// Resolved reports whether the window's browser view was found.
func (e Entry) Resolved() bool {
	return e.BrowserRoot != nil
}

// Live reports whether the entry can still be served at now.
func (e Entry) Live(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// normalize enforces the no-partial-positive rule.
func (e Entry) normalize() Entry {
	if e.BrowserRoot == nil || e.TopContainer == nil {
		return Entry{ExpiresAt: e.ExpiresAt}
	}
	return e
}
