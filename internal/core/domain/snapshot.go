package domain

import (
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is the full list of tab entries across all windows at one point in time.
// A snapshot is replaced wholesale and never mutated once published.
type Snapshot struct {
	ID         string
	Entries    []TabEntry
	Digest     uint64
	ComputedAt time.Time
	ExpiresAt  time.Time
}

// Valid reports whether the snapshot can still be served at now.
func (s Snapshot) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// Find returns the entry with the given ID.
func (s Snapshot) Find(id string) (TabEntry, bool) {
	i := slices.IndexFunc(s.Entries, func(e TabEntry) bool { return e.ID == id })
	if i < 0 {
		return TabEntry{}, false
	}
	return s.Entries[i], true
}

// CloneEntries returns a copy of the entries that callers may reorder or rescore freely.
func (s Snapshot) CloneEntries() []TabEntry {
	return slices.Clone(s.Entries)
}

// DigestEntries hashes the identity and titles of entries in order.
// Two snapshots with the same digest list the same tabs in the same order.
func DigestEntries(entries []TabEntry) uint64 {
	d := xxhash.New()
	for _, e := range entries {
		_, _ = d.WriteString(e.ID)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(e.Title)
		_, _ = d.WriteString("\x00")
	}
	return d.Sum64()
}
