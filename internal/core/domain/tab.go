package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultCategory is the subtitle shown under every tab entry.
	DefaultCategory = "Edge Tab"
	// DefaultIcon is the icon path handed to the host for every tab entry.
	DefaultIcon = "icon.png"
	// DefaultScore is the relevance score of an entry that has not been scored against a query.
	DefaultScore = 100
)

// TabEntry is one open browser tab as presented to the host.
type TabEntry struct {
	// ID identifies the tab across snapshots as long as its window, position and title are unchanged.
	ID string
	// Snapshot is the ID of the snapshot the entry belongs to.
	Snapshot string
	Title    string
	Category string
	Icon     string
	Score    int
	Window   WindowHandle
	Layout   Layout
	// Pinned is set for the direct children of a vertical tab container.
	Pinned bool
	// Action focuses the originating accessibility node.
	Action func() error
}

// Activate focuses the tab this entry was built from.
func (e TabEntry) Activate() error {
	if e.Action == nil {
		return ErrNotActivatable
	}
	return e.Action()
}

// TabID derives the identifier of the tab at the given position of a window.
func TabID(window WindowHandle, position int, title string) string {
	d := xxhash.New()
	_, _ = d.WriteString(window.String())
	_, _ = d.WriteString("/")
	_, _ = d.WriteString(strconv.Itoa(position))
	_, _ = d.WriteString("/")
	_, _ = d.WriteString(title)
	return strconv.FormatUint(d.Sum64(), 16)
}
