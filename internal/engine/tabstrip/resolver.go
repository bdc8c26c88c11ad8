// Package tabstrip locates the tab container of a browser window and lists its tabs.
package tabstrip

import (
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
	"go.trai.ch/edgetabs/internal/engine/anchors"
)

// Strip is a located tab container.
type Strip struct {
	Container ports.Node
	Layout    domain.Layout
	// Entry is the anchor entry the strip was found from. When Healed is set it
	// carries a freshly resolved side container and should be written back.
	Entry  anchors.Entry
	Healed bool
}

// Tab is one tab item in tree order.
type Tab struct {
	Node   ports.Node
	Pinned bool
}

// Resolver finds tab strips through an accessibility tree.
type Resolver struct {
	tree ports.AccessibilityTree
}

// NewResolver creates a Resolver.
func NewResolver(tree ports.AccessibilityTree) *Resolver {
	return &Resolver{tree: tree}
}

// Resolve locates the tab container under entry. It tries the horizontal strip
// first, then the vertical one, healing the side container once if needed.
// It returns domain.ErrTabStripNotFound when no layout matches.
func (r *Resolver) Resolve(entry anchors.Entry) (Strip, error) {
	if !entry.Resolved() {
		return Strip{}, domain.ErrTabStripNotFound
	}

	for _, def := range layouts {
		if container, ok := r.descend(def.anchor(entry), def.chain); ok {
			return Strip{Container: container, Layout: def.layout, Entry: entry}, nil
		}

		if def.heal == nil {
			continue
		}
		healed, ok := r.tree.FindChain(entry.BrowserRoot, def.heal)
		if !ok {
			continue
		}
		if container, ok := r.tree.FindChain(healed, def.chain); ok {
			entry.SideContainer = healed
			return Strip{Container: container, Layout: def.layout, Entry: entry, Healed: true}, nil
		}
	}

	return Strip{}, domain.ErrTabStripNotFound
}

func (r *Resolver) descend(anchor ports.Node, chain domain.Chain) (ports.Node, bool) {
	if anchor == nil {
		return nil, false
	}
	return r.tree.FindChain(anchor, chain)
}

// Tabs lists the tab items of strip in tree order: the container's own tab
// children first, then the overflow list when the layout has one.
func (r *Resolver) Tabs(strip Strip) []Tab {
	def, ok := layoutFor(strip.Layout)
	if !ok || strip.Container == nil {
		return nil
	}

	direct := r.tree.FindChildren(strip.Container, domain.TabItem)
	tabs := make([]Tab, 0, len(direct))
	for _, node := range direct {
		tabs = append(tabs, Tab{Node: node, Pinned: def.pinned})
	}

	if def.overflow == nil {
		return tabs
	}
	view, ok := r.tree.FindChain(strip.Container, def.overflow)
	if !ok {
		return tabs
	}
	for _, node := range r.tree.FindChildren(view, domain.TabItem) {
		tabs = append(tabs, Tab{Node: node})
	}
	return tabs
}
