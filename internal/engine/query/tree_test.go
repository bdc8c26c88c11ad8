package query_test

import (
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
)

// node is an in-memory accessibility node.
type node struct {
	class     string
	ctype     string
	name      string
	children  []*node
	flaky     int
	activated int
}

func (n *node) Name() string { return n.name }

func (n *node) Activate() error {
	n.activated++
	return nil
}

func (n *node) matches(m domain.Matcher) bool {
	switch m.Property {
	case domain.PropertyClassName:
		return n.class == m.Value
	case domain.PropertyControlType:
		return n.ctype == m.Value
	default:
		return false
	}
}

func el(class string, children ...*node) *node {
	return &node{class: class, children: children}
}

func tab(title string) *node {
	return &node{class: "Tab", ctype: domain.ControlTypeTabItem, name: title}
}

// tree serves fixed windows. A node with flaky > 0 is invisible to that many chain lookups.
type tree struct {
	windows map[domain.WindowHandle]*node
}

func (t *tree) Root(window domain.WindowHandle) (ports.Node, bool) {
	root, ok := t.windows[window]
	if !ok {
		return nil, false
	}
	return root, true
}

func (t *tree) FindChain(root ports.Node, chain domain.Chain) (ports.Node, bool) {
	current, _ := root.(*node)
	for _, step := range chain {
		var next *node
		for _, child := range current.children {
			if !child.matches(step) {
				continue
			}
			if child.flaky > 0 {
				child.flaky--
				continue
			}
			next = child
			break
		}
		if next == nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

func (t *tree) FindChildren(parent ports.Node, m domain.Matcher) []ports.Node {
	var out []ports.Node
	for _, child := range parent.(*node).children {
		if child.matches(m) {
			out = append(out, child)
		}
	}
	return out
}

func browserWindow(top, side *node) *node {
	view := el("BrowserView")
	if top != nil {
		view.children = append(view.children, top)
	}
	if side != nil {
		view.children = append(view.children, el("EdgeVerticalTabContainerView", side))
	}
	return el("Window", el("BrowserRootView", el("NonClientView", el("BrowserFrameViewWin", view))))
}

func horizontalWindow(tabs ...*node) *node {
	top := el("TopContainerView", el("EdgeTabStripRegionView", el("EdgeTabStrip", el("EdgeTabContainerImpl", tabs...))))
	return browserWindow(top, nil)
}

// verticalWindow builds a side tab strip and returns its side container for further tweaks.
func verticalWindow(pinned, scrollable []*node) (*node, *node) {
	container := el("EdgeTabContainerImpl", pinned...)
	if scrollable != nil {
		container.children = append(container.children,
			el("ScrollView", el("ScrollView::Viewport", el("View", scrollable...))))
	}
	side := el("ContentsBackgroundView", el("EdgeTabStrip", container))
	return browserWindow(el("TopContainerView"), side), side
}
