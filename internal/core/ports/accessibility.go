package ports

import "go.trai.ch/edgetabs/internal/core/domain"

// Node is a borrowed handle into the accessibility tree.
// The tree owns the node; a handle may silently stop resolving at any time.
//
//go:generate go run go.uber.org/mock/mockgen -source=accessibility.go -destination=mocks/mock_accessibility.go -package=mocks
type Node interface {
	// Name returns the accessible name, which is the tab title for tab items.
	Name() string
	// Activate focuses the node.
	Activate() error
}

// AccessibilityTree locates nodes by structural property conditions.
// Lookups never fail with an error: a step that finds nothing yields false.
type AccessibilityTree interface {
	// Root returns the element of the given top-level window.
	Root(window domain.WindowHandle) (Node, bool)
	// FindChain applies every step of chain in order, each to the immediate children of the
	// previous match, starting from root.
	FindChain(root Node, chain domain.Chain) (Node, bool)
	// FindChildren returns the immediate children of node matching matcher, in tree order.
	FindChildren(node Node, matcher domain.Matcher) []Node
}
