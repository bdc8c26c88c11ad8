package desktop

import "go.trai.ch/edgetabs/internal/core/domain"

// Node is an element of a desktop snapshot. It implements ports.Node.
type Node struct {
	class    string
	ctype    string
	name     string
	flaky    int
	children []*Node

	desktop    *Desktop
	generation int
}

func build(dto NodeDTO) *Node {
	n := &Node{class: dto.Class, ctype: dto.Type, name: dto.Name, flaky: dto.Flaky}
	for _, child := range dto.Children {
		n.children = append(n.children, build(child))
	}
	return n
}

func (n *Node) attach(d *Desktop, generation int) {
	n.desktop = d
	n.generation = generation
	for _, child := range n.children {
		child.attach(d, generation)
	}
}

// Name returns the accessible name of the element.
func (n *Node) Name() string {
	return n.name
}

// Activate focuses the element. It fails once the snapshot has been reloaded.
func (n *Node) Activate() error {
	return n.desktop.focus(n)
}

func (n *Node) matches(m domain.Matcher) bool {
	switch m.Property {
	case domain.PropertyClassName:
		return n.class == m.Value
	case domain.PropertyControlType:
		return n.ctype == m.Value
	default:
		return false
	}
}

// first returns the first matching child, spending one failure of a flaky child.
func (n *Node) first(m domain.Matcher) *Node {
	for _, child := range n.children {
		if !child.matches(m) {
			continue
		}
		if child.flaky > 0 {
			child.flaky--
			continue
		}
		return child
	}
	return nil
}
