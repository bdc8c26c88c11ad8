package domain

import "strings"

// Property selects the node attribute a Matcher compares against.
type Property uint8

const (
	// PropertyClassName matches the structural class name of a node.
	PropertyClassName Property = iota
	// PropertyControlType matches the control type of a node.
	PropertyControlType
)

// String returns the short name used in logs and fixture files.
func (p Property) String() string {
	switch p {
	case PropertyClassName:
		return "class"
	case PropertyControlType:
		return "type"
	default:
		return "unknown"
	}
}

// Matcher selects immediate children of a node by a single property condition.
type Matcher struct {
	Property Property
	Value    string
}

// ClassName returns a Matcher on the structural class name.
func ClassName(value string) Matcher {
	return Matcher{Property: PropertyClassName, Value: value}
}

// ControlType returns a Matcher on the control type.
func ControlType(value string) Matcher {
	return Matcher{Property: PropertyControlType, Value: value}
}

// String renders the matcher as "property=value".
func (m Matcher) String() string {
	return m.Property.String() + "=" + m.Value
}

// Chain is an ordered list of child steps. Each step is applied to the node
// matched by the previous one; the chain fails as soon as one step finds nothing.
type Chain []Matcher

// String renders the chain as its steps joined by " > ".
func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, m := range c {
		parts[i] = m.String()
	}
	return strings.Join(parts, " > ")
}

// ControlTypeTabItem is the control type of a single tab in the tab strip.
const ControlTypeTabItem = "TabItem"

// Structural chains of the Edge browser view hierarchy.
var (
	// BrowserViewChain leads from the window element to the browser view root.
	BrowserViewChain = Chain{
		ClassName("BrowserRootView"),
		ClassName("NonClientView"),
		ClassName("BrowserFrameViewWin"),
		ClassName("BrowserView"),
	}

	// TopContainerChain leads from the browser view to the horizontal tab strip ancestor.
	TopContainerChain = Chain{
		ClassName("TopContainerView"),
	}

	// SideContainerChain leads from the browser view to the vertical tab strip ancestor.
	SideContainerChain = Chain{
		ClassName("EdgeVerticalTabContainerView"),
		ClassName("ContentsBackgroundView"),
	}

	// HorizontalTabsChain leads from the top container to the tab container.
	HorizontalTabsChain = Chain{
		ClassName("EdgeTabStripRegionView"),
		ClassName("EdgeTabStrip"),
		ClassName("EdgeTabContainerImpl"),
	}

	// VerticalTabsChain leads from the side container to the tab container.
	VerticalTabsChain = Chain{
		ClassName("EdgeTabStrip"),
		ClassName("EdgeTabContainerImpl"),
	}

	// OverflowTabsChain leads from a vertical tab container to the scrollable list of unpinned tabs.
	OverflowTabsChain = Chain{
		ClassName("ScrollView"),
		ClassName("ScrollView::Viewport"),
		ClassName("View"),
	}

	// TabItem matches a single tab.
	TabItem = ControlType(ControlTypeTabItem)
)
