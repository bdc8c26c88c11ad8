package tabstrip

import (
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
	"go.trai.ch/edgetabs/internal/engine/anchors"
)

// anchorFunc selects the anchor a layout starts its descent from.
type anchorFunc func(anchors.Entry) ports.Node

// layoutDef describes where the tab container of one layout lives.
type layoutDef struct {
	layout domain.Layout
	anchor anchorFunc
	// chain leads from the anchor to the tab container.
	chain domain.Chain
	// overflow leads from the tab container to a second list of tabs, if any.
	overflow domain.Chain
	// pinned marks the container's direct tab children as pinned.
	pinned bool
	// heal re-resolves the anchor from the browser view once when the descent fails.
	heal domain.Chain
}

// layouts is tried in order; the first layout whose container is found wins.
var layouts = []layoutDef{
	{
		layout: domain.LayoutHorizontal,
		anchor: func(e anchors.Entry) ports.Node { return e.TopContainer },
		chain:  domain.HorizontalTabsChain,
	},
	{
		layout:   domain.LayoutVertical,
		anchor:   func(e anchors.Entry) ports.Node { return e.SideContainer },
		chain:    domain.VerticalTabsChain,
		overflow: domain.OverflowTabsChain,
		pinned:   true,
		heal:     domain.SideContainerChain,
	},
}

func layoutFor(layout domain.Layout) (layoutDef, bool) {
	for _, def := range layouts {
		if def.layout == layout {
			return def, true
		}
	}
	return layoutDef{}, false
}
