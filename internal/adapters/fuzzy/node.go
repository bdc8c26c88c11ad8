package fuzzy

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/edgetabs/internal/core/ports"
)

// NodeID is the unique identifier for the fuzzy scorer Graft node.
const NodeID graft.ID = "adapter.fuzzy"

func init() {
	graft.Register(graft.Node[ports.TextScorer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TextScorer, error) {
			return NewScorer(), nil
		},
	})
}
