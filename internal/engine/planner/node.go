package planner

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Planner, error) {
			return New(), nil
		},
	})
}
