package crossfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonci/internal/core/ports"
)

// NodeID is the unique identifier for the cross-file store Graft node.
const NodeID graft.ID = "adapter.crossfile"

func init() {
	graft.Register(graft.Node[ports.CrossFileStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.CrossFileStore, error) {
			return NewStore(), nil
		},
	})
}
