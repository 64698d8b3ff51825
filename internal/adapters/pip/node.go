package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonci/internal/adapters/logger"
	"go.trai.ch/mesonci/internal/adapters/shell"
	"go.trai.ch/mesonci/internal/core/ports"
)

// NodeID is the unique identifier for the tool installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.ToolInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolInstaller, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(executor, log), nil
		},
	})
}
