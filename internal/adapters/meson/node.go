package meson

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonci/internal/adapters/logger"
	"go.trai.ch/mesonci/internal/adapters/shell"
	"go.trai.ch/mesonci/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the build system Graft node.
	NodeID graft.ID = "adapter.meson"
	// LogsNodeID is the unique identifier for the log printer Graft node.
	LogsNodeID graft.ID = "adapter.meson_logs"
)

func init() {
	graft.Register(graft.Node[ports.BuildSystem]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BuildSystem, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuildSystem(executor), nil
		},
	})

	graft.Register(graft.Node[ports.LogPrinter]{
		ID:        LogsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LogPrinter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogPrinter(log), nil
		},
	})
}
