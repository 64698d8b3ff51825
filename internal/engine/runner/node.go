package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonci/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonci/internal/adapters/meson"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonci/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mesonci/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			meson.NodeID,
			meson.LogsNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			build, err := graft.Dep[ports.BuildSystem](ctx)
			if err != nil {
				return nil, err
			}

			logs, err := graft.Dep[ports.LogPrinter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(build, logs, log, telemetry), nil
		},
	})
}
