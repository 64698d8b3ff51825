package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonci/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonci/internal/adapters/crossfile"          //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonci/internal/adapters/docker"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonci/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonci/internal/adapters/pip"                //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonci/internal/adapters/state"              //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonci/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/mesonci/internal/core/ports"
	"go.trai.ch/mesonci/internal/engine/planner"
	"go.trai.ch/mesonci/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.ProfilesNodeID,
			planner.NodeID,
			runner.NodeID,
			pip.NodeID,
			docker.NodeID,
			crossfile.NodeID,
			state.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	profileLoader, err := graft.Dep[ports.ProfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	run, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.ToolInstaller](ctx)
	if err != nil {
		return nil, err
	}

	container, err := graft.Dep[ports.ContainerRuntime](ctx)
	if err != nil {
		return nil, err
	}

	crossFiles, err := graft.Dep[ports.CrossFileStore](ctx)
	if err != nil {
		return nil, err
	}

	runs, err := graft.Dep[ports.RunStore](ctx)
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

	return New(configLoader, profileLoader, plan, run, installer, container, crossFiles, runs, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
