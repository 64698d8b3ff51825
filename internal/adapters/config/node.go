package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mesonci/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the configuration loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ProfilesNodeID is the unique identifier for the profile loader Graft node.
	ProfilesNodeID graft.ID = "adapter.profile_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewEnvLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.ProfileLoader]{
		ID:        ProfilesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProfileLoader, error) {
			return NewProfileLoader(), nil
		},
	})
}
