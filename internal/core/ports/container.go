package ports

import (
	"context"

	"go.trai.ch/mesonci/internal/core/domain"
)

// ContainerRuntime runs a delegated build in a container image.
//
//go:generate go run go.uber.org/mock/mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks
type ContainerRuntime interface {
	// Run executes inv and waits for the container to exit.
	// The container's exit status is propagated through *domain.ExitError.
	Run(ctx context.Context, inv *domain.ContainerInvocation) error
}
