// Package docker delegates builds to a container runtime CLI.
package docker

import (
	"context"
	"errors"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runtime implements ports.ContainerRuntime by invoking the runtime binary.
type Runtime struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewRuntime creates a new Runtime.
func NewRuntime(executor ports.Executor, logger ports.Logger) *Runtime {
	return &Runtime{executor: executor, logger: logger}
}

// Run starts the container and waits for it. The build inside the container
// decides the outcome; its exit status is returned unchanged.
func (r *Runtime) Run(ctx context.Context, inv *domain.ContainerInvocation) error {
	binary := inv.Runtime
	if binary == "" {
		binary = domain.DefaultContainerRuntime
	}

	cmd := domain.NewCommand(binary, inv.Args()...)
	cmd.Quiet = true
	r.logger.Info("Run in " + binary + ": " + cmd.String())

	if err := r.executor.Run(ctx, cmd); err != nil {
		return zerr.With(errors.Join(domain.ErrContainerFailed, err), "image", inv.Image)
	}
	return nil
}
