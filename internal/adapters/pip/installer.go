// Package pip installs the build tools with pip.
package pip

import (
	"context"
	"errors"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	binary = "pip3"
	ninja  = "ninja"
)

// Installer implements ports.ToolInstaller.
type Installer struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewInstaller creates an Installer.
func NewInstaller(executor ports.Executor, logger ports.Logger) *Installer {
	return &Installer{executor: executor, logger: logger}
}

// Install installs Meson from mesonSpec, and ninja when it is not already on PATH.
// An empty mesonSpec installs domain.DefaultMesonSpec.
func (i *Installer) Install(ctx context.Context, mesonSpec string) error {
	if mesonSpec == "" {
		mesonSpec = domain.DefaultMesonSpec
	}
	if err := i.pipInstall(ctx, mesonSpec); err != nil {
		return err
	}

	if path, err := i.executor.LookPath(ninja); err == nil {
		i.logger.Info("Using " + path)
		return nil
	}
	return i.pipInstall(ctx, ninja)
}

func (i *Installer) pipInstall(ctx context.Context, requirement string) error {
	if err := i.executor.Run(ctx, domain.NewCommand(binary, "install", requirement)); err != nil {
		return zerr.With(errors.Join(domain.ErrInstallFailed, err), "requirement", requirement)
	}
	return nil
}
