// Package meson drives the Meson build system through its command line.
package meson

import (
	"context"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
)

const binary = "meson"

// BuildSystem implements ports.BuildSystem with the meson CLI.
type BuildSystem struct {
	executor ports.Executor
	buildDir string
}

// NewBuildSystem creates a BuildSystem using domain.BuildDir.
func NewBuildSystem(executor ports.Executor) *BuildSystem {
	return &BuildSystem{executor: executor, buildDir: domain.BuildDir}
}

// Setup runs "meson setup <builddir> <options...>".
func (b *BuildSystem) Setup(ctx context.Context, options []string) error {
	args := append([]string{"setup", b.buildDir}, options...)
	return b.executor.Run(ctx, domain.NewCommand(binary, args...))
}

// Compile runs "meson compile -C <builddir>".
func (b *BuildSystem) Compile(ctx context.Context) error {
	return b.executor.Run(ctx, domain.NewCommand(binary, "compile", "-C", b.buildDir))
}

// Test runs "meson test -C <builddir> --no-rebuild".
func (b *BuildSystem) Test(ctx context.Context) error {
	return b.executor.Run(ctx, domain.NewCommand(binary, "test", "-C", b.buildDir, "--no-rebuild"))
}
