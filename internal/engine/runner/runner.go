// Package runner executes native build plans.
package runner

import (
	"context"
	"errors"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
)

// Step names recorded as telemetry vertices.
const (
	StepSetup   = "meson setup"
	StepCompile = "meson compile"
	StepTest    = "meson test"
)

// Runner runs setup, compile and test for a plan, one step after the other.
type Runner struct {
	build     ports.BuildSystem
	logs      ports.LogPrinter
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Runner.
func New(build ports.BuildSystem, logs ports.LogPrinter, logger ports.Logger, telemetry ports.Telemetry) *Runner {
	return &Runner{
		build:     build,
		logs:      logs,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Run builds plan. Setup and compile failures are fatal; test failures are
// fatal unless plan.IgnoreTestsErrors is set.
func (r *Runner) Run(ctx context.Context, plan *domain.Plan) error {
	if err := r.step(ctx, StepSetup, func(ctx context.Context) error {
		return r.build.Setup(ctx, plan.Options)
	}); err != nil {
		r.printLogs(domain.SetupLog)
		return errors.Join(domain.ErrSetupFailed, err)
	}

	if err := r.step(ctx, StepCompile, r.build.Compile); err != nil {
		r.printLogs(domain.SetupLog)
		return errors.Join(domain.ErrCompileFailed, err)
	}

	if plan.SkipTests {
		r.logger.Info("Skipping tests")
		return nil
	}

	if err := r.step(ctx, StepTest, r.build.Test); err != nil {
		r.printLogs(domain.SetupLog, domain.TestLog)
		if plan.IgnoreTestsErrors {
			r.logger.Warn("Ignoring test failures: " + err.Error())
			return nil
		}
		return errors.Join(domain.ErrTestsFailed, err)
	}
	return nil
}

func (r *Runner) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := r.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

// printLogs surfaces log files; a failure to print never masks the build error.
func (r *Runner) printLogs(names ...string) {
	for _, name := range names {
		if err := r.logs.Print(name); err != nil {
			r.logger.Error(err)
		}
	}
}
