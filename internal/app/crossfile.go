package app

import (
	"context"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
	"go.trai.ch/mesonci/internal/engine/planner"
	"go.trai.ch/zerr"
)

// CrossFileOptions configures a standalone descriptor render.
type CrossFileOptions struct {
	Template string
	// Output defaults to planner.DefaultCrossOutput.
	Output string
	// Host overrides the HOST environment variable when non-empty.
	Host string
}

// RenderCrossFile renders a cross-compilation descriptor for the configured host
// and keeps it on disk.
func (a *App) RenderCrossFile(ctx context.Context, opts CrossFileOptions) (string, error) {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Host != "" {
		cfg.Host = opts.Host
	}

	spec := &domain.CrossFileSpec{
		Template: opts.Template,
		Output:   opts.Output,
		Vars:     domain.NewCrossVars(cfg.Host, cfg.AndroidNDKRoot, cfg.AndroidAPILevel),
	}
	if spec.Output == "" {
		spec.Output = planner.DefaultCrossOutput
	}

	if err := a.writeCrossFile(ctx, spec); err != nil {
		return "", err
	}
	return spec.Output, nil
}

func (a *App) writeCrossFile(ctx context.Context, spec *domain.CrossFileSpec) error {
	if ports.IsDryRun(ctx) {
		a.logger.Info("[dry-run] render " + spec.Template + " -> " + spec.Output)
		return nil
	}

	template, err := a.crossFiles.ReadTemplate(spec.Template)
	if err != nil {
		return err
	}
	if err := a.crossFiles.Write(spec.Output, domain.RenderCrossFile(template, spec.Vars)); err != nil {
		return err
	}
	a.logger.Info("Generated " + spec.Output + " from " + spec.Template)
	return nil
}

func (a *App) removeCrossFile(ctx context.Context, path string) {
	if ports.IsDryRun(ctx) {
		return
	}
	if err := a.crossFiles.Remove(path); err != nil {
		a.logger.Error(err)
	}
}
