// Package app implements the application layer for mesonci.
package app

import (
	"context"
	"time"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/mesonci/internal/core/ports"
	"go.trai.ch/mesonci/internal/engine/planner"
	"go.trai.ch/mesonci/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	profileLoader ports.ProfileLoader
	planner       *planner.Planner
	runner        *runner.Runner
	installer     ports.ToolInstaller
	container     ports.ContainerRuntime
	crossFiles    ports.CrossFileStore
	runs          ports.RunStore
	logger        ports.Logger
	telemetry     ports.Telemetry
	now           func() time.Time
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	profileLoader ports.ProfileLoader,
	plan *planner.Planner,
	run *runner.Runner,
	installer ports.ToolInstaller,
	container ports.ContainerRuntime,
	crossFiles ports.CrossFileStore,
	runs ports.RunStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader:  configLoader,
		profileLoader: profileLoader,
		planner:       plan,
		runner:        run,
		installer:     installer,
		container:     container,
		crossFiles:    crossFiles,
		runs:          runs,
		logger:        logger,
		telemetry:     telemetry,
		now:           time.Now,
	}
}

// WithClock sets the clock used to timestamp run records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// PlanOptions configures plan resolution.
type PlanOptions struct {
	// Host overrides the HOST environment variable when non-empty.
	Host string
	// ProfilesPath names a profile file consulted before the built-in table.
	ProfilesPath      string
	IgnoreTestsErrors bool
}

// RunOptions configures a CI run.
type RunOptions struct {
	PlanOptions
	// DryRun logs every external command instead of running it.
	DryRun bool
}

// Plan resolves the build plan without executing anything.
func (a *App) Plan(_ context.Context, opts PlanOptions) (*domain.Plan, error) {
	_, plan, err := a.resolve(opts)
	return plan, err
}

// Run resolves the plan for this environment and executes it.
// Native runs are recorded in the run store unless opts.DryRun is set.
func (a *App) Run(ctx context.Context, opts RunOptions) (err error) {
	cfg, plan, err := a.resolve(opts.PlanOptions)
	if err != nil {
		return err
	}

	if opts.DryRun {
		cfg.DryRun = true
		ctx = ports.ContextWithDryRun(ctx)
	}

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to close telemetry"))
		}
	}()

	a.logger.Info("Plan " + plan.Fingerprint() + ": " + plan.Summary())

	if plan.Mode == domain.ModeContainer {
		return a.container.Run(ctx, plan.Container)
	}

	if !opts.DryRun {
		a.comparePrevious(plan)
		defer func() { a.record(plan, err) }()
	}

	if spec := plan.CrossFile; spec != nil {
		if err := a.writeCrossFile(ctx, spec); err != nil {
			return err
		}
		defer a.removeCrossFile(ctx, spec.Output)
	}

	if err := a.installer.Install(ctx, cfg.MesonSpec); err != nil {
		return err
	}

	return a.runner.Run(ctx, plan)
}

func (a *App) resolve(opts PlanOptions) (*domain.Config, *domain.Plan, error) {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Host != "" {
		cfg.Host = opts.Host
	}
	cfg.IgnoreTestsErrors = opts.IgnoreTestsErrors

	profiles, err := a.profileLoader.Load(opts.ProfilesPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load profiles")
	}

	plan, err := a.planner.Plan(cfg, profiles)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to plan build"), "host", cfg.Host)
	}
	return cfg, plan, nil
}

// comparePrevious warns when the previous run for the host used a different plan.
func (a *App) comparePrevious(plan *domain.Plan) {
	prev, err := a.runs.Get(plan.Host)
	if err != nil {
		a.logger.Error(err)
		return
	}
	if prev != nil && prev.Fingerprint != plan.Fingerprint() {
		a.logger.Warn("Build plan changed since last " + string(prev.Outcome) + " run: " +
			prev.Fingerprint + " -> " + plan.Fingerprint())
	}
}

func (a *App) record(plan *domain.Plan, runErr error) {
	outcome := domain.OutcomeSucceeded
	if runErr != nil {
		outcome = domain.OutcomeFailed
	}
	if err := a.runs.Put(domain.RunRecord{
		Host:        plan.Host,
		Profile:     plan.Profile,
		Fingerprint: plan.Fingerprint(),
		Outcome:     outcome,
		Timestamp:   a.now().UTC(),
	}); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to record run"))
	}
}
