// Package planner decides the build plan for a target host.
package planner

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

const (
	// DefaultCrossOutput is where rendered descriptors are written.
	DefaultCrossOutput = "cross.txt"

	disableShared     = "--disable-shared"
	optimizationsName = "tests_optimizations"
)

// Planner maps a configuration onto a build plan. It performs no I/O.
type Planner struct{}

// New creates a new Planner.
func New() *Planner {
	return &Planner{}
}

// Plan selects the profile for cfg.Host and resolves it into a plan.
// Hosts without a matching profile get the default native build.
func (p *Planner) Plan(cfg *domain.Config, profiles domain.Profiles) (*domain.Plan, error) {
	profile, ok := profiles.Select(cfg.Host)
	if !ok {
		profile = domain.Profile{Name: domain.DefaultProfileName, Kind: domain.KindNative}
	}

	plan := &domain.Plan{
		Host:              cfg.Host,
		Profile:           profile.Name,
		Mode:              domain.ModeNative,
		SkipTests:         profile.SkipTests,
		IgnoreTestsErrors: cfg.IgnoreTestsErrors,
	}

	opts := domain.NewMesonOptions()

	switch profile.Kind {
	case domain.KindContainer:
		inv, err := containerInvocation(cfg, profile)
		if err != nil {
			return nil, err
		}
		plan.Mode = domain.ModeContainer
		plan.Container = inv
		plan.SkipTests = false
		return plan, nil

	case domain.KindCross:
		if profile.CrossTemplate == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProfile, "missing cross template"), "profile", profile.Name)
		}
		output := profile.CrossOutput
		if output == "" {
			output = DefaultCrossOutput
		}
		plan.CrossFile = &domain.CrossFileSpec{
			Template: profile.CrossTemplate,
			Output:   output,
			Vars:     domain.NewCrossVars(cfg.Host, cfg.AndroidNDKRoot, cfg.AndroidAPILevel),
		}
		opts.Append(profile.Options...).CrossFile(output)

	case domain.KindNative, "":
		opts.Append(profile.Options...)

	default:
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownProfileKind, "cannot plan profile"), "profile", profile.Name), "kind", string(profile.Kind))
	}

	if strings.Contains(cfg.ConfigureOptions, disableShared) {
		opts.DefaultLibrary(domain.LibraryStatic)
	}

	// A set but blank value still defines the option, with an empty list.
	if cfg.TestOptimization != "" {
		opts.Define(optimizationsName, strings.Join(strings.Fields(cfg.TestOptimization), ","))
	}

	plan.Options = opts.Args()
	return plan, nil
}

func containerInvocation(cfg *domain.Config, profile domain.Profile) (*domain.ContainerInvocation, error) {
	if profile.Image == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProfile, "missing image"), "profile", profile.Name)
	}

	vars := map[string]string{
		"HOST":        cfg.Host,
		"GCC_OPTIONS": profile.GCCOptions[cfg.Host],
	}
	lookup := func(name string) string { return vars[name] }

	image, err := shell.Expand(profile.Image, lookup)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to expand image"), "profile", profile.Name)
	}

	env := make(map[string]string, len(profile.Env)+1+len(cfg.Forwarded))
	for _, e := range profile.Env {
		v, err := shell.Expand(e.Value, lookup)
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to expand environment"), "profile", profile.Name), "name", e.Name)
		}
		env[e.Name] = v
	}
	env["QEMU_LD_PREFIX"] = "/usr/" + cfg.Host
	maps.Copy(env, cfg.Forwarded)

	command := cfg.ContainerCommand
	if len(command) == 0 {
		command = domain.DefaultContainerCommand
	}

	runtime := cfg.ContainerRuntime
	if runtime == "" {
		runtime = domain.DefaultContainerRuntime
	}

	inv := &domain.ContainerInvocation{
		Runtime: runtime,
		Image:   image,
		Mount:   cfg.Workdir,
		Command: slices.Clone(command),
	}
	for _, name := range slices.Sorted(maps.Keys(env)) {
		inv.Env = append(inv.Env, domain.EnvVar{Name: name, Value: env[name]})
	}
	return inv, nil
}
