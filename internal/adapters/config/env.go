// Package config reads the run configuration and the target profile table.
package config

import (
	"os"

	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

// Environment variables read by EnvLoader.
const (
	EnvHost             = "HOST"
	EnvConfigureOptions = "CONFIGURE_OPTIONS"
	EnvTestOptimization = "LIBFFI_TEST_OPTIMIZATION"
	EnvAndroidNDKRoot   = "ANDROID_NDK_ROOT"
	EnvAndroidAPILevel  = "ANDROID_API_LEVEL"

	EnvContainerRuntime = "MESONCI_CONTAINER_RUNTIME"
	EnvContainerCommand = "MESONCI_CONTAINER_COMMAND"
	EnvMesonSpec        = "MESONCI_MESON_SPEC"
)

// EnvLoader implements ports.ConfigLoader on top of the process environment.
type EnvLoader struct {
	lookup func(string) (string, bool)
	getwd  func() (string, error)
}

// NewEnvLoader creates an EnvLoader reading the process environment.
func NewEnvLoader() *EnvLoader {
	return NewEnvLoaderWith(os.LookupEnv, os.Getwd)
}

// NewEnvLoaderWith creates an EnvLoader with explicit sources.
func NewEnvLoaderWith(lookup func(string) (string, bool), getwd func() (string, error)) *EnvLoader {
	return &EnvLoader{lookup: lookup, getwd: getwd}
}

// Load reads the configuration once.
func (l *EnvLoader) Load() (*domain.Config, error) {
	wd, err := l.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg := &domain.Config{
		Host:             l.get(EnvHost),
		ConfigureOptions: l.get(EnvConfigureOptions),
		TestOptimization: l.get(EnvTestOptimization),
		AndroidNDKRoot:   l.get(EnvAndroidNDKRoot),
		AndroidAPILevel:  l.get(EnvAndroidAPILevel),
		Forwarded:        make(map[string]string),
		Workdir:          wd,
		ContainerRuntime: l.getOr(EnvContainerRuntime, domain.DefaultContainerRuntime),
		MesonSpec:        l.getOr(EnvMesonSpec, domain.DefaultMesonSpec),
	}

	for _, name := range domain.ForwardedEnv {
		if v, ok := l.lookup(name); ok {
			cfg.Forwarded[name] = v
		}
	}

	if raw := l.get(EnvContainerCommand); raw != "" {
		words, err := shell.Fields(raw, func(string) string { return "" })
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid container command"), "value", raw)
		}
		cfg.ContainerCommand = words
	}

	return cfg, nil
}

func (l *EnvLoader) get(name string) string {
	v, _ := l.lookup(name)
	return v
}

func (l *EnvLoader) getOr(name, fallback string) string {
	if v := l.get(name); v != "" {
		return v
	}
	return fallback
}
