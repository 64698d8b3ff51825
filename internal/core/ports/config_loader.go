package ports

import "go.trai.ch/mesonci/internal/core/domain"

// ConfigLoader reads the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the configuration for this run.
	Load() (*domain.Config, error)
}

// ProfileLoader provides the target profile table.
type ProfileLoader interface {
	// Load returns the profile table.
	// A non-empty path names an override file whose profiles take precedence over the built-in ones.
	Load(path string) (domain.Profiles, error)
}
