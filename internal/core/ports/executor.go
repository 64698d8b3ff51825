// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mesonci/internal/core/domain"
)

// Executor runs external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts cmd and waits for it to finish.
	//
	// A non-zero exit status is reported as an error wrapping *domain.ExitError.
	Run(ctx context.Context, cmd domain.Command) error

	// LookPath reports whether name resolves to an executable on PATH.
	LookPath(name string) (string, error)
}
