package ports

import "go.trai.ch/mesonci/internal/core/domain"

// RunStore remembers the last run per host.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunStore interface {
	// Get retrieves the record for host.
	// Returns nil, nil if not found.
	Get(host string) (*domain.RunRecord, error)

	// Put stores the record, replacing any previous record for the same host.
	Put(record domain.RunRecord) error
}
