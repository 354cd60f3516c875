package ports

import "go.trai.ch/lein/internal/core/domain"

// ResultStore records the outcome of build steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// Get retrieves the last record for a step.
	// Returns nil, nil if not found.
	Get(stepID string) (*domain.StepRecord, error)

	// Put stores the record.
	Put(rec domain.StepRecord) error
}
