package ports

import "go.trai.ch/lein/internal/core/domain"

// ConfigStore persists the named installation table.
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Load reads the configuration. A missing file yields an empty configuration.
	Load() (*domain.Config, error)
	// Save replaces the persisted configuration with cfg.
	Save(cfg *domain.Config) error
}
