package app

import (
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/zerr"
)

// Installations returns the configured installations in declaration order.
func (a *App) Installations() ([]domain.Installation, error) {
	cfg, err := a.configStore.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.Registry().Installations(), nil
}

// AddInstallation registers a new installation.
func (a *App) AddInstallation(name, home string, props []domain.Property) error {
	return a.update(func(cfg *domain.Config) error {
		return cfg.AddInstallation(domain.NewInstallation(name, home, props))
	})
}

// RemoveInstallation unregisters the installation named name and its tool
// locations.
func (a *App) RemoveInstallation(name string) error {
	return a.update(func(cfg *domain.Config) error {
		if err := cfg.RemoveInstallation(name); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove installation"), "installation", name)
		}
		for node, locations := range cfg.NodeLocations {
			delete(locations, name)
			if len(locations) == 0 {
				delete(cfg.NodeLocations, node)
			}
		}
		return nil
	})
}

// SetToolLocation overrides the home of installation name on node. An empty
// home removes the override.
func (a *App) SetToolLocation(node, name, home string) error {
	return a.update(func(cfg *domain.Config) error {
		return cfg.SetToolLocation(node, name, home)
	})
}

// PreferAutoDownload reports the stored auto-download preference.
func (a *App) PreferAutoDownload() (bool, error) {
	cfg, err := a.configStore.Load()
	if err != nil {
		return false, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.PreferAutoDownload, nil
}

// SetPreferAutoDownload stores the auto-download preference.
func (a *App) SetPreferAutoDownload(enabled bool) error {
	return a.update(func(cfg *domain.Config) error {
		cfg.PreferAutoDownload = enabled
		return nil
	})
}

func (a *App) update(fn func(cfg *domain.Config) error) error {
	cfg, err := a.configStore.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := fn(cfg); err != nil {
		return err
	}
	if err := a.configStore.Save(cfg); err != nil {
		return zerr.Wrap(err, "failed to save configuration")
	}
	return nil
}
