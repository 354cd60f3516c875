package domain

import (
	"context"
	"slices"
)

// Config is the persisted global configuration of the Leiningen builder.
type Config struct {
	// PreferAutoDownload is stored for the administration surface only.
	PreferAutoDownload bool
	Installations      []Installation
	// NodeLocations maps node name to installation name to home on that node.
	NodeLocations map[string]map[string]string
}

// Registry returns an immutable snapshot of the configured installations.
func (c *Config) Registry() *Registry {
	if c == nil {
		return NewRegistry(nil)
	}
	return NewRegistry(c.Installations)
}

// AddInstallation appends inst, refusing duplicate names.
func (c *Config) AddInstallation(inst Installation) error {
	if c.Registry().hasName(inst.Name()) {
		return ErrInstallationExists
	}
	c.Installations = append(c.Installations, inst)
	return nil
}

// RemoveInstallation deletes every installation named name.
func (c *Config) RemoveInstallation(name string) error {
	n := len(c.Installations)
	c.Installations = slices.DeleteFunc(c.Installations, func(i Installation) bool {
		return i.Name() == name
	})
	if len(c.Installations) == n {
		return ErrInstallationNotFound
	}
	return nil
}

// SetToolLocation overrides the home of the installation named name on node.
// An empty home removes the override.
func (c *Config) SetToolLocation(node, name, home string) error {
	if !c.Registry().hasName(name) {
		return ErrInstallationNotFound
	}
	if home == "" {
		delete(c.NodeLocations[node], name)
		if len(c.NodeLocations[node]) == 0 {
			delete(c.NodeLocations, node)
		}
		return nil
	}
	if c.NodeLocations == nil {
		c.NodeLocations = make(map[string]map[string]string)
	}
	if c.NodeLocations[node] == nil {
		c.NodeLocations[node] = make(map[string]string)
	}
	c.NodeLocations[node][name] = home
	return nil
}

func (r *Registry) hasName(name string) bool {
	_, ok := r.Lookup(name).Installation()
	return ok
}

// TranslateFor returns the home of inst on node: the node's tool location
// override when one is configured, the installation home otherwise.
func (c *Config) TranslateFor(_ context.Context, node Node, inst Installation) (string, error) {
	if c != nil {
		if home, ok := c.NodeLocations[node.Name][inst.Name()]; ok && home != "" {
			return home, nil
		}
	}
	return inst.Home(), nil
}
