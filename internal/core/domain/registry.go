package domain

import "slices"

// Resolution is the outcome of looking up an installation by name.
// It is either Resolved or NoInstallation; use Installation to tell them apart.
type Resolution struct {
	installation Installation
	resolved     bool
}

// Resolved wraps a matched installation.
func Resolved(inst Installation) Resolution {
	return Resolution{installation: inst, resolved: true}
}

// NoInstallation means no installation is configured and the fallback command is used.
func NoInstallation() Resolution {
	return Resolution{}
}

// Installation returns the resolved installation and true, or false for NoInstallation.
func (r Resolution) Installation() (Installation, bool) {
	return r.installation, r.resolved
}

// Registry is an immutable snapshot of the named installations.
type Registry struct {
	installations []Installation
}

// NewRegistry creates a Registry snapshot over a copy of installations.
func NewRegistry(installations []Installation) *Registry {
	return &Registry{installations: slices.Clone(installations)}
}

// Lookup returns the first installation whose name equals name exactly.
// An empty or unmatched name yields NoInstallation.
func (r *Registry) Lookup(name string) Resolution {
	if r == nil || name == "" {
		return NoInstallation()
	}
	for _, inst := range r.installations {
		if inst.Name() == name {
			return Resolved(inst)
		}
	}
	return NoInstallation()
}

// Installations returns the installations in configuration order.
func (r *Registry) Installations() []Installation {
	if r == nil {
		return nil
	}
	return slices.Clone(r.installations)
}
