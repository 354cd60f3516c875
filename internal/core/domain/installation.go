package domain

import (
	"maps"
	"strings"
)

const (
	// UnixCommand is the Leiningen launcher name on Unix targets.
	UnixCommand = "lein"
	// WindowsCommand is the Leiningen launcher name on Windows targets.
	WindowsCommand = "lein.bat"
	// HomeVariable is injected into the process environment when an installation resolved.
	HomeVariable = "LEIN_HOME"
)

// Property is an opaque node or environment specific adjunct of an installation.
// It is carried through specialization unchanged.
type Property struct {
	Kind     string            `yaml:"kind" json:"kind"`
	Settings map[string]string `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// Installation describes one named Leiningen location.
// It is an immutable value: ForEnvironment and WithHome return new values.
type Installation struct {
	name       string
	home       string
	properties []Property
}

// NewInstallation creates an Installation, stripping trailing path separators from home.
func NewInstallation(name, home string, properties []Property) Installation {
	return Installation{
		name:       name,
		home:       LaunderHome(home),
		properties: cloneProperties(properties),
	}
}

// LaunderHome removes every trailing '/' or '\' from home.
// Tools launched from the home directory misbehave with a trailing separator on Windows.
func LaunderHome(home string) string {
	return strings.TrimRight(home, `/\`)
}

// Name returns the unique installation name.
func (i Installation) Name() string {
	return i.name
}

// Home returns the laundered home directory.
func (i Installation) Home() string {
	return i.home
}

// Properties returns a copy of the installation properties.
func (i Installation) Properties() []Property {
	return cloneProperties(i.properties)
}

// WithHome returns a copy of the installation located at home.
func (i Installation) WithHome(home string) Installation {
	return NewInstallation(i.name, home, i.properties)
}

// ForEnvironment returns a copy of the installation with macros in home expanded
// against env. Unknown variables are kept as literal text.
func (i Installation) ForEnvironment(env map[string]string) Installation {
	return i.WithHome(ReplaceMacro(i.home, env))
}

func cloneProperties(props []Property) []Property {
	if props == nil {
		return nil
	}
	out := make([]Property, len(props))
	for idx, p := range props {
		out[idx] = Property{Kind: p.Kind, Settings: maps.Clone(p.Settings)}
	}
	return out
}
