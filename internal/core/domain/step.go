package domain

// Platform describes the operating system family of the node a step runs on.
// It is injected rather than detected so non-native targets can be exercised.
type Platform struct {
	Unix bool
}

// UnixPlatform is the platform of Unix-like nodes.
var UnixPlatform = Platform{Unix: true}

// WindowsPlatform is the platform of Windows nodes.
var WindowsPlatform = Platform{Unix: false}

// Command returns the bare Leiningen launcher name for the platform.
func (p Platform) Command() string {
	if p.Unix {
		return UnixCommand
	}
	return WindowsCommand
}

// Separator returns the path separator of the platform.
func (p Platform) Separator() string {
	if p.Unix {
		return "/"
	}
	return `\`
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	if p.Unix {
		return "unix"
	}
	return "windows"
}

// Node identifies the execution node a step is dispatched to.
type Node struct {
	Name     string
	Platform Platform
}

// Step is the persisted configuration of one Leiningen build step.
type Step struct {
	// InstallationName selects a named installation. Empty means use the fallback command.
	InstallationName string
	// Tasks is the raw task string; it may contain newlines, tabs and macros.
	Tasks string
}

// Command is a built argument vector together with its effective environment.
type Command struct {
	Argv []string
	Env  map[string]string
}
