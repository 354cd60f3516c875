package domain

import "go.trai.ch/zerr"

var (
	// ErrExecutableNotFound is returned when an installation resolved but its
	// executable does not exist on the target node.
	ErrExecutableNotFound = zerr.New("leiningen executable not found")

	// ErrInvalidTasks is returned when the task string cannot be tokenized.
	ErrInvalidTasks = zerr.New("invalid task string")

	// ErrNodeTranslation is returned when an installation home could not be
	// translated for the target node.
	ErrNodeTranslation = zerr.New("failed to translate installation for node")

	// ErrTransformerClosed is returned when writing to a closed line transformer.
	ErrTransformerClosed = zerr.New("line transformer closed")

	// ErrInvalidConfig is returned when the installation configuration is malformed.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInstallationExists is returned when adding an installation whose name is taken.
	ErrInstallationExists = zerr.New("installation already exists")

	// ErrInstallationNotFound is returned when removing an unknown installation.
	ErrInstallationNotFound = zerr.New("installation not found")

	// ErrBuildFailed is returned by the CLI when a build step reported failure.
	ErrBuildFailed = zerr.New("build step failed")
)
