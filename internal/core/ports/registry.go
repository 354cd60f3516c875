package ports

import (
	"context"

	"go.trai.ch/lein/internal/core/domain"
)

// InstallationRegistry is a read-only snapshot of the named installations.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type InstallationRegistry interface {
	// Lookup returns the installation named name, or domain.NoInstallation.
	Lookup(name string) domain.Resolution
	// Installations lists every configured installation.
	Installations() []domain.Installation
}

// ExecutionChannel answers questions about the file system of the execution node.
// Implementations may perform remote calls.
type ExecutionChannel interface {
	// FileExists reports whether path names an existing file on the node.
	FileExists(ctx context.Context, path string) (bool, error)
}

// NodeTranslator maps an installation home to its location on a given node.
type NodeTranslator interface {
	// TranslateFor returns the home of inst on node. It may block on I/O.
	TranslateFor(ctx context.Context, node domain.Node, inst domain.Installation) (string, error)
}
