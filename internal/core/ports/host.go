package ports

import (
	"context"
	"io"

	"go.trai.ch/lein/internal/core/domain"
)

// BuildHost is the orchestration host driving a build step.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type BuildHost interface {
	// Environment returns a fresh copy of the build environment.
	Environment(ctx context.Context) (map[string]string, error)
	// BuildVariables returns the build-scoped variables passed as -D properties.
	BuildVariables() map[string]string
	// Workspace returns the workspace of the current work unit, if any.
	Workspace() (string, bool)
	// SomeWorkspace returns a workspace of the owning project. Used when no
	// work-unit workspace is available.
	SomeWorkspace() string
	// Node returns the node the step runs on.
	Node() domain.Node
	// Console is the build log receiving the process output.
	Console() io.Writer
	// Charset is the character encoding of the build log.
	Charset() string
	// ReportResult records the outcome of the step.
	ReportResult(ctx context.Context, res domain.Result) error
}
