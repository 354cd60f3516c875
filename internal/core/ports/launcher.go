// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/lein/internal/core/domain"
)

// ProcessLauncher starts external processes on the execution node.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type ProcessLauncher interface {
	// Launch runs cmd in dir and blocks until it exits.
	//
	// cmd.Env overrides the launcher's base environment by key. Both stdout and
	// stderr of the process are written to out by a single writer.
	//
	// It returns the exit code of the process. A non-nil error means the process
	// could not be started or the wait was interrupted; the exit code is then meaningless.
	Launch(ctx context.Context, cmd domain.Command, dir string, out io.Writer) (int, error)
}
