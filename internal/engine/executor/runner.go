package executor

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports"
	"go.trai.ch/lein/internal/engine/linestream"
	"go.trai.ch/zerr"
)

// Runner drives one external process to completion through a line transformer.
type Runner struct {
	launcher ports.ProcessLauncher
	logger   ports.Logger
}

// NewRunner creates a Runner launching processes with launcher.
func NewRunner(launcher ports.ProcessLauncher, logger ports.Logger) *Runner {
	return &Runner{launcher: launcher, logger: logger}
}

// Run launches cmd in dir with its combined output going through a
// linestream.Transformer into out. The transformer is flushed and closed on
// every path before Run returns.
//
// A process that could not be started yields a LaunchFailed result and a nil
// error. Cancellation of ctx is returned as an error.
func (r *Runner) Run(
	ctx context.Context,
	cmd domain.Command,
	dir string,
	out io.Writer,
	hook linestream.LineFunc,
	opts ...linestream.Option,
) (domain.Result, error) {
	t := linestream.New(out, hook, opts...)
	defer func() {
		_ = t.Close()
	}()

	code, launchErr := r.launcher.Launch(ctx, cmd, dir, t)

	if err := t.Close(); err != nil {
		r.logger.Error(zerr.Wrap(err, "failed to flush build output"))
	}

	if launchErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err := zerr.Wrap(errors.Join(ctxErr, launchErr), "build step interrupted")
			return domain.Failed(domain.StateAborted, err), err
		}
		err := zerr.Wrap(launchErr, "command execution failed")
		r.logger.Error(err)
		return domain.Failed(domain.StateLaunchFailed, err), nil
	}

	return domain.Exited(code), nil
}
