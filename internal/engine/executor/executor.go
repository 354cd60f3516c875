// Package executor runs Leiningen build steps.
package executor

import (
	"context"
	"io"
	"maps"

	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports"
	"go.trai.ch/lein/internal/engine/command"
	"go.trai.ch/lein/internal/engine/installation"
	"go.trai.ch/lein/internal/engine/linestream"
	"go.trai.ch/zerr"
)

// Invocation carries the collaborators scoped to one build step.
type Invocation struct {
	// Registry is the installation snapshot used for the step.
	Registry ports.InstallationRegistry
	// Translator maps installation homes to the execution node. May be nil.
	Translator ports.NodeTranslator
	// Host is the orchestration host driving the step.
	Host ports.BuildHost
}

// Executor resolves, specializes and launches Leiningen for a build step.
type Executor struct {
	runner    *Runner
	channel   ports.ExecutionChannel
	tracer    ports.Tracer
	logger    ports.Logger
	masterEnv map[string]string
}

// New creates an Executor.
// masterEnv is the environment of the controlling process; it is used to
// expand installation homes when locating the launcher.
func New(
	launcher ports.ProcessLauncher,
	channel ports.ExecutionChannel,
	tracer ports.Tracer,
	logger ports.Logger,
	masterEnv map[string]string,
) *Executor {
	return &Executor{
		runner:    NewRunner(launcher, logger),
		channel:   channel,
		tracer:    tracer,
		logger:    logger,
		masterEnv: maps.Clone(masterEnv),
	}
}

// Perform runs step and reports its result to the host.
//
// Every failure produces a non-success result. The returned error is non-nil
// only when the step was aborted: the environment or node translation failed,
// the execution channel failed, or ctx was cancelled.
func (e *Executor) Perform(ctx context.Context, inv Invocation, step domain.Step) (domain.Result, error) {
	ctx, span := e.tracer.Start(ctx, "lein "+command.NormalizeTasks(step.Tasks))
	defer span.End()

	e.logger.Info("Launching build.")

	res, err := e.perform(ctx, inv, step, span)
	if err != nil {
		span.RecordError(err)
		e.logger.Error(err)
	}
	span.SetAttribute("lein.exit_code", res.ExitCode)

	if reportErr := inv.Host.ReportResult(context.WithoutCancel(ctx), res); reportErr != nil {
		e.logger.Error(zerr.Wrap(reportErr, "failed to report build result"))
	}
	return res, err
}

func (e *Executor) perform(
	ctx context.Context,
	inv Invocation,
	step domain.Step,
	span ports.Span,
) (domain.Result, error) {
	host := inv.Host

	env, err := host.Environment(ctx)
	if err != nil {
		err = zerr.Wrap(err, "failed to read build environment")
		return domain.Failed(domain.StateAborted, err), err
	}
	vars := host.BuildVariables()
	node := host.Node()

	var resolution domain.Resolution
	if inv.Registry != nil {
		resolution = inv.Registry.Lookup(step.InstallationName)
	}

	var exe string
	if inst, ok := resolution.Installation(); ok {
		inst, err = installation.Specialize(ctx, inst, node, inv.Translator, env)
		if err != nil {
			return domain.Failed(domain.StateAborted, err), err
		}
		resolution = domain.Resolved(inst)

		path, found, err := installation.Executable(ctx, inst, node.Platform, e.masterEnv, e.channel)
		if err != nil {
			return domain.Failed(domain.StateAborted, err), err
		}
		if !found {
			err := zerr.With(
				zerr.Wrap(domain.ErrExecutableNotFound, "Can't retrieve the Leiningen executable."),
				"installation", inst.Name(),
			)
			e.logger.Error(err)
			return domain.Failed(domain.StateAborted, err), nil
		}
		exe = path
	}

	cmd, err := command.Build(command.Input{
		Resolution:     resolution,
		Executable:     exe,
		Tasks:          step.Tasks,
		Environment:    env,
		BuildVariables: vars,
		Platform:       node.Platform,
	})
	if err != nil {
		e.logger.Error(err)
		return domain.Failed(domain.StateAborted, err), nil
	}

	dir, ok := host.Workspace()
	if !ok {
		dir = host.SomeWorkspace()
	}

	enc, err := linestream.LookupCharset(host.Charset())
	if err != nil {
		e.logger.Warn("unsupported build log charset, decoding output as UTF-8")
		enc = nil
	}

	argv := &command.ArgumentList{}
	argv.Add(cmd.Argv...)
	e.logger.Info("$ " + argv.String())

	annot := newAnnotator(span)
	defer annot.Finish()

	out := io.MultiWriter(host.Console(), span)
	res, err := e.runner.Run(ctx, cmd, dir, out, annot.Line, linestream.WithEncoding(enc))
	res.Argv = cmd.Argv
	return res, err
}
