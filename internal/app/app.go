// Package app implements the application layer for lein-step.
package app

import (
	"context"
	"io"
	"os"
	"strings"

	"go.trai.ch/lein/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lein/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/lein/internal/adapters/host"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports"
	"go.trai.ch/lein/internal/engine/executor"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configStore ports.ConfigStore
	launcher    ports.ProcessLauncher
	channel     ports.ExecutionChannel
	tracers     ports.TracerFactory
	logger      ports.Logger
	environ     func() []string
}

// New creates a new App instance.
func New(
	store ports.ConfigStore,
	launcher ports.ProcessLauncher,
	channel ports.ExecutionChannel,
	tracers ports.TracerFactory,
	logger ports.Logger,
) *App {
	return &App{
		configStore: store,
		launcher:    launcher,
		channel:     channel,
		tracers:     tracers,
		logger:      logger,
		environ:     os.Environ,
	}
}

// WithConfigStore replaces the configuration store.
func (a *App) WithConfigStore(store ports.ConfigStore) *App {
	a.configStore = store
	return a
}

// RunOptions configures a single build step run.
type RunOptions struct {
	// StepID keys the persisted result. Empty disables persistence.
	StepID string
	// Installation names the Leiningen installation to use. Empty or unknown
	// names fall back to the lein command on the PATH.
	Installation string
	// Tasks is the raw Leiningen task string.
	Tasks string
	// BuildVariables are passed as -D properties.
	BuildVariables map[string]string
	// Environment overrides the process environment.
	Environment map[string]string
	// Platform of the node launching Leiningen.
	Platform domain.Platform
	// NodeName identifies the node for tool location lookups.
	NodeName string
	// Workspace is the work-unit workspace. Empty means none.
	Workspace string
	// ProjectDir is used when no workspace is set.
	ProjectDir string
	// Charset is the encoding of the process output.
	Charset string
	// ResultsPath is the result store file. Empty disables it.
	ResultsPath string
	// Telemetry selects the tracer.
	Telemetry string
	// Console receives the process output.
	Console io.Writer
}

// Run executes one Leiningen build step.
// It returns domain.ErrBuildFailed when the step completed without success.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configStore.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	tracer, shutdown, err := a.tracers.Tracer(opts.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to shut down telemetry"))
		}
	}()

	results, err := openResults(opts.ResultsPath)
	if err != nil {
		return err
	}

	h := host.NewLocal(host.Options{
		StepID:         opts.StepID,
		Environment:    opts.Environment,
		BuildVariables: opts.BuildVariables,
		Workspace:      opts.Workspace,
		ProjectDir:     opts.ProjectDir,
		Node:           domain.Node{Name: opts.NodeName, Platform: opts.Platform},
		Console:        opts.Console,
		Charset:        opts.Charset,
	}, results, a.logger)

	exec := executor.New(a.launcher, a.channel, tracer, a.logger, environMap(a.environ()))
	res, err := exec.Perform(ctx, executor.Invocation{
		Registry:   cfg.Registry(),
		Translator: cfg,
		Host:       h,
	}, domain.Step{
		InstallationName: opts.Installation,
		Tasks:            opts.Tasks,
	})
	if err != nil {
		return zerr.Wrap(err, "build step aborted")
	}
	if !res.Success {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrBuildFailed, "Leiningen build failed"),
			"state", string(res.State)), "exit_code", res.ExitCode)
	}
	return nil
}

// LastResult returns the persisted record of stepID in the result store at
// path, or nil when there is none.
func (a *App) LastResult(path, stepID string) (*domain.StepRecord, error) {
	store, err := openResults(path)
	if err != nil {
		return nil, err
	}
	return store.Get(stepID)
}

func openResults(path string) (ports.ResultStore, error) {
	if path == "" {
		return cas.Discard{}, nil
	}
	store, err := cas.NewStore(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open result store"), "path", path)
	}
	return store, nil
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}

// UseConfigFile switches the configuration store to the YAML file at path.
func (a *App) UseConfigFile(path string) {
	a.configStore = config.NewStore(path)
}
