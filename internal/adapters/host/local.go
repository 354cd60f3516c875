// Package host implements the build host for steps run from the local machine.
package host

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"time"

	"go.trai.ch/lein/internal/adapters/cas"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures a Local host.
type Options struct {
	// StepID keys the persisted result of the step.
	StepID string
	// Environment overrides entries of the process environment.
	Environment map[string]string
	// BuildVariables are passed to Leiningen as -D properties.
	BuildVariables map[string]string
	// Workspace is the work-unit workspace. Empty means none.
	Workspace string
	// ProjectDir is the project directory used when no workspace is set.
	ProjectDir string
	// Node describes the machine running the step.
	Node domain.Node
	// Console receives the process output. Defaults to os.Stdout.
	Console io.Writer
	// Charset is the encoding of the process output.
	Charset string
}

// Local implements ports.BuildHost for the local machine.
type Local struct {
	opts    Options
	environ func() []string
	now     func() time.Time
	store   ports.ResultStore
	logger  ports.Logger
}

// NewLocal creates a Local host recording results in store.
func NewLocal(opts Options, store ports.ResultStore, logger ports.Logger) *Local {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	return &Local{
		opts:    opts,
		environ: os.Environ,
		now:     time.Now,
		store:   store,
		logger:  logger,
	}
}

// Environment returns the process environment with the configured overrides applied.
func (h *Local) Environment(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := make(map[string]string)
	for _, entry := range h.environ() {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			env[k] = v
		}
	}
	maps.Copy(env, h.opts.Environment)
	return env, nil
}

// BuildVariables returns a copy of the configured build variables.
func (h *Local) BuildVariables() map[string]string {
	return maps.Clone(h.opts.BuildVariables)
}

// Workspace returns the configured workspace, if any.
func (h *Local) Workspace() (string, bool) {
	return h.opts.Workspace, h.opts.Workspace != ""
}

// SomeWorkspace returns the project directory.
func (h *Local) SomeWorkspace() string {
	return h.opts.ProjectDir
}

// Node returns the local node.
func (h *Local) Node() domain.Node {
	return h.opts.Node
}

// Console returns the build log writer.
func (h *Local) Console() io.Writer {
	return h.opts.Console
}

// Charset returns the build log encoding.
func (h *Local) Charset() string {
	return h.opts.Charset
}

// ReportResult logs res and records it in the result store.
func (h *Local) ReportResult(_ context.Context, res domain.Result) error {
	status := "SUCCESS"
	if !res.Success {
		status = "FAILURE"
	}
	msg := "Build step finished: " + status
	if res.State == domain.StateExited {
		msg += fmt.Sprintf(" (exit code %d)", res.ExitCode)
	}
	h.logger.Info(msg)

	if h.store == nil || h.opts.StepID == "" {
		return nil
	}
	rec := domain.StepRecord{
		StepID:     h.opts.StepID,
		ArgvDigest: cas.ArgvDigest(res.Argv),
		Success:    res.Success,
		ExitCode:   res.ExitCode,
		State:      res.State,
		Timestamp:  h.now().UTC(),
	}
	if err := h.store.Put(rec); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to record step result"), "step", h.opts.StepID)
	}
	return nil
}
