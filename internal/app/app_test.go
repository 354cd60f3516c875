package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lein/internal/adapters/cas"
	"go.trai.ch/lein/internal/adapters/telemetry"
	"go.trai.ch/lein/internal/app"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	store    *mocks.MockConfigStore
	launcher *mocks.MockProcessLauncher
	channel  *mocks.MockExecutionChannel
	tracers  *mocks.MockTracerFactory
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:    mocks.NewMockConfigStore(ctrl),
		launcher: mocks.NewMockProcessLauncher(ctrl),
		channel:  mocks.NewMockExecutionChannel(ctrl),
		tracers:  mocks.NewMockTracerFactory(ctrl),
	}
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	f.app = app.New(f.store, f.launcher, f.channel, f.tracers, log).
		WithEnviron(func() []string { return []string{"PATH=/usr/bin"} })
	return f
}

func (f *fixture) expectNoOpTracer() {
	f.tracers.EXPECT().Tracer(gomock.Any()).Return(
		telemetry.NewNoOpTracer(), func(context.Context) error { return nil }, nil)
}

func configWith(insts ...domain.Installation) *domain.Config {
	return &domain.Config{Installations: insts}
}

func TestApp_Run_Success(t *testing.T) {
	f := newFixture(t)
	f.expectNoOpTracer()
	f.store.EXPECT().Load().Return(configWith(domain.NewInstallation("lein-2", "/opt/lein", nil)), nil)
	f.channel.EXPECT().FileExists(gomock.Any(), "/opt/lein/bin/lein").Return(true, nil)

	wantArgv := []string{"/opt/lein/bin/lein", "-DFOO=1", "test"}
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), "/ws/job", gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command, _ string, out io.Writer) (int, error) {
			assert.Equal(t, wantArgv, cmd.Argv)
			assert.Equal(t, "/opt/lein", cmd.Env[domain.HomeVariable])
			assert.Equal(t, "/jdk", cmd.Env["JAVA_HOME"])
			_, _ = io.WriteString(out, "Ran 1 tests containing 1 assertions.\n")
			return 0, nil
		})

	results := filepath.Join(t.TempDir(), "results.json")
	console := &bytes.Buffer{}
	err := f.app.Run(context.Background(), app.RunOptions{
		StepID:         "unit",
		Installation:   "lein-2",
		Tasks:          "test",
		BuildVariables: map[string]string{"FOO": "1"},
		Environment:    map[string]string{"JAVA_HOME": "/jdk"},
		Platform:       domain.UnixPlatform,
		NodeName:       "agent-1",
		Workspace:      "/ws/job",
		ResultsPath:    results,
		Console:        console,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ran 1 tests containing 1 assertions.\n", console.String())

	rec, err := f.app.LastResult(results, "unit")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.Success)
	assert.Equal(t, cas.ArgvDigest(wantArgv), rec.ArgvDigest)
}

func TestApp_Run_BuildFailed(t *testing.T) {
	f := newFixture(t)
	f.expectNoOpTracer()
	f.store.EXPECT().Load().Return(configWith(), nil)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), "/ws/project", gomock.Any()).Return(1, nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Tasks:      "test",
		Platform:   domain.UnixPlatform,
		ProjectDir: "/ws/project",
		Console:    io.Discard,
	})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestApp_Run_MissingExecutableFails(t *testing.T) {
	f := newFixture(t)
	f.expectNoOpTracer()
	f.store.EXPECT().Load().Return(configWith(domain.NewInstallation("lein-2", "/opt/lein", nil)), nil)
	f.channel.EXPECT().FileExists(gomock.Any(), gomock.Any()).Return(false, nil)
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.app.Run(context.Background(), app.RunOptions{
		Installation: "lein-2",
		Tasks:        "test",
		Platform:     domain.UnixPlatform,
		Console:      io.Discard,
	})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestApp_Run_Aborted(t *testing.T) {
	f := newFixture(t)
	f.expectNoOpTracer()
	f.store.EXPECT().Load().Return(configWith(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.Command, _ string, _ io.Writer) (int, error) {
			cancel()
			return -1, ctx.Err()
		})

	err := f.app.Run(ctx, app.RunOptions{Tasks: "repl", Platform: domain.UnixPlatform, Console: io.Discard})
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrBuildFailed)
}

func TestApp_Run_ConfigLoadError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("unreadable")
	f.store.EXPECT().Load().Return(nil, boom)

	err := f.app.Run(context.Background(), app.RunOptions{Tasks: "test"})
	require.ErrorIs(t, err, boom)
}

func TestApp_Run_UnknownTelemetry(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load().Return(configWith(), nil)
	f.tracers.EXPECT().Tracer("zipkin").Return(nil, nil, domain.ErrInvalidConfig)

	err := f.app.Run(context.Background(), app.RunOptions{Tasks: "test", Telemetry: "zipkin"})
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestApp_LastResult_NoStore(t *testing.T) {
	f := newFixture(t)
	rec, err := f.app.LastResult("", "unit")
	require.NoError(t, err)
	assert.Nil(t, rec)
}
