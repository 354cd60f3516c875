package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lein/internal/adapters/telemetry"
	"go.trai.ch/lein/internal/app"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newApp(ctrl *gomock.Controller, store *mocks.MockConfigStore, logger *mocks.MockLogger) *app.App {
	return app.New(
		store,
		mocks.NewMockProcessLauncher(ctrl),
		mocks.NewMockExecutionChannel(ctrl),
		mocks.NewMockTracerFactory(ctrl),
		logger,
	)
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	application := newApp(ctrl, mocks.NewMockConfigStore(ctrl), logger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "lein-step version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().Load().Return(nil, errors.New("load failed"))
	logger.EXPECT().Error(gomock.Any()).Times(1)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: newApp(ctrl, store, logger), Logger: logger}, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"installations", "list"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}

// TestRun_BuildFailureNotLoggedTwice verifies that a failed build is not logged again.
func TestRun_BuildFailureNotLoggedTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).Times(0)

	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().Load().Return(&domain.Config{}, nil)
	launcher := mocks.NewMockProcessLauncher(ctrl)
	launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)
	tracers := mocks.NewMockTracerFactory(ctrl)
	tracers.EXPECT().Tracer("none").Return(telemetry.NewNoOpTracer(), func(context.Context) error { return nil }, nil)

	application := app.New(store, launcher, mocks.NewMockExecutionChannel(ctrl), tracers, logger)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}

	args := []string{"run", "--results", "", "--project-dir", t.TempDir(), "--platform", "unix", "test"}
	exitCode := run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
