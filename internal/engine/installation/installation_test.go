package installation_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports/mocks"
	"go.trai.ch/lein/internal/engine/installation"
	"go.uber.org/mock/gomock"
)

func TestSpecialize_NodeThenEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	translator := mocks.NewMockNodeTranslator(ctrl)

	inst := domain.NewInstallation("lein-2", "/opt/lein", nil)
	node := domain.Node{Name: "agent-1", Platform: domain.UnixPlatform}

	translator.EXPECT().TranslateFor(gomock.Any(), node, inst).Return("${TOOLS}/lein/", nil)

	got, err := installation.Specialize(context.Background(), inst, node, translator, map[string]string{"TOOLS": "/srv"})
	require.NoError(t, err)
	assert.Equal(t, "/srv/lein", got.Home())
	assert.Equal(t, "lein-2", got.Name())
	assert.Equal(t, "/opt/lein", inst.Home())
}

func TestSpecialize_TranslationFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	translator := mocks.NewMockNodeTranslator(ctrl)

	inst := domain.NewInstallation("lein-2", "/opt/lein", nil)
	translator.EXPECT().TranslateFor(gomock.Any(), gomock.Any(), gomock.Any()).Return("", io.ErrUnexpectedEOF)

	_, err := installation.Specialize(context.Background(), inst, domain.Node{Name: "agent-1"}, translator, nil)
	require.ErrorIs(t, err, domain.ErrNodeTranslation)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSpecialize_Cancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	translator := mocks.NewMockNodeTranslator(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	translator.EXPECT().TranslateFor(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.Node, _ domain.Installation) (string, error) {
			return "", ctx.Err()
		})

	inst := domain.NewInstallation("lein-2", "/opt/lein", nil)
	_, err := installation.Specialize(ctx, inst, domain.Node{}, translator, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSpecialize_NilTranslatorKeepsHome(t *testing.T) {
	inst := domain.NewInstallation("lein-2", "$HOME/lein", nil)
	got, err := installation.Specialize(context.Background(), inst, domain.Node{}, nil, map[string]string{"HOME": "/home/ci"})
	require.NoError(t, err)
	assert.Equal(t, "/home/ci/lein", got.Home())
}

func TestExecutablePath(t *testing.T) {
	inst := domain.NewInstallation("lein-2", "${TOOLS}/lein", nil)
	master := map[string]string{"TOOLS": "/opt"}

	assert.Equal(t, "/opt/lein/bin/lein", installation.ExecutablePath(inst, domain.UnixPlatform, master))

	win := domain.NewInstallation("lein-2", `C:\lein\`, nil)
	assert.Equal(t, `C:\lein\bin\lein.bat`, installation.ExecutablePath(win, domain.WindowsPlatform, nil))
}

func TestExecutable(t *testing.T) {
	inst := domain.NewInstallation("lein-2", "/opt/lein", nil)

	t.Run("present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := mocks.NewMockExecutionChannel(ctrl)
		channel.EXPECT().FileExists(gomock.Any(), "/opt/lein/bin/lein").Return(true, nil)

		path, ok, err := installation.Executable(context.Background(), inst, domain.UnixPlatform, nil, channel)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "/opt/lein/bin/lein", path)
	})

	t.Run("absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := mocks.NewMockExecutionChannel(ctrl)
		channel.EXPECT().FileExists(gomock.Any(), "/opt/lein/bin/lein").Return(false, nil)

		path, ok, err := installation.Executable(context.Background(), inst, domain.UnixPlatform, nil, channel)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, path)
	})

	t.Run("channel failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := mocks.NewMockExecutionChannel(ctrl)
		boom := errors.New("channel closed")
		channel.EXPECT().FileExists(gomock.Any(), gomock.Any()).Return(false, boom)

		_, _, err := installation.Executable(context.Background(), inst, domain.UnixPlatform, nil, channel)
		require.ErrorIs(t, err, boom)
	})
}
