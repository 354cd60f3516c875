package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lein/internal/core/domain"
)

func TestNewInstallation_LaundersHome(t *testing.T) {
	tests := []struct {
		name string
		home string
		want string
	}{
		{name: "no separator", home: "/opt/lein", want: "/opt/lein"},
		{name: "unix separator", home: "/opt/lein/", want: "/opt/lein"},
		{name: "windows separator", home: `C:\lein\`, want: `C:\lein`},
		{name: "repeated mixed separators", home: `/opt/lein/\/`, want: "/opt/lein"},
		{name: "macro home", home: "${TOOLS}/lein/", want: "${TOOLS}/lein"},
		{name: "empty", home: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := domain.NewInstallation("lein", tt.home, nil)
			assert.Equal(t, tt.want, inst.Home())

			// Laundering a laundered home is a no-op.
			again := domain.NewInstallation("lein", inst.Home(), nil)
			assert.Equal(t, inst.Home(), again.Home())
		})
	}
}

func TestInstallation_ForEnvironment_ReturnsNewValue(t *testing.T) {
	props := []domain.Property{{Kind: "label", Settings: map[string]string{"os": "linux"}}}
	inst := domain.NewInstallation("lein-2", "${TOOLS}/lein-${VERSION}/", props)

	expanded := inst.ForEnvironment(map[string]string{"TOOLS": "/opt"})

	assert.Equal(t, "/opt/lein-${VERSION}", expanded.Home())
	assert.Equal(t, "lein-2", expanded.Name())
	assert.Equal(t, props, expanded.Properties())
	assert.Equal(t, "${TOOLS}/lein-${VERSION}", inst.Home(), "original must not change")
}

func TestInstallation_PropertiesAreCopied(t *testing.T) {
	props := []domain.Property{{Kind: "label", Settings: map[string]string{"os": "linux"}}}
	inst := domain.NewInstallation("lein", "/opt/lein", props)

	props[0].Settings["os"] = "windows"
	got := inst.Properties()
	got[0].Kind = "changed"

	require.Len(t, inst.Properties(), 1)
	assert.Equal(t, "label", inst.Properties()[0].Kind)
	assert.Equal(t, "linux", inst.Properties()[0].Settings["os"])
}

func TestRegistry_Lookup(t *testing.T) {
	first := domain.NewInstallation("lein", "/opt/first", nil)
	second := domain.NewInstallation("lein", "/opt/second", nil)
	other := domain.NewInstallation("other", "/opt/other", nil)
	reg := domain.NewRegistry([]domain.Installation{first, second, other})

	t.Run("first exact match wins", func(t *testing.T) {
		inst, ok := reg.Lookup("lein").Installation()
		require.True(t, ok)
		assert.Equal(t, "/opt/first", inst.Home())
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		_, ok := reg.Lookup("LEIN").Installation()
		assert.False(t, ok)
	})

	t.Run("empty name falls back", func(t *testing.T) {
		_, ok := reg.Lookup("").Installation()
		assert.False(t, ok)
	})

	t.Run("unknown name falls back", func(t *testing.T) {
		_, ok := reg.Lookup("X").Installation()
		assert.False(t, ok)
	})

	t.Run("nil registry falls back", func(t *testing.T) {
		var empty *domain.Registry
		_, ok := empty.Lookup("lein").Installation()
		assert.False(t, ok)
		assert.Nil(t, empty.Installations())
	})
}

func TestPlatform(t *testing.T) {
	assert.Equal(t, "lein", domain.UnixPlatform.Command())
	assert.Equal(t, "lein.bat", domain.WindowsPlatform.Command())
	assert.Equal(t, "/", domain.UnixPlatform.Separator())
	assert.Equal(t, `\`, domain.WindowsPlatform.Separator())
	assert.Equal(t, "windows", domain.WindowsPlatform.String())
}

func TestExited(t *testing.T) {
	assert.True(t, domain.Exited(0).Success)
	res := domain.Exited(3)
	assert.False(t, res.Success)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, domain.StateExited, res.State)

	failed := domain.Failed(domain.StateLaunchFailed, domain.ErrExecutableNotFound)
	assert.False(t, failed.Success)
	assert.Equal(t, -1, failed.ExitCode)
}
