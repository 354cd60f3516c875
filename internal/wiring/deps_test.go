package wiring_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lein/internal/adapters/config"
	"go.trai.ch/lein/internal/app"
	_ "go.trai.ch/lein/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of
	// the interface used in Dep[T], which does not hold for nodes sharing the
	// ports package.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestExecuteForComponents(t *testing.T) {
	t.Setenv(config.PathVariable, filepath.Join(t.TempDir(), config.Filename))

	c, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, c.App)
	require.NotNil(t, c.Logger)

	insts, err := c.App.Installations()
	require.NoError(t, err)
	require.Empty(t, insts)
}
