// Package installation specializes Leiningen installations for a node and
// locates their launcher.
package installation

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports"
	"go.trai.ch/zerr"
)

// ForNode returns a copy of inst whose home is translated for node.
// Translation may block; any failure is fatal for the step.
func ForNode(
	ctx context.Context,
	inst domain.Installation,
	node domain.Node,
	translator ports.NodeTranslator,
) (domain.Installation, error) {
	if translator == nil {
		return inst, nil
	}
	home, err := translator.TranslateFor(ctx, node, inst)
	if err != nil {
		err = errors.Join(domain.ErrNodeTranslation, err)
		return domain.Installation{}, zerr.With(zerr.With(err, "installation", inst.Name()), "node", node.Name)
	}
	return inst.WithHome(home), nil
}

// Specialize applies node translation and then environment expansion.
func Specialize(
	ctx context.Context,
	inst domain.Installation,
	node domain.Node,
	translator ports.NodeTranslator,
	env map[string]string,
) (domain.Installation, error) {
	onNode, err := ForNode(ctx, inst, node, translator)
	if err != nil {
		return domain.Installation{}, err
	}
	return onNode.ForEnvironment(env), nil
}

// ExecutablePath returns home/bin/<launcher> for the platform, after expanding
// home against masterEnv.
func ExecutablePath(inst domain.Installation, platform domain.Platform, masterEnv map[string]string) string {
	home := domain.ReplaceMacro(inst.Home(), masterEnv)
	sep := platform.Separator()
	return strings.Join([]string{home, "bin", platform.Command()}, sep)
}

// Executable asks channel whether the launcher of inst exists on the node.
// It returns the path and true when it does, or false when it is absent.
func Executable(
	ctx context.Context,
	inst domain.Installation,
	platform domain.Platform,
	masterEnv map[string]string,
	channel ports.ExecutionChannel,
) (string, bool, error) {
	path := ExecutablePath(inst, platform, masterEnv)
	exists, err := channel.FileExists(ctx, path)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to check leiningen executable"), "path", path)
	}
	if !exists {
		return "", false, nil
	}
	return path, true, nil
}
