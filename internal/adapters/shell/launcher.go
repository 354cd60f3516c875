// Package shell provides the local process adapters.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/zerr"
)

// Launcher implements ports.ProcessLauncher using os/exec.
type Launcher struct{}

// NewLauncher creates a new Launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Launch runs cmd in dir and waits for it to exit.
// The command environment is merged over os.Environ(), entries of cmd.Env
// winning. Stdout and stderr are both written to out.
//
// The exit code of a process that ran is returned with a nil error, whatever
// its value. A process that could not be started returns -1 and the start
// error. Cancellation of ctx kills the process and returns ctx.Err().
func (l *Launcher) Launch(ctx context.Context, cmd domain.Command, dir string, out io.Writer) (int, error) {
	if len(cmd.Argv) == 0 {
		return -1, zerr.New("empty command line")
	}

	name := cmd.Argv[0]
	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Argv[1:]...) //nolint:gosec // build step command line
	// exec.CommandContext sets Args[0] to the executable path.
	c.Args[0] = name
	c.Dir = dir
	c.Env = env
	c.Stdout = out
	c.Stderr = out

	if err := c.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return -1, ctxErr
		}
		return -1, zerr.With(zerr.Wrap(err, "failed to start process"), "command", name)
	}

	if err := c.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return -1, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, "failed to copy process output"), "command", name)
	}
	return 0, nil
}

// resolveEnvironment merges overrides over the base KEY=VALUE entries.
// The result is sorted by key.
func resolveEnvironment(base []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(base)+len(overrides))
	for _, entry := range base {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
