package command

import (
	"maps"
	"regexp"

	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/zerr"
)

// propertyPrefix precedes every build variable passed to Leiningen.
const propertyPrefix = "-D"

var lineBreaks = regexp.MustCompile(`[\t\r\n]+`)

// Input holds everything needed to build a Leiningen command line.
type Input struct {
	// Resolution is the installation selected for the step.
	Resolution domain.Resolution
	// Executable is the resolved launcher path when an installation resolved.
	Executable string
	// Tasks is the raw task string.
	Tasks string
	// Environment is the build environment. It is not modified.
	Environment map[string]string
	// BuildVariables are passed as -D properties and expanded into the tasks.
	BuildVariables map[string]string
	// Platform is the platform of the target node.
	Platform domain.Platform
}

// NormalizeTasks collapses every run of tabs, carriage returns and newlines into one space.
func NormalizeTasks(raw string) string {
	return lineBreaks.ReplaceAllString(raw, " ")
}

// ExpandTasks normalizes raw and expands its macros against env, then against vars.
func ExpandTasks(raw string, env, vars map[string]string) string {
	tasks := NormalizeTasks(raw)
	tasks = domain.ReplaceMacro(tasks, env)
	return domain.ReplaceMacro(tasks, vars)
}

// Build assembles the argument vector and the effective environment.
//
// The vector is, in order: the Windows shell wrapper (non-Unix only), the
// launcher, one -D token per build variable, the task words, and the Windows
// exit-code forwarding suffix (non-Unix only).
func Build(in Input) (domain.Command, error) {
	tasks := ExpandTasks(in.Tasks, in.Environment, in.BuildVariables)
	env := maps.Clone(in.Environment)
	if env == nil {
		env = make(map[string]string)
	}

	args := &ArgumentList{}
	inst, resolved := in.Resolution.Installation()
	if resolved {
		if in.Executable == "" {
			return domain.Command{}, zerr.With(zerr.Wrap(domain.ErrExecutableNotFound, "resolved installation has no executable"), "installation", inst.Name())
		}
		args.Add(in.Executable)
	} else {
		args.Add(in.Platform.Command())
	}

	args.AddKeyValuePairs(propertyPrefix, in.BuildVariables)
	if err := args.AddTokenized(tasks); err != nil {
		return domain.Command{}, err
	}

	if resolved {
		env[domain.HomeVariable] = inst.Home()
	}

	if !in.Platform.Unix {
		// Batch files do not propagate their exit code through a plain cmd.exe
		// invocation. The doubled percent signs defer ERRORLEVEL expansion until
		// after the batch file ran.
		args.Prepend("cmd.exe", "/C")
		args.Add("&&", "exit", "%%ERRORLEVEL%%")
	}

	return domain.Command{Argv: args.Strings(), Env: env}, nil
}
