package commands

import (
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/lein/internal/app"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/zerr"
)

// resultsVariable supplies the default of the --results flag.
const resultsVariable = "LEIN_STEP_RESULTS"

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Run a Leiningen build step",
		Long: "Run a Leiningen build step. The tasks come from --tasks or, when it is\n" +
			"empty, from the remaining arguments.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			tasks, _ := flags.GetString("tasks")
			if tasks == "" {
				tasks = strings.Join(args, " ")
			}
			if strings.TrimSpace(tasks) == "" {
				_ = cmd.Help()
				return nil
			}

			defines, _ := flags.GetStringArray("define")
			vars, err := parseKeyValues(defines, "define")
			if err != nil {
				return err
			}
			envs, _ := flags.GetStringArray("env")
			env, err := parseKeyValues(envs, "env")
			if err != nil {
				return err
			}

			platformName, _ := flags.GetString("platform")
			platform, err := parsePlatform(platformName)
			if err != nil {
				return err
			}

			node, _ := flags.GetString("node")
			if node == "" {
				node, _ = os.Hostname()
			}
			projectDir, _ := flags.GetString("project-dir")
			if projectDir == "" {
				if projectDir, err = os.Getwd(); err != nil {
					return zerr.Wrap(err, "failed to determine project directory")
				}
			}

			installation, _ := flags.GetString("installation")
			workspace, _ := flags.GetString("workspace")
			charset, _ := flags.GetString("charset")
			results, _ := flags.GetString("results")
			step, _ := flags.GetString("step")
			telemetry, _ := flags.GetString("telemetry")

			return c.app.Run(cmd.Context(), app.RunOptions{
				StepID:         step,
				Installation:   installation,
				Tasks:          tasks,
				BuildVariables: vars,
				Environment:    env,
				Platform:       platform,
				NodeName:       node,
				Workspace:      workspace,
				ProjectDir:     projectDir,
				Charset:        charset,
				ResultsPath:    results,
				Telemetry:      telemetry,
				Console:        cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringP("installation", "i", "", "Name of the configured Leiningen installation")
	cmd.Flags().StringP("tasks", "t", "", "Leiningen tasks, macros like ${VAR} are expanded")
	cmd.Flags().StringArrayP("define", "D", nil, "Build variable passed as -DKEY=VALUE (repeatable)")
	cmd.Flags().StringArrayP("env", "e", nil, "Environment override KEY=VALUE (repeatable)")
	cmd.Flags().String("platform", defaultPlatform(), "Node platform: unix or windows")
	cmd.Flags().String("node", "", "Node name used for tool locations (default: hostname)")
	cmd.Flags().StringP("workspace", "w", "", "Workspace directory of the build")
	cmd.Flags().String("project-dir", "", "Directory used when no workspace is given (default: current directory)")
	cmd.Flags().String("charset", "", "Character encoding of the build output (default: UTF-8)")
	cmd.Flags().String("results", os.Getenv(resultsVariable), "Result store file; empty disables it")
	cmd.Flags().String("step", "default", "Step identifier used as the result store key")
	cmd.Flags().String("telemetry", "none", "Telemetry mode: none, otel or progress")
	return cmd
}

func defaultPlatform() string {
	if runtime.GOOS == "windows" {
		return domain.WindowsPlatform.String()
	}
	return domain.UnixPlatform.String()
}

func parsePlatform(name string) (domain.Platform, error) {
	switch strings.ToLower(name) {
	case domain.UnixPlatform.String():
		return domain.UnixPlatform, nil
	case domain.WindowsPlatform.String():
		return domain.WindowsPlatform, nil
	default:
		return domain.Platform{}, zerr.With(zerr.New("unknown platform"), "platform", name)
	}
}

// parseKeyValues parses KEY=VALUE entries. Later entries win.
func parseKeyValues(entries []string, flag string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			return nil, zerr.With(zerr.With(zerr.New("expected KEY=VALUE"), "flag", flag), "value", entry)
		}
		out[k] = v
	}
	return out, nil
}
