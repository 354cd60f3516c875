// Package commands implements the CLI commands for lein-step.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lein/internal/app"
	"go.trai.ch/lein/internal/build"
	"go.trai.ch/lein/internal/core/domain"
)

// CLI represents the command line interface for lein-step.
type CLI struct {
	app     Application
	logger  LogFormatter
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	LastResult(path, stepID string) (*domain.StepRecord, error)
	Installations() ([]domain.Installation, error)
	AddInstallation(name, home string, props []domain.Property) error
	RemoveInstallation(name string) error
	SetToolLocation(node, name, home string) error
	PreferAutoDownload() (bool, error)
	SetPreferAutoDownload(enabled bool) error
	UseConfigFile(path string)
}

// LogFormatter switches the log output between console lines and JSON.
type LogFormatter interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
// logger may be nil, in which case --log-json has no effect.
func New(a Application, logger LogFormatter) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lein-step",
		Short:         "Run Leiningen build steps",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("config", "", "Path to the lein.yaml configuration file")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.preRun

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newInstallationsCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newResultsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		c.app.UseConfigFile(path)
	}
	if asJSON, _ := cmd.Flags().GetBool("log-json"); asJSON && c.logger != nil {
		c.logger.SetJSON(true)
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
