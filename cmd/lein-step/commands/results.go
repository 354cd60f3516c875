package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results STEP",
		Short: "Show the last recorded result of a step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("results")
			if path == "" {
				return zerr.New("no result store configured, set --results or " + resultsVariable)
			}
			rec, err := c.app.LastResult(path, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rec == nil {
				_, _ = fmt.Fprintf(out, "No result recorded for step %s\n", args[0])
				return nil
			}
			status := "FAILURE"
			if rec.Success {
				status = "SUCCESS"
			}
			_, _ = fmt.Fprintf(out, "step:      %s\nstatus:    %s\nstate:     %s\nexit code: %d\nargv:      %s\nrecorded:  %s\n",
				rec.StepID, status, rec.State, rec.ExitCode, rec.ArgvDigest, rec.Timestamp.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().String("results", os.Getenv(resultsVariable), "Result store file")
	return cmd
}
