package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage global settings",
	}
	cmd.AddCommand(c.newAutoDownloadCmd())
	return cmd
}

func (c *CLI) newAutoDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "auto-download [on|off]",
		Short:     "Show or set the auto-download preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				on, err := c.app.PreferAutoDownload()
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "auto-download: %s\n", onOff(on))
				return nil
			}

			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
			default:
				return zerr.With(zerr.New("expected on or off"), "value", args[0])
			}
			return c.app.SetPreferAutoDownload(enabled)
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
