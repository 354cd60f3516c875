package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/lein/internal/core/domain"
)

func (c *CLI) newInstallationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "installations",
		Aliases: []string{"inst"},
		Short:   "Manage Leiningen installations",
	}
	cmd.AddCommand(c.newInstallationsListCmd())
	cmd.AddCommand(c.newInstallationsAddCmd())
	cmd.AddCommand(c.newInstallationsRemoveCmd())
	cmd.AddCommand(c.newInstallationsLocateCmd())
	return cmd
}

func (c *CLI) newInstallationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured installations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			insts, err := c.app.Installations()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(insts) == 0 {
				_, _ = fmt.Fprintln(out, "No Leiningen installations configured.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "HOME", "PROPERTIES")
			for _, inst := range insts {
				t.Row(inst.Name(), inst.Home(), formatProperties(inst.Properties()))
			}
			_, _ = fmt.Fprintln(out, t.String())
			return nil
		},
	}
}

func (c *CLI) newInstallationsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME HOME",
		Short: "Register a Leiningen installation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, _ := cmd.Flags().GetStringArray("label")
			settings, err := parseKeyValues(labels, "label")
			if err != nil {
				return err
			}
			var props []domain.Property
			if len(settings) > 0 {
				props = []domain.Property{{Kind: "label", Settings: settings}}
			}
			if err := c.app.AddInstallation(args[0], args[1], props); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added installation %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringArrayP("label", "l", nil, "Label KEY=VALUE attached to the installation (repeatable)")
	return cmd
}

func (c *CLI) newInstallationsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Unregister a Leiningen installation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveInstallation(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed installation %s\n", args[0])
			return nil
		},
	}
}

func (c *CLI) newInstallationsLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate NAME",
		Short: "Set the home of an installation on a specific node",
		Long:  "Set the home of an installation on a specific node. An empty --home removes the override.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, _ := cmd.Flags().GetString("node")
			home, _ := cmd.Flags().GetString("home")
			return c.app.SetToolLocation(node, args[0], home)
		},
	}
	cmd.Flags().String("node", "", "Node name")
	cmd.Flags().String("home", "", "Installation home on the node")
	_ = cmd.MarkFlagRequired("node")
	return cmd
}

func formatProperties(props []domain.Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		keys := make([]string, 0, len(p.Settings))
		for k := range p.Settings {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			parts = append(parts, p.Kind+":"+k+"="+p.Settings[k])
		}
	}
	return strings.Join(parts, " ")
}
