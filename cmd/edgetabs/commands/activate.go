package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <entry-id>",
		Short: "Switch to the tab with the given entry ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Focus(cmd.Context(), args[0])
		},
	}
}
