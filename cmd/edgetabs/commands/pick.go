package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/edgetabs/internal/app"
)

func (c *CLI) newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [text...]",
		Short: "Pick a tab interactively and switch to it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			return c.app.Pick(cmd.Context(), app.PickOptions{
				Search: strings.Join(args, " "),
				Output: output,
			})
		},
	}
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, picker, or linear")
	return cmd
}
