package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/edgetabs/internal/app"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [text...]",
		Short: "List open tabs the way the launcher would see them",
		Long: "List open tabs the way the launcher would see them.\n\n" +
			"Tabs are only filtered and scored when an action keyword is given, as with\n" +
			"a launcher query addressed to the plugin; otherwise every tab is listed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword, _ := cmd.Flags().GetString("keyword")
			ids, _ := cmd.Flags().GetBool("ids")

			return c.app.List(cmd.Context(), app.ListOptions{
				Search:  strings.Join(args, " "),
				Keyword: keyword,
				IDs:     ids,
			})
		},
	}
	cmd.Flags().StringP("keyword", "k", "", "Action keyword the query is addressed with")
	cmd.Flags().Bool("ids", false, "Print entry IDs for use with activate")
	return cmd
}
