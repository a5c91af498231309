package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchCount int
	searchPage  int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search messages across the workspace",
	Long: `Search runs a workspace-wide message search with Slack's query
syntax, e.g. "in:#general from:@alice deploy". Results come back newest
first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		env := c.SearchMessages(cmd.Context(), query, searchCount, searchPage)
		return renderEnvelope(env)
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchCount, "limit", "l", 20, "Maximum number of matches to fetch")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "Result page to fetch")

	rootCmd.AddCommand(searchCmd)
}
