package main

import (
	"github.com/spf13/cobra"
)

var (
	usersLimit  int
	usersCursor string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List members of the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		env := c.GetUsersList(cmd.Context(), usersLimit, usersCursor)
		return renderEnvelope(env)
	},
}

func init() {
	usersCmd.Flags().IntVarP(&usersLimit, "limit", "l", 200, "Maximum number of users to fetch")
	usersCmd.Flags().StringVar(&usersCursor, "cursor", "", "Pagination cursor from a previous call")

	rootCmd.AddCommand(usersCmd)
}
