package main

import (
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user <user-id>",
	Short: "Show profile information for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		env := c.GetUserInfo(cmd.Context(), args[0])
		return renderEnvelope(env)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
}
