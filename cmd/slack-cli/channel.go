package main

import (
	"github.com/spf13/cobra"
)

var channelCmd = &cobra.Command{
	Use:   "channel <channel-id>",
	Short: "Show metadata for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		env := c.GetChannelInfo(cmd.Context(), args[0])
		return renderEnvelope(env)
	},
}

func init() {
	rootCmd.AddCommand(channelCmd)
}
