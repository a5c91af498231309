package main

import (
	"github.com/chrisguillory/slack-cli/pkg/client"
	"github.com/spf13/cobra"
)

var channelsParams client.ChannelsParams

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List channels visible to the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		env := c.ListChannels(cmd.Context(), channelsParams)
		return renderEnvelope(env)
	},
}

func init() {
	channelsCmd.Flags().StringVar(&channelsParams.Types, "types", "", "Comma-separated channel types (default public_channel,private_channel)")
	channelsCmd.Flags().IntVarP(&channelsParams.Limit, "limit", "l", 200, "Maximum number of channels to fetch")
	channelsCmd.Flags().StringVar(&channelsParams.Cursor, "cursor", "", "Pagination cursor from a previous call")
	channelsCmd.Flags().BoolVar(&channelsParams.IncludeArchived, "include-archived", false, "Include archived channels")

	rootCmd.AddCommand(channelsCmd)
}
