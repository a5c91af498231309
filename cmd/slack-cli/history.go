package main

import (
	"github.com/chrisguillory/slack-cli/pkg/client"
	"github.com/spf13/cobra"
)

var historyParams client.HistoryParams

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch recent messages from a channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		env := c.GetChannelHistory(ctx, historyParams)
		return finishMessages(ctx, c, env)
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyParams.Channel, "channel", "c", "", "Channel ID (required)")
	historyCmd.Flags().IntVarP(&historyParams.Limit, "limit", "l", 20, "Maximum number of messages to fetch")
	historyCmd.Flags().StringVar(&historyParams.Cursor, "cursor", "", "Pagination cursor from a previous call")
	historyCmd.Flags().StringVar(&historyParams.Latest, "latest", "", "Only fetch messages at or before this timestamp")
	historyCmd.Flags().StringVar(&historyParams.Oldest, "oldest", "", "Only fetch messages at or after this timestamp")
	_ = historyCmd.MarkFlagRequired("channel")

	addFileFlags(historyCmd)
	rootCmd.AddCommand(historyCmd)
}
