package main

import (
	"github.com/chrisguillory/slack-cli/pkg/client"
	"github.com/spf13/cobra"
)

var repliesParams client.RepliesParams

var repliesCmd = &cobra.Command{
	Use:   "replies",
	Short: "Fetch all replies in a thread",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		env := c.GetThreadReplies(ctx, repliesParams)
		return finishMessages(ctx, c, env)
	},
}

func init() {
	repliesCmd.Flags().StringVarP(&repliesParams.Channel, "channel", "c", "", "Channel ID (required)")
	repliesCmd.Flags().StringVarP(&repliesParams.ThreadTS, "thread-ts", "t", "", "Thread parent timestamp (required)")
	repliesCmd.Flags().IntVarP(&repliesParams.Limit, "limit", "l", 0, "Maximum number of replies to fetch")
	repliesCmd.Flags().StringVar(&repliesParams.Cursor, "cursor", "", "Pagination cursor from a previous call")
	_ = repliesCmd.MarkFlagRequired("channel")
	_ = repliesCmd.MarkFlagRequired("thread-ts")

	addFileFlags(repliesCmd)
	rootCmd.AddCommand(repliesCmd)
}
