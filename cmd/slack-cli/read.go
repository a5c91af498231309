package main

import (
	"github.com/chrisguillory/slack-cli/pkg/client"
	"github.com/chrisguillory/slack-cli/pkg/permalink"
	"github.com/spf13/cobra"
)

var readLimit int

var readCmd = &cobra.Command{
	Use:   "read <permalink>",
	Short: "Read a message (or its thread) from a Slack permalink",
	Long: `Read resolves a Slack archive permalink to a channel and timestamp,
then fetches the message it points to. Permalinks carrying a thread_ts
query parameter fetch the whole thread instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := permalink.Resolve(args[0])
		if err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ref.ThreadTS != "" {
			env := c.GetThreadReplies(ctx, client.RepliesParams{
				Channel:  ref.ChannelID,
				ThreadTS: ref.ThreadTS,
				Limit:    readLimit,
			})
			return finishMessages(ctx, c, env)
		}

		env := c.GetChannelHistory(ctx, client.HistoryParams{
			Channel:   ref.ChannelID,
			Limit:     1,
			Latest:    ref.MessageTS,
			Inclusive: true,
		})
		return finishMessages(ctx, c, env)
	},
}

func init() {
	readCmd.Flags().IntVarP(&readLimit, "limit", "l", 20, "Maximum number of thread replies to fetch")
	addFileFlags(readCmd)
	rootCmd.AddCommand(readCmd)
}
