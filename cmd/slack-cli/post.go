package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	postChannel   string
	postText      string
	postThreadTS  string
	postBroadcast bool
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a message to a channel or thread",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		env := c.PostMessage(cmd.Context(), postChannel, postText, postThreadTS, postBroadcast)
		if jsonOutput {
			return printRawJSON(env)
		}
		if err := env.Err(); err != nil {
			return err
		}

		fmt.Println("Message posted.")
		return nil
	},
}

func init() {
	postCmd.Flags().StringVarP(&postChannel, "channel", "c", "", "Channel ID (required)")
	postCmd.Flags().StringVarP(&postText, "text", "m", "", "Message text (required)")
	postCmd.Flags().StringVarP(&postThreadTS, "thread-ts", "t", "", "Post as a reply in this thread")
	postCmd.Flags().BoolVar(&postBroadcast, "broadcast", false, "Also send the thread reply to the channel")
	_ = postCmd.MarkFlagRequired("channel")
	_ = postCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(postCmd)
}
