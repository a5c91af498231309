package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reactCmd = &cobra.Command{
	Use:   "react <channel> <timestamp> <emoji>",
	Short: "Add an emoji reaction to a message",
	Long: `React adds an emoji reaction to the message identified by channel ID
and timestamp. The emoji name may be given with or without colons,
e.g. "thumbsup" or ":thumbsup:".`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		env := c.AddReaction(cmd.Context(), args[0], args[1], args[2])
		if jsonOutput {
			return printRawJSON(env)
		}
		if err := env.Err(); err != nil {
			return err
		}

		fmt.Println("Reaction added.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reactCmd)
}
