// Package main provides the slack-cli entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	jsonOutput    bool
	csvOutput     bool
	verboseOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "slack-cli",
	Short: "Read and interact with Slack from the command line",
	Long: `slack-cli talks to the Slack Web API with browser session tokens.

Fetch channel history, thread replies and search results, inspect
channels and users, post messages, add reactions, and download message
attachments.

Authentication requires SLACK_XOXC_TOKEN and SLACK_XOXD_TOKEN, either
exported in the environment or placed in a .env file in the working
directory. Both tokens come from an authenticated browser session.

When stdout is not a terminal, raw JSON output is the default.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", !interactive, "Output the raw API response as indented JSON")
	rootCmd.PersistentFlags().BoolVar(&csvOutput, "csv", false, "Output messages and channels as CSV")
	rootCmd.PersistentFlags().BoolVarP(&verboseOutput, "verbose", "v", false, "Verbose output (debug logging, detailed file listings)")
	rootCmd.Version = Version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}
