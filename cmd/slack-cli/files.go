package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chrisguillory/slack-cli/pkg/client"
	"github.com/chrisguillory/slack-cli/pkg/envelope"
	"github.com/chrisguillory/slack-cli/pkg/format"
	"github.com/spf13/cobra"
)

var (
	listFiles     bool
	downloadFiles bool
	outputDir     string
)

// addFileFlags registers the attachment flags on commands that fetch
// messages.
func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&listFiles, "list-files", false, "List files attached to the fetched messages")
	cmd.Flags().BoolVar(&downloadFiles, "download-files", false, "Download all files attached to the fetched messages")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "./slack-downloads", "Output directory for downloads")
}

// finishMessages completes a message-fetching command: JSON mode dumps
// the envelope, file flags divert into the attachment pipeline, and
// everything else gets the standard rendering.
func finishMessages(ctx context.Context, c *client.Client, env *envelope.Envelope) error {
	if jsonOutput {
		return printRawJSON(env)
	}
	if err := env.Err(); err != nil {
		return err
	}
	if listFiles || downloadFiles {
		return handleFiles(ctx, c, env, os.Stdout)
	}
	return renderEnvelope(env)
}

// handleFiles lists the attachments of the fetched messages and, when
// requested, downloads them. An interrupted batch still reports its
// partial count before the process exits.
func handleFiles(ctx context.Context, c *client.Client, env *envelope.Envelope, w io.Writer) error {
	msgs, ok := env.HistoryMessages()
	if !ok {
		fmt.Fprintln(w, "No files found in messages.")
		return nil
	}

	files := format.ExtractFiles(msgs)
	if len(files) == 0 {
		fmt.Fprintln(w, "No files found in messages.")
		return nil
	}

	fmt.Fprintf(w, "Found %d file(s):\n\n", len(files))
	for i, f := range files {
		fmt.Fprintf(w, "%d. %s\n", i+1, format.FileInfo(f, verboseOutput))
	}

	if !downloadFiles {
		return nil
	}

	fmt.Fprintf(w, "\nDownloading to: %s\n", outputDir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	succeeded, interrupted := downloadAll(ctx, c, files, outputDir, w)
	fmt.Fprintf(w, "\nDownloaded %d/%d files.\n", succeeded, len(files))
	if interrupted {
		os.Exit(ExitInterrupted)
	}
	return nil
}

// downloadAll fetches each file one at a time, in input order, writing a
// progress line per transfer. A single failed transfer is skipped and
// the batch continues; a canceled context abandons the remaining queue.
func downloadAll(ctx context.Context, c *client.Client, files []envelope.File, dir string, w io.Writer) (succeeded int, interrupted bool) {
	for _, f := range files {
		if ctx.Err() != nil {
			return succeeded, true
		}

		url := f.DownloadURL()
		if url == "" {
			continue
		}
		name := f.Name
		if name == "" {
			name = "unnamed"
		}

		fmt.Fprintf(w, "  Downloading: %s... ", name)
		if err := c.Download(ctx, url, filepath.Join(dir, name)); err != nil {
			fmt.Fprintln(w, "FAILED")
		} else {
			fmt.Fprintln(w, "OK")
			succeeded++
		}
	}
	return succeeded, false
}
