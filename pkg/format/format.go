// Package format renders messages and attachment metadata for display.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chrisguillory/slack-cli/pkg/envelope"
)

// ExtractFiles walks messages in input order and collects their
// attachments, tagging each file with the timestamp and author of the
// message it came from. The result is the plain concatenation of
// per-message file lists: no sorting, no deduplication, so a file shared
// in two messages yields two entries.
func ExtractFiles(messages []envelope.Message) []envelope.File {
	var files []envelope.File
	for _, msg := range messages {
		for _, f := range msg.Files {
			f.MessageTS = msg.TS
			f.MessageUser = msg.User
			files = append(files, f)
		}
	}
	return files
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FileSize renders a byte count with one decimal place, dividing by 1024
// until the value drops below 1024. The check precedes the division, so
// 1023 stays "1023.0B" and 0 is "0.0B". TB is the final unit and is not
// capped.
func FileSize(size int64) string {
	v := float64(size)
	for _, unit := range sizeUnits {
		if v < 1024 {
			return fmt.Sprintf("%.1f%s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1fTB", v)
}

// FileInfo renders one attachment. The compact form is a single line;
// verbose adds the download URL (direct-download preferred) and the
// permalink.
func FileInfo(f envelope.File, verbose bool) string {
	name := f.Name
	if name == "" {
		name = "unnamed"
	}
	filetype := f.Filetype
	if filetype == "" {
		filetype = "unknown"
	}
	size := FileSize(f.Size)

	if verbose {
		return fmt.Sprintf("  \U0001F4CE %s\n     Type: %s | Size: %s\n     Download: %s\n     Permalink: %s",
			name, filetype, size, f.DownloadURL(), f.Permalink)
	}
	return fmt.Sprintf("  \U0001F4CE %s (%s, %s)", name, filetype, size)
}

// Message renders a single message as a display block: a header line with
// timestamp and author, the indented text, and optional reactions and
// files lines. usersCache maps user IDs to display names and may be nil,
// in which case raw IDs are shown.
func Message(msg envelope.Message, usersCache map[string]string) string {
	author := msg.User
	if author == "" {
		author = msg.BotID
	}
	if author == "" {
		author = "unknown"
	}
	if name, ok := usersCache[author]; ok {
		author = name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s:\n  %s", timestamp(msg.TS), author, msg.Text)

	if len(msg.Reactions) > 0 {
		parts := make([]string, 0, len(msg.Reactions))
		for _, r := range msg.Reactions {
			parts = append(parts, fmt.Sprintf(":%s: (%d)", r.Name, r.Count))
		}
		fmt.Fprintf(&b, "\n  Reactions: %s", strings.Join(parts, " "))
	}

	if len(msg.Files) > 0 {
		parts := make([]string, 0, len(msg.Files))
		for _, f := range msg.Files {
			name := f.Name
			if name == "" {
				name = "unnamed"
			}
			parts = append(parts, "\U0001F4CE "+name)
		}
		fmt.Fprintf(&b, "\n  Files: %s", strings.Join(parts, ", "))
	}

	return b.String()
}

// timestamp converts a dotted-decimal message timestamp to local time,
// dropping the sub-second fraction. Unparseable values are shown raw; a
// missing value shows as "unknown".
func timestamp(ts string) string {
	if ts == "" {
		return "unknown"
	}
	sec, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		return ts
	}
	return time.Unix(int64(sec), 0).Format("2006-01-02 15:04:05")
}
