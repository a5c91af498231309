package format

import (
	"strings"
	"testing"
	"time"

	"github.com/chrisguillory/slack-cli/pkg/envelope"
)

func TestFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.0B"},
		{512, "512.0B"},
		{1023, "1023.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1048576, "1.0MB"},
		{1073741824, "1.0GB"},
		{1099511627776, "1.0TB"},
		{2251799813685248, "2048.0TB"},
	}

	for _, tt := range tests {
		if got := FileSize(tt.size); got != tt.want {
			t.Errorf("FileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestExtractFiles(t *testing.T) {
	msgs := []envelope.Message{
		{
			User: "U001",
			TS:   "1700000000.000100",
			Files: []envelope.File{
				{ID: "F1", Name: "a.png"},
				{ID: "F2", Name: "b.pdf"},
			},
		},
		{User: "U002", TS: "1700000001.000200"},
		{
			User:  "U003",
			TS:    "1700000002.000300",
			Files: []envelope.File{{ID: "F3", Name: "c.txt"}},
		},
	}

	files := ExtractFiles(msgs)
	if len(files) != 3 {
		t.Fatalf("ExtractFiles returned %d files, want 3", len(files))
	}

	wantIDs := []string{"F1", "F2", "F3"}
	for i, id := range wantIDs {
		if files[i].ID != id {
			t.Errorf("files[%d].ID = %q, want %q", i, files[i].ID, id)
		}
	}

	if files[0].MessageTS != "1700000000.000100" || files[0].MessageUser != "U001" {
		t.Errorf("files[0] not tagged with source message: %+v", files[0])
	}
	if files[2].MessageTS != "1700000002.000300" || files[2].MessageUser != "U003" {
		t.Errorf("files[2] not tagged with source message: %+v", files[2])
	}

	// Tagging must not reach back into the input.
	if msgs[0].Files[0].MessageTS != "" {
		t.Errorf("ExtractFiles mutated its input: %+v", msgs[0].Files[0])
	}
}

func TestFileInfo(t *testing.T) {
	f := envelope.File{
		Name:               "report.pdf",
		Filetype:           "pdf",
		Size:               2048,
		URLPrivate:         "https://files.slack.com/private/report.pdf",
		URLPrivateDownload: "https://files.slack.com/download/report.pdf",
		Permalink:          "https://myteam.slack.com/files/U001/F1/report.pdf",
	}

	compact := FileInfo(f, false)
	if compact != "  \U0001F4CE report.pdf (pdf, 2.0KB)" {
		t.Errorf("compact FileInfo = %q", compact)
	}

	verbose := FileInfo(f, true)
	for _, want := range []string{
		"report.pdf",
		"Type: pdf | Size: 2.0KB",
		"Download: https://files.slack.com/download/report.pdf",
		"Permalink: https://myteam.slack.com/files/U001/F1/report.pdf",
	} {
		if !strings.Contains(verbose, want) {
			t.Errorf("verbose FileInfo missing %q:\n%s", want, verbose)
		}
	}

	empty := FileInfo(envelope.File{}, false)
	if empty != "  \U0001F4CE unnamed (unknown, 0.0B)" {
		t.Errorf("FileInfo on zero file = %q", empty)
	}
}

func TestMessage(t *testing.T) {
	ts := "1700000000.123456"
	wantTime := time.Unix(1700000000, 0).Format("2006-01-02 15:04:05")

	t.Run("basic message", func(t *testing.T) {
		got := Message(envelope.Message{User: "U001", TS: ts, Text: "hello there"}, nil)
		want := "[" + wantTime + "] U001:\n  hello there"
		if got != want {
			t.Errorf("Message = %q, want %q", got, want)
		}
	})

	t.Run("author resolved through cache", func(t *testing.T) {
		cache := map[string]string{"U001": "alice"}
		got := Message(envelope.Message{User: "U001", TS: ts, Text: "hi"}, cache)
		if !strings.HasPrefix(got, "["+wantTime+"] alice:") {
			t.Errorf("Message did not resolve author: %q", got)
		}
	})

	t.Run("bot fallback author", func(t *testing.T) {
		got := Message(envelope.Message{BotID: "B001", TS: ts, Text: "beep"}, nil)
		if !strings.Contains(got, "] B001:") {
			t.Errorf("Message did not fall back to bot ID: %q", got)
		}
	})

	t.Run("unknown author and timestamp", func(t *testing.T) {
		got := Message(envelope.Message{Text: "orphan"}, nil)
		if !strings.HasPrefix(got, "[unknown] unknown:") {
			t.Errorf("Message = %q", got)
		}
	})

	t.Run("unparseable timestamp shown raw", func(t *testing.T) {
		got := Message(envelope.Message{User: "U001", TS: "not-a-ts", Text: "x"}, nil)
		if !strings.HasPrefix(got, "[not-a-ts]") {
			t.Errorf("Message = %q", got)
		}
	})

	t.Run("reactions and files lines", func(t *testing.T) {
		got := Message(envelope.Message{
			User: "U001",
			TS:   ts,
			Text: "see attached",
			Reactions: []envelope.Reaction{
				{Name: "thumbsup", Count: 3},
				{Name: "eyes", Count: 1},
			},
			Files: []envelope.File{
				{Name: "a.png"},
				{Name: ""},
			},
		}, nil)

		if !strings.Contains(got, "\n  Reactions: :thumbsup: (3) :eyes: (1)") {
			t.Errorf("missing reactions line:\n%s", got)
		}
		if !strings.Contains(got, "\n  Files: \U0001F4CE a.png, \U0001F4CE unnamed") {
			t.Errorf("missing files line:\n%s", got)
		}
	})
}
