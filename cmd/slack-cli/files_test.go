package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chrisguillory/slack-cli/pkg/auth"
	"github.com/chrisguillory/slack-cli/pkg/client"
	"github.com/chrisguillory/slack-cli/pkg/envelope"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newDownloadClient(t *testing.T, handler http.Handler) (*client.Client, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := &auth.Credentials{XOXC: "xoxc-test", XOXD: "xoxd-test"}
	c := client.New(creds, zap.NewNop(),
		client.OptionBaseURL(srv.URL),
		client.OptionLimiter(rate.NewLimiter(rate.Inf, 1)))
	return c, srv.URL
}

func TestDownloadAllContinuesPastFailure(t *testing.T) {
	c, base := newDownloadClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/files/a.png", "/files/c.txt":
			w.Write([]byte("content of " + r.URL.Path))
		default:
			http.NotFound(w, r)
		}
	}))

	files := []envelope.File{
		{Name: "a.png", URLPrivateDownload: base + "/files/a.png"},
		{Name: "b.pdf", URLPrivateDownload: base + "/files/b.pdf"},
		{Name: "c.txt", URLPrivateDownload: base + "/files/c.txt"},
	}

	dir := t.TempDir()
	var out bytes.Buffer
	succeeded, interrupted := downloadAll(context.Background(), c, files, dir, &out)

	if succeeded != 2 {
		t.Errorf("succeeded = %d, want 2", succeeded)
	}
	if interrupted {
		t.Error("batch reported interrupted without a canceled context")
	}

	// The failed transfer must not stop the ones after it.
	wantLines := []string{
		"  Downloading: a.png... OK",
		"  Downloading: b.pdf... FAILED",
		"  Downloading: c.txt... OK",
	}
	got := out.String()
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("output missing %q:\n%s", line, got)
		}
	}

	for _, name := range []string{"a.png", "c.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s on disk: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "b.pdf")); !os.IsNotExist(err) {
		t.Errorf("failed transfer should leave no file, stat err = %v", err)
	}
}

func TestDownloadAllInterrupted(t *testing.T) {
	c, base := newDownloadClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server after cancellation")
	}))

	files := []envelope.File{
		{Name: "a.png", URLPrivateDownload: base + "/files/a.png"},
		{Name: "b.pdf", URLPrivateDownload: base + "/files/b.pdf"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	succeeded, interrupted := downloadAll(ctx, c, files, t.TempDir(), &out)

	if succeeded != 0 {
		t.Errorf("succeeded = %d, want 0", succeeded)
	}
	if !interrupted {
		t.Error("canceled context must report the batch as interrupted")
	}
	if out.Len() != 0 {
		t.Errorf("no progress lines expected after cancellation, got:\n%s", out.String())
	}
}

func TestHandleFilesListing(t *testing.T) {
	env, err := envelope.Parse([]byte(`{
		"ok": true,
		"messages": [
			{"user": "U001", "ts": "1700000000.000100", "text": "see attached",
				"files": [{"id": "F1", "name": "report.pdf", "filetype": "pdf", "size": 2048,
					"url_private": "https://files.example.com/report.pdf"}]}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	downloadFiles = false
	t.Cleanup(func() { downloadFiles = false })

	var out bytes.Buffer
	if err := handleFiles(context.Background(), nil, env, &out); err != nil {
		t.Fatalf("handleFiles: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Found 1 file(s):") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "1.   \U0001F4CE report.pdf (pdf, 2.0KB)") {
		t.Errorf("listing line misformatted:\n%s", got)
	}
}

func TestHandleFilesNoAttachments(t *testing.T) {
	env, err := envelope.Parse([]byte(`{"ok": true, "messages": [{"user": "U001", "ts": "1.000001", "text": "plain"}]}`))
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := handleFiles(context.Background(), nil, env, &out); err != nil {
		t.Fatalf("handleFiles: %v", err)
	}
	if !strings.Contains(out.String(), "No files found in messages.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestReadLimitFlag(t *testing.T) {
	f := readCmd.Flags().Lookup("limit")
	if f == nil {
		t.Fatal("read command has no --limit flag")
	}
	if f.DefValue != "20" {
		t.Errorf("--limit default = %s, want 20", f.DefValue)
	}
}
