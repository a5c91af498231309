package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Download fetches an authenticated URL and writes the body to destPath,
// creating parent directories as needed. A failure is returned to the
// caller for per-item accounting; it never aborts a batch.
func (c *Client) Download(ctx context.Context, rawURL, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetTimeout(downloadTimeout)
	c.authenticate(req)

	// url_private can 302 to the files host, so the download path
	// follows redirects where the API path never needs to.
	if err := c.httpc.DoRedirects(req, resp, maxDownloadRedirects); err != nil {
		c.logger.Error("Download request failed",
			zap.String("url", rawURL),
			zap.Error(err))
		return fmt.Errorf("downloading %s: %w", rawURL, err)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		c.logger.Error("Download returned non-200 status",
			zap.String("url", rawURL),
			zap.Int("status", code))
		return fmt.Errorf("downloading %s: HTTP %d: %s", rawURL, code, fasthttp.StatusMessage(code))
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(destPath, resp.Body(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}

	c.logger.Info("File downloaded",
		zap.String("path", destPath),
		zap.String("size", humanize.Bytes(uint64(len(resp.Body())))))
	return nil
}
