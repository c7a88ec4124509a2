package downloaderimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/orgball2608/insta-downloader/internal/domain"
	"github.com/orgball2608/insta-downloader/pkg/errors"
	"github.com/orgball2608/insta-downloader/pkg/logger"
)

const defaultBufferSize = 80 * 1024

// Download copies the body of target.SourceURL into target.DestinationPath in
// fixed-size chunks. The destination is truncated if it exists and its parent
// folder is never created. A file left half written by a failed copy stays on
// disk.
func (d *DownloaderImpl) Download(ctx context.Context, target domain.DownloadTarget) (int64, error) {
	d.Logger.Info("Downloading media", "url", target.SourceURL, "path", target.DestinationPath)

	body, err := d.getBody(ctx, target.SourceURL)
	if err != nil {
		d.Logger.Debug("Error downloading media", "url", target.SourceURL, "error", err)
		return 0, errors.WrapWithCode(err, errors.CodeTransferFailed, "download failed")
	}
	defer safeClose(body, d.Logger, "response body")

	file, err := os.Create(target.DestinationPath)
	if err != nil {
		d.Logger.Debug("Error creating destination file", "path", target.DestinationPath, "error", err)
		return 0, errors.WrapWithCode(err, errors.CodeTransferFailed, "could not create destination file")
	}
	defer safeClose(file, d.Logger, "destination file")

	size := d.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}

	n, err := io.CopyBuffer(file, body, make([]byte, size))
	if err != nil {
		d.Logger.Debug("Error writing media",
			"path", target.DestinationPath,
			"written", n,
			"error", err)
		return n, errors.WrapWithCode(err, errors.CodeTransferFailed, "download interrupted")
	}

	d.Logger.Info("Successfully downloaded media", "path", target.DestinationPath, "bytes", n)
	return n, nil
}

// getBody performs the GET and hands back the body of a 2xx response.
func (d *DownloaderImpl) getBody(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}

	resp, err := d.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		safeClose(resp.Body, d.Logger, "response body")
		return nil, fmt.Errorf("error status: %s", resp.Status)
	}

	return resp.Body, nil
}

// safeClose closes c and logs a failure instead of returning it
func safeClose(c io.Closer, log logger.Logger, what string) {
	if err := c.Close(); err != nil {
		log.Error("Error closing "+what, "error", err)
	}
}
