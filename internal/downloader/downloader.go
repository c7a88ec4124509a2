package downloader

import (
	"context"

	"github.com/orgball2608/insta-downloader/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=downloader.go -destination=mocks/mock.go
type Client interface {
	// Download streams target.SourceURL into target.DestinationPath,
	// overwriting any existing file, and returns the number of bytes written.
	Download(ctx context.Context, target domain.DownloadTarget) (int64, error)
}
