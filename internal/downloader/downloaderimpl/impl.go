package downloaderimpl

import (
	"net/http"

	"github.com/orgball2608/insta-downloader/internal/downloader"
	"github.com/orgball2608/insta-downloader/pkg/config"
	"github.com/orgball2608/insta-downloader/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type DownloaderImpl struct {
	HTTP       *http.Client
	Logger     logger.Logger
	BufferSize int
	UserAgent  string
}

func New(opts Opts) *DownloaderImpl {
	return &DownloaderImpl{
		HTTP:       &http.Client{Timeout: opts.Config.Download.Timeout},
		Logger:     opts.Logger.WithComponent("Downloader"),
		BufferSize: opts.Config.Download.BufferSize,
		UserAgent:  opts.Config.Download.UserAgent,
	}
}

var _ downloader.Client = (*DownloaderImpl)(nil)
