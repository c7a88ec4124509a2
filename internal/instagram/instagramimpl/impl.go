package instagramimpl

import (
	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-downloader/internal/instagram"
	"github.com/orgball2608/insta-downloader/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Logger logger.Logger
}

// IgImpl talks to the Instagram private API through goinsta. The session is
// created by Login and held here instead of in process-wide state.
type IgImpl struct {
	Client *goinsta.Instagram
	Logger logger.Logger
}

func New(opts Opts) *IgImpl {
	return &IgImpl{
		Logger: opts.Logger.WithComponent("Instagram"),
	}
}

var _ instagram.Client = (*IgImpl)(nil)
