package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/orgball2608/insta-downloader/internal/domain"
	"github.com/orgball2608/insta-downloader/internal/downloader"
	"github.com/orgball2608/insta-downloader/internal/instagram"
	"github.com/orgball2608/insta-downloader/internal/media"
	"github.com/orgball2608/insta-downloader/internal/prompt"
	"github.com/orgball2608/insta-downloader/pkg/errors"
	"github.com/orgball2608/insta-downloader/pkg/logger"
	"go.uber.org/fx"
)

const successMessage = "Downloaded successfully"

type Opts struct {
	fx.In

	Instagram  instagram.Client
	Downloader downloader.Client
	Prompter   prompt.Prompter
	Logger     logger.Logger
}

// Pipeline runs one download: login, resolve, lookup, select, transfer.
type Pipeline struct {
	Instagram  instagram.Client
	Downloader downloader.Client
	Prompter   prompt.Prompter
	Logger     logger.Logger
}

func New(opts Opts) *Pipeline {
	return &Pipeline{
		Instagram:  opts.Instagram,
		Downloader: opts.Downloader,
		Prompter:   opts.Prompter,
		Logger:     opts.Logger.WithComponent("Pipeline"),
	}
}

// Run asks the user for a request, executes it and prints exactly one outcome
// line. The returned error is the one that was reported, if any.
func (p *Pipeline) Run(ctx context.Context) error {
	req, err := prompt.ReadRequest(p.Prompter)
	if err == nil {
		_, err = p.Execute(ctx, req)
	}
	p.Prompter.Say(Report(err))
	return err
}

// Execute performs the steps in order and stops at the first failure. Nothing
// already written to disk is rolled back.
func (p *Pipeline) Execute(ctx context.Context, req domain.Request) (domain.DownloadTarget, error) {
	log := p.Logger.With("run_id", uuid.NewString())

	target := media.Classify(req.URL)
	log.Debug("Classified url", "url", target.RawURL, "kind", target.Kind.String())

	if err := p.Instagram.Login(ctx, req.Credentials); err != nil {
		log.Error("Instagram login error", "error", err)
		if errors.GetCode(err) == "" {
			err = errors.WrapWithCode(err, errors.CodeAuthenticationFailed, "instagram login failed")
		}
		return domain.DownloadTarget{}, err
	}

	id, err := media.ResolveIdentifier(ctx, p.Instagram, target)
	if err != nil {
		log.Error("Resolve media id error", "url", target.RawURL, "error", err)
		return domain.DownloadTarget{}, err
	}
	log.Debug("Resolved media id", "media_id", id)

	record, err := p.Instagram.GetMedia(ctx, id)
	if err != nil {
		log.Error("Get media error", "media_id", id, "error", err)
		return domain.DownloadTarget{}, errors.WrapWithCode(err, errors.CodeMediaNotFound, "media not found")
	}

	dl, err := media.Select(record, target.Kind, req.Folder, req.FileName)
	if err != nil {
		log.Error("Select media variant error", "media_id", id, "kind", target.Kind.String(), "error", err)
		return domain.DownloadTarget{}, err
	}

	n, err := p.Downloader.Download(ctx, dl)
	if err != nil {
		log.Error("Download error", "url", dl.SourceURL, "path", dl.DestinationPath, "error", err)
		if errors.GetCode(err) == "" {
			err = errors.WrapWithCode(err, errors.CodeTransferFailed, "download failed")
		}
		return dl, err
	}

	log.Info("Media saved", "path", dl.DestinationPath, "bytes", n)
	return dl, nil
}

// Report renders the single console line for the outcome of a run.
func Report(err error) string {
	switch {
	case err == nil:
		return successMessage
	case errors.IsAuthenticationFailed(err):
		return "Login error: " + rootMessage(err)
	default:
		return "Error: " + err.Error()
	}
}

// rootMessage drops our own wrapping so the line shows what Instagram said.
func rootMessage(err error) string {
	for {
		var e *errors.Error
		if !errors.As(err, &e) || e.Err == nil {
			return err.Error()
		}
		err = e.Err
	}
}
