package app

import (
	"os"

	"github.com/orgball2608/insta-downloader/internal/downloader"
	"github.com/orgball2608/insta-downloader/internal/downloader/downloaderimpl"
	"github.com/orgball2608/insta-downloader/internal/instagram"
	"github.com/orgball2608/insta-downloader/internal/instagram/instagramimpl"
	"github.com/orgball2608/insta-downloader/internal/pipeline"
	"github.com/orgball2608/insta-downloader/internal/prompt"
	"github.com/orgball2608/insta-downloader/pkg/config"
	"github.com/orgball2608/insta-downloader/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			downloaderimpl.New,
			fx.As(new(downloader.Client)),
		),
		fx.Annotate(
			func() *prompt.Console {
				return prompt.New(os.Stdin, os.Stdout)
			},
			fx.As(new(prompt.Prompter)),
		),
		pipeline.New,
	),
)
