package main

import (
	"context"
	"os"

	"github.com/orgball2608/insta-downloader/internal/app"
	"github.com/orgball2608/insta-downloader/internal/pipeline"
	"github.com/orgball2608/insta-downloader/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{})

	var p *pipeline.Pipeline

	application := fx.New(
		fx.NopLogger,
		app.Module,
		fx.Populate(&p),
	)

	ctx := context.Background()
	if err := application.Start(ctx); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// The outcome is printed by Run; the exit status does not depend on it.
	_ = p.Run(ctx)

	if err := application.Stop(ctx); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
