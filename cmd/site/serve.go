package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/soulcreations/site"
	"github.com/soulcreations/site/logging"
)

func newApp(envFile string) (*site.App, *zap.Logger, error) {
	cfg, err := site.LoadConfig(envFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return site.New(cfg, site.ViewFuncs{}, site.WithLogger(log)), log, nil
}

func runServe(envFile string) error {
	app, log, err := newApp(envFile)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Start(ctx)
}

func runExport(envFile, dir string, out io.Writer) error {
	app, log, err := newApp(envFile)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	fmt.Fprintf(out, "Exporting site to %s\n\n", dir)
	written, err := app.Export(dir)
	for _, path := range written {
		fmt.Fprintf(out, "  created %s\n", path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Done. Upload %s to any static host.\n", dir)
	return nil
}
