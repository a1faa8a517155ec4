package main

import (
	// Std
	"context"
	"os"
	"os/signal"
	"syscall"

	// Momentum
	"github.com/momentum-xyz/spawnschema/internal/config"
	"github.com/momentum-xyz/spawnschema/internal/conversion"
	"github.com/momentum-xyz/spawnschema/internal/item"
	"github.com/momentum-xyz/spawnschema/internal/logger"
	"github.com/momentum-xyz/spawnschema/internal/source"

	// Third-Party
	"github.com/pkg/errors"
)

var log = logger.L()

func main() {
	if err := run(); err != nil {
		log.Fatal(errors.WithMessage(err, "error running"))
	}
}

func run() error {
	cfg := config.GetConfig()
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := item.LoadTableFile(cfg.Settings.ItemMapping)
	if err != nil {
		return err
	}
	items := item.NewResolver(table, cfg.Conversion.ItemNamespace)

	converter, err := conversion.NewConverter(cfg.Conversion, items, cfg.Settings.Workers)
	if err != nil {
		return errors.WithMessage(err, "failed to create converter")
	}

	src := source.NewDir(cfg.Settings.StatsDir, cfg.Settings.SpawnSetDir)
	doc, report, err := converter.ConvertAll(ctx, src)
	if err != nil {
		return err
	}

	if err := source.WriteDocument(cfg.Settings.Output, doc); err != nil {
		return err
	}

	for _, f := range report.Failed {
		log.Warnf("failed: %d %s: %v", f.ID, f.Name, f.Error)
	}
	for _, o := range report.OutOfRange {
		log.Warnf("out of range: %d entry %d probability %v", o.ID, o.Entry, o.Probability)
	}
	if report.Rejected > 0 {
		log.Warnf("%d entries rejected for their type", report.Rejected)
	}
	return nil
}
