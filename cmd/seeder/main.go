// Command seeder registers the demo account and back-fills a diary for it.
// It is intended for local development, not as part of the main server.
//
// Flags:
//
//	--phase    comma-separated list of phases to run (default: account,entries)
//	--dry-run  log the entries without writing them
//	--until    last back-filled day, YYYY-MM-DD (default: today)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/app"
	"github.com/heartmarshall/mooddiary-backend/internal/app/seeder"
	"github.com/heartmarshall/mooddiary-backend/internal/config"
	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: account,entries)")
	dryRunFlag := flag.Bool("dry-run", false, "log entries without writing them")
	untilFlag := flag.String("until", "", "last back-filled day, YYYY-MM-DD")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	seedCfg := seeder.Config{SeedConfig: cfg.Seed, DryRun: *dryRunFlag}
	if *untilFlag != "" {
		if seedCfg.Until, err = domain.ParseDate(*untilFlag); err != nil {
			logger.Error("invalid --until", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	core, err := app.NewCore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open core", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer core.Close()

	pipeline := seeder.NewPipeline(logger, seeder.Services{
		Accounts: core.Account,
		Journal:  core.Journal,
		Analyzer: core.Analysis,
		Digests:  core.Digests,
	}, seedCfg)

	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully", slog.String("owner_id", pipeline.Owner().String()))
}
