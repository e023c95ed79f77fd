// Collector pulls the day's listing from the statistics site, parses
// every match page and persists the documents. Runs once with -once,
// otherwise keeps collecting on the configured interval.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucasveiga/palpiteiro/internal/app"
	"github.com/lucasveiga/palpiteiro/internal/config"
	"github.com/lucasveiga/palpiteiro/internal/platform/logging"
	"github.com/lucasveiga/palpiteiro/internal/usecase"
)

func main() {
	once := flag.Bool("once", false, "run a single collection and exit")
	dryRun := flag.Bool("dry-run", false, "parse pages without persisting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svcs, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}

	input := usecase.CollectInput{MaxWorkers: cfg.CollectWorkers, DryRun: *dryRun}

	runOnce(ctx, svcs.Collect, input, logger)
	if *once {
		return
	}

	ticker := time.NewTicker(cfg.CollectInterval)
	defer ticker.Stop()

	logger.Info("collector started", "interval", cfg.CollectInterval, "workers", cfg.CollectWorkers)
	for {
		select {
		case <-ctx.Done():
			logger.Info("collector stopped")
			return
		case <-ticker.C:
			runOnce(ctx, svcs.Collect, input, logger)
		}
	}
}

func runOnce(ctx context.Context, collect *usecase.CollectService, input usecase.CollectInput, logger *logging.Logger) {
	started := time.Now()
	result, err := collect.CollectDaily(ctx, input)
	if err != nil {
		logger.Error("collection failed", "error", err)
		return
	}
	logger.Info("collection finished",
		"matches", result.MatchCount,
		"success", result.SuccessCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
		"duration", time.Since(started),
	)
}
