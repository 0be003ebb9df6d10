package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/app"
	"github.com/feral-file/ff-video-warehouse/internal/config"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/enrichment"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEnricherConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context canceled on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "enricher",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Enricher")

	// Connect to database
	db, err := app.OpenDatabase(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	popularity, sentiment, err := app.NewPasses(cfg.Models, dataStore, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load models", zap.Error(err))
	}

	runner := enrichment.NewRunner(dataStore, clock, cfg.Enricher.Worker.WorkerPoolSize, popularity, sentiment)
	outcomes, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			logger.WarnCtx(ctx, "Ingestion run in progress, skipping enrichment", zap.Error(err))
			return
		}
		logger.FatalCtx(ctx, "Failed to run enrichment", zap.Error(err))
	}

	failed := false
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed = true
			logger.ErrorCtx(ctx, outcome.Err, zap.String("pass", string(outcome.Kind)))
			continue
		}
		logger.InfoCtx(ctx, "Pass finished",
			zap.String("pass", string(outcome.Kind)),
			zap.String("batch_id", outcome.Report.BatchID),
			zap.Int("selected", outcome.Report.Selected),
			zap.Int64("written", outcome.Report.Written),
			zap.Int("skipped", len(outcome.Report.Skipped)),
		)
	}

	if failed {
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}
