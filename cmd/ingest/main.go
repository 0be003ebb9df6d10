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

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/app"
	"github.com/feral-file/ff-video-warehouse/internal/config"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/ingestion"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	temporal "github.com/feral-file/ff-video-warehouse/internal/providers/temporal"
	"github.com/feral-file/ff-video-warehouse/internal/store"
	"github.com/feral-file/ff-video-warehouse/internal/workflows"
)

const (
	modeLocal    = "local"
	modeTemporal = "temporal"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	mode       = flag.String("mode", modeLocal, "Run mode: local executes the run in-process, temporal starts the ingestion-run workflow")
	cron       = flag.String("cron", "", "Cron schedule for temporal mode (overrides temporal.cron_schedule)")
	attach     = flag.Bool("attach", false, "In temporal mode, attach to an open ingestion run instead of failing")
	wait       = flag.Bool("wait", false, "In temporal mode, wait for a single run to finish and log its summary")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIngestConfig(*configFile, *envPath)
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
			"service": "ingest",
			"mode":    *mode,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	switch *mode {
	case modeLocal:
		runLocal(ctx, cfg)
	case modeTemporal:
		runTemporal(ctx, cfg)
	default:
		logger.FatalCtx(ctx, "Unknown mode", zap.String("mode", *mode))
	}
}

// runLocal executes a full ingestion run in-process
func runLocal(ctx context.Context, cfg *config.IngestConfig) {
	logger.InfoCtx(ctx, "Starting local ingestion run")

	db, err := app.OpenDatabase(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := app.BootstrapSchema(ctx, db, cfg.Calendar); err != nil {
		logger.FatalCtx(ctx, "Failed to bootstrap schema", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	publisher, err := app.NewPublisher(cfg.NATS)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	driver, err := app.NewDriver(ctx, cfg, dataStore, publisher, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ingestion driver", zap.Error(err))
	}

	summary, err := driver.Run(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			logger.WarnCtx(ctx, "Another ingestion run is in progress, skipping", zap.Error(err))
			return
		}
		logger.ErrorCtx(ctx, err)
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	logger.InfoCtx(ctx, "Local ingestion run finished", zap.Uint64("deploy_id", summary.Deploy.DeployID))
}

// runTemporal starts the ingestion-run workflow, optionally on a cron schedule
func runTemporal(ctx context.Context, cfg *config.IngestConfig) {
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()

	schedule := cfg.Temporal.CronSchedule
	if *cron != "" {
		schedule = *cron
	}

	// The workflow functions are only referenced by name here; the executor lives in the worker
	warehouseWorker := workflows.NewWorker(nil, workflows.WorkerConfig{TaskQueue: cfg.Temporal.TaskQueue})

	run, err := workflows.StartIngestionRun(ctx, temporalClient, warehouseWorker, workflows.TriggerOptions{
		TaskQueue:       cfg.Temporal.TaskQueue,
		CronSchedule:    schedule,
		AttachIfRunning: *attach,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start ingestion run", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Started ingestion run workflow",
		zap.String("workflow_id", run.GetID()),
		zap.String("run_id", run.GetRunID()),
		zap.String("cron_schedule", schedule),
	)

	// A cron execution never completes, so there is nothing to wait for
	if !*wait || schedule != "" {
		return
	}

	var summary domain.RunSummary
	if err := run.Get(ctx, &summary); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("ingestion run workflow failed: %w", err), zap.String("run_id", run.GetRunID()))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
	ingestion.LogSummary(ctx, &summary)
}
