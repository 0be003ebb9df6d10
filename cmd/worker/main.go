package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/app"
	"github.com/feral-file/ff-video-warehouse/internal/config"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	temporal "github.com/feral-file/ff-video-warehouse/internal/providers/temporal"
	"github.com/feral-file/ff-video-warehouse/internal/store"
	"github.com/feral-file/ff-video-warehouse/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker")

	// Connect to database
	db, err := app.OpenDatabase(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := app.BootstrapSchema(ctx, db, cfg.Calendar); err != nil {
		logger.FatalCtx(ctx, "Failed to bootstrap schema", zap.Error(err))
	}

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Initialize event publisher
	publisher, err := app.NewPublisher(cfg.NATS)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	// Initialize ingestion driver and enrichment passes
	driver, err := app.NewDriver(ctx, &cfg.IngestConfig, dataStore, publisher, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ingestion driver", zap.Error(err))
	}
	popularity, sentiment, err := app.NewPasses(cfg.Models, dataStore, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load models", zap.Error(err))
	}

	// Initialize executor for activities
	executor := workflows.NewExecutor(driver, popularity, sentiment, dataStore, clock)

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.TaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("task_queue", cfg.Temporal.TaskQueue))

	// Create warehouse worker instance
	warehouseWorker := workflows.NewWorker(executor, workflows.WorkerConfig{
		TaskQueue:      cfg.Temporal.TaskQueue,
		StepTimeout:    cfg.Temporal.StepTimeout,
		EnrichAfterRun: cfg.Temporal.EnrichAfterRun,
	})

	// Register workflows
	temporalWorker.RegisterWorkflow(warehouseWorker.IngestionRun)
	temporalWorker.RegisterWorkflow(warehouseWorker.PopularityPass)
	temporalWorker.RegisterWorkflow(warehouseWorker.SentimentPass)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.OpenRun)
	temporalWorker.RegisterActivity(executor.IngestVideos)
	temporalWorker.RegisterActivity(executor.ComputeTrendDeltas)
	temporalWorker.RegisterActivity(executor.PruneExpiredFacts)
	temporalWorker.RegisterActivity(executor.ReleaseRun)
	temporalWorker.RegisterActivity(executor.PublishRunCompleted)
	temporalWorker.RegisterActivity(executor.RunPopularityPass)
	temporalWorker.RegisterActivity(executor.RunSentimentPass)
	logger.InfoCtx(ctx, "Registered activities")

	// Start worker
	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.InfoCtx(ctx, "Shutting down worker...")
	temporalWorker.Stop()
	logger.InfoCtx(ctx, "Worker stopped")
}
