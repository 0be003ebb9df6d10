// Package app wires the warehouse components shared by the binaries.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/config"
	"github.com/feral-file/ff-video-warehouse/internal/enrichment"
	"github.com/feral-file/ff-video-warehouse/internal/ingestion"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/messaging"
	"github.com/feral-file/ff-video-warehouse/internal/model"
	"github.com/feral-file/ff-video-warehouse/internal/providers/inventory"
	"github.com/feral-file/ff-video-warehouse/internal/providers/jetstream"
	"github.com/feral-file/ff-video-warehouse/internal/providers/transcript"
	"github.com/feral-file/ff-video-warehouse/internal/providers/youtube"
	"github.com/feral-file/ff-video-warehouse/internal/ratelimit"
	"github.com/feral-file/ff-video-warehouse/internal/store"
	"github.com/feral-file/ff-video-warehouse/internal/sweeper"
	"github.com/feral-file/ff-video-warehouse/internal/trend"
)

// OpenDatabase connects to PostgreSQL and configures the connection pool
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	db, err := store.OpenPostgres(ctx, cfg.DSN(), cfg.ConnectTimeout, debug)
	if err != nil {
		return nil, err
	}

	if err := store.ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	logger.InfoCtx(ctx, "Connected to database",
		zap.String("host", cfg.Host),
		zap.String("dbname", cfg.DBName),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
	)
	return db, nil
}

// BootstrapSchema migrates the warehouse schema and seeds the dimensions
func BootstrapSchema(ctx context.Context, db *gorm.DB, cal config.CalendarConfig) error {
	start, end, err := cal.Range()
	if err != nil {
		return err
	}
	return store.Bootstrap(ctx, db, start, end)
}

// NewPublisher returns a JetStream publisher, or a no-op publisher when NATS is not configured
func NewPublisher(cfg config.NATSConfig) (messaging.Publisher, error) {
	if cfg.URL == "" {
		logger.Warn("NATS url not configured, run events will not be published")
		return messaging.NewNoopPublisher(), nil
	}

	return jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.URL,
		SubjectPrefix:  cfg.SubjectPrefix,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
		ConnectionName: cfg.ConnectionName,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
}

// NewDriver builds the ingestion driver and its collaborators
func NewDriver(ctx context.Context, cfg *config.IngestConfig, st store.Store, publisher messaging.Publisher, clock adapter.Clock) (*ingestion.Driver, error) {
	fs := adapter.NewFileSystem()

	lister := inventory.NewSFTPLister(inventory.Config{
		SFTP: adapter.SFTPConfig{
			Host:           cfg.Inventory.Host,
			Port:           cfg.Inventory.Port,
			Username:       cfg.Inventory.User,
			Password:       cfg.Inventory.Password,
			PrivateKeyPath: cfg.Inventory.PrivateKeyPath,
			HostKey:        cfg.Inventory.HostKey,
			DialTimeout:    cfg.Inventory.Timeout,
		},
		Directory:     cfg.Inventory.Directory,
		TrimExtension: cfg.Inventory.TrimExtension,
	}, adapter.NewSFTPDialer(fs))

	metadata, err := youtube.NewClient(ctx, youtube.Config{
		APIKey:          cfg.YouTube.APIKey,
		Timeout:         cfg.YouTube.Timeout,
		Parts:           cfg.YouTube.Parts,
		Endpoint:        cfg.YouTube.Endpoint,
		MaxRetryElapsed: cfg.YouTube.MaxRetryElapsed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}

	transcripts := transcript.NewFetcher(transcript.Config{
		BaseURL:   cfg.Transcript.BaseURL,
		Languages: cfg.Transcript.Languages,
	}, adapter.NewHTTPClient(cfg.Transcript.Timeout))

	limiter, err := ratelimit.NewProxy(ratelimit.Config{
		Providers: map[string]ratelimit.ProviderConfig{
			ratelimit.ProviderYouTube: {
				RequestsPerSecond: cfg.YouTube.RateLimit.RequestsPerSecond,
				Burst:             cfg.YouTube.RateLimit.Burst,
			},
			ratelimit.ProviderTranscript: {
				RequestsPerSecond: cfg.Transcript.RateLimit.RequestsPerSecond,
				Burst:             cfg.Transcript.RateLimit.Burst,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	retention := sweeper.NewRetention(sweeper.RetentionConfig{Window: cfg.Retention}, st, clock)

	return ingestion.NewDriver(
		ingestion.Config{
			Pattern:  cfg.Inventory.Pattern,
			LeaseTTL: cfg.RunLeaseTTL,
		},
		st,
		lister,
		ratelimit.NewMetadataFetcher(metadata, limiter),
		ratelimit.NewTranscriptFetcher(transcripts, limiter),
		trend.NewEngine(st),
		retention,
		publisher,
		clock,
	), nil
}

// NewPasses loads both model artifacts and builds the enrichment passes
func NewPasses(cfg config.ModelsConfig, st store.Store, clock adapter.Clock) (*enrichment.PopularityPass, *enrichment.SentimentPass, error) {
	loader := model.NewLoader(adapter.NewFileSystem())

	popularityModel, err := loader.LoadPopularity(cfg.PopularityPath)
	if err != nil {
		return nil, nil, err
	}
	sentimentModel, err := loader.LoadSentiment(cfg.SentimentPath)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Loaded models",
		zap.String("popularity_path", cfg.PopularityPath),
		zap.String("sentiment_path", cfg.SentimentPath),
	)

	return enrichment.NewPopularityPass(st, popularityModel, clock),
		enrichment.NewSentimentPass(st, sentimentModel, clock),
		nil
}
