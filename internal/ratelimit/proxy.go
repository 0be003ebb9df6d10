package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-video-warehouse/internal/logger"
)

// Provider names used by the warehouse collaborators
const (
	ProviderYouTube    = "youtube"
	ProviderTranscript = "transcript"
)

// RequestFunc is a function that performs the actual API request
type RequestFunc func(ctx context.Context) (any, error)

// Proxy defines the interface for the rate-limiting proxy
type Proxy interface {
	// Request waits for a token of the provider and then executes fn
	Request(ctx context.Context, providerName string, fn RequestFunc) (any, error)

	// Close rejects further requests
	Close() error
}

// ProviderConfig holds the rate limit of one provider
type ProviderConfig struct {
	RequestsPerSecond float64
	Burst             int
	// MaxQueueTime bounds how long a request may wait for a token
	MaxQueueTime time.Duration
}

// Config holds the proxy configuration
type Config struct {
	Providers map[string]ProviderConfig
}

type providerLimiter struct {
	name    string
	config  ProviderConfig
	limiter *rate.Limiter
}

type proxy struct {
	limiters  map[string]*providerLimiter
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewProxy creates a new rate-limiting proxy
func NewProxy(cfg Config) (Proxy, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	limiters := make(map[string]*providerLimiter, len(cfg.Providers))
	for name, provider := range cfg.Providers {
		limiters[name] = &providerLimiter{
			name:    name,
			config:  provider,
			limiter: rate.NewLimiter(rate.Limit(provider.RequestsPerSecond), provider.Burst),
		}
	}

	logger.Info("Rate limit proxy initialized", zap.Int("providers", len(cfg.Providers)))

	return &proxy{limiters: limiters}, nil
}

// Request executes fn through the proxy and returns the result with type safety
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	// If proxy is nil, execute the function directly
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	return result.(T), nil
}

// Request blocks until a token is acquired, the context is canceled or the queue time is exceeded
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (any, error) {
	if p.closed.Load() {
		return nil, fmt.Errorf("proxy is closed")
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	queueCtx, cancel := context.WithTimeout(ctx, limiter.config.MaxQueueTime)
	defer cancel()

	if err := limiter.limiter.Wait(queueCtx); err != nil {
		return nil, fmt.Errorf("failed to acquire rate limit token for %s: %w", providerName, err)
	}

	return fn(ctx)
}

// Close rejects requests submitted after it returns
func (p *proxy) Close() error {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		logger.Info("Rate limit proxy closed")
	})
	return nil
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	for name, provider := range cfg.Providers {
		if provider.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}

		if provider.Burst <= 0 {
			provider.Burst = max(int(provider.RequestsPerSecond), 1)
		}

		if provider.MaxQueueTime <= 0 {
			provider.MaxQueueTime = 5 * time.Minute
		}

		cfg.Providers[name] = provider
	}

	return nil
}
