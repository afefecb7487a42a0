package app

import (
	"context"
	"fmt"

	"github.com/updownlabs/updown-resolver/internal/discovery"
	"github.com/updownlabs/updown-resolver/internal/locator"
	"github.com/updownlabs/updown-resolver/internal/pricing"
	"github.com/updownlabs/updown-resolver/internal/resolver"
	"github.com/updownlabs/updown-resolver/internal/storage"
	"github.com/updownlabs/updown-resolver/internal/timesync"
	"github.com/updownlabs/updown-resolver/pkg/cache"
	"github.com/updownlabs/updown-resolver/pkg/config"
	"github.com/updownlabs/updown-resolver/pkg/healthprobe"
	"github.com/updownlabs/updown-resolver/pkg/httpserver"
	"go.uber.org/zap"
)

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	healthChecker := healthprobe.New()

	appCache, err := setupCache(logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	clock := setupClock(cfg, logger, appCache)

	parts, err := setupPipeline(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup pipeline: %w", err)
	}

	sink, err := setupStorage(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup storage: %w", err)
	}

	res := resolver.New(&resolver.Config{
		Clock:   clock,
		Locator: parts.locator,
		Fetcher: parts.fetcher,
		Sink:    sink,
		Logger:  logger,
	})

	httpServer := httpserver.New(&httpserver.Config{
		Port:          cfg.HTTPPort,
		Logger:        logger,
		HealthChecker: healthChecker,
		Resolver:      res,
	})

	return &App{
		cfg:           cfg,
		logger:        logger,
		healthChecker: healthChecker,
		httpServer:    httpServer,
		resolver:      res,
		storage:       sink,
		cache:         appCache,
		ctx:           ctx,
		cancel:        cancel,
	}, nil
}

// pipelineParts holds the locator and fetcher built from config, so the
// final resolver can be assembled once the storage sink is known.
type pipelineParts struct {
	locator locator.Strategy
	fetcher *pricing.Fetcher
}

func setupCache(logger *zap.Logger) (cache.Cache, error) {
	return cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
		Logger:      logger,
	})
}

func setupClock(cfg *config.Config, logger *zap.Logger, appCache cache.Cache) timesync.Clock {
	if cfg.TimeServiceURL == "" {
		return timesync.LocalClock{}
	}

	return timesync.NewRemoteClock(&timesync.Config{
		BaseURL: cfg.TimeServiceURL,
		Timeout: cfg.TimeSyncTimeout,
		Cache:   appCache,
		TTL:     cfg.TimeSyncTTL,
		Logger:  logger,
	})
}

func setupPipeline(cfg *config.Config, logger *zap.Logger) (*pipelineParts, error) {
	discoveryClient := discovery.NewClient(&discovery.Config{
		BaseURL:     cfg.GammaURL,
		Timeout:     cfg.DiscoveryTimeout,
		SearchLimit: cfg.SearchResultLimit,
		Logger:      logger,
	})

	strategy, err := locator.New(cfg, discoveryClient, logger)
	if err != nil {
		return nil, err
	}

	pricingClient := pricing.NewClient(&pricing.Config{
		BaseURL: cfg.ClobURL,
		Timeout: cfg.PricingTimeout,
		Logger:  logger,
	})

	return &pipelineParts{
		locator: strategy,
		fetcher: pricing.NewFetcher(pricingClient, logger),
	}, nil
}

func setupStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	switch cfg.StorageMode {
	case "postgres":
		pgStorage, err := storage.NewPostgresStorage(&storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Logger:   logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create postgres storage: %w", err)
		}
		return pgStorage, nil
	case "console":
		return storage.NewConsoleStorage(logger), nil
	default:
		return nil, nil
	}
}
