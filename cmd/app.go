package cmd

import (
	"context"
	"net/http"

	"github.com/kasuboski/mediastat/config"
	mhttp "github.com/kasuboski/mediastat/pkg/http"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/manager"
	"github.com/kasuboski/mediastat/pkg/mediasource"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// loadConfig reads the configuration or exits
func loadConfig() config.Config {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalw("failed to read configurations", zap.Error(err))
	}
	return cfg
}

func newHTTPClient(cfg config.HTTP) *mhttp.RateLimitedClient {
	opts := []mhttp.ClientOption{
		mhttp.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, mhttp.WithMaxRetries(cfg.MaxRetries))
	}
	if cfg.BaseBackoff > 0 {
		opts = append(opts, mhttp.WithBaseBackoff(cfg.BaseBackoff))
	}
	if cfg.RequestsPerSecond > 0 {
		opts = append(opts, mhttp.WithRateLimit(cfg.RequestsPerSecond, cfg.Burst))
	}
	return mhttp.NewRateLimitedHTTPClient(opts...)
}

// newManager opens and migrates the database and wires the manager or exits
func newManager(ctx context.Context, cfg config.Config) *manager.MediaManager {
	log := logger.Get()

	store, err := sqlite.New(ctx, cfg.Storage.FilePath)
	if err != nil {
		log.Fatalw("failed to create storage connection", zap.Error(err))
	}

	if err := store.RunMigrations(ctx); err != nil {
		log.Fatalw("failed to migrate database", zap.Error(err))
	}

	sources := mediasource.NewSourceFactory(newHTTPClient(cfg.HTTP))
	return manager.New(store, sources, cfg)
}
