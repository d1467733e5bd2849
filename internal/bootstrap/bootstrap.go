// Package bootstrap assembles the pieces both hosts need: a configured logger and the
// persistence gateway for the configured store backend.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/yukikurage/taskboard/internal/config"
	"github.com/yukikurage/taskboard/internal/database"
	"github.com/yukikurage/taskboard/internal/persistence"
	"github.com/yukikurage/taskboard/internal/repository"
)

// NewLogger returns a logrus logger at the given level, falling back to info.
func NewLogger(level string) *log.Logger {
	logger := log.New()
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.WithError(err).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// OpenGateway connects the configured store backend and returns a gateway over it,
// plus a function releasing the connection.
func OpenGateway(ctx context.Context, cfg *config.Config, logger *log.Logger) (*persistence.Gateway, func() error, error) {
	repo, closeFn, err := OpenRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return persistence.NewGateway(repo, cfg.StateKey, logger), closeFn, nil
}

// OpenRepository opens the blob repository named by cfg.StoreBackend.
func OpenRepository(ctx context.Context, cfg *config.Config) (repository.BlobRepository, func() error, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr(), err)
		}
		return repository.NewRedisBlobRepository(client), client.Close, nil

	case config.BackendDatabase:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			database.Close(db)
			return nil, nil, err
		}
		return repository.NewBlobRepository(db), func() error { return database.Close(db) }, nil
	}
	return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
}
