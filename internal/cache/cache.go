package cache

import (
	"context"
	"errors"
	"time"
	"tntfl-ladder/internal/config"

	"github.com/rs/zerolog"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

func StatsKey(player string) string {
	return "tntfl:stats:" + player
}

// New returns a Redis-backed cache when REDIS_URL is configured and a no-op
// cache otherwise.
func New(cfg *config.Config, logger zerolog.Logger) (Cache, error) {
	if cfg.RedisURL == "" {
		logger.Info().Msg("redis cache disabled")
		return NopCache{}, nil
	}
	c, err := NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to redis")
		return nil, err
	}
	logger.Info().Msg("redis cache connected")
	return c, nil
}

type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (NopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NopCache) Delete(context.Context, ...string) error { return nil }

func (NopCache) Close() error { return nil }
