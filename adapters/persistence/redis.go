package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/internal/config"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

// NewRedisClient opens the connection backing the KV store. The ping
// runs before any route is served; a store that is down at boot is a
// startup failure, not a per-request one.
func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed for %s: %w", cfg.Redis.Addr, err)
	}

	log.Info("Redis connection established", zap.String("addr", cfg.Redis.Addr))
	return rdb, nil
}
