package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront-gateway/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the configured redis (directly or through
// sentinel) using database db and verifies the connection.
func NewRedisClient(ctx context.Context, logger *slog.Logger, cfg *config.RedisConfig, db int) (*redis.Client, error) {
	var client *redis.Client

	if cfg.Sentinel != nil {
		logger.Info("connecting to redis via sentinel",
			"master", cfg.Sentinel.MasterName,
			"sentinels", cfg.Sentinel.SentinelAddresses,
			"db", db)

		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.Sentinel.MasterName,
			SentinelAddrs:    cfg.Sentinel.SentinelAddresses,
			SentinelUsername: cfg.Sentinel.SentinelUsername,
			SentinelPassword: cfg.Sentinel.SentinelPassword,
			Username:         cfg.Username,
			Password:         cfg.Password,
			DB:               db,
			MinIdleConns:     2,
		})
	} else {
		logger.Info("connecting to redis", "address", cfg.Address, "db", db)

		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Address,
			Username:     cfg.Username,
			Password:     cfg.Password,
			DB:           db,
			MinIdleConns: 2,
		})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}
