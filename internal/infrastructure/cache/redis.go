package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jirabridge/internal/shared/config"
	appLogger "jirabridge/internal/shared/logger"
)

// NewRedisClient connects to redis and verifies the connection. Callers only
// need redis when webhook rate limiting is enabled.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	appLogger.Info("redis connection established", "addr", cfg.GetAddr())

	return client, nil
}
