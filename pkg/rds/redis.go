package rds

import (
	"context"
	"fmt"
	"time"

	"deepcheck_api/config"
	"deepcheck_api/pkg/logger"

	"github.com/go-redis/redis/v8"
)

func New(cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func Close(client *redis.Client) {
	if err := client.Close(); err != nil {
		logger.Logger.Error("Error closing redis client", "error", err.Error())
	}
}

func LogStats(client *redis.Client) {
	for {
		time.Sleep(time.Minute * 1)
		logger.Logger.Info("redis client pool stats", "stats", client.PoolStats())
	}
}
