// Package cache provides the Redis-backed implementation of the
// post-listing cache.
package cache

import (
	"context"
	"log/slog"

	"chirp/config"
	"chirp/internal/domain/lifecycle"
	"chirp/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedis creates the Redis client. The client is optional: when no
// redis section is configured, caching is disabled and nil is returned.
func NewRedis(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		params.Logger.Info("Redis not configured, post cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
