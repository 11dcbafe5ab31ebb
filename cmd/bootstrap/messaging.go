package bootstrap

import (
	"context"
	"log/slog"

	"venue-booking/internal/infra/notify"
	"venue-booking/internal/infra/pubsub"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewRabbitMQ,
		NewRedis,
		NewRefreshRegistry,
	),
)

func NewRabbitMQ(lc fx.Lifecycle, cfg config.Config) (*notify.Client, error) {
	client, err := notify.Dial(cfg.RabbitMQ)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewRedis(lc fx.Lifecycle, cfg config.Config) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "ping redis")
	}
	slog.Info("Redis initialized", "addr", cfg.Redis.Addr)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// NewRefreshRegistry relays Redis refresh messages to local SSE subscribers
// for the lifetime of the app.
func NewRefreshRegistry(lc fx.Lifecycle, client redis.UniversalClient) *pubsub.Registry {
	registry := pubsub.NewRegistry(client)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := registry.Run(ctx); err != nil {
					slog.Error("refresh relay stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			registry.Close()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return registry
}
