package components

import (
	"venue-booking/internal/handler/api"
	"venue-booking/internal/infra/metrics"
	"venue-booking/internal/infra/notify"
	"venue-booking/internal/infra/pubsub"
	"venue-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

// NotificationModule sends visitor messages through RabbitMQ.
var NotificationModule = fx.Module("notification",
	fx.Provide(
		fx.Annotate(NewRabbitNotifier, fx.As(new(shared.Notifier))),
	),
)

// EventBusModule binds the refresh registry and the metrics recorder to the
// ports the use cases and handlers depend on.
var EventBusModule = fx.Module("eventbus",
	fx.Provide(
		fx.Annotate(
			func(r *pubsub.Registry) *pubsub.Registry { return r },
			fx.As(new(shared.Publisher)),
			fx.As(new(api.RefreshSubscriber)),
		),
		fx.Annotate(
			func(r *metrics.Recorder) *metrics.Recorder { return r },
			fx.As(new(shared.Recorder)),
		),
	),
)

func NewRabbitNotifier(client *notify.Client) *notify.RabbitNotifier {
	return notify.NewRabbitNotifier(client.Channel(), client.Queue())
}
