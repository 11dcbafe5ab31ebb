package components

import (
	"venue-booking/internal/handler"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/infra/metrics"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewTicketHandler,
		api.NewStaffHandler,
		api.NewGiftCodeHandler,
		api.NewWebhookHandler,
		func(cmds commands.SweepCommands, cfg config.Config) *api.SweepHandler {
			return api.NewSweepHandler(cmds, cfg.Sweeper.Grace())
		},
		middleware.NewTokenValidator,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewObservability,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Availability *api.AvailabilityHandler
	Tickets      *api.TicketHandler
	Staff        *api.StaffHandler
	GiftCodes    *api.GiftCodeHandler
	Webhooks     *api.WebhookHandler
	Sweeps       *api.SweepHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Availability: p.Availability,
		Tickets:      p.Tickets,
		Staff:        p.Staff,
		GiftCodes:    p.GiftCodes,
		Webhooks:     p.Webhooks,
		Sweeps:       p.Sweeps,
	}
}

func NewObservability(logger *middleware.Logger, httpMetrics *metrics.HTTPMetrics, reg *prometheus.Registry) handler.Observability {
	return handler.Observability{
		Logger:         logger,
		RequestMetrics: httpMetrics,
		MetricsHandler: metrics.Handler(reg),
	}
}
