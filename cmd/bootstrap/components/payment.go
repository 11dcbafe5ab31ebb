package components

import (
	"venue-booking/internal/handler/api"
	"venue-booking/internal/infra/payment"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(NewStripeGateway, fx.As(new(shared.PaymentGateway))),
		fx.Annotate(NewWebhookParser, fx.As(new(api.EventParser))),
	),
)

func NewStripeGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Payment)
}

func NewWebhookParser(cfg config.Config) *payment.WebhookParser {
	return payment.NewWebhookParser(cfg.Payment.StripeWebhookSecret)
}
