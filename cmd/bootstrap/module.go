package bootstrap

import (
	"venue-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MessagingModule,
	MetricsModule,
	components.PersistenceModule,
	components.PaymentModule,
	components.NotificationModule,
	components.EventBusModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
