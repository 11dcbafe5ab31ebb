package components

import (
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingRules,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTicketUseCase,
		commands.NewBasketUseCase,
		commands.NewValidationUseCase,
		commands.NewWebhookUseCase,
		commands.NewGiftCodeUseCase,
		commands.NewSweepUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewTicketQueries,
	),
)

func NewBookingRules(cfg config.Config) shared.BookingRules {
	return shared.BookingRules{
		SlotDuration: cfg.Booking.SlotDuration,
		SlotCapacity: cfg.Booking.SlotCapacity,
		BasePrice:    cfg.Booking.BasePriceCents,
		Currency:     cfg.Booking.Currency,
		Location:     cfg.Booking.Location(),
	}
}
