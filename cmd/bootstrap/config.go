package bootstrap

import (
	"log/slog"

	"venue-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	slog.Info("Booking rules loaded",
		"slot_duration", cfg.Booking.SlotDuration.String(),
		"slot_capacity", cfg.Booking.SlotCapacity,
		"base_price_cents", cfg.Booking.BasePriceCents,
		"currency", cfg.Booking.Currency,
		"timezone", cfg.Booking.TimeZone,
		"sweeper_enabled", cfg.Sweeper.Enabled)
	return cfg, nil
}
