//go:build unit

package config_test

import (
	"testing"
	"time"

	"venue-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test defaults are valid", mutate: func(*config.Config) {}},
		{
			name:    "slot shorter than an hour",
			mutate:  func(c *config.Config) { c.Booking.SlotDuration = 30 * time.Minute },
			wantErr: "BOOKING_SLOT_DURATION",
		},
		{
			name:    "zero capacity",
			mutate:  func(c *config.Config) { c.Booking.SlotCapacity = 0 },
			wantErr: "BOOKING_SLOT_CAPACITY",
		},
		{
			name:    "negative base price",
			mutate:  func(c *config.Config) { c.Booking.BasePriceCents = -1 },
			wantErr: "BOOKING_BASE_PRICE_CENTS",
		},
		{
			name:    "currency is not a code",
			mutate:  func(c *config.Config) { c.Booking.Currency = "euro" },
			wantErr: "BOOKING_CURRENCY",
		},
		{
			name:    "unknown time zone",
			mutate:  func(c *config.Config) { c.Booking.TimeZone = "Mars/Olympus" },
			wantErr: "BOOKING_TIMEZONE",
		},
		{
			name: "enabled sweeper without grace",
			mutate: func(c *config.Config) {
				c.Sweeper.Enabled = true
				c.Sweeper.GraceMinutes = 0
			},
			wantErr: "sweeper",
		},
		{
			name:    "session shorter than stripe allows",
			mutate:  func(c *config.Config) { c.Payment.SessionTTL = 10 * time.Minute },
			wantErr: "PAYMENT_SESSION_TTL",
		},
		{
			name: "grace ends before the session does",
			mutate: func(c *config.Config) {
				c.Sweeper.Enabled = true
				c.Sweeper.GraceMinutes = 15
			},
			wantErr: "SWEEPER_GRACE_MINUTES",
		},
		{
			name: "grace equal to the session lifetime",
			mutate: func(c *config.Config) {
				c.Sweeper.Enabled = true
				c.Sweeper.GraceMinutes = 30
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBookingConfig_LocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, config.BookingConfig{TimeZone: "Nowhere/Void"}.Location())
	assert.Equal(t, "Europe/Paris", config.BookingConfig{TimeZone: "Europe/Paris"}.Location().String())
}
