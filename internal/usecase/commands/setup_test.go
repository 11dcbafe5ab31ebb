//go:build unit

package commands_test

import (
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/timeofday"
	"venue-booking/internal/usecase/shared"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/memstore"
)

var (
	// 2030-06-01 is a Saturday; bookings target the following Monday.
	now    = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	monday = time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)
)

func testRules(capacity int) shared.BookingRules {
	return shared.BookingRules{
		SlotDuration: 2 * time.Hour,
		SlotCapacity: capacity,
		BasePrice:    1000,
		Currency:     "eur",
		Location:     time.UTC,
	}
}

// openStore is open 09:00-17:00 every day for the public.
func openStore() *memstore.Store {
	store := memstore.New()
	store.PutSchedules(builder.WeeklyHours(schedule.AudiencePublic, timeofday.MustNew(9, 0), timeofday.MustNew(17, 0))...)
	return store
}

func testClock() *clock.MockClock {
	return clock.NewMockClock(now)
}

func details(startHour, endHour int, price int64) ticket.Details {
	return ticket.Details{
		Email:           "visitor@example.com",
		ReservationDate: monday,
		SlotStart:       timeofday.MustNew(startHour, 0),
		SlotEnd:         timeofday.MustNew(endHour, 0),
		TicketPrice:     price,
		Audience:        schedule.AudiencePublic,
	}
}
