//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/pkg/timeofday"

	"github.com/google/uuid"
)

// WeeklyHours opens every day of the week between open and closeAt for audience.
func WeeklyHours(audience schedule.Audience, open, closeAt timeofday.TimeOfDay) []schedule.Entry {
	created := time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := make([]schedule.Entry, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		entries = append(entries, schedule.Entry{
			ID:        uuid.New(),
			Kind:      schedule.KindRecurring,
			Audience:  audience,
			DayOfWeek: d,
			StartTime: open,
			EndTime:   closeAt,
			CreatedAt: created.Add(time.Duration(d) * time.Minute),
		})
	}
	return entries
}

func ClosedOn(audience schedule.Audience, date time.Time, notes string) schedule.Entry {
	return schedule.Entry{
		ID:        uuid.New(),
		Kind:      schedule.KindException,
		Audience:  audience,
		StartDate: date,
		EndDate:   date,
		IsClosed:  true,
		Notes:     notes,
		CreatedAt: time.Date(2029, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}
