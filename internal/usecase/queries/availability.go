package queries

import (
	"context"
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"
)

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, date time.Time, audience schedule.Audience) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	rules shared.BookingRules
}

func NewAvailabilityQueries(uow shared.UnitOfWork, rules shared.BookingRules) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, rules: rules}
}

// GetAvailability composes schedule resolution, slot planning and overlap
// counting for one date. A closed day yields an empty slot list.
func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, date time.Time, audience schedule.Audience) (*AvailabilityView, error) {
	view := &AvailabilityView{
		Date:         date.Format(time.DateOnly),
		AudienceType: audience.String(),
		Currency:     q.rules.Currency,
		Slots:        []SlotView{},
	}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Schedules().ListForDate(ctx, date, audience)
		if err != nil {
			return errs.Wrap(err, "list schedule entries")
		}

		window, open := schedule.Resolve(date, entries)
		if !open {
			view.IsClosed = true
			return nil
		}
		view.OpenTime = &window.Open
		view.CloseTime = &window.Close
		view.Notes = window.Notes

		slots := slot.Plan(window.Open, window.Close, q.rules.SlotDuration)
		if len(slots) == 0 {
			return nil
		}

		bookings, err := tx.Tickets().ListBookings(ctx, date)
		if err != nil {
			return errs.Wrap(err, "list bookings")
		}

		availability, totals := slot.Summarize(slots, bookings, q.rules.SlotCapacity, q.rules.Pricing())
		for _, a := range availability {
			view.Slots = append(view.Slots, newSlotView(a))
		}
		view.TotalCapacity = totals.Capacity
		view.TotalBooked = totals.Booked
		view.TotalAvailable = totals.Available
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
