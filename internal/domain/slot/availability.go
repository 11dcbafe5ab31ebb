package slot

import (
	"math"

	"venue-booking/internal/pkg/timeofday"

	"github.com/google/uuid"
)

// Booking is the interval a capacity-holding ticket occupies on its date.
type Booking struct {
	TicketID uuid.UUID
	Start    timeofday.TimeOfDay
	End      timeofday.TimeOfDay
}

// Overlaps uses half-open intervals, so touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd timeofday.TimeOfDay) bool {
	return aStart < bEnd && aEnd > bStart
}

func CountOverlapping(bookings []Booking, s Slot) int {
	n := 0
	for _, b := range bookings {
		if Overlaps(b.Start, b.End, s.Start, s.End) {
			n++
		}
	}
	return n
}

// HasRoom reports whether one more booking for s stays within capacity.
func HasRoom(bookings []Booking, s Slot, capacity int) bool {
	return CountOverlapping(bookings, s) < capacity
}

type Availability struct {
	Slot
	Capacity            int
	Booked              int
	Available           int
	OccupancyPercentage float64
	IsHalfPrice         bool
	Price               int64
}

type Totals struct {
	Capacity  int
	Booked    int
	Available int
}

// Summarize builds the per-slot view and the day totals. Total capacity is
// len(slots)*capacity even though slots overlap; Booked counts each ticket
// once however many slots it spans.
func Summarize(slots []Slot, bookings []Booking, capacity int, pricing Pricing) ([]Availability, Totals) {
	out := make([]Availability, 0, len(slots))
	distinct := make(map[uuid.UUID]struct{})

	for _, s := range slots {
		booked := 0
		for _, b := range bookings {
			if Overlaps(b.Start, b.End, s.Start, s.End) {
				booked++
				distinct[b.TicketID] = struct{}{}
			}
		}
		out = append(out, Availability{
			Slot:                s,
			Capacity:            capacity,
			Booked:              booked,
			Available:           max(0, capacity-booked),
			OccupancyPercentage: occupancy(booked, capacity),
			IsHalfPrice:         pricing.IsHalfPrice(s),
			Price:               pricing.Price(s),
		})
	}

	totals := Totals{
		Capacity: len(slots) * capacity,
		Booked:   len(distinct),
	}
	totals.Available = max(0, totals.Capacity-totals.Booked)
	return out, totals
}

func occupancy(booked, capacity int) float64 {
	if capacity <= 0 {
		return 100
	}
	pct := float64(booked) / float64(capacity) * 100
	return math.Min(100, math.Round(pct*10)/10)
}
