package shared

import (
	"time"

	"venue-booking/internal/domain/slot"
)

// BookingRules are the venue-wide settings the engine plans and prices with.
type BookingRules struct {
	SlotDuration time.Duration
	SlotCapacity int
	BasePrice    int64
	Currency     string
	Location     *time.Location
}

func (r BookingRules) Pricing() slot.Pricing {
	return slot.Pricing{BasePrice: r.BasePrice, Duration: r.SlotDuration}
}

func (r BookingRules) Loc() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}
