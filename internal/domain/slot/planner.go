package slot

import (
	"time"

	"venue-booking/internal/pkg/timeofday"
)

// MinTrailing is the shortest trailing slot the planner will emit.
const MinTrailing = time.Hour

type Slot struct {
	Start timeofday.TimeOfDay
	End   timeofday.TimeOfDay
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsComplete: starts on the hour and lasts exactly d.
func (s Slot) IsComplete(d time.Duration) bool {
	return s.Start.OnTheHour() && s.Duration() == d
}

func (s Slot) String() string {
	return "[" + s.Start.String() + "," + s.End.String() + ")"
}

// Plan expands an opening window into hourly-stepped slots of length d.
// Consecutive slots overlap whenever d exceeds one hour. When the stepping
// stops, a shorter trailing slot up to close is added if at least
// MinTrailing remains.
func Plan(open, close timeofday.TimeOfDay, d time.Duration) []Slot {
	if d <= 0 || !open.Before(close) {
		return nil
	}

	var slots []Slot
	cursor := open.HourFloor()
	for cursor.Add(d) <= close {
		slots = append(slots, Slot{Start: cursor, End: cursor.Add(d)})
		cursor = cursor.Add(time.Hour)
	}

	if close.Sub(cursor) >= MinTrailing {
		slots = append(slots, Slot{Start: cursor, End: close})
	}
	return slots
}

// Pricing applies the completeness rule: a partial slot costs half the base
// price, rounded down.
type Pricing struct {
	BasePrice int64
	Duration  time.Duration
}

func (p Pricing) Price(s Slot) int64 {
	if s.IsComplete(p.Duration) {
		return p.BasePrice
	}
	return p.BasePrice / 2
}

func (p Pricing) IsHalfPrice(s Slot) bool {
	return !s.IsComplete(p.Duration)
}
