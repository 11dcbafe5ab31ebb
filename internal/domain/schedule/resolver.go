package schedule

import (
	"time"

	"venue-booking/internal/pkg/timeofday"
)

// Window is the effective opening window for one date.
type Window struct {
	Open  timeofday.TimeOfDay
	Close timeofday.TimeOfDay
	Notes string
	Entry Entry
}

// Contains reports whether [start,end) is bookable. Slots are planned from the
// hour floor of the opening time, so that is the lower bound.
func (w Window) Contains(start, end timeofday.TimeOfDay) bool {
	return !start.Before(w.Open.HourFloor()) && !end.After(w.Close)
}

// Resolve picks the opening window for date from entries in store order.
// Exceptions covering the date win over recurring rules: the first open one
// gives the window, and if every covering exception is closed the day is
// closed. Otherwise the first open recurring rule for the weekday applies.
// Ties are broken by input order only.
func Resolve(date time.Time, entries []Entry) (Window, bool) {
	exceptionSeen := false
	for _, e := range entries {
		if e.Kind != KindException || !e.Covers(date) {
			continue
		}
		exceptionSeen = true
		if !e.IsClosed {
			return windowOf(e), true
		}
	}
	if exceptionSeen {
		return Window{}, false
	}

	for _, e := range entries {
		if e.Kind == KindRecurring && e.Covers(date) && !e.IsClosed {
			return windowOf(e), true
		}
	}
	return Window{}, false
}

func windowOf(e Entry) Window {
	return Window{
		Open:  e.StartTime,
		Close: e.EndTime,
		Notes: e.Notes,
		Entry: e,
	}
}
