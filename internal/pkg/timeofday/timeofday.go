// Package timeofday models a wall-clock time within a day at minute precision.
package timeofday

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const MinutesPerDay = 24 * 60

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay counts minutes since midnight. 24:00 is allowed so that a window
// may close at the end of the day.
type TimeOfDay int

func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	t := TimeOfDay(hour*60 + minute)
	if t > MinutesPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return t, nil
}

func MustNew(hour, minute int) TimeOfDay {
	t, err := New(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse accepts "HH:MM" and "HH:MM:SS" (seconds are dropped).
func Parse(s string) (TimeOfDay, error) {
	var h, m, sec int
	if n, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err == nil && n == 3 {
		return New(h, m)
	}
	if n, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || n != 2 {
		return 0, ErrInvalidTimeOfDay
	}
	return New(h, m)
}

// FromDuration converts an offset since midnight, truncating to the minute.
func FromDuration(d time.Duration) (TimeOfDay, error) {
	if d < 0 || d > 24*time.Hour {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(d / time.Minute), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) SinceMidnight() time.Duration {
	return time.Duration(t) * time.Minute
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

func (t TimeOfDay) Sub(other TimeOfDay) time.Duration {
	return time.Duration(t-other) * time.Minute
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t > other }

func (t TimeOfDay) HourFloor() TimeOfDay {
	return TimeOfDay(t.Hour() * 60)
}

func (t TimeOfDay) OnTheHour() bool {
	return t.Minute() == 0
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On combines the time of day with a calendar date in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(t.SinceMidnight())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidTimeOfDay
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
