package schedule

import (
	"strings"
	"time"

	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/timeofday"

	"github.com/google/uuid"
)

var (
	ErrInvalidAudience = errs.Validation("invalid audience type")
	ErrInvalidWindow   = errs.Validation("opening window must end after it starts")
	ErrInvalidRange    = errs.Validation("exception must end on or after its start date")
	ErrInvalidKind     = errs.Validation("invalid schedule entry kind")
)

type Audience string

const (
	AudiencePublic Audience = "public"
	AudienceGroup  Audience = "group"
	AudienceSchool Audience = "school"
)

func (a Audience) String() string {
	return string(a)
}

func (a Audience) IsValid() bool {
	switch a {
	case AudiencePublic, AudienceGroup, AudienceSchool:
		return true
	default:
		return false
	}
}

// ParseAudience defaults an empty value to AudiencePublic.
func ParseAudience(s string) (Audience, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AudiencePublic, nil
	}
	a := Audience(s)
	if !a.IsValid() {
		return "", ErrInvalidAudience
	}
	return a, nil
}

type Kind string

const (
	KindRecurring Kind = "recurring"
	KindException Kind = "exception"
)

func (k Kind) IsValid() bool {
	return k == KindRecurring || k == KindException
}

// Entry is either a weekly rule (DayOfWeek) or a dated exception (StartDate..EndDate inclusive).
type Entry struct {
	ID        uuid.UUID
	Kind      Kind
	Audience  Audience
	DayOfWeek time.Weekday
	StartDate time.Time
	EndDate   time.Time
	StartTime timeofday.TimeOfDay
	EndTime   timeofday.TimeOfDay
	IsClosed  bool
	Notes     string
	CreatedAt time.Time
}

func NewRecurring(audience Audience, day time.Weekday, start, end timeofday.TimeOfDay, closed bool, notes string) (Entry, error) {
	e := Entry{
		ID:        uuid.New(),
		Kind:      KindRecurring,
		Audience:  audience,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		IsClosed:  closed,
		Notes:     notes,
	}
	return e, e.Validate()
}

func NewException(audience Audience, from, to time.Time, start, end timeofday.TimeOfDay, closed bool, notes string) (Entry, error) {
	e := Entry{
		ID:        uuid.New(),
		Kind:      KindException,
		Audience:  audience,
		StartDate: from,
		EndDate:   to,
		StartTime: start,
		EndTime:   end,
		IsClosed:  closed,
		Notes:     notes,
	}
	return e, e.Validate()
}

func (e Entry) Validate() error {
	if !e.Kind.IsValid() {
		return ErrInvalidKind
	}
	if !e.Audience.IsValid() {
		return ErrInvalidAudience
	}
	if e.Kind == KindException && e.EndDate.Before(e.StartDate) {
		return ErrInvalidRange
	}
	// a closed entry carries no meaningful window
	if !e.IsClosed && !e.StartTime.Before(e.EndTime) {
		return ErrInvalidWindow
	}
	return nil
}

// Covers reports whether the entry applies to date (midnight UTC).
func (e Entry) Covers(date time.Time) bool {
	switch e.Kind {
	case KindException:
		return !date.Before(e.StartDate) && !date.After(e.EndDate)
	case KindRecurring:
		return date.Weekday() == e.DayOfWeek
	default:
		return false
	}
}
