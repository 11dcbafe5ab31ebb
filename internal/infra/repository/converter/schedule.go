package converter

import (
	"time"

	"venue-booking/internal/domain/schedule"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ScheduleFromRow(row sqlc.Schedules) schedule.Entry {
	e := schedule.Entry{
		ID:        row.ID,
		Kind:      schedule.Kind(row.Kind),
		Audience:  schedule.Audience(row.AudienceType),
		StartTime: pgconv.TimeOfDayFromPgtype(row.StartTime),
		EndTime:   pgconv.TimeOfDayFromPgtype(row.EndTime),
		IsClosed:  row.IsClosed,
		Notes:     row.Notes,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if row.DayOfWeek.Valid {
		e.DayOfWeek = time.Weekday(row.DayOfWeek.Int16)
	}
	if row.StartDate.Valid {
		e.StartDate = pgconv.DateFromPgtype(row.StartDate)
	}
	if row.EndDate.Valid {
		e.EndDate = pgconv.DateFromPgtype(row.EndDate)
	}
	return e
}

func ScheduleToInsertParams(e schedule.Entry) sqlc.InsertScheduleParams {
	params := sqlc.InsertScheduleParams{
		ID:           e.ID,
		Kind:         string(e.Kind),
		AudienceType: e.Audience.String(),
		StartTime:    pgconv.TimeOfDayToPgtype(e.StartTime),
		EndTime:      pgconv.TimeOfDayToPgtype(e.EndTime),
		IsClosed:     e.IsClosed,
		Notes:        e.Notes,
		CreatedAt:    pgconv.TimeToPgtype(e.CreatedAt),
	}
	switch e.Kind {
	case schedule.KindRecurring:
		// #nosec G115 -- weekday is 0..6
		params.DayOfWeek = pgtype.Int2{Int16: int16(e.DayOfWeek), Valid: true}
	case schedule.KindException:
		params.StartDate = pgconv.DateToPgtype(e.StartDate)
		params.EndDate = pgconv.DateToPgtype(e.EndDate)
	}
	return params
}
