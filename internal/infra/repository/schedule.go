package repository

import (
	"context"
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
)

type ScheduleQueries interface {
	InsertSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertScheduleParams) error
	ListSchedulesForDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSchedulesForDateParams) ([]sqlc.Schedules, error)
}

type ScheduleRepository struct {
	queries ScheduleQueries
	db      sqlc.DBTX
}

func NewScheduleRepository(queries ScheduleQueries, db sqlc.DBTX) *ScheduleRepository {
	return &ScheduleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleRepository) ListForDate(ctx context.Context, date time.Time, audience schedule.Audience) ([]schedule.Entry, error) {
	rows, err := r.queries.ListSchedulesForDate(ctx, r.db, sqlc.ListSchedulesForDateParams{
		Date:         pgconv.DateToPgtype(date),
		AudienceType: audience.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules", err)
	}
	entries := make([]schedule.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, converter.ScheduleFromRow(row))
	}
	return entries, nil
}

// Insert is used by seeding; schedule editing lives outside this service.
func (r *ScheduleRepository) Insert(ctx context.Context, e schedule.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if err := r.queries.InsertSchedule(ctx, r.db, converter.ScheduleToInsertParams(e)); err != nil {
		return infra.WrapRepoErr("failed to insert schedule", err)
	}
	return nil
}
