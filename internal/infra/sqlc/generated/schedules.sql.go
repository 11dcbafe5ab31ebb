package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertSchedule = `-- name: InsertSchedule :exec
INSERT INTO schedules (
    id, kind, audience_type, day_of_week, start_date, end_date,
    start_time, end_time, is_closed, notes, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11, $11
)
`

type InsertScheduleParams struct {
	ID           uuid.UUID          `json:"id"`
	Kind         string             `json:"kind"`
	AudienceType string             `json:"audience_type"`
	DayOfWeek    pgtype.Int2        `json:"day_of_week"`
	StartDate    pgtype.Date        `json:"start_date"`
	EndDate      pgtype.Date        `json:"end_date"`
	StartTime    pgtype.Time        `json:"start_time"`
	EndTime      pgtype.Time        `json:"end_time"`
	IsClosed     bool               `json:"is_closed"`
	Notes        string             `json:"notes"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertSchedule(ctx context.Context, db DBTX, arg InsertScheduleParams) error {
	_, err := db.Exec(ctx, insertSchedule,
		arg.ID,
		arg.Kind,
		arg.AudienceType,
		arg.DayOfWeek,
		arg.StartDate,
		arg.EndDate,
		arg.StartTime,
		arg.EndTime,
		arg.IsClosed,
		arg.Notes,
		arg.CreatedAt,
	)
	return err
}

const listSchedulesForDate = `-- name: ListSchedulesForDate :many
SELECT id, kind, audience_type, day_of_week, start_date, end_date,
       start_time, end_time, is_closed, notes, created_at, updated_at
FROM schedules
WHERE audience_type = $2
  AND (
        (kind = 'exception' AND start_date <= $1 AND end_date >= $1)
     OR (kind = 'recurring' AND day_of_week = EXTRACT(DOW FROM $1::date)::smallint)
  )
ORDER BY CASE kind WHEN 'exception' THEN 0 ELSE 1 END, created_at, id
`

type ListSchedulesForDateParams struct {
	Date         pgtype.Date `json:"date"`
	AudienceType string      `json:"audience_type"`
}

func (q *Queries) ListSchedulesForDate(ctx context.Context, db DBTX, arg ListSchedulesForDateParams) ([]Schedules, error) {
	rows, err := db.Query(ctx, listSchedulesForDate, arg.Date, arg.AudienceType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Schedules
	for rows.Next() {
		var i Schedules
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.AudienceType,
			&i.DayOfWeek,
			&i.StartDate,
			&i.EndDate,
			&i.StartTime,
			&i.EndTime,
			&i.IsClosed,
			&i.Notes,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
