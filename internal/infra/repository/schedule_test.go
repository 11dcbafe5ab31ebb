//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/infra/repository"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/pkg/timeofday"
	repositorymock "venue-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduleRepository_ListForDate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockScheduleQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewScheduleRepository(mockQueries, mockDB)

	date := time.Date(2030, 12, 25, 0, 0, 0, 0, time.UTC)
	rows := []sqlc.Schedules{
		{
			ID:           uuid.New(),
			Kind:         "exception",
			AudienceType: "public",
			StartDate:    pgconv.DateToPgtype(date),
			EndDate:      pgconv.DateToPgtype(date),
			StartTime:    pgconv.TimeOfDayToPgtype(0),
			EndTime:      pgconv.TimeOfDayToPgtype(0),
			IsClosed:     true,
			Notes:        "Christmas",
		},
		{
			ID:           uuid.New(),
			Kind:         "recurring",
			AudienceType: "public",
			DayOfWeek:    pgtype.Int2{Int16: int16(time.Wednesday), Valid: true},
			StartTime:    pgconv.TimeOfDayToPgtype(timeofday.MustNew(9, 0)),
			EndTime:      pgconv.TimeOfDayToPgtype(timeofday.MustNew(18, 0)),
		},
	}
	mockQueries.EXPECT().ListSchedulesForDate(ctx, mockDB, sqlc.ListSchedulesForDateParams{
		Date:         pgtype.Date{Time: date, Valid: true},
		AudienceType: "public",
	}).Return(rows, nil)

	entries, err := repo.ListForDate(ctx, date, schedule.AudiencePublic)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, schedule.KindException, entries[0].Kind)
	assert.True(t, entries[0].IsClosed)
	assert.True(t, entries[0].Covers(date))

	assert.Equal(t, schedule.KindRecurring, entries[1].Kind)
	assert.Equal(t, time.Wednesday, entries[1].DayOfWeek)
	assert.Equal(t, timeofday.MustNew(18, 0), entries[1].EndTime)

	_, open := schedule.Resolve(date, entries)
	assert.False(t, open)
}

func TestScheduleRepository_Insert_RejectsInvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockScheduleQueries(ctrl)
	repo := repository.NewScheduleRepository(mockQueries, &mockDBTX{})

	err := repo.Insert(context.Background(), schedule.Entry{
		Kind:      schedule.KindRecurring,
		Audience:  schedule.AudiencePublic,
		StartTime: timeofday.MustNew(18, 0),
		EndTime:   timeofday.MustNew(9, 0),
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
}
