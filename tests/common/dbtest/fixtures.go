//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/infra/repository"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/timeofday"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertTicket(t *testing.T, db sqlc.DBTX, tk *ticket.Ticket) {
	t.Helper()
	err := repository.NewTicketRepository(sqlc.New(), db).Insert(context.Background(), tk)
	require.NoError(t, err)
}

func InsertGiftCode(t *testing.T, db sqlc.DBTX, g *giftcode.GiftCode) {
	t.Helper()
	err := repository.NewGiftCodeRepository(sqlc.New(), db).Insert(context.Background(), g)
	require.NoError(t, err)
}

func InsertSchedules(t *testing.T, db sqlc.DBTX, entries ...schedule.Entry) {
	t.Helper()
	repo := repository.NewScheduleRepository(sqlc.New(), db)
	for _, e := range entries {
		require.NoError(t, repo.Insert(context.Background(), e))
	}
}

// SeedReferenceData opens the venue 09:00-17:00 every day for the public.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	repo := repository.NewScheduleRepository(sqlc.New(), pool)

	base := time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := time.Sunday; d <= time.Saturday; d++ {
		e, err := schedule.NewRecurring(schedule.AudiencePublic, d, timeofday.MustNew(9, 0), timeofday.MustNew(17, 0), false, "")
		if err != nil {
			return err
		}
		e.CreatedAt = base.Add(time.Duration(d) * time.Minute)
		if err := repo.Insert(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
