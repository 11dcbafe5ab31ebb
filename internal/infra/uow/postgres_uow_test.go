//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakePool struct {
	sqlc.DBTX
	begun   []*fakeTx
	options []pgx.TxOptions
}

func (p *fakePool) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	tx := &fakeTx{}
	p.begun = append(p.begun, tx)
	p.options = append(p.options, opts)
	return tx, nil
}

func newTestUoW(pool *fakePool) *PostgresUoW {
	return &PostgresUoW{pool: pool, q: sqlc.New()}
}

func TestWithin_RetriesSerializationFailure(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)

	calls := 0
	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, pool.begun, 2)
	assert.True(t, pool.begun[0].rolledBack)
	assert.True(t, pool.begun[1].committed)
	assert.Equal(t, pgx.ReadCommitted, pool.options[0].IsoLevel)
}

func TestWithin_DomainErrorIsNotRetried(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)
	domainErr := errs.Conflict("slot full")

	calls := 0
	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		calls++
		return domainErr
	})

	assert.ErrorIs(t, err, domainErr)
	assert.Equal(t, 1, calls)
	assert.True(t, pool.begun[0].rolledBack)
}

func TestWithin_GivesUpAfterMaxRetries(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
	assert.Len(t, pool.begun, 4)
}

func TestWithinReadOnly_UsesReadOnlyTx(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)

	err := u.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		assert.NotNil(t, tx.Schedules())
		assert.Same(t, tx.Tickets(), tx.Tickets())
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, pgx.ReadOnly, pool.options[0].AccessMode)
	assert.True(t, pool.begun[0].committed)
}

func TestWithDB_DoesNotBegin(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)

	err := u.WithDB(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		assert.NotNil(t, tx.GiftCodes())
		return nil
	})

	require.NoError(t, err)
	assert.Empty(t, pool.begun)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&pgconn.PgError{Code: "40001"}))
	assert.True(t, isRetryableError(errs.Wrap(&pgconn.PgError{Code: "40P01"}, "wrapped")))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableError(errors.New("plain")))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Millisecond)
	}
}
