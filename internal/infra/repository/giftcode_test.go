//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/tests/common/builder"
	repositorymock "venue-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGiftCodeRepository_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pack code inserted with expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockGiftCodeQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewGiftCodeRepository(mockQueries, mockDB)

		packID := uuid.New()
		expires := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
		g := giftcode.New(uuid.New(), "ABCDEFGHJK23", &packID, &expires, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

		mockQueries.EXPECT().InsertGiftCode(ctx, mockDB, sqlc.InsertGiftCodeParams{
			ID:        g.ID(),
			Code:      "ABCDEFGHJK23",
			Status:    "unused",
			PackID:    pgtype.UUID{Bytes: packID, Valid: true},
			ExpiresAt: pgtype.Timestamptz{Time: expires, Valid: true},
			CreatedAt: pgtype.Timestamptz{Time: g.CreatedAt(), Valid: true},
		}).Return(g.ID(), nil)

		require.NoError(t, repo.Insert(ctx, g))
	})

	t.Run("error: taken code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockGiftCodeQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewGiftCodeRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertGiftCode(ctx, mockDB, gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)

		err := repo.Insert(ctx, builder.NewGiftCodeBuilder().BuildDomain())
		assert.ErrorIs(t, err, shortcode.ErrCodeTaken)
	})
}

func TestGiftCodeRepository_Redeem(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		want       bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: unused code redeemed", affected: 1, want: true},
		{name: "success: lost the race", affected: 0, want: false},
		{name: "error: ticket does not exist", queryErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "error: database failure", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGiftCodeQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewGiftCodeRepository(mockQueries, mockDB)

			g := builder.NewGiftCodeBuilder()
			ticketID := uuid.New()
			mockQueries.EXPECT().RedeemGiftCode(ctx, mockDB, sqlc.RedeemGiftCodeParams{
				ID:       g.ID,
				TicketID: pgtype.UUID{Bytes: ticketID, Valid: true},
				UsedAt:   pgtype.Timestamptz{Time: now, Valid: true},
			}).Return(tc.affected, tc.queryErr)

			ok, err := repo.Redeem(ctx, g.ID, ticketID, now)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestGiftCodeRepository_FindByCode(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockGiftCodeQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewGiftCodeRepository(mockQueries, mockDB)

	expires := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
	b := builder.NewGiftCodeBuilder().ExpiringAt(expires)
	mockQueries.EXPECT().GetGiftCodeByCode(ctx, mockDB, b.Code).Return(b.BuildInfra(), nil)

	got, err := repo.FindByCode(ctx, b.Code)
	require.NoError(t, err)
	assert.Equal(t, giftcode.StatusUnused, got.Status())
	require.NotNil(t, got.ExpiresAt())
	assert.Equal(t, expires, *got.ExpiresAt())
	assert.Nil(t, got.TicketID())
}

func TestGiftCodeRepository_ExpireStale(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockGiftCodeQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewGiftCodeRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ExpireStaleGiftCodes(ctx, mockDB, pgtype.Timestamptz{Time: now, Valid: true}).Return(int64(3), nil)

	n, err := repo.ExpireStale(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
