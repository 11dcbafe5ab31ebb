package repository

import (
	"context"
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GiftCodeQueries interface {
	InsertGiftCode(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertGiftCodeParams) (uuid.UUID, error)
	GiftCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
	GetGiftCodeByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GiftCodes, error)
	MarkGiftCodeExpired(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	RedeemGiftCode(ctx context.Context, db sqlc.DBTX, arg sqlc.RedeemGiftCodeParams) (int64, error)
	ExpireStaleGiftCodes(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type GiftCodeRepository struct {
	queries GiftCodeQueries
	db      sqlc.DBTX
}

func NewGiftCodeRepository(queries GiftCodeQueries, db sqlc.DBTX) *GiftCodeRepository {
	return &GiftCodeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GiftCodeRepository) Insert(ctx context.Context, g *giftcode.GiftCode) error {
	_, err := r.queries.InsertGiftCode(ctx, r.db, converter.GiftCodeToInsertParams(g))
	if pgconv.IsNoRows(err) {
		return shortcode.ErrCodeTaken
	}
	if err != nil {
		return infra.WrapRepoErr("failed to insert gift code", err)
	}
	return nil
}

func (r *GiftCodeRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.queries.GiftCodeExists(ctx, r.db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check gift code", err)
	}
	return exists, nil
}

func (r *GiftCodeRepository) FindByCode(ctx context.Context, code string) (*giftcode.GiftCode, error) {
	row, err := r.queries.GetGiftCodeByCode(ctx, r.db, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get gift code", err)
	}
	return converter.GiftCodeFromRow(row), nil
}

// MarkExpired is a no-op for a code that is no longer unused.
func (r *GiftCodeRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.MarkGiftCodeExpired(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to expire gift code", err)
	}
	return nil
}

func (r *GiftCodeRepository) Redeem(ctx context.Context, id, ticketID uuid.UUID, now time.Time) (bool, error) {
	affected, err := r.queries.RedeemGiftCode(ctx, r.db, sqlc.RedeemGiftCodeParams{
		ID:       id,
		TicketID: pgconv.UUIDToPgtype(ticketID),
		UsedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to redeem gift code", err)
	}
	return affected == 1, nil
}

func (r *GiftCodeRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.ExpireStaleGiftCodes(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale gift codes", err)
	}
	return n, nil
}
