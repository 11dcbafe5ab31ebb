package converter

import (
	"venue-booking/internal/domain/giftcode"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
)

func GiftCodeToInsertParams(g *giftcode.GiftCode) sqlc.InsertGiftCodeParams {
	return sqlc.InsertGiftCodeParams{
		ID:        g.ID(),
		Code:      g.Code(),
		Status:    g.Status().String(),
		PackID:    pgconv.UUIDPtrToPgtype(g.PackID()),
		ExpiresAt: pgconv.TimePtrToPgtype(g.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(g.CreatedAt()),
	}
}

func GiftCodeFromRow(row sqlc.GiftCodes) *giftcode.GiftCode {
	return giftcode.Reconstruct(
		row.ID,
		row.Code,
		giftcode.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.PackID),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.UUIDPtrFromPgtype(row.TicketID),
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
