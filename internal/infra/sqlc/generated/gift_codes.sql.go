package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const expireStaleGiftCodes = `-- name: ExpireStaleGiftCodes :execrows
UPDATE gift_codes
SET status = 'expired'
WHERE status = 'unused'
  AND expires_at IS NOT NULL
  AND expires_at <= $1
`

func (q *Queries) ExpireStaleGiftCodes(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, expireStaleGiftCodes, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getGiftCodeByCode = `-- name: GetGiftCodeByCode :one
SELECT id, code, status, pack_id, expires_at, ticket_id, used_at, created_at
FROM gift_codes
WHERE code = $1
`

func (q *Queries) GetGiftCodeByCode(ctx context.Context, db DBTX, code string) (GiftCodes, error) {
	row := db.QueryRow(ctx, getGiftCodeByCode, code)
	var i GiftCodes
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Status,
		&i.PackID,
		&i.ExpiresAt,
		&i.TicketID,
		&i.UsedAt,
		&i.CreatedAt,
	)
	return i, err
}

const giftCodeExists = `-- name: GiftCodeExists :one
SELECT EXISTS (SELECT 1 FROM gift_codes WHERE code = $1)
`

func (q *Queries) GiftCodeExists(ctx context.Context, db DBTX, code string) (bool, error) {
	row := db.QueryRow(ctx, giftCodeExists, code)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const insertGiftCode = `-- name: InsertGiftCode :one
INSERT INTO gift_codes (id, code, status, pack_id, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (code) DO NOTHING
RETURNING id
`

type InsertGiftCodeParams struct {
	ID        uuid.UUID          `json:"id"`
	Code      string             `json:"code"`
	Status    string             `json:"status"`
	PackID    pgtype.UUID        `json:"pack_id"`
	ExpiresAt pgtype.Timestamptz `json:"expires_at"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertGiftCode(ctx context.Context, db DBTX, arg InsertGiftCodeParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertGiftCode,
		arg.ID,
		arg.Code,
		arg.Status,
		arg.PackID,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const markGiftCodeExpired = `-- name: MarkGiftCodeExpired :execrows
UPDATE gift_codes
SET status = 'expired'
WHERE id = $1
  AND status = 'unused'
`

func (q *Queries) MarkGiftCodeExpired(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, markGiftCodeExpired, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const redeemGiftCode = `-- name: RedeemGiftCode :execrows
UPDATE gift_codes
SET status = 'used',
    ticket_id = $2,
    used_at = $3
WHERE id = $1
  AND status = 'unused'
`

type RedeemGiftCodeParams struct {
	ID       uuid.UUID          `json:"id"`
	TicketID pgtype.UUID        `json:"ticket_id"`
	UsedAt   pgtype.Timestamptz `json:"used_at"`
}

func (q *Queries) RedeemGiftCode(ctx context.Context, db DBTX, arg RedeemGiftCodeParams) (int64, error) {
	result, err := db.Exec(ctx, redeemGiftCode, arg.ID, arg.TicketID, arg.UsedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
