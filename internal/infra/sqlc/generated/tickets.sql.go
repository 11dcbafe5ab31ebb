package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const cancelStalePendingTickets = `-- name: CancelStalePendingTickets :many
UPDATE tickets
SET status = 'cancelled',
    transaction_status = 'expired',
    updated_at = $2
WHERE status = 'pending'
  AND created_at < $1
RETURNING reservation_date
`

type CancelStalePendingTicketsParams struct {
	CreatedBefore pgtype.Timestamptz `json:"created_before"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CancelStalePendingTickets(ctx context.Context, db DBTX, arg CancelStalePendingTicketsParams) ([]pgtype.Date, error) {
	rows, err := db.Query(ctx, cancelStalePendingTickets, arg.CreatedBefore, arg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []pgtype.Date
	for rows.Next() {
		var reservation_date pgtype.Date
		if err := rows.Scan(&reservation_date); err != nil {
			return nil, err
		}
		items = append(items, reservation_date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countTicketsByCheckoutID = `-- name: CountTicketsByCheckoutID :one
SELECT count(*) FROM tickets
WHERE checkout_id = $1
  AND status = $2
`

type CountTicketsByCheckoutIDParams struct {
	CheckoutID pgtype.Text `json:"checkout_id"`
	Status     string      `json:"status"`
}

func (q *Queries) CountTicketsByCheckoutID(ctx context.Context, db DBTX, arg CountTicketsByCheckoutIDParams) (int64, error) {
	row := db.QueryRow(ctx, countTicketsByCheckoutID, arg.CheckoutID, arg.Status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countTicketsByCheckoutReference = `-- name: CountTicketsByCheckoutReference :one
SELECT count(*) FROM tickets
WHERE checkout_reference = $1
  AND status = $2
`

type CountTicketsByCheckoutReferenceParams struct {
	CheckoutReference pgtype.Text `json:"checkout_reference"`
	Status            string      `json:"status"`
}

func (q *Queries) CountTicketsByCheckoutReference(ctx context.Context, db DBTX, arg CountTicketsByCheckoutReferenceParams) (int64, error) {
	row := db.QueryRow(ctx, countTicketsByCheckoutReference, arg.CheckoutReference, arg.Status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getTicketByCode = `-- name: GetTicketByCode :one
SELECT id, code, visitor_name, email, reservation_date, slot_start, slot_end, ticket_price, donation_amount, total_amount, status, used_at, checkout_id, checkout_reference, transaction_status, audience_type, created_at, updated_at
FROM tickets
WHERE code = $1
`

func (q *Queries) GetTicketByCode(ctx context.Context, db DBTX, code string) (Tickets, error) {
	row := db.QueryRow(ctx, getTicketByCode, code)
	var i Tickets
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.VisitorName,
		&i.Email,
		&i.ReservationDate,
		&i.SlotStart,
		&i.SlotEnd,
		&i.TicketPrice,
		&i.DonationAmount,
		&i.TotalAmount,
		&i.Status,
		&i.UsedAt,
		&i.CheckoutID,
		&i.CheckoutReference,
		&i.TransactionStatus,
		&i.AudienceType,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTicketByID = `-- name: GetTicketByID :one
SELECT id, code, visitor_name, email, reservation_date, slot_start, slot_end, ticket_price, donation_amount, total_amount, status, used_at, checkout_id, checkout_reference, transaction_status, audience_type, created_at, updated_at
FROM tickets
WHERE id = $1
`

func (q *Queries) GetTicketByID(ctx context.Context, db DBTX, id uuid.UUID) (Tickets, error) {
	row := db.QueryRow(ctx, getTicketByID, id)
	var i Tickets
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.VisitorName,
		&i.Email,
		&i.ReservationDate,
		&i.SlotStart,
		&i.SlotEnd,
		&i.TicketPrice,
		&i.DonationAmount,
		&i.TotalAmount,
		&i.Status,
		&i.UsedAt,
		&i.CheckoutID,
		&i.CheckoutReference,
		&i.TransactionStatus,
		&i.AudienceType,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const insertTicket = `-- name: InsertTicket :one
INSERT INTO tickets (
    id, code, visitor_name, email, reservation_date, slot_start, slot_end,
    ticket_price, donation_amount, total_amount, status,
    checkout_id, checkout_reference, transaction_status, audience_type,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7,
    $8, $9, $10, $11,
    $12, $13, $14, $15,
    $16, $17
)
ON CONFLICT (code) DO NOTHING
RETURNING id
`

type InsertTicketParams struct {
	ID                uuid.UUID          `json:"id"`
	Code              string             `json:"code"`
	VisitorName       pgtype.Text        `json:"visitor_name"`
	Email             string             `json:"email"`
	ReservationDate   pgtype.Date        `json:"reservation_date"`
	SlotStart         pgtype.Time        `json:"slot_start"`
	SlotEnd           pgtype.Time        `json:"slot_end"`
	TicketPrice       int64              `json:"ticket_price"`
	DonationAmount    int64              `json:"donation_amount"`
	TotalAmount       int64              `json:"total_amount"`
	Status            string             `json:"status"`
	CheckoutID        pgtype.Text        `json:"checkout_id"`
	CheckoutReference pgtype.Text        `json:"checkout_reference"`
	TransactionStatus pgtype.Text        `json:"transaction_status"`
	AudienceType      string             `json:"audience_type"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) InsertTicket(ctx context.Context, db DBTX, arg InsertTicketParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertTicket,
		arg.ID,
		arg.Code,
		arg.VisitorName,
		arg.Email,
		arg.ReservationDate,
		arg.SlotStart,
		arg.SlotEnd,
		arg.TicketPrice,
		arg.DonationAmount,
		arg.TotalAmount,
		arg.Status,
		arg.CheckoutID,
		arg.CheckoutReference,
		arg.TransactionStatus,
		arg.AudienceType,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const listBookingsByDate = `-- name: ListBookingsByDate :many
SELECT id, slot_start, slot_end
FROM tickets
WHERE reservation_date = $1
  AND status IN ('pending', 'paid')
ORDER BY slot_start, id
`

type ListBookingsByDateRow struct {
	ID        uuid.UUID   `json:"id"`
	SlotStart pgtype.Time `json:"slot_start"`
	SlotEnd   pgtype.Time `json:"slot_end"`
}

func (q *Queries) ListBookingsByDate(ctx context.Context, db DBTX, reservationDate pgtype.Date) ([]ListBookingsByDateRow, error) {
	rows, err := db.Query(ctx, listBookingsByDate, reservationDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookingsByDateRow
	for rows.Next() {
		var i ListBookingsByDateRow
		if err := rows.Scan(&i.ID, &i.SlotStart, &i.SlotEnd); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const lockReservationDate = `-- name: LockReservationDate :exec
SELECT pg_advisory_xact_lock(hashtext('tickets:' || $1::date::text))
`

func (q *Queries) LockReservationDate(ctx context.Context, db DBTX, reservationDate pgtype.Date) error {
	_, err := db.Exec(ctx, lockReservationDate, reservationDate)
	return err
}

const markTicketUsed = `-- name: MarkTicketUsed :one
UPDATE tickets
SET status = 'used',
    used_at = $3,
    updated_at = $3
WHERE id = $1
  AND status = 'paid'
  AND used_at IS NULL
  AND reservation_date >= $2
RETURNING id, code, visitor_name, email, reservation_date, slot_start, slot_end, ticket_price, donation_amount, total_amount, status, used_at, checkout_id, checkout_reference, transaction_status, audience_type, created_at, updated_at
`

type MarkTicketUsedParams struct {
	ID     uuid.UUID          `json:"id"`
	Today  pgtype.Date        `json:"today"`
	UsedAt pgtype.Timestamptz `json:"used_at"`
}

func (q *Queries) MarkTicketUsed(ctx context.Context, db DBTX, arg MarkTicketUsedParams) (Tickets, error) {
	row := db.QueryRow(ctx, markTicketUsed, arg.ID, arg.Today, arg.UsedAt)
	var i Tickets
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.VisitorName,
		&i.Email,
		&i.ReservationDate,
		&i.SlotStart,
		&i.SlotEnd,
		&i.TicketPrice,
		&i.DonationAmount,
		&i.TotalAmount,
		&i.Status,
		&i.UsedAt,
		&i.CheckoutID,
		&i.CheckoutReference,
		&i.TransactionStatus,
		&i.AudienceType,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const ticketCodeExists = `-- name: TicketCodeExists :one
SELECT EXISTS (SELECT 1 FROM tickets WHERE code = $1)
`

func (q *Queries) TicketCodeExists(ctx context.Context, db DBTX, code string) (bool, error) {
	row := db.QueryRow(ctx, ticketCodeExists, code)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const transitionTicketsByCheckoutID = `-- name: TransitionTicketsByCheckoutID :many
UPDATE tickets
SET status = $2,
    transaction_status = $3,
    updated_at = $4
WHERE checkout_id = $1
  AND status = 'pending'
RETURNING id, code, visitor_name, email, reservation_date, slot_start, slot_end, ticket_price, donation_amount, total_amount, status, used_at, checkout_id, checkout_reference, transaction_status, audience_type, created_at, updated_at
`

type TransitionTicketsByCheckoutIDParams struct {
	CheckoutID        pgtype.Text        `json:"checkout_id"`
	Status            string             `json:"status"`
	TransactionStatus pgtype.Text        `json:"transaction_status"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) TransitionTicketsByCheckoutID(ctx context.Context, db DBTX, arg TransitionTicketsByCheckoutIDParams) ([]Tickets, error) {
	rows, err := db.Query(ctx, transitionTicketsByCheckoutID, arg.CheckoutID, arg.Status, arg.TransactionStatus, arg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tickets
	for rows.Next() {
		var i Tickets
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.VisitorName,
			&i.Email,
			&i.ReservationDate,
			&i.SlotStart,
			&i.SlotEnd,
			&i.TicketPrice,
			&i.DonationAmount,
			&i.TotalAmount,
			&i.Status,
			&i.UsedAt,
			&i.CheckoutID,
			&i.CheckoutReference,
			&i.TransactionStatus,
			&i.AudienceType,
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

const transitionTicketsByCheckoutReference = `-- name: TransitionTicketsByCheckoutReference :many
UPDATE tickets
SET status = $2,
    transaction_status = $3,
    updated_at = $4
WHERE checkout_reference = $1
  AND status = 'pending'
RETURNING id, code, visitor_name, email, reservation_date, slot_start, slot_end, ticket_price, donation_amount, total_amount, status, used_at, checkout_id, checkout_reference, transaction_status, audience_type, created_at, updated_at
`

type TransitionTicketsByCheckoutReferenceParams struct {
	CheckoutReference pgtype.Text        `json:"checkout_reference"`
	Status            string             `json:"status"`
	TransactionStatus pgtype.Text        `json:"transaction_status"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) TransitionTicketsByCheckoutReference(ctx context.Context, db DBTX, arg TransitionTicketsByCheckoutReferenceParams) ([]Tickets, error) {
	rows, err := db.Query(ctx, transitionTicketsByCheckoutReference, arg.CheckoutReference, arg.Status, arg.TransactionStatus, arg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tickets
	for rows.Next() {
		var i Tickets
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.VisitorName,
			&i.Email,
			&i.ReservationDate,
			&i.SlotStart,
			&i.SlotEnd,
			&i.TicketPrice,
			&i.DonationAmount,
			&i.TotalAmount,
			&i.Status,
			&i.UsedAt,
			&i.CheckoutID,
			&i.CheckoutReference,
			&i.TransactionStatus,
			&i.AudienceType,
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

const transitionPendingTicket = `-- name: TransitionPendingTicket :one
UPDATE tickets
SET status = $2,
    transaction_status = $3,
    updated_at = $4
WHERE id = $1
  AND status = 'pending'
RETURNING id, code, visitor_name, email, reservation_date, slot_start, slot_end, ticket_price, donation_amount, total_amount, status, used_at, checkout_id, checkout_reference, transaction_status, audience_type, created_at, updated_at
`

type TransitionPendingTicketParams struct {
	ID                uuid.UUID          `json:"id"`
	Status            string             `json:"status"`
	TransactionStatus pgtype.Text        `json:"transaction_status"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) TransitionPendingTicket(ctx context.Context, db DBTX, arg TransitionPendingTicketParams) (Tickets, error) {
	row := db.QueryRow(ctx, transitionPendingTicket, arg.ID, arg.Status, arg.TransactionStatus, arg.UpdatedAt)
	var i Tickets
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.VisitorName,
		&i.Email,
		&i.ReservationDate,
		&i.SlotStart,
		&i.SlotEnd,
		&i.TicketPrice,
		&i.DonationAmount,
		&i.TotalAmount,
		&i.Status,
		&i.UsedAt,
		&i.CheckoutID,
		&i.CheckoutReference,
		&i.TransactionStatus,
		&i.AudienceType,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
