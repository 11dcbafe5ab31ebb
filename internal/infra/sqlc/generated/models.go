package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GiftCodes struct {
	ID        uuid.UUID          `json:"id"`
	Code      string             `json:"code"`
	Status    string             `json:"status"`
	PackID    pgtype.UUID        `json:"pack_id"`
	ExpiresAt pgtype.Timestamptz `json:"expires_at"`
	TicketID  pgtype.UUID        `json:"ticket_id"`
	UsedAt    pgtype.Timestamptz `json:"used_at"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Schedules struct {
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
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Tickets struct {
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
	UsedAt            pgtype.Timestamptz `json:"used_at"`
	CheckoutID        pgtype.Text        `json:"checkout_id"`
	CheckoutReference pgtype.Text        `json:"checkout_reference"`
	TransactionStatus pgtype.Text        `json:"transaction_status"`
	AudienceType      string             `json:"audience_type"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}
