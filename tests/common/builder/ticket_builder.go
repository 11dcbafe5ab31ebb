//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/ticket"
	reqdto "venue-booking/internal/handler/dto/request"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/pkg/timeofday"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketBuilder struct {
	ID                uuid.UUID
	Code              string
	VisitorName       *string
	Email             string
	ReservationDate   time.Time
	SlotStart         timeofday.TimeOfDay
	SlotEnd           timeofday.TimeOfDay
	TicketPrice       int64
	DonationAmount    int64
	Status            ticket.Status
	UsedAt            *time.Time
	CheckoutID        *string
	CheckoutReference *string
	TransactionStatus *string
	Audience          schedule.Audience
	CreatedAt         time.Time
}

// NewTicketBuilder defaults to a pending 10:00-12:00 ticket for 2030-06-03 (a Monday).
func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		ID:              uuid.New(),
		Code:            "ABCD1234",
		Email:           "visitor@example.com",
		ReservationDate: time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC),
		SlotStart:       timeofday.MustNew(10, 0),
		SlotEnd:         timeofday.MustNew(12, 0),
		TicketPrice:     1000,
		Status:          ticket.StatusPending,
		Audience:        schedule.AudiencePublic,
		CreatedAt:       time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) WithStatus(s ticket.Status) *TicketBuilder {
	b.Status = s
	return b
}

func (b *TicketBuilder) WithCode(code string) *TicketBuilder {
	b.Code = code
	return b
}

func (b *TicketBuilder) WithDate(date time.Time) *TicketBuilder {
	b.ReservationDate = date
	return b
}

func (b *TicketBuilder) WithSlot(start, end timeofday.TimeOfDay) *TicketBuilder {
	b.SlotStart, b.SlotEnd = start, end
	return b
}

func (b *TicketBuilder) WithCheckout(id, reference string) *TicketBuilder {
	b.CheckoutID, b.CheckoutReference = &id, &reference
	return b
}

func (b *TicketBuilder) WithDonation(amount int64) *TicketBuilder {
	b.DonationAmount = amount
	return b
}

func (b *TicketBuilder) Details() ticket.Details {
	return ticket.Details{
		VisitorName:     b.VisitorName,
		Email:           b.Email,
		ReservationDate: b.ReservationDate,
		SlotStart:       b.SlotStart,
		SlotEnd:         b.SlotEnd,
		TicketPrice:     b.TicketPrice,
		DonationAmount:  b.DonationAmount,
		Audience:        b.Audience,
	}
}

func (b *TicketBuilder) BuildDomain() *ticket.Ticket {
	return ticket.Reconstruct(
		b.ID, b.Code, b.VisitorName, b.Email, b.ReservationDate,
		b.SlotStart, b.SlotEnd,
		b.TicketPrice, b.DonationAmount, b.TicketPrice+b.DonationAmount,
		b.Status, b.UsedAt,
		b.CheckoutID, b.CheckoutReference, b.TransactionStatus,
		b.Audience, b.CreatedAt, b.CreatedAt,
	)
}

func (b *TicketBuilder) BuildInfra() sqlc.Tickets {
	return sqlc.Tickets{
		ID:                b.ID,
		Code:              b.Code,
		VisitorName:       pgconv.StringPtrToPgtype(b.VisitorName),
		Email:             b.Email,
		ReservationDate:   pgconv.DateToPgtype(b.ReservationDate),
		SlotStart:         pgconv.TimeOfDayToPgtype(b.SlotStart),
		SlotEnd:           pgconv.TimeOfDayToPgtype(b.SlotEnd),
		TicketPrice:       b.TicketPrice,
		DonationAmount:    b.DonationAmount,
		TotalAmount:       b.TicketPrice + b.DonationAmount,
		Status:            b.Status.String(),
		UsedAt:            pgconv.TimePtrToPgtype(b.UsedAt),
		CheckoutID:        pgconv.StringPtrToPgtype(b.CheckoutID),
		CheckoutReference: pgconv.StringPtrToPgtype(b.CheckoutReference),
		TransactionStatus: pgconv.StringPtrToPgtype(b.TransactionStatus),
		AudienceType:      b.Audience.String(),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *TicketBuilder) BuildView() *queries.TicketView {
	return queries.NewTicketView(b.BuildDomain())
}

// BuildCreateRequestDTO renders amounts the way a browser sends them ("10.00").
func (b *TicketBuilder) BuildCreateRequestDTO() reqdto.CreateTicketRequest {
	return reqdto.CreateTicketRequest{
		VisitorName:     b.VisitorName,
		Email:           b.Email,
		ReservationDate: b.ReservationDate.Format(time.DateOnly),
		SlotStart:       b.SlotStart,
		SlotEnd:         b.SlotEnd,
		TicketPrice:     decimal.New(b.TicketPrice, -2),
		DonationAmount:  decimal.New(b.DonationAmount, -2),
		AudienceType:    b.Audience.String(),
	}
}
