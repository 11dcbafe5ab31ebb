package queries

import (
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/pkg/timeofday"

	"github.com/google/uuid"
)

type TicketView struct {
	ID                uuid.UUID           `json:"id"`
	Code              string              `json:"code"`
	VisitorName       *string             `json:"visitor_name,omitempty"`
	Email             string              `json:"email"`
	ReservationDate   string              `json:"reservation_date"`
	SlotStart         timeofday.TimeOfDay `json:"slot_start"`
	SlotEnd           timeofday.TimeOfDay `json:"slot_end"`
	TicketPrice       int64               `json:"ticket_price"`
	DonationAmount    int64               `json:"donation_amount"`
	TotalAmount       int64               `json:"total_amount"`
	Status            string              `json:"status"`
	UsedAt            *time.Time          `json:"used_at,omitempty"`
	CheckoutID        *string             `json:"checkout_id,omitempty"`
	TransactionStatus *string             `json:"transaction_status,omitempty"`
	AudienceType      string              `json:"audience_type"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func NewTicketView(t *ticket.Ticket) *TicketView {
	return &TicketView{
		ID:                t.ID(),
		Code:              t.Code(),
		VisitorName:       t.VisitorName(),
		Email:             t.Email(),
		ReservationDate:   t.ReservationDate().Format(time.DateOnly),
		SlotStart:         t.SlotStart(),
		SlotEnd:           t.SlotEnd(),
		TicketPrice:       t.TicketPrice(),
		DonationAmount:    t.DonationAmount(),
		TotalAmount:       t.TotalAmount(),
		Status:            t.Status().String(),
		UsedAt:            t.UsedAt(),
		CheckoutID:        t.CheckoutID(),
		TransactionStatus: t.TransactionStatus(),
		AudienceType:      t.Audience().String(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

func NewTicketViews(ts []*ticket.Ticket) []*TicketView {
	out := make([]*TicketView, len(ts))
	for i, t := range ts {
		out[i] = NewTicketView(t)
	}
	return out
}

type GiftCodeView struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	Status    string     `json:"status"`
	PackID    *uuid.UUID `json:"pack_id,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	TicketID  *uuid.UUID `json:"ticket_id,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewGiftCodeView(g *giftcode.GiftCode) *GiftCodeView {
	return &GiftCodeView{
		ID:        g.ID(),
		Code:      g.Code(),
		Status:    g.Status().String(),
		PackID:    g.PackID(),
		ExpiresAt: g.ExpiresAt(),
		TicketID:  g.TicketID(),
		UsedAt:    g.UsedAt(),
		CreatedAt: g.CreatedAt(),
	}
}

type SlotView struct {
	StartTime           timeofday.TimeOfDay `json:"start_time"`
	EndTime             timeofday.TimeOfDay `json:"end_time"`
	Capacity            int                 `json:"capacity"`
	Booked              int                 `json:"booked"`
	Available           int                 `json:"available"`
	OccupancyPercentage float64             `json:"occupancy_percentage"`
	IsHalfPrice         bool                `json:"is_half_price"`
	Price               int64               `json:"price"`
}

func newSlotView(a slot.Availability) SlotView {
	return SlotView{
		StartTime:           a.Start,
		EndTime:             a.End,
		Capacity:            a.Capacity,
		Booked:              a.Booked,
		Available:           a.Available,
		OccupancyPercentage: a.OccupancyPercentage,
		IsHalfPrice:         a.IsHalfPrice,
		Price:               a.Price,
	}
}

type AvailabilityView struct {
	Date           string               `json:"date"`
	AudienceType   string               `json:"audience_type"`
	IsClosed       bool                 `json:"is_closed"`
	OpenTime       *timeofday.TimeOfDay `json:"open_time,omitempty"`
	CloseTime      *timeofday.TimeOfDay `json:"close_time,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	Currency       string               `json:"currency"`
	Slots          []SlotView           `json:"slots"`
	TotalCapacity  int                  `json:"total_capacity"`
	TotalBooked    int                  `json:"total_booked"`
	TotalAvailable int                  `json:"total_available"`
}
