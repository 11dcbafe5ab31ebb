package request

import (
	"strings"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/pkg/timeofday"
	"venue-booking/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateTicketRequest struct {
	VisitorName     *string             `json:"visitor_name,omitempty" binding:"omitempty,max=200"`
	Email           string              `json:"email" binding:"required,email"`
	ReservationDate string              `json:"reservation_date" binding:"required"`
	SlotStart       timeofday.TimeOfDay `json:"slot_start" binding:"required"`
	SlotEnd         timeofday.TimeOfDay `json:"slot_end" binding:"required"`
	TicketPrice     decimal.Decimal     `json:"ticket_price"`
	DonationAmount  decimal.Decimal     `json:"donation_amount"`
	AudienceType    string              `json:"audience_type,omitempty"`
}

func (r CreateTicketRequest) ToDetails() (ticket.Details, error) {
	date, err := ParseDate(r.ReservationDate)
	if err != nil {
		return ticket.Details{}, err
	}
	audience, err := schedule.ParseAudience(r.AudienceType)
	if err != nil {
		return ticket.Details{}, err
	}
	price, err := ToMinorUnits(r.TicketPrice)
	if err != nil {
		return ticket.Details{}, err
	}
	donation, err := ToMinorUnits(r.DonationAmount)
	if err != nil {
		return ticket.Details{}, err
	}

	return ticket.Details{
		VisitorName:     trimmedOrNil(r.VisitorName),
		Email:           strings.TrimSpace(r.Email),
		ReservationDate: date,
		SlotStart:       r.SlotStart,
		SlotEnd:         r.SlotEnd,
		TicketPrice:     price,
		DonationAmount:  donation,
		Audience:        audience,
	}, nil
}

type CheckoutItemRequest struct {
	CreateTicketRequest
	GiftCode *string `json:"gift_code,omitempty" binding:"omitempty,max=32"`
}

type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CheckoutRequest) ToBasketItems() ([]commands.BasketItem, error) {
	items := make([]commands.BasketItem, 0, len(r.Items))
	for _, it := range r.Items {
		d, err := it.ToDetails()
		if err != nil {
			return nil, err
		}
		items = append(items, commands.BasketItem{
			Details:  d,
			GiftCode: trimmedOrNil(it.GiftCode),
		})
	}
	return items, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
