package response

import (
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
)

type TicketResponse struct {
	ID                string  `json:"id"`
	Code              string  `json:"code"`
	VisitorName       *string `json:"visitor_name,omitempty"`
	Email             string  `json:"email"`
	ReservationDate   string  `json:"reservation_date"`
	SlotStart         string  `json:"slot_start"`
	SlotEnd           string  `json:"slot_end"`
	TicketPrice       int64   `json:"ticket_price"`
	DonationAmount    int64   `json:"donation_amount"`
	TotalAmount       int64   `json:"total_amount"`
	Status            string  `json:"status"`
	UsedAt            *int64  `json:"used_at,omitempty"`
	CheckoutID        *string `json:"checkout_id,omitempty"`
	TransactionStatus *string `json:"transaction_status,omitempty"`
	AudienceType      string  `json:"audience_type"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

func FromTicketView(v *queries.TicketView) (*TicketResponse, error) {
	var res TicketResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromTicketViews(vs []*queries.TicketView) ([]TicketResponse, error) {
	res := make([]TicketResponse, 0, len(vs))
	if err := copyInto(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type CheckoutResponse struct {
	CheckoutID        string           `json:"checkout_id,omitempty"`
	CheckoutReference string           `json:"checkout_reference,omitempty"`
	PaymentURL        string           `json:"payment_url,omitempty"`
	PaymentRequired   bool             `json:"payment_required"`
	TotalAmount       int64            `json:"total_amount"`
	Currency          string           `json:"currency"`
	Tickets           []TicketResponse `json:"tickets"`
}

func FromBasketResult(r *commands.BasketResult) (*CheckoutResponse, error) {
	var res CheckoutResponse
	if err := copyInto(&res, r); err != nil {
		return nil, err
	}
	if res.Tickets == nil {
		res.Tickets = []TicketResponse{}
	}
	return &res, nil
}
