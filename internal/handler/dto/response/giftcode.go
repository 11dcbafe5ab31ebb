package response

import (
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
)

type GiftCodeResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Status    string  `json:"status"`
	PackID    *string `json:"pack_id,omitempty"`
	ExpiresAt *int64  `json:"expires_at,omitempty"`
	TicketID  *string `json:"ticket_id,omitempty"`
	UsedAt    *int64  `json:"used_at,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

func FromGiftCodeView(v *queries.GiftCodeView) (*GiftCodeResponse, error) {
	var res GiftCodeResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type GiftCodePackResponse struct {
	PackID    string             `json:"pack_id"`
	ExpiresAt *int64             `json:"expires_at,omitempty"`
	Codes     []GiftCodeResponse `json:"codes"`
}

func FromPackResult(r *commands.PackResult) (*GiftCodePackResponse, error) {
	var res GiftCodePackResponse
	if err := copyInto(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}
