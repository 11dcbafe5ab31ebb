package request

import (
	"time"

	"venue-booking/internal/domain/giftcode"

	"github.com/google/uuid"
)

type CreateGiftCodePackRequest struct {
	Quantity  int        `json:"quantity" binding:"required,min=1,max=500"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (r CreateGiftCodePackRequest) ToDomain() giftcode.PackRequest {
	return giftcode.PackRequest{Quantity: r.Quantity, ExpiresAt: r.ExpiresAt}
}

type RedeemGiftCodeRequest struct {
	TicketID uuid.UUID `json:"ticket_id" binding:"required"`
}
