package shared

import (
	"context"
	"time"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/domain/ticket"
)

type PaymentGateway interface {
	OpenSession(ctx context.Context, req payment.SessionRequest) (payment.Session, error)
}

// Notifier delivers visitor-facing messages. One call covers every ticket of
// one checkout.
type Notifier interface {
	SendTicketConfirmation(ctx context.Context, tickets []*ticket.Ticket) error
	SendDonationReceipt(ctx context.Context, tickets []*ticket.Ticket) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, message string) error
}

type Recorder interface {
	TicketsCreated(n int)
	WebhookEvent(eventType, outcome string)
	TicketsSwept(n int)
	GiftCodesRedeemed(n int)
	GiftCodesExpired(n int)
}

const availabilityTopicPrefix = "availability:"

func AvailabilityTopic(date time.Time) string {
	return availabilityTopicPrefix + date.Format(time.DateOnly)
}

type NopRecorder struct{}

func (NopRecorder) TicketsCreated(int)          {}
func (NopRecorder) WebhookEvent(string, string) {}
func (NopRecorder) TicketsSwept(int)            {}
func (NopRecorder) GiftCodesRedeemed(int)       {}
func (NopRecorder) GiftCodesExpired(int)        {}
