package payment

import (
	"encoding/json"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

var (
	ErrInvalidSignature = errs.Validation("invalid webhook signature")
	ErrMalformedEvent   = errs.Validation("malformed webhook event")
)

// WebhookParser verifies Stripe-Signature and turns a Stripe event into a
// payment.Event.
type WebhookParser struct {
	secret string
}

func NewWebhookParser(secret string) *WebhookParser {
	return &WebhookParser{secret: secret}
}

func (p *WebhookParser) Parse(payload []byte, signature string) (payment.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(ErrInvalidSignature, err.Error())
	}
	return convertEvent(event)
}

func convertEvent(event stripe.Event) (payment.Event, error) {
	eventType := string(event.Type)

	switch eventType {
	case payment.TypeCheckoutCompleted,
		payment.TypeCheckoutAsyncSucceeded,
		payment.TypeCheckoutAsyncFailed,
		payment.TypeCheckoutExpired:
		var sess stripe.CheckoutSession
		if err := unmarshalObject(event, &sess); err != nil {
			return nil, err
		}
		return payment.CheckoutSessionEvent{
			ID:            event.ID,
			Type:          eventType,
			SessionID:     sess.ID,
			PaymentStatus: string(sess.PaymentStatus),
		}, nil

	case payment.TypeIntentSucceeded, payment.TypeIntentFailed:
		var intent stripe.PaymentIntent
		if err := unmarshalObject(event, &intent); err != nil {
			return nil, err
		}
		return payment.PaymentIntentEvent{
			ID:                event.ID,
			Type:              eventType,
			IntentID:          intent.ID,
			CheckoutReference: intent.Metadata[MetadataReferenceKey],
			Status:            string(intent.Status),
		}, nil

	default:
		return payment.IgnoredEvent{ID: event.ID, Type: eventType}, nil
	}
}

func unmarshalObject(event stripe.Event, v any) error {
	if event.Data == nil {
		return ErrMalformedEvent
	}
	if err := json.Unmarshal(event.Data.Raw, v); err != nil {
		return errs.Wrap(ErrMalformedEvent, err.Error())
	}
	return nil
}
