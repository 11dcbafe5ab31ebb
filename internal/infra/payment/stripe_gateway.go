package payment

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
)

// MetadataReferenceKey is copied onto the payment intent so that intent
// events can be traced back to their checkout.
const MetadataReferenceKey = "checkout_reference"

var errEmptySession = errs.New("stripe returned an empty checkout session")

type sessionCreator func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

type StripeGateway struct {
	successURL string
	cancelURL  string
	ttl        time.Duration
	now        func() time.Time
	create     sessionCreator
}

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	stripe.Key = cfg.StripeSecretKey
	return &StripeGateway{
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		ttl:        cfg.SessionTTL,
		now:        time.Now,
		create:     checkoutsession.New,
	}
}

// OpenSession opens one hosted Checkout session for the basket total. The
// session expires after the configured TTL, before the sweeper releases the
// holds it pays for.
func (g *StripeGateway) OpenSession(ctx context.Context, req payment.SessionRequest) (payment.Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(req.Reference),
		ExpiresAt:         stripe.Int64(g.now().Add(g.ttl).Unix()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{MetadataReferenceKey: req.Reference},
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.AddMetadata(MetadataReferenceKey, req.Reference)
	params.Context = ctx

	sess, err := g.create(params)
	if err != nil {
		slog.Error("stripe checkout session creation failed",
			"reference", req.Reference,
			"amount_cents", req.AmountCents,
			"error", err.Error())
		return payment.Session{}, errs.Wrap(err, "create checkout session")
	}
	if sess == nil || sess.ID == "" {
		return payment.Session{}, errEmptySession
	}

	return payment.Session{
		ID:        sess.ID,
		Reference: req.Reference,
		URL:       sess.URL,
	}, nil
}
