// Package payment models payment-provider webhook events as a closed union and
// classifies them into ticket transitions.
package payment

// Event is implemented only by the types in this package.
type Event interface {
	EventID() string
	EventType() string
	isEvent()
}

const (
	TypeCheckoutCompleted      = "checkout.session.completed"
	TypeCheckoutAsyncSucceeded = "checkout.session.async_payment_succeeded"
	TypeCheckoutAsyncFailed    = "checkout.session.async_payment_failed"
	TypeCheckoutExpired        = "checkout.session.expired"
	TypeIntentSucceeded        = "payment_intent.succeeded"
	TypeIntentFailed           = "payment_intent.payment_failed"
)

// CheckoutSessionEvent carries a checkout session, keyed by its id.
type CheckoutSessionEvent struct {
	ID            string
	Type          string
	SessionID     string
	PaymentStatus string
}

// PaymentIntentEvent carries a payment intent. The intent only knows the
// checkout reference we put in its metadata when the session was opened.
type PaymentIntentEvent struct {
	ID                string
	Type              string
	IntentID          string
	CheckoutReference string
	Status            string
}

// IgnoredEvent is any delivery that never moves a ticket (charge.*, etc.).
type IgnoredEvent struct {
	ID   string
	Type string
}

func (e CheckoutSessionEvent) EventID() string   { return e.ID }
func (e CheckoutSessionEvent) EventType() string { return e.Type }
func (CheckoutSessionEvent) isEvent()            {}

func (e PaymentIntentEvent) EventID() string   { return e.ID }
func (e PaymentIntentEvent) EventType() string { return e.Type }
func (PaymentIntentEvent) isEvent()            {}

func (e IgnoredEvent) EventID() string   { return e.ID }
func (e IgnoredEvent) EventType() string { return e.Type }
func (IgnoredEvent) isEvent()            {}
