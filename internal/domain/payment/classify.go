package payment

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePaid
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomePaid:
		return "paid"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

type KeyField string

const (
	KeyCheckoutID        KeyField = "checkout_id"
	KeyCheckoutReference KeyField = "checkout_reference"
)

// Key selects every ticket of one checkout.
type Key struct {
	Field KeyField
	Value string
}

// Resolution is what a webhook event means for the tickets of its checkout.
// TransactionStatus is recorded on the tickets alongside the new status.
type Resolution struct {
	Outcome           Outcome
	Key               Key
	TransactionStatus string
}

func (r Resolution) IsTerminal() bool {
	return r.Outcome != OutcomeNone && r.Key.Value != ""
}

// Classify maps an event to a terminal outcome or to OutcomeNone.
func Classify(e Event) Resolution {
	switch ev := e.(type) {
	case CheckoutSessionEvent:
		return classifySession(ev)
	case PaymentIntentEvent:
		return classifyIntent(ev)
	case IgnoredEvent:
		return Resolution{}
	default:
		panic("payment: unknown event variant")
	}
}

func classifySession(ev CheckoutSessionEvent) Resolution {
	key := Key{Field: KeyCheckoutID, Value: ev.SessionID}

	switch ev.Type {
	case TypeCheckoutCompleted:
		// delayed payment methods complete the session before the money arrives
		if ev.PaymentStatus != "paid" && ev.PaymentStatus != "no_payment_required" {
			return Resolution{}
		}
		return Resolution{Outcome: OutcomePaid, Key: key, TransactionStatus: ev.PaymentStatus}
	case TypeCheckoutAsyncSucceeded:
		return Resolution{Outcome: OutcomePaid, Key: key, TransactionStatus: "paid"}
	case TypeCheckoutAsyncFailed:
		return Resolution{Outcome: OutcomeCancelled, Key: key, TransactionStatus: "payment_failed"}
	case TypeCheckoutExpired:
		return Resolution{Outcome: OutcomeCancelled, Key: key, TransactionStatus: "expired"}
	default:
		return Resolution{}
	}
}

func classifyIntent(ev PaymentIntentEvent) Resolution {
	key := Key{Field: KeyCheckoutReference, Value: ev.CheckoutReference}

	switch ev.Type {
	case TypeIntentSucceeded:
		return Resolution{Outcome: OutcomePaid, Key: key, TransactionStatus: ev.Status}
	case TypeIntentFailed:
		return Resolution{Outcome: OutcomeCancelled, Key: key, TransactionStatus: ev.Status}
	default:
		return Resolution{}
	}
}
