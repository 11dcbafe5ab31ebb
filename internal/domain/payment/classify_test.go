//go:build unit

package payment_test

import (
	"testing"

	"venue-booking/internal/domain/payment"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	session := func(typ, status string) payment.Event {
		return payment.CheckoutSessionEvent{ID: "evt_1", Type: typ, SessionID: "cs_1", PaymentStatus: status}
	}
	intent := func(typ, ref string) payment.Event {
		return payment.PaymentIntentEvent{ID: "evt_2", Type: typ, IntentID: "pi_1", CheckoutReference: ref, Status: "succeeded"}
	}
	byID := payment.Key{Field: payment.KeyCheckoutID, Value: "cs_1"}
	byRef := payment.Key{Field: payment.KeyCheckoutReference, Value: "ref-1"}

	tests := []struct {
		name    string
		event   payment.Event
		outcome payment.Outcome
		key     payment.Key
	}{
		{"completed and paid", session(payment.TypeCheckoutCompleted, "paid"), payment.OutcomePaid, byID},
		{"completed but unpaid", session(payment.TypeCheckoutCompleted, "unpaid"), payment.OutcomeNone, payment.Key{}},
		{"async succeeded", session(payment.TypeCheckoutAsyncSucceeded, "paid"), payment.OutcomePaid, byID},
		{"async failed", session(payment.TypeCheckoutAsyncFailed, "unpaid"), payment.OutcomeCancelled, byID},
		{"expired", session(payment.TypeCheckoutExpired, "unpaid"), payment.OutcomeCancelled, byID},
		{"unknown session event", session("checkout.session.updated", "paid"), payment.OutcomeNone, payment.Key{}},
		{"intent succeeded", intent(payment.TypeIntentSucceeded, "ref-1"), payment.OutcomePaid, byRef},
		{"intent failed", intent(payment.TypeIntentFailed, "ref-1"), payment.OutcomeCancelled, byRef},
		{"intent created", intent("payment_intent.created", "ref-1"), payment.OutcomeNone, payment.Key{}},
		{"charge event", payment.IgnoredEvent{ID: "evt_3", Type: "charge.succeeded"}, payment.OutcomeNone, payment.Key{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payment.Classify(tt.event)
			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.key, got.Key)
			assert.Equal(t, tt.outcome != payment.OutcomeNone, got.IsTerminal())
		})
	}
}

func TestClassify_IntentWithoutReference(t *testing.T) {
	got := payment.Classify(payment.PaymentIntentEvent{Type: payment.TypeIntentSucceeded, IntentID: "pi_1"})

	assert.Equal(t, payment.OutcomePaid, got.Outcome)
	assert.False(t, got.IsTerminal())
}
