//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/domain/ticket"
)

// FakeGateway opens numbered sessions without calling the provider.
type FakeGateway struct {
	mu       sync.Mutex
	requests []payment.SessionRequest
	fail     error
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) OpenSession(_ context.Context, req payment.SessionRequest) (payment.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fail != nil {
		return payment.Session{}, g.fail
	}
	g.requests = append(g.requests, req)
	id := fmt.Sprintf("cs_test_%d", len(g.requests))
	return payment.Session{
		ID:        id,
		Reference: req.Reference,
		URL:       "https://checkout.test/" + id,
	}, nil
}

// FailWith makes every following OpenSession return err.
func (g *FakeGateway) FailWith(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fail = err
}

func (g *FakeGateway) Requests() []payment.SessionRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]payment.SessionRequest(nil), g.requests...)
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = nil
	g.fail = nil
}

// FakeNotifier records the ticket codes of every message it is asked to send.
type FakeNotifier struct {
	mu            sync.Mutex
	confirmations [][]string
	receipts      [][]string
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) SendTicketConfirmation(_ context.Context, tickets []*ticket.Ticket) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmations = append(n.confirmations, codesOf(tickets))
	return nil
}

func (n *FakeNotifier) SendDonationReceipt(_ context.Context, tickets []*ticket.Ticket) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.receipts = append(n.receipts, codesOf(tickets))
	return nil
}

func (n *FakeNotifier) Confirmations() [][]string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([][]string(nil), n.confirmations...)
}

func (n *FakeNotifier) Receipts() [][]string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([][]string(nil), n.receipts...)
}

func (n *FakeNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmations = nil
	n.receipts = nil
}

func codesOf(tickets []*ticket.Ticket) []string {
	codes := make([]string, 0, len(tickets))
	for _, t := range tickets {
		codes = append(codes, t.Code())
	}
	return codes
}
