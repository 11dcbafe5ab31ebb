//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Every unit of work runs under one lock, so transactions are serial, and a
// failed Within restores the state it started from.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/payment"
	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/infra"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	tickets   map[uuid.UUID]*ticket.Ticket
	giftCodes map[uuid.UUID]*giftcode.GiftCode
	schedules []schedule.Entry

	rollbacks int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		tickets:   make(map[uuid.UUID]*ticket.Ticket),
		giftCodes: make(map[uuid.UUID]*giftcode.GiftCode),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := maps.Clone(s.tickets)
	gifts := maps.Clone(s.giftCodes)
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.tickets, s.giftCodes = tickets, gifts
		s.rollbacks++
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memTx{s: s})
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memTx{s: s})
}

// Seed helpers write directly, outside any unit of work.

func (s *Store) PutTicket(t *ticket.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[t.ID()] = t
}

func (s *Store) PutGiftCode(g *giftcode.GiftCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.giftCodes[g.ID()] = g
}

func (s *Store) PutSchedules(entries ...schedule.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = append(s.schedules, entries...)
}

func (s *Store) Ticket(id uuid.UUID) *ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets[id]
}

func (s *Store) GiftCode(id uuid.UUID) *giftcode.GiftCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.giftCodes[id]
}

// Tickets returns every stored ticket ordered by creation time.
func (s *Store) Tickets() []*ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Collect(maps.Values(s.tickets))
	slices.SortFunc(out, func(a, b *ticket.Ticket) int { return a.CreatedAt().Compare(b.CreatedAt()) })
	return out
}

func (s *Store) TicketsWithStatus(status ticket.Status) []*ticket.Ticket {
	var out []*ticket.Ticket
	for _, t := range s.Tickets() {
		if t.Status() == status {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Rollbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollbacks
}

type memTx struct {
	s *Store
}

func (t *memTx) Tickets() shared.TicketRepository     { return ticketRepo{s: t.s} }
func (t *memTx) GiftCodes() shared.GiftCodeRepository { return giftCodeRepo{s: t.s} }
func (t *memTx) Schedules() shared.ScheduleRepository { return scheduleRepo{s: t.s} }

// The repositories below run with Store.mu already held.

type ticketRepo struct{ s *Store }

func (r ticketRepo) Insert(_ context.Context, t *ticket.Ticket) error {
	for _, existing := range r.s.tickets {
		if existing.Code() == t.Code() {
			return shortcode.ErrCodeTaken
		}
	}
	r.s.tickets[t.ID()] = t
	return nil
}

func (r ticketRepo) CodeExists(_ context.Context, code string) (bool, error) {
	for _, t := range r.s.tickets {
		if t.Code() == code {
			return true, nil
		}
	}
	return false, nil
}

func (r ticketRepo) FindByCode(_ context.Context, code string) (*ticket.Ticket, error) {
	for _, t := range r.s.tickets {
		if t.Code() == code {
			return t, nil
		}
	}
	return nil, infra.NewNotFound("ticket not found")
}

func (r ticketRepo) FindByID(_ context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	t, ok := r.s.tickets[id]
	if !ok {
		return nil, infra.NewNotFound("ticket not found")
	}
	return t, nil
}

func (r ticketRepo) ListBookings(_ context.Context, date time.Time) ([]slot.Booking, error) {
	var out []slot.Booking
	for _, t := range r.s.tickets {
		if t.ReservationDate().Equal(date) && t.Status().HoldsCapacity() {
			out = append(out, slot.Booking{TicketID: t.ID(), Start: t.SlotStart(), End: t.SlotEnd()})
		}
	}
	return out, nil
}

func (r ticketRepo) LockDate(context.Context, time.Time) error { return nil }

func (r ticketRepo) TransitionCheckout(_ context.Context, key payment.Key, to ticket.Status, transactionStatus string, now time.Time) ([]*ticket.Ticket, error) {
	var moved []*ticket.Ticket
	for id, t := range r.s.tickets {
		if !t.IsPending() || !matchesKey(t, key) {
			continue
		}
		updated := withStatus(t, to, &transactionStatus, nil, now)
		r.s.tickets[id] = updated
		moved = append(moved, updated)
	}
	slices.SortFunc(moved, func(a, b *ticket.Ticket) int { return a.CreatedAt().Compare(b.CreatedAt()) })
	return moved, nil
}

func (r ticketRepo) CountCheckout(_ context.Context, key payment.Key, status ticket.Status) (int, error) {
	n := 0
	for _, t := range r.s.tickets {
		if t.Status() == status && matchesKey(t, key) {
			n++
		}
	}
	return n, nil
}

func (r ticketRepo) TransitionPending(_ context.Context, id uuid.UUID, to ticket.Status, transactionStatus string, now time.Time) (*ticket.Ticket, error) {
	t, ok := r.s.tickets[id]
	if !ok || !t.IsPending() {
		return nil, nil
	}
	updated := withStatus(t, to, &transactionStatus, nil, now)
	r.s.tickets[id] = updated
	return updated, nil
}

func (r ticketRepo) MarkUsed(_ context.Context, id uuid.UUID, today, now time.Time) (*ticket.Ticket, error) {
	t, ok := r.s.tickets[id]
	if !ok || t.Status() != ticket.StatusPaid || t.UsedAt() != nil || t.ReservationDate().Before(today) {
		return nil, nil
	}
	usedAt := now
	updated := withStatus(t, ticket.StatusUsed, t.TransactionStatus(), &usedAt, now)
	r.s.tickets[id] = updated
	return updated, nil
}

func (r ticketRepo) CancelStalePending(_ context.Context, createdBefore, now time.Time) ([]time.Time, error) {
	expired := "expired"
	var dates []time.Time
	for id, t := range r.s.tickets {
		if !t.IsPending() || !t.CreatedAt().Before(createdBefore) {
			continue
		}
		r.s.tickets[id] = withStatus(t, ticket.StatusCancelled, &expired, nil, now)
		dates = append(dates, t.ReservationDate())
	}
	return dates, nil
}

func matchesKey(t *ticket.Ticket, key payment.Key) bool {
	var v *string
	switch key.Field {
	case payment.KeyCheckoutID:
		v = t.CheckoutID()
	case payment.KeyCheckoutReference:
		v = t.CheckoutReference()
	}
	return v != nil && *v == key.Value
}

func withStatus(t *ticket.Ticket, status ticket.Status, transactionStatus *string, usedAt *time.Time, now time.Time) *ticket.Ticket {
	return ticket.Reconstruct(
		t.ID(), t.Code(), t.VisitorName(), t.Email(), t.ReservationDate(),
		t.SlotStart(), t.SlotEnd(),
		t.TicketPrice(), t.DonationAmount(), t.TotalAmount(),
		status, usedAt,
		t.CheckoutID(), t.CheckoutReference(), transactionStatus,
		t.Audience(), t.CreatedAt(), now,
	)
}

type giftCodeRepo struct{ s *Store }

func (r giftCodeRepo) Insert(_ context.Context, g *giftcode.GiftCode) error {
	for _, existing := range r.s.giftCodes {
		if existing.Code() == g.Code() {
			return shortcode.ErrCodeTaken
		}
	}
	r.s.giftCodes[g.ID()] = g
	return nil
}

func (r giftCodeRepo) CodeExists(_ context.Context, code string) (bool, error) {
	for _, g := range r.s.giftCodes {
		if g.Code() == code {
			return true, nil
		}
	}
	return false, nil
}

func (r giftCodeRepo) FindByCode(_ context.Context, code string) (*giftcode.GiftCode, error) {
	for _, g := range r.s.giftCodes {
		if g.Code() == code {
			return g, nil
		}
	}
	return nil, infra.NewNotFound("gift code not found")
}

func (r giftCodeRepo) MarkExpired(_ context.Context, id uuid.UUID) error {
	g, ok := r.s.giftCodes[id]
	if !ok || g.Status() != giftcode.StatusUnused {
		return nil
	}
	r.s.giftCodes[id] = giftcode.Reconstruct(g.ID(), g.Code(), giftcode.StatusExpired, g.PackID(), g.ExpiresAt(), nil, nil, g.CreatedAt())
	return nil
}

func (r giftCodeRepo) Redeem(_ context.Context, id, ticketID uuid.UUID, now time.Time) (bool, error) {
	g, ok := r.s.giftCodes[id]
	if !ok || g.Status() != giftcode.StatusUnused {
		return false, nil
	}
	usedAt := now
	r.s.giftCodes[id] = giftcode.Reconstruct(g.ID(), g.Code(), giftcode.StatusUsed, g.PackID(), g.ExpiresAt(), &ticketID, &usedAt, g.CreatedAt())
	return true, nil
}

func (r giftCodeRepo) ExpireStale(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, g := range r.s.giftCodes {
		if g.PastExpiry(now) {
			r.s.giftCodes[id] = giftcode.Reconstruct(g.ID(), g.Code(), giftcode.StatusExpired, g.PackID(), g.ExpiresAt(), nil, nil, g.CreatedAt())
			n++
		}
	}
	return n, nil
}

type scheduleRepo struct{ s *Store }

func (r scheduleRepo) ListForDate(_ context.Context, date time.Time, audience schedule.Audience) ([]schedule.Entry, error) {
	var exceptions, recurring []schedule.Entry
	for _, e := range r.s.schedules {
		if e.Audience != audience || !e.Covers(date) {
			continue
		}
		if e.Kind == schedule.KindException {
			exceptions = append(exceptions, e)
		} else {
			recurring = append(recurring, e)
		}
	}
	byCreated := func(a, b schedule.Entry) int { return a.CreatedAt.Compare(b.CreatedAt) }
	slices.SortStableFunc(exceptions, byCreated)
	slices.SortStableFunc(recurring, byCreated)
	return append(exceptions, recurring...), nil
}
