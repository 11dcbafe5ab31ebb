package shared

import (
	"context"
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/payment"
	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/ticket"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statements on the pool, each in its own implicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction (or to the pool for WithDB).
type Tx interface {
	Tickets() TicketRepository
	GiftCodes() GiftCodeRepository
	Schedules() ScheduleRepository
}

type TicketRepository interface {
	// Insert returns shortcode.ErrCodeTaken when the code is already persisted.
	Insert(ctx context.Context, t *ticket.Ticket) error
	CodeExists(ctx context.Context, code string) (bool, error)
	FindByCode(ctx context.Context, code string) (*ticket.Ticket, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	// ListBookings returns the capacity-holding tickets of date.
	ListBookings(ctx context.Context, date time.Time) ([]slot.Booking, error)
	// LockDate serialises capacity checks for date until the transaction ends.
	LockDate(ctx context.Context, date time.Time) error
	// TransitionCheckout moves the still-pending tickets of a checkout and
	// returns only the rows it changed.
	TransitionCheckout(ctx context.Context, key payment.Key, to ticket.Status, transactionStatus string, now time.Time) ([]*ticket.Ticket, error)
	// CountCheckout counts the tickets of a checkout currently in status.
	CountCheckout(ctx context.Context, key payment.Key, status ticket.Status) (int, error)
	// TransitionPending moves one pending ticket; nil when it was not pending.
	TransitionPending(ctx context.Context, id uuid.UUID, to ticket.Status, transactionStatus string, now time.Time) (*ticket.Ticket, error)
	// MarkUsed sets status=used and used_at for a paid, unused ticket dated on
	// or after today; nil when the guard did not match.
	MarkUsed(ctx context.Context, id uuid.UUID, today, now time.Time) (*ticket.Ticket, error)
	// CancelStalePending returns the reservation dates of the tickets it cancelled.
	CancelStalePending(ctx context.Context, createdBefore, now time.Time) ([]time.Time, error)
}

type GiftCodeRepository interface {
	// Insert returns shortcode.ErrCodeTaken when the code is already persisted.
	Insert(ctx context.Context, g *giftcode.GiftCode) error
	CodeExists(ctx context.Context, code string) (bool, error)
	FindByCode(ctx context.Context, code string) (*giftcode.GiftCode, error)
	MarkExpired(ctx context.Context, id uuid.UUID) error
	// Redeem binds an unused code to ticketID; false when it was not unused.
	Redeem(ctx context.Context, id, ticketID uuid.UUID, now time.Time) (bool, error)
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

type ScheduleRepository interface {
	// ListForDate returns exceptions first, then recurring rules, each oldest first.
	ListForDate(ctx context.Context, date time.Time, audience schedule.Audience) ([]schedule.Entry, error)
}
