package commands

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPriceMismatch = errs.Validation("ticket price does not match the slot price")

// booker holds the checks and writes shared by single-ticket creation and
// basket checkout. Every method runs inside the caller's transaction.
type booker struct {
	rules  shared.BookingRules
	codes  *shortcode.Generator
	clock  clock.Clock
	booked map[time.Time][]slot.Booking
}

func newBooker(rules shared.BookingRules, codes *shortcode.Generator, clk clock.Clock) *booker {
	return &booker{
		rules:  rules,
		codes:  codes,
		clock:  clk,
		booked: make(map[time.Time][]slot.Booking),
	}
}

func (b *booker) today() time.Time {
	return clock.Today(b.clock, b.rules.Loc())
}

// validate runs the checks that need no storage.
func (b *booker) validate(d ticket.Details, giftCovered bool) error {
	if err := d.Validate(b.today()); err != nil {
		return err
	}
	if giftCovered {
		return nil
	}
	want := b.rules.Pricing().Price(slot.Slot{Start: d.SlotStart, End: d.SlotEnd})
	if d.TicketPrice != want {
		return errs.Wrapf(ErrPriceMismatch, "expected %d", want)
	}
	return nil
}

// checkSlot resolves the opening window of d's date and requires d's
// interval to be one of the slots planned for it.
func (b *booker) checkSlot(ctx context.Context, tx shared.Tx, d ticket.Details) error {
	audience := d.Audience
	if audience == "" {
		audience = schedule.AudiencePublic
	}
	entries, err := tx.Schedules().ListForDate(ctx, d.ReservationDate, audience)
	if err != nil {
		return errs.Wrap(err, "list schedule entries")
	}
	window, open := schedule.Resolve(d.ReservationDate, entries)
	if !open {
		return ticket.ErrVenueClosed
	}
	if !window.Contains(d.SlotStart, d.SlotEnd) {
		return ticket.ErrOutsideOpening
	}
	requested := slot.Slot{Start: d.SlotStart, End: d.SlotEnd}
	if !slices.Contains(slot.Plan(window.Open, window.Close, b.rules.SlotDuration), requested) {
		return ticket.ErrNotPlannedSlot
	}
	return nil
}

// reserve re-checks d's slot and its remaining room under a per-date
// advisory lock, then inserts the ticket with a fresh code.
func (b *booker) reserve(ctx context.Context, tx shared.Tx, d ticket.Details, decorate func(*ticket.Ticket)) (*ticket.Ticket, error) {
	date := d.ReservationDate

	bookings, seen := b.booked[date]
	if !seen {
		if err := tx.Tickets().LockDate(ctx, date); err != nil {
			return nil, errs.Wrap(err, "lock reservation date")
		}
		var err error
		bookings, err = tx.Tickets().ListBookings(ctx, date)
		if err != nil {
			return nil, errs.Wrap(err, "list bookings")
		}
	}

	if err := b.checkSlot(ctx, tx, d); err != nil {
		return nil, err
	}

	requested := slot.Slot{Start: d.SlotStart, End: d.SlotEnd}
	if !slot.HasRoom(bookings, requested, b.rules.SlotCapacity) {
		return nil, ticket.ErrSlotFull
	}

	now := b.clock.Now()
	id := uuid.New()
	var created *ticket.Ticket
	_, err := b.codes.Issue(ctx, tx.Tickets().CodeExists, func(ctx context.Context, code string) error {
		t, err := ticket.New(id, code, d, now)
		if err != nil {
			return err
		}
		if decorate != nil {
			decorate(t)
		}
		if err := tx.Tickets().Insert(ctx, t); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		if errs.Is(err, shortcode.ErrGenerationExhausted) {
			slog.Error("ticket code generation exhausted",
				"reservation_date", date.Format(time.DateOnly),
				"error", err.Error())
		}
		return nil, err
	}

	b.booked[date] = append(bookings, slot.Booking{TicketID: created.ID(), Start: created.SlotStart(), End: created.SlotEnd()})
	return created, nil
}

func publishAvailability(ctx context.Context, pub shared.Publisher, dates ...time.Time) {
	seen := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		topic := shared.AvailabilityTopic(d)
		if err := pub.Publish(ctx, topic, "refresh"); err != nil {
			slog.Warn("failed to publish availability refresh", "topic", topic, "error", err.Error())
		}
	}
}

func ticketDates(ts []*ticket.Ticket) []time.Time {
	out := make([]time.Time, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ReservationDate())
	}
	return out
}
