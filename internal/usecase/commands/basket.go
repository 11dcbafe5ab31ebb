package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/payment"
	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxBasketItems = 20

var (
	ErrBasketTooLarge    = errs.Validation("basket has too many items")
	ErrDuplicateGiftCode = errs.Validation("gift code appears more than once in the basket")
)

type BasketItem struct {
	Details  ticket.Details
	GiftCode *string
}

type BasketResult struct {
	CheckoutID        string
	CheckoutReference string
	PaymentURL        string
	PaymentRequired   bool
	TotalAmount       int64
	Currency          string
	Tickets           []*queries.TicketView
}

type BasketCommands interface {
	CreateBasketWithPayment(ctx context.Context, items []BasketItem) (*BasketResult, error)
}

type basketUseCaseImpl struct {
	uow       shared.UnitOfWork
	rules     shared.BookingRules
	codes     *shortcode.Generator
	gateway   shared.PaymentGateway
	notifier  shared.Notifier
	publisher shared.Publisher
	recorder  shared.Recorder
	clock     clock.Clock
}

func NewBasketUseCase(
	uow shared.UnitOfWork,
	rules shared.BookingRules,
	gateway shared.PaymentGateway,
	notifier shared.Notifier,
	publisher shared.Publisher,
	recorder shared.Recorder,
	clk clock.Clock,
) BasketCommands {
	return &basketUseCaseImpl{
		uow:       uow,
		rules:     rules,
		codes:     shortcode.NewTicketCodeGenerator(),
		gateway:   gateway,
		notifier:  notifier,
		publisher: publisher,
		recorder:  recorder,
		clock:     clk,
	}
}

// CreateBasketWithPayment validates every line, opens one payment session for
// the combined total and persists all tickets in one transaction tagged with
// that session. A basket fully covered by gift codes skips the session and is
// stored as paid.
func (uc *basketUseCaseImpl) CreateBasketWithPayment(ctx context.Context, items []BasketItem) (*BasketResult, error) {
	lines, total, err := uc.prepare(ctx, items)
	if err != nil {
		return nil, err
	}

	result := &BasketResult{
		TotalAmount:     total,
		Currency:        uc.rules.Currency,
		PaymentRequired: total > 0,
	}

	var checkout *ticket.Checkout
	if result.PaymentRequired {
		session, err := uc.openSession(ctx, lines, total)
		if err != nil {
			return nil, err
		}
		checkout = &ticket.Checkout{ID: session.ID, Reference: session.Reference}
		result.CheckoutID = session.ID
		result.CheckoutReference = session.Reference
		result.PaymentURL = session.URL
	}

	var created []*ticket.Ticket
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = created[:0]
		b := newBooker(uc.rules, uc.codes, uc.clock)
		now := uc.clock.Now()

		for _, line := range lines {
			t, err := b.reserve(ctx, tx, line.details, func(t *ticket.Ticket) {
				if checkout != nil {
					t.AttachCheckout(*checkout)
				} else {
					t.SettleWithoutPayment()
				}
			})
			if err != nil {
				return err
			}
			if line.gift != nil {
				if err := redeemIn(ctx, tx, line.gift, t.ID(), now); err != nil {
					return err
				}
			}
			created = append(created, t)
		}
		return nil
	})
	if err != nil {
		if checkout != nil {
			slog.Warn("basket rolled back after payment session was opened",
				"checkout_id", checkout.ID,
				"error", err.Error())
		}
		return nil, err
	}

	uc.recorder.TicketsCreated(len(created))
	if redeemed := countGifts(lines); redeemed > 0 {
		uc.recorder.GiftCodesRedeemed(redeemed)
	}
	if !result.PaymentRequired {
		sendPaidNotifications(ctx, uc.notifier, created)
	}
	publishAvailability(ctx, uc.publisher, ticketDates(created)...)

	result.Tickets = queries.NewTicketViews(created)
	return result, nil
}

type basketLine struct {
	details ticket.Details
	gift    *giftcode.GiftCode
}

func (uc *basketUseCaseImpl) prepare(ctx context.Context, items []BasketItem) ([]basketLine, int64, error) {
	if len(items) == 0 {
		return nil, 0, ticket.ErrEmptyBasket
	}
	if len(items) > MaxBasketItems {
		return nil, 0, ErrBasketTooLarge
	}

	b := newBooker(uc.rules, uc.codes, uc.clock)
	now := uc.clock.Now()
	seen := make(map[string]struct{})
	lines := make([]basketLine, 0, len(items))
	var total int64

	for i, item := range items {
		line := basketLine{details: item.Details}

		if item.GiftCode != nil {
			code := shortcode.Normalize(*item.GiftCode)
			if _, dup := seen[code]; dup {
				return nil, 0, ErrDuplicateGiftCode
			}
			seen[code] = struct{}{}

			g, err := uc.lookupGift(ctx, code, now)
			if err != nil {
				return nil, 0, errs.Wrapf(err, "basket item %d", i)
			}
			line.gift = g
			line.details.TicketPrice = 0
		}

		if err := b.validate(line.details, line.gift != nil); err != nil {
			return nil, 0, errs.Wrapf(err, "basket item %d", i)
		}
		total += line.details.Total()
		lines = append(lines, line)
	}

	// slot shape is settled before any payment session exists
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		for i, line := range lines {
			if err := b.checkSlot(ctx, tx, line.details); err != nil {
				return errs.Wrapf(err, "basket item %d", i)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return lines, total, nil
}

func (uc *basketUseCaseImpl) lookupGift(ctx context.Context, code string, now time.Time) (*giftcode.GiftCode, error) {
	var g *giftcode.GiftCode
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := findGiftCode(ctx, tx, code)
		if err != nil {
			return err
		}
		g = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := g.CheckRedeemable(now); err != nil {
		return nil, err
	}
	return g, nil
}

func (uc *basketUseCaseImpl) openSession(ctx context.Context, lines []basketLine, total int64) (payment.Session, error) {
	first := lines[0].details
	req := payment.SessionRequest{
		AmountCents:   total,
		Currency:      uc.rules.Currency,
		Description:   fmt.Sprintf("%d ticket(s) for %s", len(lines), first.ReservationDate.Format(time.DateOnly)),
		Reference:     uuid.NewString(),
		CustomerEmail: first.Email,
	}

	session, err := uc.gateway.OpenSession(ctx, req)
	if err != nil {
		slog.Error("failed to open payment session",
			"reference", req.Reference,
			"amount", total,
			"error", err.Error())
		return payment.Session{}, errs.Wrap(ticket.ErrPaymentSession, "open payment session")
	}
	if session.Reference == "" {
		session.Reference = req.Reference
	}
	return session, nil
}

func countGifts(lines []basketLine) int {
	n := 0
	for _, l := range lines {
		if l.gift != nil {
			n++
		}
	}
	return n
}
