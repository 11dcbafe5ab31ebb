package commands

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	transactionStatusAdminCancel = "cancelled_by_admin"
	transactionStatusAdminPaid   = "marked_paid_by_admin"
)

type TicketCommands interface {
	CreateTicket(ctx context.Context, d ticket.Details) (*queries.TicketView, error)
	CancelTicket(ctx context.Context, id uuid.UUID) (*queries.TicketView, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*queries.TicketView, error)
}

type ticketUseCaseImpl struct {
	uow       shared.UnitOfWork
	rules     shared.BookingRules
	codes     *shortcode.Generator
	notifier  shared.Notifier
	publisher shared.Publisher
	recorder  shared.Recorder
	clock     clock.Clock
}

func NewTicketUseCase(
	uow shared.UnitOfWork,
	rules shared.BookingRules,
	notifier shared.Notifier,
	publisher shared.Publisher,
	recorder shared.Recorder,
	clk clock.Clock,
) TicketCommands {
	return &ticketUseCaseImpl{
		uow:       uow,
		rules:     rules,
		codes:     shortcode.NewTicketCodeGenerator(),
		notifier:  notifier,
		publisher: publisher,
		recorder:  recorder,
		clock:     clk,
	}
}

func (uc *ticketUseCaseImpl) CreateTicket(ctx context.Context, d ticket.Details) (*queries.TicketView, error) {
	if err := newBooker(uc.rules, uc.codes, uc.clock).validate(d, false); err != nil {
		return nil, err
	}

	var created *ticket.Ticket
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := newBooker(uc.rules, uc.codes, uc.clock).reserve(ctx, tx, d, nil)
		if err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.TicketsCreated(1)
	publishAvailability(ctx, uc.publisher, created.ReservationDate())
	return queries.NewTicketView(created), nil
}

func (uc *ticketUseCaseImpl) CancelTicket(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	t, err := uc.transitionPending(ctx, id, ticket.StatusCancelled, transactionStatusAdminCancel)
	if err != nil {
		return nil, err
	}

	publishAvailability(ctx, uc.publisher, t.ReservationDate())
	return queries.NewTicketView(t), nil
}

func (uc *ticketUseCaseImpl) MarkPaid(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	t, err := uc.transitionPending(ctx, id, ticket.StatusPaid, transactionStatusAdminPaid)
	if err != nil {
		return nil, err
	}

	sendPaidNotifications(ctx, uc.notifier, []*ticket.Ticket{t})
	return queries.NewTicketView(t), nil
}

func (uc *ticketUseCaseImpl) transitionPending(ctx context.Context, id uuid.UUID, to ticket.Status, transactionStatus string) (*ticket.Ticket, error) {
	var updated *ticket.Ticket
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tickets().TransitionPending(ctx, id, to, transactionStatus, uc.clock.Now())
		if err != nil {
			return err
		}
		if t != nil {
			updated = t
			return nil
		}

		// Nothing moved: tell a missing ticket from one in the wrong state.
		if _, err := tx.Tickets().FindByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ticket.ErrNotFound
			}
			return err
		}
		return ticket.ErrNotPending
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// sendPaidNotifications fires the confirmation and, when any ticket carries a
// donation, the receipt. Failures are logged only.
func sendPaidNotifications(ctx context.Context, notifier shared.Notifier, tickets []*ticket.Ticket) {
	if len(tickets) == 0 {
		return
	}
	if err := notifier.SendTicketConfirmation(ctx, tickets); err != nil {
		slog.Error("failed to send ticket confirmation",
			"ticket_id", tickets[0].ID().String(),
			"count", len(tickets),
			"error", errs.Wrap(err, "send ticket confirmation").Error())
	}

	var donors []*ticket.Ticket
	for _, t := range tickets {
		if t.HasDonation() {
			donors = append(donors, t)
		}
	}
	if len(donors) == 0 {
		return
	}
	if err := notifier.SendDonationReceipt(ctx, donors); err != nil {
		slog.Error("failed to send donation receipt",
			"ticket_id", donors[0].ID().String(),
			"error", errs.Wrap(err, "send donation receipt").Error())
	}
}
